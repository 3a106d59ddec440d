package session

import (
	"context"
	"errors"
	"hash/maphash"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper-engine/internal/mines"
)

var ErrNotFound = errors.New("session not found")

// Store keeps sessions in memory; they are gone after a restart of the
// process.
type Store struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session

	log     logrus.FieldLogger
	ttl     time.Duration
	hooks   Hooks
	newRand func() *rand.Rand
	now     func() time.Time
}

type Option func(*Store)

func WithHooks(h Hooks) Option {
	return func(s *Store) { s.hooks = h }
}

// WithRand replaces the per-session random source factory.
func WithRand(newRand func() *rand.Rand) Option {
	return func(s *Store) { s.newRand = newRand }
}

func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func createRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

func NewStore(log logrus.FieldLogger, ttl time.Duration, opts ...Option) *Store {
	s := &Store{
		sessions: make(map[uuid.UUID]*Session),
		log:      log,
		ttl:      ttl,
		newRand:  createRand,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Create(params mines.GameParams) (*Session, error) {
	sess, err := newSession(params, s.newRand(), s.now, s.hooks)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	s.log.WithFields(logrus.Fields{
		"session": sess.ID,
		"params":  params.Seed(),
	}).Debug("session created")

	return sess, nil
}

func (s *Store) Get(id uuid.UUID) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return sess, nil
}

func (s *Store) Delete(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Sweep drops sessions untouched for longer than the store's TTL and
// returns how many it dropped.
func (s *Store) Sweep(now time.Time) int {
	if s.ttl <= 0 {
		return 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for id, sess := range s.sessions {
		if now.Sub(sess.idleSince()) > s.ttl {
			delete(s.sessions, id)
			n++
		}
	}
	if n > 0 {
		s.log.WithFields(logrus.Fields{
			"dropped": n,
			"left":    len(s.sessions),
		}).Info("swept idle sessions")
	}
	return n
}

// RunSweeper sweeps every interval until ctx is done.
func (s *Store) RunSweeper(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case t := <-ticker.C:
			s.Sweep(t)
		}
	}
}
