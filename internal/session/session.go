package session

import (
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vancomm/minesweeper-engine/internal/mines"
)

// Session owns one game. The engine is single-threaded, so every call into
// it goes through Do, which holds the session lock.
type Session struct {
	ID uuid.UUID

	mu        sync.Mutex
	game      *mines.Game
	startedAt time.Time
	endedAt   *time.Time
	touchedAt time.Time
	now       func() time.Time
	hooks     Hooks
}

// Hooks are called under the session lock when a game starts or ends.
type Hooks struct {
	Started func(params mines.GameParams)
	Ended   func(params mines.GameParams, status mines.Status, played time.Duration)
}

type Snapshot struct {
	ID        uuid.UUID
	Params    mines.GameParams
	Status    mines.Status
	Grid      mines.Grid
	StartedAt time.Time
	EndedAt   *time.Time
}

func newSession(params mines.GameParams, r *rand.Rand, now func() time.Time, hooks Hooks) (*Session, error) {
	game, err := mines.NewGame(params, r)
	if err != nil {
		return nil, err
	}
	t := now()
	s := &Session{
		ID:        uuid.New(),
		game:      game,
		startedAt: t,
		touchedAt: t,
		now:       now,
		hooks:     hooks,
	}
	if s.hooks.Started != nil {
		s.hooks.Started(params)
	}
	return s, nil
}

// Do runs fn against the game and returns the state it left behind.
func (s *Session) Do(fn func(g *mines.Game) error) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	game := s.game
	before := game.Status()
	err := fn(game)
	after := game.Status()
	t := s.now()
	s.touchedAt = t

	if !before.Terminal() && after.Terminal() {
		s.endedAt = &t
		if s.hooks.Ended != nil {
			s.hooks.Ended(game.Params(), after, t.Sub(s.startedAt))
		}
	}

	return s.snapshot(), err
}

// Restart rebuilds the board with the same parameters and resets the clock.
func (s *Session) Restart() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.game.Restart()
	t := s.now()
	s.startedAt, s.touchedAt, s.endedAt = t, t, nil
	if s.hooks.Started != nil {
		s.hooks.Started(s.game.Params())
	}
	return s.snapshot()
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func (s *Session) snapshot() Snapshot {
	return Snapshot{
		ID:        s.ID,
		Params:    s.game.Params(),
		Status:    s.game.Status(),
		Grid:      s.game.Grid(),
		StartedAt: s.startedAt,
		EndedAt:   s.endedAt,
	}
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.touchedAt
}
