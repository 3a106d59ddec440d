package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vancomm/minesweeper-engine/internal/mines"
	"github.com/vancomm/minesweeper-engine/internal/session"
)

type Metrics struct {
	registry     *prometheus.Registry
	GamesStarted *prometheus.CounterVec
	GamesEnded   *prometheus.CounterVec
	Moves        *prometheus.CounterVec
	GameDuration prometheus.Histogram
}

func New(namespace string) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		GamesStarted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "games_started_total",
			Help:      "Number of games started, by preset or \"custom\"",
		}, []string{"preset"}),
		GamesEnded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "games_ended_total",
			Help:      "Number of games ended, by outcome",
		}, []string{"status"}),
		Moves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "moves_total",
			Help:      "Number of moves received, by kind",
		}, []string{"move"}),
		GameDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "game_duration_seconds",
			Help:      "Time from the start of a game to its end",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
		}),
	}

	m.registry.MustRegister(
		m.GamesStarted,
		m.GamesEnded,
		m.Moves,
		m.GameDuration,
	)

	return m
}

// TrackSessions exports the number of live sessions in store.
func (m *Metrics) TrackSessions(namespace string, store *session.Store) {
	m.registry.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "active_sessions",
		Help:      "Number of sessions held in memory",
	}, func() float64 {
		return float64(store.Len())
	}))
}

// Hooks feeds game starts and ends from the session store into the
// counters.
func (m *Metrics) Hooks() session.Hooks {
	return session.Hooks{
		Started: func(params mines.GameParams) {
			m.GamesStarted.WithLabelValues(params.PresetName()).Inc()
		},
		Ended: func(_ mines.GameParams, status mines.Status, played time.Duration) {
			m.GamesEnded.WithLabelValues(status.String()).Inc()
			m.GameDuration.Observe(played.Seconds())
		},
	}
}

func (m *Metrics) ObserveMove(move string) {
	m.Moves.WithLabelValues(move).Inc()
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
