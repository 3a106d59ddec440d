package app

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/minesweeper-engine/internal/config"
	"github.com/vancomm/minesweeper-engine/internal/metrics"
	"github.com/vancomm/minesweeper-engine/internal/middleware"
	"github.com/vancomm/minesweeper-engine/internal/mines"
	"github.com/vancomm/minesweeper-engine/internal/session"
)

const namespace = "minesweeper"

type App struct {
	log      *logrus.Logger
	router   *http.ServeMux
	config   *config.App
	store    *session.Store
	metrics  *metrics.Metrics
	tokens   *config.Tokens
	cookies  *config.Cookies
	ws       *config.WebSocket
	defaults mines.GameParams
}

type Deps struct {
	Config   *config.App
	Tokens   *config.Tokens
	Cookies  *config.Cookies
	WS       *config.WebSocket
	Defaults mines.GameParams
}

func New(log *logrus.Logger, deps Deps) *App {
	m := metrics.New(namespace)
	store := session.NewStore(log, deps.Config.SessionIdle, session.WithHooks(m.Hooks()))
	m.TrackSessions(namespace, store)

	app := &App{
		log:      log,
		router:   http.NewServeMux(),
		config:   deps.Config,
		store:    store,
		metrics:  m,
		tokens:   deps.Tokens,
		cookies:  deps.Cookies,
		ws:       deps.WS,
		defaults: deps.Defaults,
	}

	app.loadRoutes()

	return app
}

func (a *App) Handler() http.Handler {
	return middleware.Wrap(
		a.router,
		middleware.Auth(a.log, a.tokens),
		middleware.Recover(a.log),
		middleware.Logging(a.log),
		middleware.Cors(),
	)
}

func (a *App) Start(ctx context.Context) error {
	server := &http.Server{
		Addr:    a.config.Addr,
		Handler: a.Handler(),
		BaseContext: func(l net.Listener) context.Context {
			return ctx
		},
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		sCtx, cancel := context.WithTimeout(context.Background(), time.Second*15)
		defer cancel()
		return server.Shutdown(sCtx)
	})
	if a.config.SweepInterval > 0 {
		g.Go(func() error {
			return a.store.RunSweeper(gCtx, a.config.SweepInterval)
		})
	}

	a.log.WithFields(logrus.Fields{
		"addr":     a.config.Addr,
		"defaults": a.defaults.Seed(),
	}).Info("server listening")

	return g.Wait()
}
