package app

import (
	"github.com/vancomm/minesweeper-engine/internal/handlers"
	"github.com/vancomm/minesweeper-engine/internal/mines"
)

func (a *App) loadRoutes() {
	game := handlers.NewGameHandler(
		a.log, a.store, a.tokens, a.cookies, a.ws, a.defaults, a.metrics,
	)

	a.router.HandleFunc("POST /game", game.NewGame)
	a.router.HandleFunc("GET /game/{id}", game.Fetch)
	a.router.HandleFunc("DELETE /game/{id}", game.Delete)
	a.router.HandleFunc("POST /game/{id}/move", game.MakeAMove)
	a.router.HandleFunc("POST /game/{id}/select", game.Move(mines.Select))
	a.router.HandleFunc("POST /game/{id}/flag", game.Move(mines.Flag))
	a.router.HandleFunc("POST /game/{id}/chord", game.Move(mines.Chord))
	a.router.HandleFunc("POST /game/{id}/restart", game.Move(mines.Restart))
	a.router.HandleFunc("POST /game/{id}/forfeit", game.Move(mines.Forfeit))
	a.router.HandleFunc("/game/{id}/connect", game.ConnectWS)

	a.router.Handle("GET /metrics", a.metrics.Handler())
	a.router.HandleFunc("GET /healthz", handlers.Health)
}
