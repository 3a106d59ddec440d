package handlers

import (
	"github.com/vancomm/minesweeper-engine/internal/mines"
	"github.com/vancomm/minesweeper-engine/internal/session"
)

// apply runs cmd against sess. Out-of-grid positions fall through to the
// engine, which ignores them.
func apply(sess *session.Session, cmd mines.Command) (session.Snapshot, error) {
	switch cmd.Move {
	case mines.Restart:
		return sess.Restart(), nil
	case mines.Noop:
		return sess.Snapshot(), nil
	}
	return sess.Do(func(g *mines.Game) error {
		return g.Apply(cmd)
	})
}
