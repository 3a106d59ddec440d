package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper-engine/internal/mines"
	"github.com/vancomm/minesweeper-engine/internal/session"
)

func (g GameHandler) wsRunGameLoop(conn *websocket.Conn, sess *session.Session) error {
	for {
		mt, buf, err := conn.ReadMessage()
		if err != nil {
			return err
		}
		if mt != websocket.TextMessage {
			return nil
		}

		snap := sess.Snapshot()
		lines := strings.Split(strings.TrimSpace(string(buf)), "\n")
		var cmdErr error
		for _, line := range lines {
			cmd, err := mines.ParseCommand(line)
			if err != nil {
				cmdErr = err
				break
			}
			if g.observer != nil {
				g.observer.ObserveMove(cmd.Move.String())
			}
			if snap, err = apply(sess, cmd); err != nil {
				return fmt.Errorf("engine rejected move: %w", err)
			}
			if snap.Status.Terminal() && cmd.Move != mines.Restart {
				break
			}
		}

		if cmdErr != nil {
			if err := conn.WriteJSON(wrapError(cmdErr)); err != nil {
				return fmt.Errorf("unable to write json: %w", err)
			}
			continue
		}
		if err := conn.WriteJSON(NewGameSessionDTO(snap)); err != nil {
			return fmt.Errorf("unable to write json: %w", err)
		}
	}
}

func (g GameHandler) ConnectWS(w http.ResponseWriter, r *http.Request) {
	sess, ok := g.lookup(w, r)
	if !ok {
		return
	}
	if !g.authorize(w, r, sess) {
		return
	}

	conn, err := g.ws.Upgrader.Upgrade(w, r, nil) // headers sent here
	if err != nil {
		g.log.WithError(err).Error("unable to upgrade")
		return
	}
	defer conn.Close()
	conn.SetReadLimit(g.ws.ReadLimit)

	log := g.log.WithField("session", sess.ID)
	log.Debug("established WS connection")

	if err := conn.WriteJSON(NewGameSessionDTO(sess.Snapshot())); err != nil {
		log.WithError(err).Warn("unable to send initial state")
		return
	}

	if err := g.wsRunGameLoop(conn, sess); err != nil {
		if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
			log.Debug("WS connection closed")
			return
		}
		log.WithFields(logrus.Fields{"error": err}).Warn("error in ws loop")
	}
}
