package handlers

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper-engine/internal/config"
	"github.com/vancomm/minesweeper-engine/internal/middleware"
	"github.com/vancomm/minesweeper-engine/internal/mines"
	"github.com/vancomm/minesweeper-engine/internal/session"
)

// MoveObserver is told about every move a client sends.
type MoveObserver interface {
	ObserveMove(move string)
}

type GameHandler struct {
	log      logrus.FieldLogger
	store    *session.Store
	tokens   *config.Tokens
	cookies  *config.Cookies
	ws       *config.WebSocket
	defaults mines.GameParams
	observer MoveObserver
}

func NewGameHandler(
	log logrus.FieldLogger,
	store *session.Store,
	tokens *config.Tokens,
	cookies *config.Cookies,
	ws *config.WebSocket,
	defaults mines.GameParams,
	observer MoveObserver,
) *GameHandler {
	handler := &GameHandler{
		log:      log,
		store:    store,
		tokens:   tokens,
		cookies:  cookies,
		ws:       ws,
		defaults: defaults,
		observer: observer,
	}

	return handler
}

var (
	ErrBadSessionID = errors.New("invalid game session id")
	ErrForbidden    = errors.New("token does not grant access to this game")
)

func (g GameHandler) NewGame(w http.ResponseWriter, r *http.Request) {
	dto, err := ParseCreateNewGameDTO(r.URL.Query())
	if err != nil {
		sendError(w, g.log, http.StatusBadRequest, err)
		return
	}

	params, err := dto.Params(g.defaults)
	if err != nil {
		sendError(w, g.log, http.StatusBadRequest, err)
		return
	}

	sess, err := g.store.Create(params)
	if err != nil {
		g.log.WithError(err).Error("unable to create game session")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	token, err := g.tokens.Sign(sess.ID.String())
	if err != nil {
		g.store.Delete(sess.ID)
		g.log.WithError(err).Error("unable to sign game token")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	g.cookies.Set(w, sess.ID.String(), token, g.tokens.Lifetime())

	resp := NewGameSessionDTO(sess.Snapshot())
	resp.Token = token

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	sendJSONOrLog(w, g.log, resp)
}

// lookup resolves the {id} path value, answering the request itself when
// it cannot.
func (g GameHandler) lookup(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		sendError(w, g.log, http.StatusBadRequest, ErrBadSessionID)
		return nil, false
	}
	sess, err := g.store.Get(id)
	if errors.Is(err, session.ErrNotFound) {
		sendError(w, g.log, http.StatusNotFound, err)
		return nil, false
	}
	if err != nil {
		g.log.WithError(err).Error("unable to fetch game session")
		w.WriteHeader(http.StatusInternalServerError)
		return nil, false
	}
	return sess, true
}

// authorize checks that the request carries a token for sess.
func (g GameHandler) authorize(w http.ResponseWriter, r *http.Request, sess *session.Session) bool {
	claims, ok := middleware.GameClaims(r.Context())
	if !ok {
		w.Header().Set("WWW-Authenticate", "Bearer")
		sendError(w, g.log, http.StatusUnauthorized, ErrForbidden)
		return false
	}
	if claims.GameID != sess.ID.String() {
		sendError(w, g.log, http.StatusForbidden, ErrForbidden)
		return false
	}
	return true
}

func (g GameHandler) Fetch(w http.ResponseWriter, r *http.Request) {
	sess, ok := g.lookup(w, r)
	if !ok {
		return
	}
	sendJSONOrLog(w, g.log, NewGameSessionDTO(sess.Snapshot()))
}

// Move returns the handler for one kind of move.
func (g GameHandler) Move(move mines.Move) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cmd := mines.Command{Move: move}
		if move.NeedsPosition() {
			pos, err := ParsePosition(r.URL.Query())
			if err != nil {
				sendError(w, g.log, http.StatusBadRequest, err)
				return
			}
			cmd.Row, cmd.Column = pos.Row, pos.Column
		}

		sess, ok := g.lookup(w, r)
		if !ok {
			return
		}
		if !g.authorize(w, r, sess) {
			return
		}

		if g.observer != nil {
			g.observer.ObserveMove(move.String())
		}

		snap, err := apply(sess, cmd)
		if err != nil {
			g.log.WithFields(logrus.Fields{
				"session": sess.ID,
				"move":    move.String(),
				"error":   err,
			}).Error("engine rejected move")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		sendJSONOrLog(w, g.log, NewGameSessionDTO(snap))
	}
}

// MakeAMove reads the kind of move from the "move" query parameter.
func (g GameHandler) MakeAMove(w http.ResponseWriter, r *http.Request) {
	move, err := mines.ParseMove(r.URL.Query().Get("move"))
	if err != nil {
		sendError(w, g.log, http.StatusBadRequest, err)
		return
	}
	g.Move(move)(w, r)
}

func (g GameHandler) Delete(w http.ResponseWriter, r *http.Request) {
	sess, ok := g.lookup(w, r)
	if !ok {
		return
	}
	if !g.authorize(w, r, sess) {
		return
	}
	g.store.Delete(sess.ID)
	g.cookies.Clear(w, sess.ID.String())
	w.WriteHeader(http.StatusNoContent)
}
