package config

import (
	"net/http"
	"os"
	"strings"

	"github.com/gorilla/websocket"
)

type WebSocket struct {
	Upgrader websocket.Upgrader
	// ReadLimit caps a single client message in bytes.
	ReadLimit int64
}

// NewWebSocket accepts any origin unless WS_ALLOWED_ORIGINS lists them
// comma-separated.
func NewWebSocket() (*WebSocket, error) {
	var allowed []string
	if s, ok := os.LookupEnv("WS_ALLOWED_ORIGINS"); ok && s != "" {
		for _, origin := range strings.Split(s, ",") {
			allowed = append(allowed, strings.TrimSpace(origin))
		}
	}

	limit, err := lookupInt("WS_READ_LIMIT", 4096)
	if err != nil {
		return nil, err
	}

	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			if len(allowed) == 0 {
				return true
			}
			origin := r.Header.Get("Origin")
			for _, a := range allowed {
				if strings.EqualFold(a, origin) {
					return true
				}
			}
			return false
		},
	}

	ws := &WebSocket{
		Upgrader:  upgrader,
		ReadLimit: int64(limit),
	}

	return ws, nil
}
