package middleware

import (
	"net/http"

	"github.com/sirupsen/logrus"
)

type Middleware func(http.Handler) http.Handler

// Wrap applies mws so that the first one listed is the innermost.
func Wrap(h http.Handler, mws ...Middleware) http.Handler {
	for _, mw := range mws {
		h = mw(h)
	}
	return h
}

type hijackReporter interface {
	Hijacked() bool
}

// Recover turns a panicking handler into a 500 instead of a dropped
// connection. It must sit inside Logging so that the 500 is logged and a
// hijacked connection is left alone.
func Recover(log logrus.FieldLogger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if v := recover(); v != nil {
					log.WithFields(logrus.Fields{
						"panic":  v,
						"method": r.Method,
						"uri":    r.URL.RequestURI(),
					}).Error("handler panicked")
					if h, ok := w.(hijackReporter); ok && h.Hijacked() {
						return
					}
					w.WriteHeader(http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
