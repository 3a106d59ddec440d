package config

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"
)

const TokenCookie = "game_token"

// Cookies carries game tokens to browsers, which cannot set headers on a
// WebSocket upgrade. Each cookie is scoped to its game's path.
type Cookies struct {
	Domain   string
	Secure   bool
	SameSite http.SameSite
}

func NewCookies() (*Cookies, error) {
	secure := true
	if secureStr, ok := os.LookupEnv("COOKIES_SECURE"); ok {
		secure = secureStr != "0"
	}

	sameSite := http.SameSiteStrictMode
	if sameSiteStr, ok := os.LookupEnv("COOKIES_SAMESITE"); ok {
		switch strings.ToUpper(sameSiteStr) {
		case "DEFAULT":
			sameSite = http.SameSiteDefaultMode
		case "LAX":
			sameSite = http.SameSiteLaxMode
		case "STRICT":
			sameSite = http.SameSiteStrictMode
		case "NONE":
			sameSite = http.SameSiteNoneMode
		default:
			return nil, fmt.Errorf("invalid COOKIES_SAMESITE %q", sameSiteStr)
		}
	}

	cookies := &Cookies{
		Domain:   os.Getenv("COOKIES_DOMAIN"),
		Secure:   secure,
		SameSite: sameSite,
	}

	return cookies, nil
}

func gamePath(gameID string) string {
	return "/game/" + gameID
}

func (c *Cookies) Set(w http.ResponseWriter, gameID, token string, lifetime time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     TokenCookie,
		Path:     gamePath(gameID),
		Value:    token,
		Expires:  time.Now().Add(lifetime),
		HttpOnly: true,
		Domain:   c.Domain,
		Secure:   c.Secure,
		SameSite: c.SameSite,
	})
}

func (c *Cookies) Clear(w http.ResponseWriter, gameID string) {
	http.SetCookie(w, &http.Cookie{
		Name:     TokenCookie,
		Path:     gamePath(gameID),
		Value:    "delete",
		MaxAge:   -1,
		HttpOnly: true,
		Domain:   c.Domain,
		Secure:   c.Secure,
		SameSite: c.SameSite,
	})
}
