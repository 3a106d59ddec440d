package config

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper-engine/internal/mines"
)

func TestNewAppDefaults(t *testing.T) {
	app, err := NewApp()
	require.NoError(t, err)
	assert.Equal(t, ":8080", app.Addr)
	assert.Equal(t, time.Minute, app.SweepInterval)
	assert.Equal(t, time.Hour, app.SessionIdle)
}

func TestNewAppFromEnv(t *testing.T) {
	t.Setenv("APP_ADDR", "127.0.0.1:9000")
	t.Setenv("SESSION_IDLE_TIMEOUT", "15m")
	t.Setenv("LOG_FILE", "/tmp/mines.log")

	app, err := NewApp()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", app.Addr)
	assert.Equal(t, 15*time.Minute, app.SessionIdle)
	assert.Equal(t, "/tmp/mines.log", app.LogFile)

	t.Setenv("SESSION_SWEEP_INTERVAL", "often")
	_, err = NewApp()
	assert.ErrorContains(t, err, "SESSION_SWEEP_INTERVAL")
}

func TestDevelopment(t *testing.T) {
	t.Setenv("DEVELOPMENT", "1")
	assert.True(t, Development())
	t.Setenv("DEVELOPMENT", "0")
	assert.False(t, Development())
}

func TestNewGameParams(t *testing.T) {
	params, err := NewGameParams()
	require.NoError(t, err)
	assert.Equal(t, mines.DefaultParams, *params)

	t.Setenv("GAME_HEIGHT", "12")
	t.Setenv("GAME_MINE_COUNT", "20")
	params, err = NewGameParams()
	require.NoError(t, err)
	assert.Equal(t, mines.GameParams{Height: 12, Width: 9, MineCount: 20}, *params)

	t.Setenv("GAME_WIDTH", "0")
	_, err = NewGameParams()
	assert.Error(t, err)

	t.Setenv("GAME_PRESET", "expert")
	params, err = NewGameParams()
	require.NoError(t, err)
	assert.Equal(t, mines.Presets["expert"], *params)

	t.Setenv("GAME_PRESET", "nightmare")
	_, err = NewGameParams()
	assert.Error(t, err)
}

func TestTokens(t *testing.T) {
	tokens, err := NewTokensWithSecret([]byte("secret"), time.Hour)
	require.NoError(t, err)

	token, err := tokens.Sign("game-1")
	require.NoError(t, err)

	claims, err := tokens.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "game-1", claims.GameID)

	other, err := NewTokensWithSecret([]byte("other secret"), time.Hour)
	require.NoError(t, err)
	_, err = other.Parse(token)
	assert.Error(t, err)

	expired, err := NewTokensWithSecret([]byte("secret"), -time.Minute)
	require.NoError(t, err)
	token, err = expired.Sign("game-1")
	require.NoError(t, err)
	_, err = tokens.Parse(token)
	assert.Error(t, err)

	_, err = NewTokensWithSecret(nil, time.Hour)
	assert.Error(t, err)
}

func TestNewTokensFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "secret")
	require.NoError(t, os.WriteFile(path, []byte("from file\n"), 0o600))
	t.Setenv("SESSION_SECRET_FILE", path)

	tokens, err := NewTokens()
	require.NoError(t, err)
	assert.Equal(t, []byte("from file"), tokens.secret)
	assert.Equal(t, 24*time.Hour, tokens.Lifetime())
}

func TestNewTokensMissingSecret(t *testing.T) {
	for _, key := range []string{"SESSION_SECRET", "SESSION_SECRET_FILE"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	_, err := NewTokens()
	assert.Error(t, err)
}

func TestCookies(t *testing.T) {
	t.Setenv("COOKIES_SAMESITE", "lax")
	t.Setenv("COOKIES_SECURE", "0")
	cookies, err := NewCookies()
	require.NoError(t, err)
	assert.Equal(t, http.SameSiteLaxMode, cookies.SameSite)
	assert.False(t, cookies.Secure)

	rec := httptest.NewRecorder()
	cookies.Set(rec, "abc", "tok", time.Hour)
	set := rec.Result().Cookies()
	require.Len(t, set, 1)
	assert.Equal(t, "/game/abc", set[0].Path)
	assert.Equal(t, "tok", set[0].Value)
	assert.True(t, set[0].HttpOnly)

	t.Setenv("COOKIES_SAMESITE", "sideways")
	_, err = NewCookies()
	assert.Error(t, err)
}

func TestWebSocketOrigins(t *testing.T) {
	t.Setenv("WS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	ws, err := NewWebSocket()
	require.NoError(t, err)
	assert.EqualValues(t, 4096, ws.ReadLimit)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://b.example")
	assert.True(t, ws.Upgrader.CheckOrigin(req))
	req.Header.Set("Origin", "https://evil.example")
	assert.False(t, ws.Upgrader.CheckOrigin(req))
}
