package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Tokens mints and checks the per-game tokens that let a client move in a
// game it created.
type Tokens struct {
	secret        []byte
	signingMethod jwt.SigningMethod
	tokenLifetime time.Duration
}

type GameClaims struct {
	GameID string `json:"game_id"`
	jwt.RegisteredClaims
}

func loadSecret() ([]byte, error) {
	secret, ok := os.LookupEnv("SESSION_SECRET")
	if ok {
		return []byte(secret), nil
	}
	secretFile, ok := os.LookupEnv("SESSION_SECRET_FILE")
	if !ok {
		return nil, fmt.Errorf("no SESSION_SECRET or SESSION_SECRET_FILE env variable set")
	}
	data, err := os.ReadFile(secretFile)
	if err != nil {
		return nil, fmt.Errorf("unable to read session secret: %w", err)
	}
	return []byte(strings.TrimSpace(string(data))), nil
}

func NewTokens() (*Tokens, error) {
	secret, err := loadSecret()
	if err != nil {
		return nil, err
	}
	lifetime, err := lookupDuration("SESSION_TOKEN_LIFETIME", 24*time.Hour)
	if err != nil {
		return nil, err
	}
	return NewTokensWithSecret(secret, lifetime)
}

func NewTokensWithSecret(secret []byte, lifetime time.Duration) (*Tokens, error) {
	if len(secret) == 0 {
		return nil, errors.New("session secret is empty")
	}
	t := &Tokens{
		secret:        secret,
		signingMethod: jwt.SigningMethodHS256,
		tokenLifetime: lifetime,
	}
	return t, nil
}

func (t *Tokens) Lifetime() time.Duration {
	return t.tokenLifetime
}

func (t *Tokens) Sign(gameID string) (string, error) {
	now := time.Now()
	claims := &GameClaims{
		GameID: gameID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.tokenLifetime)),
		},
	}
	return jwt.NewWithClaims(t.signingMethod, claims).SignedString(t.secret)
}

func (t *Tokens) Parse(tokenString string) (*GameClaims, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&GameClaims{},
		func(*jwt.Token) (interface{}, error) {
			return t.secret, nil
		},
		jwt.WithValidMethods([]string{t.signingMethod.Alg()}),
	)
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*GameClaims)
	if !ok {
		return nil, fmt.Errorf("malformed claims")
	}
	return claims, nil
}
