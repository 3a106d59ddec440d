package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type App struct {
	Addr          string
	LogFile       string
	SweepInterval time.Duration
	SessionIdle   time.Duration
}

func Development() bool {
	development, ok := os.LookupEnv("DEVELOPMENT")
	if !ok {
		return false
	}
	return development != "0"
}

func NewApp() (*App, error) {
	addr, ok := os.LookupEnv("APP_ADDR")
	if !ok {
		addr = ":8080"
	}

	sweep, err := lookupDuration("SESSION_SWEEP_INTERVAL", time.Minute)
	if err != nil {
		return nil, err
	}

	idle, err := lookupDuration("SESSION_IDLE_TIMEOUT", time.Hour)
	if err != nil {
		return nil, err
	}

	app := &App{
		Addr:          addr,
		LogFile:       os.Getenv("LOG_FILE"),
		SweepInterval: sweep,
		SessionIdle:   idle,
	}

	return app, nil
}

func lookupDuration(key string, fallback time.Duration) (time.Duration, error) {
	s, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("unable to parse %s: %w", key, err)
	}
	return d, nil
}

func lookupInt(key string, fallback int) (int, error) {
	s, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("unable to convert %s to int: %w", key, err)
	}
	return n, nil
}
