package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"

	"github.com/vancomm/minesweeper-engine/internal/app"
	"github.com/vancomm/minesweeper-engine/internal/config"
	"github.com/vancomm/minesweeper-engine/internal/mines"
)

var log = logrus.New()

func setupLogging(cfg *config.App) {
	logLevel := logrus.InfoLevel
	if config.Development() {
		logLevel = logrus.DebugLevel
		log.SetFormatter(&logrus.TextFormatter{ForceColors: true})
	} else {
		log.SetFormatter(&logrus.JSONFormatter{})
	}
	log.SetLevel(logLevel)

	// the engine logs placement and floods at debug level
	mines.Log = log

	if cfg.LogFile == "" {
		return
	}
	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   cfg.LogFile,
		MaxSize:    50, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Level:      logLevel,
		Formatter:  &logrus.JSONFormatter{},
	})
	if err != nil {
		log.Fatal("unable to open log file: ", err)
	}
	log.AddHook(hook)
}

func main() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	cfg, err := config.NewApp()
	if err != nil {
		log.Fatal("unable to read app config: ", err)
	}

	setupLogging(cfg)

	tokens, err := config.NewTokens()
	if err != nil {
		log.Fatal("unable to read token config: ", err)
	}
	cookies, err := config.NewCookies()
	if err != nil {
		log.Fatal("unable to read cookie config: ", err)
	}
	ws, err := config.NewWebSocket()
	if err != nil {
		log.Fatal("unable to read ws config: ", err)
	}
	defaults, err := config.NewGameParams()
	if err != nil {
		log.Fatal("unable to read game config: ", err)
	}

	a := app.New(log, app.Deps{
		Config:   cfg,
		Tokens:   tokens,
		Cookies:  cookies,
		WS:       ws,
		Defaults: *defaults,
	})

	if err := a.Start(ctx); err != nil {
		log.Printf("exit reason: %s\n", err)
		os.Exit(1)
	}
}
