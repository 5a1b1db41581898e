package main

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ywcode/DefaultMinimapZoom/agent/go-service/pkg/logging"
)

// Version is overridden at build time with -ldflags "-X main.Version=...".
var Version = "dev"

const logDir = "debug"

// initLogger writes JSON logs to debug/go-service.log and a readable copy
// to stderr. Set MINIMAPZOOM_LOG_LEVEL to change the level (default info).
func initLogger() (*os.File, error) {
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, err
	}
	logFile, err := os.OpenFile(filepath.Join(logDir, "go-service.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}

	level := zerolog.InfoLevel
	if raw := os.Getenv("MINIMAPZOOM_LOG_LEVEL"); raw != "" {
		if parsed, err := zerolog.ParseLevel(raw); err == nil {
			level = parsed
		}
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339Nano

	console := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05.000"}
	logging.SetOutput(io.MultiWriter(logFile, console))
	log.Logger = zerolog.New(logging.Output()).
		With().
		Timestamp().
		Logger()
	return logFile, nil
}
