// Package logging hands out zerolog module loggers whose output can be
// redirected after they were created. Package-level loggers are built
// during init, before main has opened the log file.
package logging

import (
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

type switchWriter struct {
	mu sync.RWMutex
	w  io.Writer
}

func (s *switchWriter) Write(p []byte) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.w.Write(p)
}

var output = &switchWriter{w: os.Stderr}

// SetOutput redirects every logger handed out by this package.
func SetOutput(w io.Writer) {
	output.mu.Lock()
	defer output.mu.Unlock()
	output.w = w
}

// Output returns the shared writer, for building the global logger.
func Output() io.Writer { return output }

// Module returns a logger tagged with module=name.
func Module(name string) zerolog.Logger {
	return zerolog.New(output).With().Timestamp().Str("module", name).Logger()
}
