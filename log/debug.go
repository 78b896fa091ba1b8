// Package log writes debug output for layout changes and config reloads.
// Nothing is shown on the terminal; output only reaches a file chosen with
// SetFile.
package log

import (
	"bytes"
	"log"
	"os"
	"sync"
)

// maxPending caps what is held in memory before SetFile is called
const maxPending = 64 << 10

type sinkState int

const (
	statePending sinkState = iota // holding output until a destination is known
	stateFile
	stateOff
)

// sink is the io.Writer behind the package logger. The debug log path comes
// from the config file and flags, so lines logged while loading them are held
// in pending and replayed into the file once it is opened.
type sink struct {
	mu      sync.Mutex
	state   sinkState
	pending bytes.Buffer
	out     *os.File
}

var (
	debug  = &sink{}
	logger = log.New(debug, "", log.Ltime|log.Lmicroseconds)
)

func (s *sink) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case stateFile:
		return s.out.Write(p)
	case stateOff:
		return len(p), nil
	}
	if s.pending.Len()+len(p) > maxPending {
		return len(p), nil
	}
	return s.pending.Write(p)
}

// open switches the sink to path, replaying pending output first.
// An empty path turns the sink off.
func (s *sink) open(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.out != nil {
		_ = s.out.Close()
		s.out = nil
	}

	if path == "" {
		s.off()
		return nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600) //nolint:gosec
	if err != nil {
		s.off()
		return err
	}
	if _, err := s.pending.WriteTo(f); err != nil {
		_ = f.Close()
		s.off()
		return err
	}

	s.out = f
	s.state = stateFile
	return nil
}

func (s *sink) off() {
	s.state = stateOff
	s.pending.Reset()
}

func (s *sink) close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.out == nil {
		return nil
	}
	err := s.out.Close()
	s.out = nil
	s.state = stateOff
	return err
}

// SetFile directs all held and future debug output to path.
// An empty path, or one that cannot be opened, discards it instead.
func SetFile(path string) error {
	return debug.open(path)
}

// Printf writes a formatted debug line
func Printf(format string, args ...any) {
	logger.Printf(format, args...)
}

// Close closes the debug log file, if one is open
func Close() error {
	return debug.close()
}
