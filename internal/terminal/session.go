package terminal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"golang.org/x/term"
)

// ChunkSize is the largest single read.
const ChunkSize = 4096

// Bracketed paste mode toggles.
const (
	PasteOn  = "\x1b[?2004h"
	PasteOff = "\x1b[?2004l"
)

// Errors returned by Session.
var (
	ErrNotTerminal   = errors.New("not a terminal")
	ErrSessionClosed = errors.New("terminal session closed")
)

type readResult struct {
	data []byte
	err  error
}

// Session is a tty in use by the shell.
type Session struct {
	in  io.Reader
	out io.Writer
	fd  int
	tty bool

	mu    sync.Mutex
	saved *term.State

	rmu      sync.Mutex
	inflight bool
	reqs     chan struct{}
	results  chan readResult
	done     chan struct{}
	once     sync.Once
	start    sync.Once
}

// Open opens /dev/tty for reading and writing.
func Open() (*Session, *os.File, error) {
	f, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		return nil, nil, fmt.Errorf("opening tty: %w", err)
	}
	return New(f, f), f, nil
}

// New returns a session reading from in and writing to out. Raw mode is
// only available when in is a terminal *os.File.
func New(in io.Reader, out io.Writer) *Session {
	s := &Session{
		in:      in,
		out:     out,
		fd:      -1,
		reqs:    make(chan struct{}, 1),
		results: make(chan readResult),
		done:    make(chan struct{}),
	}
	if f, ok := in.(*os.File); ok {
		s.fd = int(f.Fd())
		s.tty = term.IsTerminal(s.fd)
	}
	return s
}

// IsTerminal reports whether the input is a terminal.
func (s *Session) IsTerminal() bool {
	return s.tty
}

// IsRaw reports whether raw mode is on.
func (s *Session) IsRaw() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saved != nil
}

// EnableRaw puts the terminal in raw mode and turns on bracketed paste.
// Calling it while already raw does nothing.
func (s *Session) EnableRaw() error {
	if !s.tty {
		return ErrNotTerminal
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saved != nil {
		return nil
	}

	state, err := term.MakeRaw(s.fd)
	if err != nil {
		return fmt.Errorf("entering raw mode: %w", err)
	}
	s.saved = state
	if _, err := io.WriteString(s.out, PasteOn); err != nil {
		return err
	}
	return nil
}

// DisableRaw turns off bracketed paste and restores the mode saved by
// EnableRaw.
func (s *Session) DisableRaw() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saved == nil {
		return nil
	}

	_, werr := io.WriteString(s.out, PasteOff)
	err := term.Restore(s.fd, s.saved)
	s.saved = nil
	if err != nil {
		return fmt.Errorf("leaving raw mode: %w", err)
	}
	return werr
}

// ReadChunk returns the bytes of one read, at most ChunkSize. It blocks
// until input arrives or ctx is done. A read left in flight by a cancelled
// call is delivered to the next ReadChunk. ReadChunk is meant for a single
// reading goroutine.
func (s *Session) ReadChunk(ctx context.Context) ([]byte, error) {
	s.start.Do(func() { go s.readLoop() })

	s.rmu.Lock()
	if !s.inflight {
		s.inflight = true
		s.reqs <- struct{}{}
	}
	s.rmu.Unlock()

	select {
	case r := <-s.results:
		s.rmu.Lock()
		s.inflight = false
		s.rmu.Unlock()
		return r.data, r.err
	case <-s.done:
		return nil, ErrSessionClosed
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// readLoop performs one read per request so input is never consumed ahead
// of the caller. An error that arrives with data is held back for the next
// request so the data is decoded first.
func (s *Session) readLoop() {
	buf := make([]byte, ChunkSize)
	var pending error
	for {
		select {
		case <-s.reqs:
		case <-s.done:
			return
		}
		for {
			var r readResult
			if pending != nil {
				r.err, pending = pending, nil
			} else {
				n, err := s.in.Read(buf)
				if n == 0 && err == nil {
					continue
				}
				r.data = append([]byte(nil), buf[:n]...)
				if n > 0 {
					pending = err
				} else {
					r.err = err
				}
			}
			select {
			case s.results <- r:
			case <-s.done:
				return
			}
			break
		}
	}
}

// Write writes p to the terminal.
func (s *Session) Write(p []byte) (int, error) {
	return s.out.Write(p)
}

// WriteString writes str to the terminal.
func (s *Session) WriteString(str string) error {
	_, err := io.WriteString(s.out, str)
	return err
}

// Close restores the terminal and stops the reader. It does not close the
// underlying file.
func (s *Session) Close() error {
	err := s.DisableRaw()
	s.once.Do(func() { close(s.done) })
	return err
}
