package terminal

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"testing/iotest"
	"time"
)

func TestSessionNotTerminal(t *testing.T) {
	var out bytes.Buffer
	s := New(bytes.NewReader(nil), &out)
	defer s.Close()

	if s.IsTerminal() {
		t.Error("IsTerminal() = true for a bytes.Reader")
	}
	if err := s.EnableRaw(); !errors.Is(err, ErrNotTerminal) {
		t.Errorf("EnableRaw() = %v, want ErrNotTerminal", err)
	}
	if s.IsRaw() {
		t.Error("IsRaw() = true after failed EnableRaw")
	}
	if err := s.DisableRaw(); err != nil {
		t.Errorf("DisableRaw() when cooked = %v, want nil", err)
	}
	if out.Len() != 0 {
		t.Errorf("wrote %q, want nothing", out.String())
	}
}

func TestSessionReadChunk(t *testing.T) {
	r, w := io.Pipe()
	s := New(r, io.Discard)
	defer s.Close()

	go w.Write([]byte("\x1b[A"))

	got, err := s.ReadChunk(context.Background())
	if err != nil {
		t.Fatalf("ReadChunk() error = %v", err)
	}
	if string(got) != "\x1b[A" {
		t.Errorf("ReadChunk() = %q, want %q", got, "\x1b[A")
	}
}

func TestSessionReadChunkCancelled(t *testing.T) {
	r, w := io.Pipe()
	s := New(r, io.Discard)
	defer s.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if _, err := s.ReadChunk(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("ReadChunk() error = %v, want DeadlineExceeded", err)
	}

	// The read left in flight delivers to the next call.
	go w.Write([]byte("x"))
	got, err := s.ReadChunk(context.Background())
	if err != nil || string(got) != "x" {
		t.Errorf("ReadChunk() = %q, %v, want x", got, err)
	}
}

func TestSessionReadEOF(t *testing.T) {
	s := New(bytes.NewReader([]byte("ab")), io.Discard)
	defer s.Close()

	got, err := s.ReadChunk(context.Background())
	if err != nil || string(got) != "ab" {
		t.Fatalf("ReadChunk() = %q, %v, want ab", got, err)
	}
	if _, err := s.ReadChunk(context.Background()); !errors.Is(err, io.EOF) {
		t.Errorf("ReadChunk() at end = %v, want io.EOF", err)
	}
}

func TestSessionReadDataWithEOF(t *testing.T) {
	s := New(iotest.DataErrReader(bytes.NewReader([]byte("ls\r"))), io.Discard)
	defer s.Close()

	got, err := s.ReadChunk(context.Background())
	if err != nil || string(got) != "ls\r" {
		t.Fatalf("ReadChunk() = %q, %v, want %q, nil", got, err, "ls\r")
	}
	got, err = s.ReadChunk(context.Background())
	if !errors.Is(err, io.EOF) {
		t.Errorf("ReadChunk() after data = %v, want io.EOF", err)
	}
	if len(got) != 0 {
		t.Errorf("ReadChunk() after data = %q, want nothing", got)
	}
}

func TestSessionClosed(t *testing.T) {
	r, _ := io.Pipe()
	s := New(r, io.Discard)
	if err := s.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
	if _, err := s.ReadChunk(context.Background()); !errors.Is(err, ErrSessionClosed) {
		t.Errorf("ReadChunk() after Close = %v, want ErrSessionClosed", err)
	}
}

func TestSessionWrite(t *testing.T) {
	var out bytes.Buffer
	s := New(bytes.NewReader(nil), &out)
	defer s.Close()

	if _, err := s.Write([]byte("ab")); err != nil {
		t.Fatal(err)
	}
	if err := s.WriteString("cd"); err != nil {
		t.Fatal(err)
	}
	if out.String() != "abcd" {
		t.Errorf("output = %q, want abcd", out.String())
	}
}
