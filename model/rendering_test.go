package model

import (
	"bytes"
	"errors"
	"testing"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("terminal closed")
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	r := NewTerminalRenderer(&buf)

	if err := r.Render("* \n *\n"); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got, want := buf.String(), "\033c* \n *\n"; got != want {
		t.Fatalf("output = %q, want %q", got, want)
	}

	if err := r.Render("  \n  \n"); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got, want := buf.String(), "\033c* \n *\n\033c  \n  \n"; got != want {
		t.Fatalf("output after second frame = %q, want %q", got, want)
	}
}

func TestRenderWriteError(t *testing.T) {
	r := NewTerminalRenderer(failingWriter{})
	if err := r.Render("*\n"); err == nil {
		t.Fatal("expected error from failing writer")
	}
}
