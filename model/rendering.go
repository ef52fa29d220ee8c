package model

import (
	"bufio"
	"io"

	"github.com/pkg/errors"
)

// clearScreen is the terminal reset sequence (ESC c) emitted before every frame
const clearScreen = "\033c"

// TerminalRenderer writes frames to a terminal stream
type TerminalRenderer struct {
	w *bufio.Writer
}

// NewTerminalRenderer creates a renderer writing to out
func NewTerminalRenderer(out io.Writer) *TerminalRenderer {
	return &TerminalRenderer{w: bufio.NewWriter(out)}
}

// Render clears the terminal, writes the frame and flushes it
func (r *TerminalRenderer) Render(frame string) error {
	if _, err := r.w.WriteString(clearScreen); err != nil {
		return errors.Wrap(err, "[Render] failed to clear terminal")
	}
	if _, err := r.w.WriteString(frame); err != nil {
		return errors.Wrap(err, "[Render] failed to write frame")
	}
	if err := r.w.Flush(); err != nil {
		return errors.Wrap(err, "[Render] failed to flush frame")
	}
	return nil
}
