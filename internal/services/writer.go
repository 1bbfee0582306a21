package services

import (
	"fmt"
	"io"
)

// Writer receives complete lines of output.
type Writer interface {
	WriteLine(line string)
}

// StreamWriter writes lines to an io.Writer. Comment lines, used for the
// configuration header echoed before any numerical output, carry prefix.
type StreamWriter struct {
	w      io.Writer
	prefix string
}

// NewStreamWriter wraps w. prefix is usually "# " for CSV sinks and empty
// for the console.
func NewStreamWriter(w io.Writer, prefix string) *StreamWriter {
	return &StreamWriter{w: w, prefix: prefix}
}

// WriteLine writes line followed by a newline.
func (s *StreamWriter) WriteLine(line string) {
	fmt.Fprintln(s.w, line)
}

// Comment writes line behind the comment prefix.
func (s *StreamWriter) Comment(line string) {
	fmt.Fprintf(s.w, "%s%s\n", s.prefix, line)
}

// Prefix returns the comment prefix.
func (s *StreamWriter) Prefix() string {
	return s.prefix
}

// Write lets tree printers render straight into the sink.
func (s *StreamWriter) Write(p []byte) (int, error) {
	return s.w.Write(p)
}

// NoopWriter discards everything.
type NoopWriter struct{}

func (NoopWriter) WriteLine(string) {}

// Interrupt is polled by long-running routines between iterations.
type Interrupt func()

// NoopInterrupt never interrupts.
func NoopInterrupt() {}
