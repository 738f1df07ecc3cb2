// Package notify carries human-readable event text from the game model to
// whatever is watching it: a console, a terminal UI, or a test.
package notify

import (
	"fmt"
	"io"
)

// Sink receives one formatted notification at a time.
type Sink interface {
	Notify(msg string)
}

// Func adapts a plain function to a Sink.
type Func func(msg string)

func (f Func) Notify(msg string) { f(msg) }

type discard struct{}

func (discard) Notify(string) {}

// Discard drops every notification.
var Discard Sink = discard{}

// OrDiscard returns s, or Discard when s is nil.
func OrDiscard(s Sink) Sink {
	if s == nil {
		return Discard
	}
	return s
}

// Writer writes each notification as one line.
type Writer struct {
	w io.Writer
}

// NewWriter returns a Sink writing lines to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Notify writes msg followed by a newline. Write errors are discarded so a
// broken pipe never interrupts play.
func (s *Writer) Notify(msg string) {
	fmt.Fprintln(s.w, msg) //nolint:errcheck
}

// Multi fans each notification out to every sink in order.
func Multi(sinks ...Sink) Sink {
	return multi(sinks)
}

type multi []Sink

func (m multi) Notify(msg string) {
	for _, s := range m {
		if s != nil {
			s.Notify(msg)
		}
	}
}
