package runner

import (
	"fmt"
	"io"
	"os"

	"github.com/aretw0/fsmd/pkg/ports"
	"github.com/muesli/termenv"
)

// ConsoleSink prints engine output to a terminal, coloring warnings and errors.
type ConsoleSink struct {
	out *termenv.Output
}

// ConsoleOption defines a functional option for configuring the ConsoleSink.
type ConsoleOption func(*consoleConfig)

type consoleConfig struct {
	color bool
}

// WithColor enables or disables ANSI colors. Colors are also disabled when
// NO_COLOR is set.
func WithColor(enabled bool) ConsoleOption {
	return func(c *consoleConfig) {
		c.color = enabled
	}
}

// NewConsoleSink creates a sink writing to w (os.Stdout when nil).
func NewConsoleSink(w io.Writer, opts ...ConsoleOption) *ConsoleSink {
	if w == nil {
		w = os.Stdout
	}
	cfg := consoleConfig{color: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	var out *termenv.Output
	if cfg.color && !termenv.EnvNoColor() {
		out = termenv.NewOutput(w)
	} else {
		out = termenv.NewOutput(w, termenv.WithProfile(termenv.Ascii))
	}
	return &ConsoleSink{out: out}
}

// WriteLine implements ports.Sink.
func (c *ConsoleSink) WriteLine(msg ports.Message) {
	text := msg.String()
	switch msg.Severity {
	case ports.SeverityWarning:
		text = c.out.String(text).Foreground(termenv.ANSIYellow).String()
	case ports.SeverityError:
		text = c.out.String(text).Foreground(termenv.ANSIRed).String()
	}
	fmt.Fprintln(c.out, text)
}
