package logging

import (
	"io"
	"log/slog"
	"os"
)

// Option configures the application logger.
type Option func(*options)

type options struct {
	w         io.Writer
	sessionID string
}

// WithWriter redirects log output. Defaults to os.Stderr.
func WithWriter(w io.Writer) Option {
	return func(o *options) {
		o.w = w
	}
}

// WithSessionID tags every record with session_id.
func WithSessionID(id string) Option {
	return func(o *options) {
		o.sessionID = id
	}
}

// New creates a configured application logger.
// It writes to Stderr so engine output on Stdout stays clean for transcripts and pipes.
// It standardizes common keys (e.g., "error" -> "err").
func New(level slog.Level, opts ...Option) *slog.Logger {
	o := options{w: os.Stderr}
	for _, opt := range opts {
		opt(&o)
	}

	logger := slog.New(slog.NewTextHandler(o.w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == "error" {
				a.Key = "err"
			}
			return a
		},
	}))
	if o.sessionID != "" {
		logger = logger.With("session_id", o.sessionID)
	}
	return logger
}

// NewNop returns a no-op logger.
func NewNop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
