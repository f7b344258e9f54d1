package runner

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/aretw0/fsmd/pkg/ports"
)

// Transcript tees engine output into a log file while logging is active.
// It implements ports.Sink, ports.Transcript and CommandRecorder.
type Transcript struct {
	next    ports.Sink
	baseDir string
	logger  *slog.Logger

	file   *os.File
	target string
}

// TranscriptOption defines a functional option for configuring the Transcript.
type TranscriptOption func(*Transcript)

// WithBaseDir resolves relative log file names against dir.
func WithBaseDir(dir string) TranscriptOption {
	return func(t *Transcript) {
		t.baseDir = dir
	}
}

// WithTranscriptLogger sets the logger used to report write failures.
func WithTranscriptLogger(logger *slog.Logger) TranscriptOption {
	return func(t *Transcript) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// NewTranscript wraps next. Nothing is written to disk until Start is called.
func NewTranscript(next ports.Sink, opts ...TranscriptOption) *Transcript {
	t := &Transcript{
		next:   next,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Start closes the current log file, if any, and appends to name from now on.
func (t *Transcript) Start(name string) error {
	if _, err := t.Stop(); err != nil {
		t.logger.Warn("Failed to close previous transcript", "err", err)
	}

	path := name
	if t.baseDir != "" && !filepath.IsAbs(path) {
		path = filepath.Join(t.baseDir, path)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	t.file = f
	t.target = name
	return nil
}

// Stop closes the log file. It reports false when logging was not active.
func (t *Transcript) Stop() (bool, error) {
	if t.file == nil {
		return false, nil
	}
	err := t.file.Close()
	t.file = nil
	t.target = ""
	return true, err
}

// Target returns the active log file name, or "" when inactive.
func (t *Transcript) Target() string {
	return t.target
}

// WriteLine forwards msg and copies it to the log file.
func (t *Transcript) WriteLine(msg ports.Message) {
	if t.next != nil {
		t.next.WriteLine(msg)
	}
	t.write(msg.String())
}

// RecordCommand copies an input command to the log file.
func (t *Transcript) RecordCommand(command string) {
	t.write("? " + command + ";")
}

// Close stops logging.
func (t *Transcript) Close() error {
	_, err := t.Stop()
	return err
}

func (t *Transcript) write(line string) {
	if t.file == nil {
		return
	}
	if _, err := fmt.Fprintln(t.file, line); err != nil {
		t.logger.Warn("Transcript write failed", "target", t.target, "err", err)
	}
}
