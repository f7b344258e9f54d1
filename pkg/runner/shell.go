package runner

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/aretw0/fsmd/pkg/ports"
	"golang.org/x/term"
)

// TerminatedMessage is printed when the user ends the session with EXIT.
const TerminatedMessage = "TERMINATED BY USER"

// Processor executes one assembled command.
type Processor interface {
	Process(ctx context.Context, command string)
}

// CommandRecorder receives every command before it is processed.
type CommandRecorder interface {
	RecordCommand(command string)
}

// Shell reads ';'-terminated commands from an input stream and hands them to a Processor.
//
// Lines whose trimmed text starts with ';' are comments. Other lines accumulate
// until one contains ';'; the text before it completes the command and the text
// after it is discarded.
type Shell struct {
	processor Processor
	sink      ports.Sink
	input     io.Reader
	prompt    io.Writer
	recorder  CommandRecorder
	logger    *slog.Logger
	maxInput  int

	terminated bool
}

// ShellOption defines a functional option for configuring the Shell.
type ShellOption func(*Shell)

// WithInput sets the command source. Defaults to os.Stdin.
func WithInput(r io.Reader) ShellOption {
	return func(s *Shell) {
		s.input = r
	}
}

// WithPrompt prints "? " to w before every line is read.
func WithPrompt(w io.Writer) ShellOption {
	return func(s *Shell) {
		s.prompt = w
	}
}

// WithRecorder sends each command to rec before it is processed.
func WithRecorder(rec CommandRecorder) ShellOption {
	return func(s *Shell) {
		s.recorder = rec
	}
}

// WithShellLogger sets the structured logger for shell diagnostics.
func WithShellLogger(logger *slog.Logger) ShellOption {
	return func(s *Shell) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMaxInputSize overrides the per-line size limit.
func WithMaxInputSize(n int) ShellOption {
	return func(s *Shell) {
		s.maxInput = n
	}
}

// NewShell creates a shell feeding p and reporting its own diagnostics to sink.
func NewShell(p Processor, sink ports.Sink, opts ...ShellOption) *Shell {
	s := &Shell{
		processor: p,
		sink:      sink,
		input:     os.Stdin,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type lineResult struct {
	text string
	err  error
}

// Run reads until EXIT, end of input, or ctx cancellation.
// EXIT and end of input both return nil.
func (s *Shell) Run(ctx context.Context) error {
	s.terminated = false
	done := make(chan struct{})
	defer close(done)
	lines := s.pump(done)
	var pending []string

	for {
		if s.prompt != nil {
			fmt.Fprint(s.prompt, "? ")
		}

		var res lineResult
		var ok bool
		select {
		case <-ctx.Done():
			s.logger.Debug("Shell interrupted", "err", ctx.Err())
			return ctx.Err()
		case res, ok = <-lines:
		}

		if !ok {
			if len(pending) > 0 {
				s.warn("unterminated command discarded at end of input")
			}
			s.logger.Debug("Shell input exhausted")
			return nil
		}
		if res.err != nil {
			return fmt.Errorf("input error: %w", res.err)
		}

		line, err := SanitizeInput(strings.TrimRight(res.text, "\r\n"), s.maxInput)
		if err != nil {
			s.fail("%v", err)
			pending = pending[:0]
			continue
		}

		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, ";") {
			continue
		}

		idx := strings.Index(trimmed, ";")
		if idx < 0 {
			if trimmed != "" {
				pending = append(pending, trimmed)
			}
			continue
		}

		if part := strings.TrimSpace(trimmed[:idx]); part != "" {
			pending = append(pending, part)
		}
		command := strings.Join(pending, " ")
		pending = pending[:0]

		if command == "" {
			continue
		}
		if s.recorder != nil {
			s.recorder.RecordCommand(command)
		}
		if strings.EqualFold(command, "EXIT") {
			s.terminated = true
			s.sink.WriteLine(ports.Message{Severity: ports.SeverityInfo, Text: TerminatedMessage})
			s.logger.Debug("Shell terminated by user")
			return nil
		}
		s.processor.Process(ctx, command)
	}
}

// Terminated reports whether the last Run ended with EXIT.
func (s *Shell) Terminated() bool {
	return s.terminated
}

// pump reads lines in the background so Run can observe cancellation
// while blocked on a terminal. It stops once done is closed.
func (s *Shell) pump(done <-chan struct{}) <-chan lineResult {
	ch := make(chan lineResult)
	send := func(res lineResult) bool {
		select {
		case ch <- res:
			return true
		case <-done:
			return false
		}
	}
	go func() {
		defer close(ch)
		reader := bufio.NewReader(s.input)
		for {
			text, err := reader.ReadString('\n')
			if text != "" && !send(lineResult{text: text}) {
				return
			}
			if err != nil {
				if err != io.EOF {
					send(lineResult{err: err})
				}
				return
			}
		}
	}()
	return ch
}

func (s *Shell) warn(format string, args ...any) {
	s.sink.WriteLine(ports.Message{Severity: ports.SeverityWarning, Text: fmt.Sprintf(format, args...)})
}

func (s *Shell) fail(format string, args ...any) {
	s.sink.WriteLine(ports.Message{Severity: ports.SeverityError, Text: fmt.Sprintf(format, args...)})
}

// IsTerminal reports whether r is an interactive terminal.
func IsTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
