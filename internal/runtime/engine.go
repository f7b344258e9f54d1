package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aretw0/fsmd/internal/logging"
	"github.com/aretw0/fsmd/pkg/domain"
	"github.com/aretw0/fsmd/pkg/ports"
)

// handlerFunc runs one command. args are the whitespace-split arguments and
// rest is the raw argument text after the keyword.
type handlerFunc func(ctx context.Context, r *reporter, args []string, rest string)

// Engine routes commands to their handlers and owns the Automaton they mutate.
//
// Engine is strictly synchronous: Process fully handles one command, including
// any store or transcript I/O, before returning. It is not safe for concurrent use.
type Engine struct {
	automaton  *domain.Automaton
	store      ports.AutomatonStore
	sink       ports.Sink
	transcript ports.Transcript
	hooks      domain.LifecycleHooks
	logger     *slog.Logger
	handlers   map[string]handlerFunc
}

// EngineOption defines a functional option for configuring the Engine.
type EngineOption func(*Engine)

// WithStore sets the store used by COMPILE and LOAD.
func WithStore(store ports.AutomatonStore) EngineOption {
	return func(e *Engine) {
		e.store = store
	}
}

// WithSink sets the destination of every report and diagnostic line.
func WithSink(sink ports.Sink) EngineOption {
	return func(e *Engine) {
		e.sink = sink
	}
}

// WithTranscript enables the LOG command.
func WithTranscript(t ports.Transcript) EngineOption {
	return func(e *Engine) {
		e.transcript = t
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithAutomaton starts the engine on an existing automaton instead of an empty one.
func WithAutomaton(a *domain.Automaton) EngineOption {
	return func(e *Engine) {
		if a != nil {
			e.automaton = a
		}
	}
}

// NewEngine creates a new engine with an empty automaton.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		automaton: domain.New(),
		sink:      ports.SinkFunc(func(ports.Message) {}),
		logger:    logging.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}

	e.handlers = map[string]handlerFunc{
		"SYMBOLS":       e.handleSymbols,
		"STATES":        e.handleStates,
		"INITIAL-STATE": e.handleInitialState,
		"FINAL-STATES":  e.handleFinalStates,
		"TRANSITION":    e.handleTransition,
		"TRANSITIONS":   e.handleTransitions,
		"DELETE":        e.handleDelete,
		"PRINT":         e.handlePrint,
		"EXECUTE":       e.handleExecute,
		"CLEAR":         e.handleClear,
		"LOG":           e.handleLog,
		"COMPILE":       e.handleCompile,
		"LOAD":          e.handleLoad,
	}
	return e
}

// Automaton returns the automaton owned by the engine. Callers must treat it as read-only.
func (e *Engine) Automaton() *domain.Automaton {
	return e.automaton
}

// Process handles one assembled command such as "TRANSITION A 1 B".
// The keyword is case-insensitive. Every outcome is reported through the sink;
// diagnostics never stop the engine.
func (e *Engine) Process(ctx context.Context, command string) {
	command = strings.TrimSpace(command)
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return
	}

	start := time.Now()
	keyword := strings.ToUpper(fields[0])
	rest := strings.TrimSpace(command[len(fields[0]):])
	r := &reporter{sink: e.sink}

	handler, known := e.handlers[keyword]
	if known {
		handler(ctx, r, fields[1:], rest)
	} else {
		r.fail("unrecognized command %q", fields[0])
	}

	elapsed := time.Since(start)
	e.logger.Debug("Command processed",
		"command", keyword,
		"known", known,
		"warnings", r.warnings,
		"errors", r.errors,
		"duration", elapsed)

	if e.hooks.OnCommand != nil {
		e.hooks.OnCommand(ctx, &domain.CommandEvent{
			EventBase: domain.EventBase{Timestamp: start, Type: domain.EventCommand},
			Keyword:   keyword,
			Known:     known,
			Warnings:  r.warnings,
			Errors:    r.errors,
			Duration:  elapsed,
		})
	}
}

// reporter writes lines to the sink and counts diagnostics for one command.
type reporter struct {
	sink     ports.Sink
	warnings int
	errors   int
}

func (r *reporter) info(format string, args ...any) {
	r.sink.WriteLine(ports.Message{Severity: ports.SeverityInfo, Text: fmt.Sprintf(format, args...)})
}

func (r *reporter) warn(format string, args ...any) {
	r.warnings++
	r.sink.WriteLine(ports.Message{Severity: ports.SeverityWarning, Text: fmt.Sprintf(format, args...)})
}

func (r *reporter) fail(format string, args ...any) {
	r.errors++
	r.sink.WriteLine(ports.Message{Severity: ports.SeverityError, Text: fmt.Sprintf(format, args...)})
}
