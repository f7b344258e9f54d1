package fsmd

import (
	"context"
	"io"
	"log/slog"

	"github.com/aretw0/fsmd/internal/runtime"
	"github.com/aretw0/fsmd/pkg/domain"
	"github.com/aretw0/fsmd/pkg/ports"
	"github.com/aretw0/fsmd/pkg/runner"
)

// Designer is the high-level entry point for the fsmd library.
// It wires the command engine to an output sink and a LOG transcript.
type Designer struct {
	engine     *runtime.Engine
	transcript *runner.Transcript
	store      ports.AutomatonStore
	sink       ports.Sink
	hooks      domain.LifecycleHooks
	logger     *slog.Logger
	logDir     string
}

// Option defines a functional option for configuring the Designer.
type Option func(*Designer)

// WithStore enables COMPILE and LOAD.
func WithStore(store ports.AutomatonStore) Option {
	return func(d *Designer) {
		d.store = store
	}
}

// WithSink sets where command output goes. Defaults to discarding it.
func WithSink(sink ports.Sink) Option {
	return func(d *Designer) {
		d.sink = sink
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(d *Designer) {
		d.hooks = hooks
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Designer) {
		d.logger = logger
	}
}

// WithLogDir resolves relative LOG file names against dir.
func WithLogDir(dir string) Option {
	return func(d *Designer) {
		d.logDir = dir
	}
}

// New creates a Designer with an empty automaton.
func New(opts ...Option) *Designer {
	d := &Designer{
		sink:   ports.SinkFunc(func(ports.Message) {}),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(d)
	}

	d.transcript = runner.NewTranscript(d.sink,
		runner.WithBaseDir(d.logDir),
		runner.WithTranscriptLogger(d.logger),
	)

	engineOpts := []runtime.EngineOption{
		runtime.WithSink(d.transcript),
		runtime.WithTranscript(d.transcript),
		runtime.WithLifecycleHooks(d.hooks),
		runtime.WithLogger(d.logger),
	}
	if d.store != nil {
		engineOpts = append(engineOpts, runtime.WithStore(d.store))
	}
	d.engine = runtime.NewEngine(engineOpts...)
	return d
}

// Process runs one command such as "TRANSITION A 1 B" (no trailing ';').
// It is not safe for concurrent use.
func (d *Designer) Process(ctx context.Context, command string) {
	d.transcript.RecordCommand(command)
	d.engine.Process(ctx, command)
}

// Automaton returns the current automaton. Callers must treat it as read-only.
func (d *Designer) Automaton() *domain.Automaton {
	return d.engine.Automaton()
}

// Shell returns a shell that feeds the engine and mirrors commands into the transcript.
// Its input defaults to os.Stdin.
func (d *Designer) Shell(opts ...runner.ShellOption) *runner.Shell {
	base := []runner.ShellOption{
		runner.WithRecorder(d.transcript),
		runner.WithShellLogger(d.logger),
	}
	return runner.NewShell(d.engine, d.transcript, append(base, opts...)...)
}

// Close stops an active LOG transcript.
func (d *Designer) Close() error {
	return d.transcript.Close()
}
