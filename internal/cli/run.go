package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/aretw0/fsmd"
	"github.com/aretw0/fsmd/internal/config"
	"github.com/aretw0/fsmd/internal/metrics"
	"github.com/aretw0/fsmd/internal/presentation/tui"
	"github.com/aretw0/fsmd/pkg/runner"
	"github.com/google/uuid"
)

// RunOptions contains all the configuration for the run command.
type RunOptions struct {
	Config *config.Config

	// Scripts are replayed in order instead of reading Stdin.
	Scripts []string

	// Dir is where relative artifact and LOG names resolve.
	Dir string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func (o *RunOptions) defaults() {
	if o.Config == nil {
		o.Config = &config.Config{Color: true, Prompt: "auto", Format: "json", MaxInputSize: 4096}
	}
	if o.Dir == "" {
		o.Dir = "."
	}
	if o.Stdin == nil {
		o.Stdin = os.Stdin
	}
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
}

// RunSession runs one designer session until EXIT, end of input or interruption.
func RunSession(ctx context.Context, opts RunOptions) error {
	opts.defaults()
	cfg := opts.Config

	sessionID := uuid.NewString()
	logger := createLogger(cfg.Debug, sessionID, opts.Stderr)

	store, closeStore, err := NewStore(cfg, opts.Dir)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeStore(); err != nil {
			logger.Warn("Failed to close store", "err", err)
		}
	}()

	ctx, cancel := context.WithCancel(ctx)
	var wg sync.WaitGroup
	defer func() {
		cancel()
		wg.Wait()
	}()

	hooks := createDebugHooks(logger)
	if cfg.Metrics.Addr != "" {
		m := metrics.New()
		hooks = m.Hooks(hooks)
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := metrics.Serve(ctx, cfg.Metrics.Addr, metrics.NewHandler(m.Registry()), logger); err != nil {
				logger.Warn("Metrics server stopped", "addr", cfg.Metrics.Addr, "err", err)
			}
		}()
	}

	d := fsmd.New(
		fsmd.WithStore(store),
		fsmd.WithSink(runner.NewConsoleSink(opts.Stdout, runner.WithColor(cfg.Color))),
		fsmd.WithLifecycleHooks(hooks),
		fsmd.WithLogger(logger),
		fsmd.WithLogDir(opts.Dir),
	)
	defer func() {
		if err := d.Close(); err != nil {
			logger.Warn("Failed to close transcript", "err", err)
		}
	}()

	tui.PrintBanner(opts.Stdout, fsmd.Version, time.Now())
	logger.Info("Session started", "scripts", len(opts.Scripts))

	if len(opts.Scripts) == 0 {
		sh := d.Shell(
			runner.WithInput(opts.Stdin),
			runner.WithMaxInputSize(cfg.MaxInputSize),
			promptOption(cfg.Prompt, opts.Stdin, opts.Stdout),
		)
		return handleExecutionError(sh.Run(ctx))
	}

	for _, script := range opts.Scripts {
		terminated, err := runScript(ctx, d, script, cfg, logger)
		if err != nil {
			return handleExecutionError(err)
		}
		if terminated {
			break
		}
	}
	return nil
}

func runScript(ctx context.Context, d *fsmd.Designer, path string, cfg *config.Config, logger *slog.Logger) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, fmt.Errorf("failed to open script: %w", err)
	}
	defer f.Close()

	logger.Debug("Replaying script", "path", path)
	sh := d.Shell(
		runner.WithInput(f),
		runner.WithMaxInputSize(cfg.MaxInputSize),
	)
	if err := sh.Run(ctx); err != nil {
		return false, err
	}
	return sh.Terminated(), nil
}

func promptOption(mode string, in io.Reader, out io.Writer) runner.ShellOption {
	if promptEnabled(mode, in) {
		return runner.WithPrompt(out)
	}
	return func(*runner.Shell) {}
}
