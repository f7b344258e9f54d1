package cli

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/aretw0/fsmd/internal/logging"
	"github.com/aretw0/fsmd/pkg/domain"
	"github.com/aretw0/fsmd/pkg/runner"
)

// createLogger configures the application logger.
// In debug mode, it writes to w (Stderr) tagged with the session id.
func createLogger(debug bool, sessionID string, w io.Writer) *slog.Logger {
	if debug {
		return logging.New(slog.LevelDebug, logging.WithWriter(w), logging.WithSessionID(sessionID))
	}
	return logging.NewNop()
}

func createDebugHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnCommand: func(ctx context.Context, e *domain.CommandEvent) {
			if !e.Known {
				logger.Debug("Unrecognized command", "command", e.Keyword)
			}
		},
		OnExecute: func(ctx context.Context, e *domain.ExecuteEvent) {
			logger.Debug("Simulation finished",
				"input", e.Input,
				"steps", len(e.Path)-1,
				"verdict", e.Verdict)
		},
	}
}

// promptEnabled resolves the prompt mode ("auto", "always", "never") for in.
func promptEnabled(mode string, in io.Reader) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		return runner.IsTerminal(in)
	}
}

func isInterrupted(err error) bool {
	return errors.Is(err, context.Canceled)
}

func handleExecutionError(err error) error {
	if err == nil || isInterrupted(err) {
		return nil // Exit 0 for interruptions
	}
	return err
}
