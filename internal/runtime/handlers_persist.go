package runtime

import (
	"context"
	"errors"
	"strings"

	"github.com/aretw0/fsmd/pkg/domain"
	"github.com/aretw0/fsmd/pkg/schema"
)

func (e *Engine) handleClear(ctx context.Context, r *reporter, args []string, _ string) {
	if !checkNoArgs(r, "CLEAR", args) {
		return
	}
	e.automaton.Clear()
	r.info("Automaton cleared.")
}

// handleCompile persists the whole automaton. The in-memory automaton is never modified.
func (e *Engine) handleCompile(ctx context.Context, r *reporter, args []string, _ string) {
	if !checkExactArgs(r, "COMPILE <filename>", args, 1) {
		return
	}
	if e.store == nil {
		r.fail("persistence is not available in this session")
		return
	}

	name := args[0]
	if err := e.store.Save(ctx, name, schema.FromAutomaton(e.automaton)); err != nil {
		e.logger.Warn("Compile failed", "artifact", name, "err", err)
		r.fail("failed to compile to %s: %v", name, err)
		return
	}
	r.info("Automaton compiled to %s.", name)
}

// handleLoad replaces the automaton with a stored one. The artifact is decoded and
// validated into a separate Automaton first, so a failure leaves memory untouched.
func (e *Engine) handleLoad(ctx context.Context, r *reporter, args []string, _ string) {
	if !checkExactArgs(r, "LOAD <filename>", args, 1) {
		return
	}
	if e.store == nil {
		r.fail("persistence is not available in this session")
		return
	}

	name := args[0]
	loaded, err := e.loadAutomaton(ctx, name)
	if err != nil {
		e.logger.Warn("Load failed", "artifact", name, "err", err)
		r.fail("failed to load %s: %s", name, describe(err))
		return
	}

	e.automaton.Replace(loaded)
	r.info("Automaton loaded from %s (%d states, %d symbols, %d transitions).",
		name, len(loaded.States()), len(loaded.Symbols()), len(loaded.Transitions()))
}

func (e *Engine) loadAutomaton(ctx context.Context, name string) (*domain.Automaton, error) {
	snap, err := e.store.Load(ctx, name)
	if err != nil {
		return nil, err
	}
	return snap.ToAutomaton()
}

// describe flattens an error into a single diagnostic line.
func describe(err error) string {
	if errs := schema.ValidationErrors(err); len(errs) > 0 {
		parts := make([]string, len(errs))
		for i, e := range errs {
			parts[i] = e.Error()
		}
		return "invalid artifact: " + strings.Join(parts, "; ")
	}
	if errors.Is(err, domain.ErrArtifactNotFound) {
		return "file not found"
	}
	return err.Error()
}

// handleLog starts or stops the transcript. With no argument it stops logging.
func (e *Engine) handleLog(ctx context.Context, r *reporter, args []string, _ string) {
	if len(args) > 1 {
		r.fail("wrong number of arguments (got %d, want 0 or 1); usage: LOG [filename]", len(args))
		return
	}
	if e.transcript == nil {
		r.fail("logging is not available in this session")
		return
	}

	if len(args) == 0 {
		stopped, err := e.transcript.Stop()
		switch {
		case err != nil:
			e.logger.Warn("Transcript close failed", "err", err)
			r.fail("failed to stop logging: %v", err)
		case stopped:
			r.info("Logging stopped.")
		default:
			r.info("Logging is not active.")
		}
		return
	}

	name := args[0]
	if err := e.transcript.Start(name); err != nil {
		e.logger.Warn("Transcript open failed", "target", name, "err", err)
		r.fail("failed to start logging to %s: %v", name, err)
		return
	}
	r.info("Logging to %s.", name)
}
