package runtime

import (
	"context"
	"errors"
	"strings"

	"github.com/aretw0/fsmd/pkg/domain"
)

func (e *Engine) handleSymbols(ctx context.Context, r *reporter, args []string, _ string) {
	a := e.automaton
	if len(args) == 0 {
		symbols := a.Symbols()
		if len(symbols) == 0 {
			r.info("No symbols defined.")
			return
		}
		r.info("Symbols: %s", strings.Join(symbols, ", "))
		return
	}

	for _, token := range args {
		symbol, err := domain.NormalizeSymbol(token)
		if err != nil {
			r.fail("%v", err)
			continue
		}
		if err := a.AddSymbol(symbol); err != nil {
			if errors.Is(err, domain.ErrDuplicate) {
				r.warn("symbol %s already declared", symbol)
			} else {
				r.fail("%v", err)
			}
			continue
		}
		r.info("Symbol %s added.", symbol)
	}
}

func (e *Engine) handleStates(ctx context.Context, r *reporter, args []string, _ string) {
	a := e.automaton
	if len(args) == 0 {
		e.listStates(r)
		return
	}

	for _, token := range args {
		state, err := domain.NormalizeState(token)
		if err != nil {
			r.fail("%v", err)
			continue
		}
		if err := a.AddState(state); err != nil {
			if errors.Is(err, domain.ErrDuplicate) {
				r.warn("state %s already declared", state)
			} else {
				r.fail("%v", err)
			}
			continue
		}
		r.info("State %s added.", state)

		if _, ok := a.Initial(); !ok {
			if err := a.SetInitial(state); err != nil {
				r.fail("%v", err)
				continue
			}
			r.info("State %s set as initial state automatically.", state)
		}
	}
}

// listStates prints one line per state with its (initial)/(final) annotations.
func (e *Engine) listStates(r *reporter) {
	a := e.automaton
	states := a.States()
	if len(states) == 0 {
		r.info("No states defined.")
		return
	}
	for _, state := range states {
		line := state
		if a.IsInitial(state) {
			line += " (initial)"
		}
		if a.IsFinal(state) {
			line += " (final)"
		}
		r.info("%s", line)
	}
}

func (e *Engine) handleInitialState(ctx context.Context, r *reporter, args []string, _ string) {
	if !checkExactArgs(r, "INITIAL-STATE <state>", args, 1) {
		return
	}
	state, err := domain.NormalizeState(args[0])
	if err != nil {
		r.fail("%v", err)
		return
	}

	e.ensureState(r, state)
	if err := e.automaton.SetInitial(state); err != nil {
		r.fail("%v", err)
		return
	}
	r.info("Initial state set to %s.", state)
}

func (e *Engine) handleFinalStates(ctx context.Context, r *reporter, args []string, _ string) {
	if len(args) == 0 {
		r.fail("FINAL-STATES requires at least one state")
		return
	}

	for _, token := range args {
		state, err := domain.NormalizeState(token)
		if err != nil {
			r.fail("%v", err)
			continue
		}

		e.ensureState(r, state)
		already, err := e.automaton.MarkFinal(state)
		switch {
		case err != nil:
			r.fail("%v", err)
		case already:
			r.warn("state %s is already final", state)
		default:
			r.info("State %s marked as final.", state)
		}
	}
}
