package runtime

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/aretw0/fsmd/pkg/domain"
)

// handlePrint dumps states, alphabet and transitions.
func (e *Engine) handlePrint(ctx context.Context, r *reporter, args []string, _ string) {
	if !checkNoArgs(r, "PRINT", args) {
		return
	}
	a := e.automaton

	e.listStates(r)

	if symbols := a.Symbols(); len(symbols) > 0 {
		r.info("Alphabet: %s", strings.Join(symbols, ", "))
	} else {
		r.info("Alphabet: (empty)")
	}

	transitions := a.Transitions()
	if len(transitions) == 0 {
		r.info("No transitions defined.")
		return
	}
	for _, t := range transitions {
		r.info("%s", arrow(t.From, t.Symbol, t.To))
	}
}

func (e *Engine) handleExecute(ctx context.Context, r *reporter, args []string, _ string) {
	if !checkExactArgs(r, "EXECUTE <input>", args, 1) {
		return
	}

	res, err := Simulate(e.automaton, args[0])
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNoInitialState):
			r.fail("cannot execute: %v", err)
		default:
			r.fail("%v", err)
		}
		return
	}

	if res.Verdict == domain.VerdictHalted {
		r.info("REJECTED: no transition from %s on symbol %s.", res.HaltState, res.HaltSymbol)
	} else {
		r.info("%s", strings.Join(res.Path, " "))
		if res.Accepted() {
			r.info("ACCEPTED")
		} else {
			r.info("REJECTED")
		}
	}

	if e.hooks.OnExecute != nil {
		e.hooks.OnExecute(ctx, &domain.ExecuteEvent{
			EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventExecute},
			Input:     strings.ToUpper(args[0]),
			Path:      res.Path,
			Verdict:   res.Verdict,
		})
	}
}
