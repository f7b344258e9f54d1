package runtime

import (
	"context"
	"strings"
)

// handleTransition adds or overwrites one transition, declaring any missing
// state or symbol it references.
func (e *Engine) handleTransition(ctx context.Context, r *reporter, args []string, _ string) {
	if !checkExactArgs(r, "TRANSITION <from> <symbol> <to>", args, 3) {
		return
	}
	from, symbol, to, err := parseTriple(args[0], args[1], args[2])
	if err != nil {
		r.fail("%v", err)
		return
	}

	e.ensureState(r, from)
	e.ensureSymbol(r, symbol)
	e.ensureState(r, to)

	e.setTransition(r, from, symbol, to)
}

// handleTransitions applies comma-separated "<symbol> <from> <to>" entries.
// Every reference must already be declared. Entries are applied one by one;
// a bad entry is skipped and earlier ones stay applied.
func (e *Engine) handleTransitions(ctx context.Context, r *reporter, _ []string, rest string) {
	if rest == "" {
		r.fail("TRANSITIONS requires at least one entry; usage: TRANSITIONS <symbol> <from> <to>[, ...]")
		return
	}

	a := e.automaton
	entries := strings.Split(rest, ",")
	applied := 0
	for i, entry := range entries {
		n := i + 1
		parts := strings.Fields(entry)
		if len(parts) != 3 {
			r.fail("entry %d malformed: %q (expected <symbol> <from> <to>)", n, strings.TrimSpace(entry))
			continue
		}

		from, symbol, to, err := parseTriple(parts[1], parts[0], parts[2])
		if err != nil {
			r.fail("entry %d invalid: %v", n, err)
			continue
		}
		switch {
		case !a.HasSymbol(symbol):
			r.fail("entry %d invalid: symbol %s not declared", n, symbol)
			continue
		case !a.HasState(from):
			r.fail("entry %d invalid: state %s not declared", n, from)
			continue
		case !a.HasState(to):
			r.fail("entry %d invalid: state %s not declared", n, to)
			continue
		}

		if e.setTransition(r, from, symbol, to) {
			applied++
		}
	}
	r.info("%d of %d transitions applied.", applied, len(entries))
}

// setTransition stores the mapping and reports an overwrite.
func (e *Engine) setTransition(r *reporter, from, symbol, to string) bool {
	prev, overwritten, err := e.automaton.SetTransition(from, symbol, to)
	if err != nil {
		r.fail("%v", err)
		return false
	}
	if overwritten {
		r.warn("transition %s overwritten", arrow(from, symbol, prev))
	}
	r.info("Transition %s added.", arrow(from, symbol, to))
	return true
}
