package runtime

import (
	"context"
	"strings"

	"github.com/aretw0/fsmd/pkg/domain"
)

func (e *Engine) handleDelete(ctx context.Context, r *reporter, args []string, _ string) {
	if !checkExactArgs(r, "DELETE STATE|SYMBOL <name>", args, 2) {
		return
	}

	a := e.automaton
	before := len(a.Transitions())

	switch kind := strings.ToUpper(args[0]); kind {
	case "STATE":
		state, err := domain.NormalizeState(args[1])
		if err != nil {
			r.fail("%v", err)
			return
		}
		wasInitial := a.IsInitial(state)
		if !a.RemoveState(state) {
			r.fail("state %s not found", state)
			return
		}
		r.info("State %s deleted (%d transitions removed).", state, before-len(a.Transitions()))
		if wasInitial {
			r.warn("deleted state %s was the initial state; no initial state is set", state)
		}

	case "SYMBOL":
		symbol, err := domain.NormalizeSymbol(args[1])
		if err != nil {
			r.fail("%v", err)
			return
		}
		if !a.RemoveSymbol(symbol) {
			r.fail("symbol %s not found", symbol)
			return
		}
		r.info("Symbol %s deleted (%d transitions removed).", symbol, before-len(a.Transitions()))

	default:
		r.fail("unrecognized DELETE type %q (expected STATE or SYMBOL)", args[0])
	}
}
