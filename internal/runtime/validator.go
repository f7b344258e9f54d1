package runtime

import (
	"github.com/aretw0/fsmd/pkg/domain"
)

// ensureState declares a missing state, warning about the repair.
// state must already be normalized.
func (e *Engine) ensureState(r *reporter, state string) {
	if e.automaton.HasState(state) {
		return
	}
	if err := e.automaton.AddState(state); err != nil {
		r.fail("%v", err)
		return
	}
	r.warn("state %s was not declared; added automatically", state)
}

// ensureSymbol declares a missing symbol, warning about the repair.
func (e *Engine) ensureSymbol(r *reporter, symbol string) {
	if e.automaton.HasSymbol(symbol) {
		return
	}
	if err := e.automaton.AddSymbol(symbol); err != nil {
		r.fail("%v", err)
		return
	}
	r.warn("symbol %s was not declared; added automatically", symbol)
}

// parseTriple normalizes the three parts of a transition.
func parseTriple(from, symbol, to string) (string, string, string, error) {
	f, err := domain.NormalizeState(from)
	if err != nil {
		return "", "", "", err
	}
	s, err := domain.NormalizeSymbol(symbol)
	if err != nil {
		return "", "", "", err
	}
	t, err := domain.NormalizeState(to)
	if err != nil {
		return "", "", "", err
	}
	return f, s, t, nil
}

// checkNoArgs reports an error when a command that takes no arguments got some.
func checkNoArgs(r *reporter, keyword string, args []string) bool {
	if len(args) != 0 {
		r.fail("%s takes no arguments", keyword)
		return false
	}
	return true
}

// checkExactArgs reports an error unless exactly n arguments were given.
func checkExactArgs(r *reporter, usage string, args []string, n int) bool {
	if len(args) != n {
		r.fail("wrong number of arguments (got %d, want %d); usage: %s", len(args), n, usage)
		return false
	}
	return true
}

func arrow(from, symbol, to string) string {
	return from + " -" + symbol + "-> " + to
}
