package runtime

import (
	"fmt"
	"strings"

	"github.com/aretw0/fsmd/pkg/domain"
)

// Result is the outcome of a simulation.
type Result struct {
	// Path lists the visited states, starting with the initial state.
	Path []string

	// Verdict is accepted, rejected, or halted when a transition was missing.
	Verdict domain.Verdict

	// HaltState and HaltSymbol identify the missing transition when halted.
	HaltState  string
	HaltSymbol string
}

// Accepted reports whether the input was accepted.
func (r *Result) Accepted() bool {
	return r.Verdict == domain.VerdictAccepted
}

// Simulate runs input through a, which is only read.
//
// Preconditions are checked in order and each fails with its own error before
// any transition is taken: input format (domain.ErrInvalidInput), initial state
// (domain.ErrNoInitialState), and every character in the alphabet
// (domain.ErrUnknownSymbol). A missing transition halts the walk at once.
func Simulate(a *domain.Automaton, input string) (*Result, error) {
	input = strings.ToUpper(input)
	if !domain.IsAlphanumeric(input) {
		return nil, fmt.Errorf("%w: %q (must be alphanumeric)", domain.ErrInvalidInput, input)
	}

	current, ok := a.Initial()
	if !ok {
		return nil, domain.ErrNoInitialState
	}

	for _, c := range input {
		if !a.HasSymbol(string(c)) {
			return nil, fmt.Errorf("%w: %c", domain.ErrUnknownSymbol, c)
		}
	}

	res := &Result{Path: []string{current}}
	for _, c := range input {
		symbol := string(c)
		next, ok := a.Next(current, symbol)
		if !ok {
			res.Verdict = domain.VerdictHalted
			res.HaltState = current
			res.HaltSymbol = symbol
			return res, nil
		}
		current = next
		res.Path = append(res.Path, current)
	}

	if a.IsFinal(current) {
		res.Verdict = domain.VerdictAccepted
	} else {
		res.Verdict = domain.VerdictRejected
	}
	return res, nil
}
