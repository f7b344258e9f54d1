package domain

import (
	"fmt"
	"slices"
)

// Automaton is the aggregate that owns the alphabet, the state registry and the
// transition table of a deterministic finite-state machine.
//
// All names are expected in normalized (uppercase) form; use NormalizeSymbol and
// NormalizeState on raw user tokens. An Automaton is not safe for concurrent use.
type Automaton struct {
	alphabet *orderedSet
	states   *orderedSet
	initial  string
	finals   *orderedSet
	rows     map[string]*row
}

// New returns an empty Automaton.
func New() *Automaton {
	return &Automaton{
		alphabet: newOrderedSet(),
		states:   newOrderedSet(),
		finals:   newOrderedSet(),
		rows:     make(map[string]*row),
	}
}

// Symbols returns the alphabet in insertion order.
func (a *Automaton) Symbols() []string { return a.alphabet.Items() }

// States returns the declared states in insertion order.
func (a *Automaton) States() []string { return a.states.Items() }

// Finals returns the final states in the order they were marked.
func (a *Automaton) Finals() []string { return a.finals.Items() }

// Initial returns the initial state and whether one is set.
func (a *Automaton) Initial() (string, bool) {
	return a.initial, a.initial != ""
}

func (a *Automaton) HasSymbol(symbol string) bool { return a.alphabet.Has(symbol) }
func (a *Automaton) HasState(state string) bool   { return a.states.Has(state) }
func (a *Automaton) IsFinal(state string) bool    { return a.finals.Has(state) }
func (a *Automaton) IsInitial(state string) bool  { return a.initial != "" && a.initial == state }

// IsEmpty reports whether nothing has been declared.
func (a *Automaton) IsEmpty() bool {
	return a.alphabet.Len() == 0 && a.states.Len() == 0
}

// AddSymbol declares a new symbol. The symbol must already be normalized.
func (a *Automaton) AddSymbol(symbol string) error {
	norm, err := NormalizeSymbol(symbol)
	if err != nil {
		return err
	}
	if norm != symbol {
		return fmt.Errorf("%w: %q (not uppercase)", ErrInvalidSymbol, symbol)
	}
	if !a.alphabet.Add(symbol) {
		return fmt.Errorf("symbol %s: %w", symbol, ErrDuplicate)
	}
	return nil
}

// AddState declares a new state. It never changes the initial state.
// The state must already be normalized.
func (a *Automaton) AddState(state string) error {
	norm, err := NormalizeState(state)
	if err != nil {
		return err
	}
	if norm != state {
		return fmt.Errorf("%w: %q (not uppercase)", ErrInvalidState, state)
	}
	if !a.states.Add(state) {
		return fmt.Errorf("state %s: %w", state, ErrDuplicate)
	}
	return nil
}

// SetInitial makes a declared state the initial one, replacing any previous choice.
func (a *Automaton) SetInitial(state string) error {
	if !a.states.Has(state) {
		return fmt.Errorf("state %s: %w", state, ErrNotFound)
	}
	a.initial = state
	return nil
}

// MarkFinal adds a declared state to the final set.
// It reports true if the state was already final.
func (a *Automaton) MarkFinal(state string) (bool, error) {
	if !a.states.Has(state) {
		return false, fmt.Errorf("state %s: %w", state, ErrNotFound)
	}
	return !a.finals.Add(state), nil
}

// SetTransition maps (from, symbol) to to. All three must already be declared.
// If a mapping existed it is overwritten and its previous destination returned.
func (a *Automaton) SetTransition(from, symbol, to string) (prev string, overwritten bool, err error) {
	switch {
	case !a.states.Has(from):
		return "", false, fmt.Errorf("state %s: %w", from, ErrNotFound)
	case !a.alphabet.Has(symbol):
		return "", false, fmt.Errorf("symbol %s: %w", symbol, ErrNotFound)
	case !a.states.Has(to):
		return "", false, fmt.Errorf("state %s: %w", to, ErrNotFound)
	}

	r, ok := a.rows[from]
	if !ok {
		r = newRow()
		a.rows[from] = r
	}
	prev, overwritten = r.set(symbol, to)
	return prev, overwritten, nil
}

// Next returns the destination of (from, symbol), if defined.
func (a *Automaton) Next(from, symbol string) (string, bool) {
	r, ok := a.rows[from]
	if !ok {
		return "", false
	}
	return r.get(symbol)
}

// Transitions lists every transition grouped by source state in state insertion
// order, and by definition order within a source.
func (a *Automaton) Transitions() []Transition {
	var out []Transition
	for _, from := range a.states.items {
		r, ok := a.rows[from]
		if !ok {
			continue
		}
		for _, symbol := range r.symbols {
			out = append(out, Transition{From: from, Symbol: symbol, To: r.dest[symbol]})
		}
	}
	return out
}

// RemoveState deletes a state and every reference to it. It reports whether the
// state existed. A removed initial state leaves the automaton without one.
func (a *Automaton) RemoveState(state string) bool {
	if !a.states.Remove(state) {
		return false
	}
	a.restoreInvariants()
	return true
}

// RemoveSymbol deletes a symbol and every transition keyed by it.
func (a *Automaton) RemoveSymbol(symbol string) bool {
	if !a.alphabet.Remove(symbol) {
		return false
	}
	a.restoreInvariants()
	return true
}

// restoreInvariants drops every reference to an undeclared state or symbol.
// Dangling transitions are deleted, never redirected.
func (a *Automaton) restoreInvariants() {
	if a.initial != "" && !a.states.Has(a.initial) {
		a.initial = ""
	}
	a.finals.Retain(a.states.Has)

	for from, r := range a.rows {
		if !a.states.Has(from) {
			delete(a.rows, from)
			continue
		}
		r.retain(func(symbol, to string) bool {
			return a.alphabet.Has(symbol) && a.states.Has(to)
		})
		if r.len() == 0 {
			delete(a.rows, from)
		}
	}
}

// Clear resets the automaton to the empty tuple.
func (a *Automaton) Clear() {
	*a = *New()
}

// Replace swaps the whole content of a for src in one step.
// src must not be used afterwards.
func (a *Automaton) Replace(src *Automaton) {
	*a = *src
}

// Clone returns a deep copy.
func (a *Automaton) Clone() *Automaton {
	c := &Automaton{
		alphabet: a.alphabet.clone(),
		states:   a.states.clone(),
		initial:  a.initial,
		finals:   a.finals.clone(),
		rows:     make(map[string]*row, len(a.rows)),
	}
	for from, r := range a.rows {
		c.rows[from] = r.clone()
	}
	return c
}

// Equal reports whether both automata hold the same tuple, including ordering.
func (a *Automaton) Equal(b *Automaton) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.initial == b.initial &&
		slices.Equal(a.alphabet.items, b.alphabet.items) &&
		slices.Equal(a.states.items, b.states.items) &&
		slices.Equal(a.finals.items, b.finals.items) &&
		slices.Equal(a.Transitions(), b.Transitions())
}
