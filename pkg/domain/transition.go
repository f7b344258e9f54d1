package domain

import "slices"

// Transition defines a single deterministic move: reading Symbol in From leads to To.
type Transition struct {
	From   string `json:"from" yaml:"from"`
	Symbol string `json:"symbol" yaml:"symbol"`
	To     string `json:"to" yaml:"to"`
}

// row holds the outgoing transitions of one state, keyed by symbol.
// Symbols keep the order in which their mapping was first defined.
type row struct {
	symbols []string
	dest    map[string]string
}

func newRow() *row {
	return &row{dest: make(map[string]string)}
}

// set stores symbol → to and returns the previous destination, if any.
func (r *row) set(symbol, to string) (string, bool) {
	prev, existed := r.dest[symbol]
	if !existed {
		r.symbols = append(r.symbols, symbol)
	}
	r.dest[symbol] = to
	return prev, existed
}

func (r *row) get(symbol string) (string, bool) {
	to, ok := r.dest[symbol]
	return to, ok
}

// retain drops every entry for which keep returns false.
func (r *row) retain(keep func(symbol, to string) bool) {
	r.symbols = slices.DeleteFunc(r.symbols, func(symbol string) bool {
		if keep(symbol, r.dest[symbol]) {
			return false
		}
		delete(r.dest, symbol)
		return true
	})
}

func (r *row) len() int {
	return len(r.symbols)
}

func (r *row) clone() *row {
	c := newRow()
	for _, symbol := range r.symbols {
		c.set(symbol, r.dest[symbol])
	}
	return c
}
