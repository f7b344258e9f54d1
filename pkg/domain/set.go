package domain

import "slices"

// orderedSet is a set of strings that remembers insertion order.
type orderedSet struct {
	items []string
	index map[string]struct{}
}

func newOrderedSet() *orderedSet {
	return &orderedSet{index: make(map[string]struct{})}
}

func (s *orderedSet) Has(v string) bool {
	_, ok := s.index[v]
	return ok
}

// Add appends v and reports whether it was not already present.
func (s *orderedSet) Add(v string) bool {
	if s.Has(v) {
		return false
	}
	s.index[v] = struct{}{}
	s.items = append(s.items, v)
	return true
}

// Remove deletes v and reports whether it was present.
func (s *orderedSet) Remove(v string) bool {
	if !s.Has(v) {
		return false
	}
	delete(s.index, v)
	s.items = slices.DeleteFunc(s.items, func(item string) bool { return item == v })
	return true
}

// Retain keeps only the items for which keep returns true.
func (s *orderedSet) Retain(keep func(string) bool) {
	s.items = slices.DeleteFunc(s.items, func(item string) bool {
		if keep(item) {
			return false
		}
		delete(s.index, item)
		return true
	})
}

func (s *orderedSet) Len() int {
	return len(s.items)
}

// Items returns a copy of the members in insertion order.
func (s *orderedSet) Items() []string {
	return slices.Clone(s.items)
}

func (s *orderedSet) clone() *orderedSet {
	c := newOrderedSet()
	for _, v := range s.items {
		c.Add(v)
	}
	return c
}
