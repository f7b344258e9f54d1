package memory

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"sync"

	"github.com/aretw0/fsmd/pkg/domain"
	"github.com/aretw0/fsmd/pkg/schema"
)

// Store implements ports.AutomatonStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string]*schema.Snapshot
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]*schema.Snapshot),
	}
}

// Save stores a copy of the snapshot.
func (s *Store) Save(ctx context.Context, name string, snap *schema.Snapshot) error {
	if name == "" {
		return fmt.Errorf("artifact name cannot be empty")
	}
	copied := clone(snap)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[name] = copied
	return nil
}

// Load returns a copy so the caller can't mutate stored snapshots by pointer.
func (s *Store) Load(ctx context.Context, name string) (*schema.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap, ok := s.data[name]
	if !ok {
		return nil, fmt.Errorf("%s: %w", name, domain.ErrArtifactNotFound)
	}
	return clone(snap), nil
}

// Delete removes the snapshot.
func (s *Store) Delete(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, name)
	return nil
}

// List returns stored names in lexical order.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.data))
	for name := range s.data {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func clone(snap *schema.Snapshot) *schema.Snapshot {
	c := *snap
	c.Alphabet = slices.Clone(snap.Alphabet)
	c.States = slices.Clone(snap.States)
	c.Finals = slices.Clone(snap.Finals)
	c.Transitions = slices.Clone(snap.Transitions)
	return &c
}
