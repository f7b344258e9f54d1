// Package mux routes artifact names to stores by scheme prefix.
//
// A name such as "redis:traffic" goes to the store registered for "redis";
// any other name, including Windows drive paths, goes to the fallback store.
package mux

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/aretw0/fsmd/pkg/ports"
	"github.com/aretw0/fsmd/pkg/schema"
)

// Store implements ports.AutomatonStore by delegating to other stores.
type Store struct {
	fallback ports.AutomatonStore
	schemes  map[string]ports.AutomatonStore
}

// Option configures a Store.
type Option func(*Store)

// WithScheme registers store for names prefixed with scheme + ":".
func WithScheme(scheme string, store ports.AutomatonStore) Option {
	return func(s *Store) {
		s.schemes[strings.ToLower(scheme)] = store
	}
}

// New creates a router that sends unprefixed names to fallback.
func New(fallback ports.AutomatonStore, opts ...Option) *Store {
	s := &Store{
		fallback: fallback,
		schemes:  make(map[string]ports.AutomatonStore),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Resolve returns the store responsible for name and the name local to that store.
func (s *Store) Resolve(name string) (ports.AutomatonStore, string) {
	if scheme, rest, ok := strings.Cut(name, ":"); ok && rest != "" {
		if store, registered := s.schemes[strings.ToLower(scheme)]; registered {
			return store, rest
		}
	}
	return s.fallback, name
}

func (s *Store) Save(ctx context.Context, name string, snap *schema.Snapshot) error {
	store, local := s.Resolve(name)
	return store.Save(ctx, local, snap)
}

func (s *Store) Load(ctx context.Context, name string) (*schema.Snapshot, error) {
	store, local := s.Resolve(name)
	return store.Load(ctx, local)
}

func (s *Store) Delete(ctx context.Context, name string) error {
	store, local := s.Resolve(name)
	return store.Delete(ctx, local)
}

// List merges the fallback listing with every scheme listing, the latter
// reported with their scheme prefix.
func (s *Store) List(ctx context.Context) ([]string, error) {
	names, err := s.fallback.List(ctx)
	if err != nil {
		return nil, err
	}

	schemes := make([]string, 0, len(s.schemes))
	for scheme := range s.schemes {
		schemes = append(schemes, scheme)
	}
	sort.Strings(schemes)

	for _, scheme := range schemes {
		remote, err := s.schemes[scheme].List(ctx)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", scheme, err)
		}
		for _, name := range remote {
			names = append(names, scheme+":"+name)
		}
	}
	return names, nil
}
