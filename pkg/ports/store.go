package ports

import (
	"context"

	"github.com/aretw0/fsmd/pkg/schema"
)

// AutomatonStore defines the interface for persisting whole automaton snapshots.
type AutomatonStore interface {
	// Save persists the snapshot under name, replacing any previous artifact.
	// A failed Save must leave the previous artifact untouched.
	Save(ctx context.Context, name string, snap *schema.Snapshot) error

	// Load retrieves the snapshot stored under name.
	// Returns domain.ErrArtifactNotFound if the artifact does not exist.
	Load(ctx context.Context, name string) (*schema.Snapshot, error)

	// Delete removes the artifact. Deleting a missing artifact is not an error.
	Delete(ctx context.Context, name string) error

	// List returns the names of stored artifacts.
	List(ctx context.Context) ([]string, error)
}
