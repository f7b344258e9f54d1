package cli

import (
	"context"
	"fmt"

	"github.com/aretw0/fsmd/internal/config"
	"github.com/aretw0/fsmd/internal/runtime"
	"github.com/aretw0/fsmd/pkg/adapters/file"
	"github.com/aretw0/fsmd/pkg/adapters/mux"
	redisstore "github.com/aretw0/fsmd/pkg/adapters/redis"
	"github.com/aretw0/fsmd/pkg/domain"
	"github.com/aretw0/fsmd/pkg/ports"
	"github.com/aretw0/fsmd/pkg/schema"
)

// RedisScheme prefixes artifact names stored in Redis, e.g. "redis:traffic".
const RedisScheme = "redis"

// NewStore builds the artifact store: files under dir, plus Redis for
// "redis:" names when a Redis URL is configured. The returned func releases
// any connection.
func NewStore(cfg *config.Config, dir string) (ports.AutomatonStore, func() error, error) {
	format, err := schema.ParseFormat(cfg.Format)
	if err != nil {
		return nil, nil, err
	}
	files := file.New(dir, file.WithDefaultFormat(format))

	if cfg.Redis.URL == "" {
		return files, func() error { return nil }, nil
	}

	remote, err := redisstore.New(cfg.Redis.URL,
		redisstore.WithPrefix(cfg.Redis.Prefix),
		redisstore.WithTTL(cfg.Redis.TTL),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to init redis store: %w", err)
	}
	return mux.New(files, mux.WithScheme(RedisScheme, remote)), remote.Close, nil
}

// LoadArtifact decodes and validates a stored automaton.
func LoadArtifact(ctx context.Context, store ports.AutomatonStore, name string) (*domain.Automaton, error) {
	snap, err := store.Load(ctx, name)
	if err != nil {
		return nil, err
	}
	return snap.ToAutomaton()
}

// Simulate loads an artifact and runs input through it.
func Simulate(ctx context.Context, store ports.AutomatonStore, name, input string) (*domain.Automaton, *runtime.Result, error) {
	a, err := LoadArtifact(ctx, store, name)
	if err != nil {
		return nil, nil, err
	}
	res, err := runtime.Simulate(a, input)
	if err != nil {
		return a, nil, err
	}
	return a, res, nil
}
