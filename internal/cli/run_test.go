package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/fsmd/internal/config"
	"github.com/aretw0/fsmd/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Color:        false,
		Prompt:       "never",
		Format:       "json",
		MaxInputSize: 4096,
		Redis:        config.RedisConfig{Prefix: "fsmd:test:"},
	}
}

func runWithInput(t *testing.T, cfg *config.Config, dir, input string) string {
	t.Helper()
	var out bytes.Buffer
	err := RunSession(context.Background(), RunOptions{
		Config: cfg,
		Dir:    dir,
		Stdin:  strings.NewReader(input),
		Stdout: &out,
		Stderr: &bytes.Buffer{},
	})
	require.NoError(t, err)
	return out.String()
}

func TestRunSession_Interactive(t *testing.T) {
	dir := t.TempDir()
	out := runWithInput(t, testConfig(), dir, `SYMBOLS 0 1;
STATES A B C;
FINAL-STATES C;
TRANSITION A 1 B;
TRANSITION B 0 C;
EXECUTE 10;
COMPILE abc;
EXIT;
`)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.True(t, strings.HasPrefix(lines[0], "FSM DESIGNER "))
	assert.Contains(t, out, "A B C\nACCEPTED\n")
	assert.Contains(t, out, "Automaton compiled to abc.")
	assert.Equal(t, "TERMINATED BY USER", lines[len(lines)-1])

	_, err := os.Stat(filepath.Join(dir, "abc"))
	assert.NoError(t, err, "artifact without extension uses the default format")
}

func TestRunSession_Prompt(t *testing.T) {
	cfg := testConfig()
	cfg.Prompt = "always"
	out := runWithInput(t, cfg, t.TempDir(), "PRINT;\n")
	assert.Contains(t, out, "? ")
}

func TestRunSession_Scripts(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "build.fsm")
	second := filepath.Join(dir, "run.fsm")
	third := filepath.Join(dir, "never.fsm")
	require.NoError(t, os.WriteFile(first, []byte("STATES S;\nTRANSITION S 0 S;\nFINAL-STATES S;\n"), 0644))
	require.NoError(t, os.WriteFile(second, []byte("EXECUTE 000;\nEXIT;\n"), 0644))
	require.NoError(t, os.WriteFile(third, []byte("CLEAR;\n"), 0644))

	var out bytes.Buffer
	err := RunSession(context.Background(), RunOptions{
		Config:  testConfig(),
		Dir:     dir,
		Scripts: []string{first, second, third},
		Stdout:  &out,
		Stderr:  &bytes.Buffer{},
	})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "S S S S\nACCEPTED\nTERMINATED BY USER\n")
	assert.NotContains(t, out.String(), "Automaton cleared.")
}

func TestRunSession_MissingScript(t *testing.T) {
	err := RunSession(context.Background(), RunOptions{
		Config:  testConfig(),
		Dir:     t.TempDir(),
		Scripts: []string{filepath.Join(t.TempDir(), "absent.fsm")},
		Stdout:  &bytes.Buffer{},
	})
	assert.Error(t, err)
}

func TestRunSession_Interrupted(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()
	defer w.Close()

	err = RunSession(ctx, RunOptions{
		Config: testConfig(),
		Dir:    t.TempDir(),
		Stdin:  r,
		Stdout: &bytes.Buffer{},
	})
	assert.NoError(t, err, "interruption exits cleanly")
}

func TestRunSession_Redis(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := testConfig()
	cfg.Redis.URL = "redis://" + mr.Addr()

	out := runWithInput(t, cfg, t.TempDir(), `TRANSITION P 1 Q;
COMPILE redis:pq;
CLEAR;
LOAD redis:pq;
PRINT;
`)
	assert.Contains(t, out, "Automaton compiled to redis:pq.")
	assert.Contains(t, out, "Automaton loaded from redis:pq (2 states, 1 symbols, 1 transitions).")
	assert.Contains(t, out, "P -1-> Q")
	assert.True(t, mr.Exists("fsmd:test:pq"))
}

func TestRunSession_Metrics(t *testing.T) {
	cfg := testConfig()
	cfg.Metrics.Addr = "127.0.0.1:0"
	out := runWithInput(t, cfg, t.TempDir(), "STATES A;\nEXECUTE 1;\n")
	assert.Contains(t, out, "State A added.")
}

func TestNewStore(t *testing.T) {
	t.Run("Files only", func(t *testing.T) {
		store, closeFn, err := NewStore(testConfig(), t.TempDir())
		require.NoError(t, err)
		assert.NoError(t, closeFn())
		assert.NotNil(t, store)
	})

	t.Run("Unknown format", func(t *testing.T) {
		cfg := testConfig()
		cfg.Format = "xml"
		_, _, err := NewStore(cfg, t.TempDir())
		assert.Error(t, err)
	})

	t.Run("Bad redis url", func(t *testing.T) {
		cfg := testConfig()
		cfg.Redis.URL = "http://example.com"
		_, _, err := NewStore(cfg, t.TempDir())
		assert.Error(t, err)
	})
}

func TestSimulate(t *testing.T) {
	dir := t.TempDir()
	runWithInput(t, testConfig(), dir, "STATES A B;\nTRANSITION A x B;\nFINAL-STATES B;\nCOMPILE ab.yaml;\n")

	store, closeFn, err := NewStore(testConfig(), dir)
	require.NoError(t, err)
	defer closeFn()

	a, res, err := Simulate(context.Background(), store, "ab.yaml", "x")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, res.Path)
	assert.Equal(t, domain.VerdictAccepted, res.Verdict)
	assert.True(t, a.HasSymbol("X"))

	_, _, err = Simulate(context.Background(), store, "ab.yaml", "y")
	assert.ErrorIs(t, err, domain.ErrUnknownSymbol)

	_, _, err = Simulate(context.Background(), store, "missing.yaml", "x")
	assert.ErrorIs(t, err, domain.ErrArtifactNotFound)
}

func TestPromptEnabled(t *testing.T) {
	assert.True(t, promptEnabled("always", strings.NewReader("")))
	assert.False(t, promptEnabled("never", os.Stdin))
	assert.False(t, promptEnabled("auto", strings.NewReader("")))
}
