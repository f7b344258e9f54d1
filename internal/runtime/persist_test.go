package runtime_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/fsmd/internal/runtime"
	"github.com/aretw0/fsmd/pkg/adapters/file"
	"github.com/aretw0/fsmd/pkg/adapters/memory"
	"github.com/aretw0/fsmd/pkg/domain"
	"github.com/aretw0/fsmd/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleSetup = []string{
	"SYMBOLS 0 1",
	"STATES A B C",
	"FINAL-STATES C",
	"TRANSITION A 1 B",
	"TRANSITION B 0 C",
	"TRANSITION C 1 A",
}

func TestEngine_CompileClearLoad(t *testing.T) {
	stores := map[string]func(t *testing.T) ports.AutomatonStore{
		"Memory": func(t *testing.T) ports.AutomatonStore { return memory.NewStore() },
		"File":   func(t *testing.T) ports.AutomatonStore { return file.New(t.TempDir()) },
	}

	for name, factory := range stores {
		t.Run(name, func(t *testing.T) {
			e, rec := newEngine(t, runtime.WithStore(factory(t)))
			ctx := context.Background()
			run(e, rec, sampleSetup...)
			want := printOutput(e, rec)
			before := e.Automaton().Clone()

			e.Process(ctx, "COMPILE sample.json")
			assert.Equal(t, []string{"Automaton compiled to sample.json."}, rec.texts())
			assert.True(t, e.Automaton().Equal(before), "compile must not mutate memory")

			run(e, rec, "CLEAR")
			assert.True(t, e.Automaton().IsEmpty())

			e.Process(ctx, "LOAD sample.json")
			assert.Equal(t, []string{"Automaton loaded from sample.json (3 states, 2 symbols, 3 transitions)."}, rec.texts())
			assert.Equal(t, want, printOutput(e, rec))
			assert.True(t, e.Automaton().Equal(before))
		})
	}
}

func TestEngine_LoadFailureLeavesMemoryUntouched(t *testing.T) {
	dir := t.TempDir()
	store := file.New(dir)
	ctx := context.Background()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "garbage.json"), []byte("{not json"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "dangling.json"), []byte(`{
  "version": 1,
  "alphabet": ["0"],
  "states": ["A"],
  "initial": "Z",
  "finals": [],
  "transitions": [{"from": "A", "symbol": "1", "to": "A"}]
}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "lowercase.json"), []byte(`{
  "version": 1,
  "alphabet": ["a"],
  "states": ["q0", "q1"],
  "initial": "q0",
  "finals": ["q1"],
  "transitions": [{"from": "q0", "symbol": "a", "to": "q1"}]
}`), 0o644))

	tests := []struct {
		name     string
		artifact string
		contains string
	}{
		{"Missing", "nope.json", "file not found"},
		{"Corrupt", "garbage.json", "failed to load garbage.json"},
		{"Inconsistent", "dangling.json", "invalid artifact"},
		{"Lowercase names", "lowercase.json", "invalid artifact"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, rec := newEngine(t, runtime.WithStore(store))
			run(e, rec, sampleSetup...)
			want := printOutput(e, rec)

			e.Process(ctx, "LOAD "+tt.artifact)
			require.Len(t, rec.lines, 1)
			assert.Equal(t, ports.SeverityError, rec.lines[0].Severity)
			assert.Contains(t, rec.lines[0].Text, tt.contains)

			assert.Equal(t, want, printOutput(e, rec))
		})
	}
}

func TestEngine_CompileFailure(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "blocker"), []byte("x"), 0o644))
	e, rec := newEngine(t, runtime.WithStore(file.New(dir)))
	run(e, rec, sampleSetup...)

	e.Process(context.Background(), "COMPILE blocker/out.json")
	assert.Equal(t, 1, rec.count(ports.SeverityError))
	assert.Contains(t, rec.joined(), "failed to compile to blocker/out.json")
	assert.False(t, e.Automaton().IsEmpty())
}

func TestEngine_PersistenceUnavailable(t *testing.T) {
	e, rec := newEngine(t)
	ctx := context.Background()
	e.Process(ctx, "COMPILE x.json")
	e.Process(ctx, "LOAD x.json")
	e.Process(ctx, "LOG x.txt")
	assert.Equal(t, 3, rec.count(ports.SeverityError))
}

// fakeTranscript records Start and Stop calls.
type fakeTranscript struct {
	target   string
	startErr error
}

func (f *fakeTranscript) Start(name string) error {
	if f.startErr != nil {
		return f.startErr
	}
	f.target = name
	return nil
}

func (f *fakeTranscript) Stop() (bool, error) {
	if f.target == "" {
		return false, nil
	}
	f.target = ""
	return true, nil
}

func (f *fakeTranscript) Target() string { return f.target }

func TestEngine_Log(t *testing.T) {
	tr := &fakeTranscript{}
	e, rec := newEngine(t, runtime.WithTranscript(tr))
	ctx := context.Background()

	e.Process(ctx, "LOG")
	assert.Equal(t, []string{"Logging is not active."}, rec.texts())
	rec.reset()

	e.Process(ctx, "LOG session.txt")
	assert.Equal(t, "session.txt", tr.Target())
	assert.Equal(t, []string{"Logging to session.txt."}, rec.texts())
	rec.reset()

	e.Process(ctx, "LOG a.txt b.txt")
	assert.Equal(t, 1, rec.count(ports.SeverityError))
	assert.Equal(t, "session.txt", tr.Target())
	rec.reset()

	e.Process(ctx, "log")
	assert.Equal(t, []string{"Logging stopped."}, rec.texts())
	assert.Empty(t, tr.Target())
	rec.reset()

	tr.startErr = errors.New("permission denied")
	e.Process(ctx, "LOG /root/forbidden.txt")
	assert.Equal(t, 1, rec.count(ports.SeverityError))
	assert.Contains(t, rec.joined(), "permission denied")
}

func TestEngine_WithAutomaton(t *testing.T) {
	a := domain.New()
	require.NoError(t, a.AddState("S"))
	require.NoError(t, a.SetInitial("S"))

	e, rec := newEngine(t, runtime.WithAutomaton(a))
	assert.Same(t, a, e.Automaton())
	assert.Equal(t, []string{"S (initial)", "Alphabet: (empty)", "No transitions defined."}, printOutput(e, rec))
}
