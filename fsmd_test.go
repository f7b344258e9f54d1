package fsmd_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aretw0/fsmd"
	"github.com/aretw0/fsmd/pkg/adapters/file"
	"github.com/aretw0/fsmd/pkg/domain"
	"github.com/aretw0/fsmd/pkg/ports"
	"github.com/aretw0/fsmd/pkg/runner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stringsReader(s string) io.Reader {
	return strings.NewReader(s)
}

type lines []string

func (l *lines) WriteLine(msg ports.Message) { *l = append(*l, msg.String()) }

func TestDesigner_SessionWithPersistenceAndLog(t *testing.T) {
	dir := t.TempDir()
	var out lines
	d := fsmd.New(
		fsmd.WithStore(file.New(dir)),
		fsmd.WithSink(&out),
		fsmd.WithLogDir(dir),
	)
	defer d.Close()

	script := `LOG session.txt;
TRANSITION A 1 B;
INITIAL-STATE A;
FINAL-STATES B;
COMPILE ab.yaml;
CLEAR;
LOAD ab.yaml;
EXECUTE 1;
LOG;
PRINT;
`
	sh := d.Shell(runner.WithInput(strings.NewReader(script)))
	require.NoError(t, sh.Run(context.Background()))

	assert.Contains(t, out, "Automaton compiled to ab.yaml.")
	assert.Contains(t, out, "Automaton loaded from ab.yaml (2 states, 1 symbols, 1 transitions).")
	assert.Contains(t, out, "ACCEPTED")

	initial, ok := d.Automaton().Initial()
	require.True(t, ok)
	assert.Equal(t, "A", initial)

	_, err := os.Stat(filepath.Join(dir, "ab.yaml"))
	require.NoError(t, err)

	logged, err := os.ReadFile(filepath.Join(dir, "session.txt"))
	require.NoError(t, err)
	text := string(logged)
	assert.Contains(t, text, "? TRANSITION A 1 B;")
	assert.Contains(t, text, "Warning: state A was not declared; added automatically")
	assert.Contains(t, text, "A B\nACCEPTED\n? LOG;\n")
	assert.NotContains(t, text, "PRINT", "commands after LOG stop are not logged")
}

func TestDesigner_ProcessWithHooks(t *testing.T) {
	var verdicts []domain.Verdict
	d := fsmd.New(fsmd.WithLifecycleHooks(domain.LifecycleHooks{
		OnExecute: func(_ context.Context, e *domain.ExecuteEvent) {
			verdicts = append(verdicts, e.Verdict)
		},
	}))

	ctx := context.Background()
	d.Process(ctx, "STATES S")
	d.Process(ctx, "TRANSITION S 0 S")
	d.Process(ctx, "EXECUTE 00")
	d.Process(ctx, "FINAL-STATES S")
	d.Process(ctx, "EXECUTE 0")

	assert.Equal(t, []domain.Verdict{domain.VerdictRejected, domain.VerdictAccepted}, verdicts)
}

func TestDesigner_NoStore(t *testing.T) {
	var out lines
	d := fsmd.New(fsmd.WithSink(&out))
	d.Process(context.Background(), "COMPILE x.json")
	assert.Equal(t, lines{"Error: persistence is not available in this session"}, out)
}
