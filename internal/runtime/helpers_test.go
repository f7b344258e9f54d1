package runtime_test

import (
	"context"
	"strings"
	"testing"

	"github.com/aretw0/fsmd/internal/runtime"
	"github.com/aretw0/fsmd/pkg/ports"
)

// recorder is a ports.Sink that keeps every line.
type recorder struct {
	lines []ports.Message
}

func (r *recorder) WriteLine(msg ports.Message) {
	r.lines = append(r.lines, msg)
}

func (r *recorder) reset() {
	r.lines = nil
}

func (r *recorder) count(sev ports.Severity) int {
	n := 0
	for _, m := range r.lines {
		if m.Severity == sev {
			n++
		}
	}
	return n
}

func (r *recorder) texts() []string {
	out := make([]string, len(r.lines))
	for i, m := range r.lines {
		out[i] = m.String()
	}
	return out
}

func (r *recorder) joined() string {
	return strings.Join(r.texts(), "\n")
}

func newEngine(t *testing.T, opts ...runtime.EngineOption) (*runtime.Engine, *recorder) {
	t.Helper()
	rec := &recorder{}
	opts = append([]runtime.EngineOption{runtime.WithSink(rec)}, opts...)
	return runtime.NewEngine(opts...), rec
}

// run processes each command in order, then clears the recorder.
func run(e *runtime.Engine, rec *recorder, commands ...string) {
	for _, cmd := range commands {
		e.Process(context.Background(), cmd)
	}
	rec.reset()
}

// printOutput returns the PRINT report for the engine's current automaton.
func printOutput(e *runtime.Engine, rec *recorder) []string {
	rec.reset()
	e.Process(context.Background(), "PRINT")
	out := rec.texts()
	rec.reset()
	return out
}
