/*
Package fsmd is an interactive designer and simulator for deterministic finite automata.

Users declare an alphabet, states, an initial state, accepting states and
transitions through short text commands, inspect the result, and run input
strings through the automaton to see the visited path and whether it is accepted.
Whole automata can be compiled to JSON, YAML or HCL artifacts (or Redis) and
loaded back later.

# Concept

A single Automaton is owned by the engine and mutated only through commands.
Every command reports its outcome as info, warning or error lines on a Sink,
and no diagnostic ever stops the session. Deleting a state or symbol cascades:
every transition that refers to it is removed, so the automaton never holds a
dangling reference.

# Usage

	package main

	import (
		"context"
		"os"

		"github.com/aretw0/fsmd"
		"github.com/aretw0/fsmd/pkg/adapters/file"
		"github.com/aretw0/fsmd/pkg/runner"
	)

	func main() {
		d := fsmd.New(
			fsmd.WithStore(file.New(".")),
			fsmd.WithSink(runner.NewConsoleSink(os.Stdout)),
		)
		defer d.Close()

		ctx := context.Background()
		d.Process(ctx, "SYMBOLS 0 1")
		d.Process(ctx, "TRANSITION A 1 B")
		d.Process(ctx, "EXECUTE 1")

		// Or hand stdin to the interactive shell.
		_ = d.Shell().Run(ctx)
	}
*/
package fsmd
