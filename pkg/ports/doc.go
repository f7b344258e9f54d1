/*
Package ports defines the driven ports (interfaces) of the FSM designer engine.

These interfaces decouple the command engine from concrete consoles, files and
databases, so the same engine can run behind a terminal, a script replay or a test.

# Key Interfaces

  - AutomatonStore: persists and restores whole automaton snapshots (COMPILE / LOAD).
  - Sink: receives every report and diagnostic line the engine produces.
  - Transcript: the write-through log controlled by the LOG command.
*/
package ports
