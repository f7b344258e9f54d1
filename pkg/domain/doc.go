/*
Package domain contains the core model of the FSM designer: the Automaton aggregate.

An Automaton owns an ordered alphabet, an ordered state registry with an optional
initial state and a set of final states, and a deterministic transition table.
The package is kept pure and free of I/O; command parsing, reporting and
persistence live in other packages and operate on an *Automaton passed by reference.

# Key Entities

  - Automaton: the tuple ⟨Alphabet, States, Initial, Finals, Transitions⟩.
  - Transition: a single (from, symbol) → to mapping.

# Invariant

No transition, initial reference or final mark may reference a state or symbol
that is not declared. Removals restore this invariant in one place
(restoreInvariants), so callers never have to scrub dangling references themselves.
*/
package domain
