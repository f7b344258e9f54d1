/*
Package schema defines the on-disk representation of an Automaton.

An artifact is a versioned Snapshot: an explicit list of the five automaton fields
(alphabet, states, initial, finals, transitions) plus a version tag. Snapshots can
be encoded as JSON, YAML or HCL; the format is picked from the artifact name.

Decoding never produces a partially valid automaton. ToAutomaton checks the version,
every token format and every reference, and returns an AggregateError listing all
problems at once.
*/
package schema
