package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventCommand EventType = "command"
	EventExecute EventType = "execute"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// CommandEvent describes one processed command.
type CommandEvent struct {
	EventBase
	Keyword  string        `json:"keyword"`
	Known    bool          `json:"known"`
	Warnings int           `json:"warnings"`
	Errors   int           `json:"errors"`
	Duration time.Duration `json:"duration"`
}

// Verdict is the outcome of running an input through the automaton.
type Verdict string

const (
	VerdictAccepted Verdict = "accepted"
	VerdictRejected Verdict = "rejected"
	VerdictHalted   Verdict = "halted" // rejected because a transition was missing mid-walk
)

// ExecuteEvent describes one completed simulation.
type ExecuteEvent struct {
	EventBase
	Input   string   `json:"input"`
	Path    []string `json:"path"`
	Verdict Verdict  `json:"verdict"`
}

// LifecycleHooks defines callbacks for engine observability.
type LifecycleHooks struct {
	OnCommand func(context.Context, *CommandEvent)
	OnExecute func(context.Context, *ExecuteEvent)
}
