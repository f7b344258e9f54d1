package schema

import (
	"errors"
	"fmt"

	"github.com/aretw0/fsmd/pkg/domain"
)

// CurrentVersion is the schema version written by FromAutomaton.
const CurrentVersion = 1

// Snapshot is the whole-object persisted form of an Automaton.
type Snapshot struct {
	Version     int                 `json:"version" yaml:"version"`
	Alphabet    []string            `json:"alphabet" yaml:"alphabet"`
	States      []string            `json:"states" yaml:"states"`
	Initial     string              `json:"initial,omitempty" yaml:"initial,omitempty"`
	Finals      []string            `json:"finals" yaml:"finals"`
	Transitions []domain.Transition `json:"transitions" yaml:"transitions"`
}

// FromAutomaton captures the full tuple of a. The automaton is not modified.
func FromAutomaton(a *domain.Automaton) *Snapshot {
	initial, _ := a.Initial()
	snap := &Snapshot{
		Version:     CurrentVersion,
		Alphabet:    a.Symbols(),
		States:      a.States(),
		Initial:     initial,
		Finals:      a.Finals(),
		Transitions: a.Transitions(),
	}
	// Encoders render nil slices as null; keep the artifact explicit.
	if snap.Alphabet == nil {
		snap.Alphabet = []string{}
	}
	if snap.States == nil {
		snap.States = []string{}
	}
	if snap.Finals == nil {
		snap.Finals = []string{}
	}
	if snap.Transitions == nil {
		snap.Transitions = []domain.Transition{}
	}
	return snap
}

// ToAutomaton builds a fresh Automaton from the snapshot.
// Any format or reference problem fails the whole conversion.
func (s *Snapshot) ToAutomaton() (*domain.Automaton, error) {
	if s.Version != CurrentVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, s.Version)
	}

	a := domain.New()
	var errs []error
	fail := func(key, reason string, value any) {
		errs = append(errs, &ValidationError{Key: key, Reason: reason, Value: value})
	}

	for _, sym := range s.Alphabet {
		if err := a.AddSymbol(sym); err != nil {
			fail("alphabet", "invalid entry", err)
		}
	}
	for _, state := range s.States {
		if err := a.AddState(state); err != nil {
			fail("states", "invalid entry", err)
		}
	}
	if s.Initial != "" {
		if err := a.SetInitial(s.Initial); err != nil {
			fail("initial", "undeclared state", err)
		}
	}
	for _, state := range s.Finals {
		already, err := a.MarkFinal(state)
		switch {
		case err != nil:
			fail("finals", "undeclared state", err)
		case already:
			fail("finals", "duplicate entry", state)
		}
	}
	for i, t := range s.Transitions {
		key := fmt.Sprintf("transitions[%d]", i)
		_, overwritten, err := a.SetTransition(t.From, t.Symbol, t.To)
		switch {
		case err != nil:
			fail(key, "dangling reference", err)
		case overwritten:
			fail(key, "nondeterministic entry", fmt.Sprintf("%s -%s->", t.From, t.Symbol))
		}
	}

	if len(errs) > 0 {
		return nil, &AggregateError{Errors: errs}
	}
	return a, nil
}

// Validate checks the snapshot without keeping the resulting automaton.
func (s *Snapshot) Validate() error {
	_, err := s.ToAutomaton()
	return err
}

// IsValidationError reports whether err came from snapshot validation rather than I/O.
func IsValidationError(err error) bool {
	var aggr *AggregateError
	return errors.As(err, &aggr) || errors.Is(err, ErrUnsupportedVersion)
}
