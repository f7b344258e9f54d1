package runtime_test

import (
	"testing"

	"github.com/aretw0/fsmd/internal/runtime"
	"github.com/aretw0/fsmd/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// parity accepts binary strings with an even number of ones.
func parity(t *testing.T) *domain.Automaton {
	t.Helper()
	a := domain.New()
	for _, s := range []string{"EVEN", "ODD"} {
		require.NoError(t, a.AddState(s))
	}
	for _, s := range []string{"0", "1"} {
		require.NoError(t, a.AddSymbol(s))
	}
	require.NoError(t, a.SetInitial("EVEN"))
	_, err := a.MarkFinal("EVEN")
	require.NoError(t, err)

	for _, tr := range []domain.Transition{
		{From: "EVEN", Symbol: "0", To: "EVEN"},
		{From: "EVEN", Symbol: "1", To: "ODD"},
		{From: "ODD", Symbol: "0", To: "ODD"},
		{From: "ODD", Symbol: "1", To: "EVEN"},
	} {
		_, _, err := a.SetTransition(tr.From, tr.Symbol, tr.To)
		require.NoError(t, err)
	}
	return a
}

func TestSimulate(t *testing.T) {
	a := parity(t)

	tests := []struct {
		input   string
		verdict domain.Verdict
		path    []string
	}{
		{"0", domain.VerdictAccepted, []string{"EVEN", "EVEN"}},
		{"1", domain.VerdictRejected, []string{"EVEN", "ODD"}},
		{"1001", domain.VerdictAccepted, []string{"EVEN", "ODD", "ODD", "ODD", "EVEN"}},
		{"111", domain.VerdictRejected, []string{"EVEN", "ODD", "EVEN", "ODD"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			res, err := runtime.Simulate(a, tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.verdict, res.Verdict)
			assert.Equal(t, tt.path, res.Path)
			assert.Len(t, res.Path, len(tt.input)+1)
		})
	}
}

func TestSimulate_Preconditions(t *testing.T) {
	t.Run("Empty input is invalid", func(t *testing.T) {
		_, err := runtime.Simulate(parity(t), "")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("Format is checked before the initial state", func(t *testing.T) {
		_, err := runtime.Simulate(domain.New(), "0 1")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("Initial state is checked before the alphabet", func(t *testing.T) {
		a := domain.New()
		require.NoError(t, a.AddSymbol("0"))
		_, err := runtime.Simulate(a, "9")
		assert.ErrorIs(t, err, domain.ErrNoInitialState)
	})

	t.Run("Whole input is checked before the walk", func(t *testing.T) {
		_, err := runtime.Simulate(parity(t), "0102")
		assert.ErrorIs(t, err, domain.ErrUnknownSymbol)
	})
}

func TestSimulate_Halt(t *testing.T) {
	a := parity(t)
	require.True(t, a.RemoveState("ODD"))
	require.NoError(t, a.AddState("ODD"))

	res, err := runtime.Simulate(a, "010")
	require.NoError(t, err)
	assert.Equal(t, domain.VerdictHalted, res.Verdict)
	assert.False(t, res.Accepted())
	assert.Equal(t, "EVEN", res.HaltState)
	assert.Equal(t, "1", res.HaltSymbol)
	assert.Equal(t, []string{"EVEN", "EVEN"}, res.Path)
}

func TestSimulate_DoesNotMutate(t *testing.T) {
	a := parity(t)
	before := a.Clone()
	_, err := runtime.Simulate(a, "1101")
	require.NoError(t, err)
	assert.True(t, a.Equal(before))
}
