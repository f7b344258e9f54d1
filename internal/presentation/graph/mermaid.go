package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/fsmd/pkg/domain"
)

// GraphOverlay highlights a simulation on top of the automaton.
type GraphOverlay struct {
	// VisitedStates is the simulated path, in order.
	VisitedStates []string
	// CurrentState is where the simulation ended.
	CurrentState string
}

// NewOverlay builds an overlay from a simulated path.
func NewOverlay(path []string) *GraphOverlay {
	if len(path) == 0 {
		return nil
	}
	return &GraphOverlay{VisitedStates: path, CurrentState: path[len(path)-1]}
}

// GenerateMermaid produces a Mermaid flowchart of the automaton.
// It applies semantic styling:
// - Final state: (((Double circle)))
// - Other states: (Rounded)
// - Initial state: entered from a small start marker
// Transitions sharing the same source and destination are merged into one
// edge labelled with every symbol. Overlay styles are appended when given.
func GenerateMermaid(a *domain.Automaton, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")

	if initial, ok := a.Initial(); ok {
		sb.WriteString("    start(( ))\n")
		sb.WriteString(fmt.Sprintf("    start --> %s\n", nodeID(initial)))
	}

	for _, state := range a.States() {
		opener, closer := "(", ")"
		if a.IsFinal(state) {
			opener, closer = "(((", ")))"
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", nodeID(state), opener, state, closer))
	}

	type edge struct{ from, to string }
	var order []edge
	labels := make(map[edge][]string)
	for _, t := range a.Transitions() {
		e := edge{t.From, t.To}
		if _, seen := labels[e]; !seen {
			order = append(order, e)
		}
		labels[e] = append(labels[e], t.Symbol)
	}
	for _, e := range order {
		sb.WriteString(fmt.Sprintf("    %s -- \"%s\" --> %s\n",
			nodeID(e.from), strings.Join(labels[e], ", "), nodeID(e.to)))
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) so labels stay readable on either theme.
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		visited := make(map[string]bool)
		for _, state := range overlay.VisitedStates {
			if visited[state] || state == overlay.CurrentState || !a.HasState(state) {
				continue
			}
			visited[state] = true
			sb.WriteString(fmt.Sprintf("    class %s visited;\n", nodeID(state)))
		}
		if overlay.CurrentState != "" && a.HasState(overlay.CurrentState) {
			sb.WriteString(fmt.Sprintf("    class %s current;\n", nodeID(overlay.CurrentState)))
		}
	}

	return sb.String()
}

// nodeID prefixes state names so they never collide with Mermaid keywords or the start marker.
func nodeID(state string) string {
	return "s_" + state
}
