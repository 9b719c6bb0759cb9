package graph

import (
	"fmt"
	"slices"
	"strings"

	"github.com/aretw0/turing/pkg/domain"
)

// GraphOverlay contains run data to visualize on the diagram.
type GraphOverlay struct {
	VisitedStates []int
	CurrentState  int
	Halted        bool
}

// GenerateMermaid produces a Mermaid flowchart of the state graph of desc.
// It applies semantic styling:
// - Initial state: ((Circle))
// - Accepting state: (((Double circle)))
// - Default: [Rectangle]
// Edges are labelled "read / write MOVE". Overlay styles (visited/current) are applied if provided.
func GenerateMermaid(desc *domain.Description, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for _, st := range states(desc) {
		id := nodeID(st)
		opener, closer := "[", "]"
		switch {
		case desc.Accepting.Contains(st):
			opener, closer = "(((", ")))"
		case st == domain.InitialState:
			opener, closer = "((", "))"
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", id, opener, id, closer))
	}

	for _, e := range desc.Table.Entries() {
		label := fmt.Sprintf("%d / %d %s", e.Symbol, e.Write, e.Move)
		sb.WriteString(fmt.Sprintf("    %s -- \"%s\" --> %s\n", nodeID(e.State), label, nodeID(e.Next)))
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		seen := make(map[int]bool)
		for _, st := range overlay.VisitedStates {
			if seen[st] {
				continue
			}
			seen[st] = true
			sb.WriteString(fmt.Sprintf("    class %s visited;\n", nodeID(st)))
		}
		if overlay.Halted {
			sb.WriteString(fmt.Sprintf("    class %s current;\n", nodeID(overlay.CurrentState)))
		}
	}

	return sb.String()
}

// states lists declared states plus any state only referenced by transitions or the accepting set.
func states(desc *domain.Description) []int {
	set := make(map[int]bool)
	for st := 0; st < desc.States; st++ {
		set[st] = true
	}
	for _, st := range desc.Accepting.States() {
		set[st] = true
	}
	for _, e := range desc.Table.Entries() {
		set[e.State] = true
		set[e.Next] = true
	}

	out := make([]int, 0, len(set))
	for st := range set {
		out = append(out, st)
	}
	slices.Sort(out)
	return out
}

func nodeID(state int) string {
	if state < 0 {
		return fmt.Sprintf("sm%d", -state)
	}
	return fmt.Sprintf("s%d", state)
}
