// Package graph renders machine snapshots as read-only textual diagrams.
//
// Rendering is deterministic: identical machine structure renders to an
// identical string. Nothing here mutates the machine.
package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/automata/pkg/domain"
)

// Mermaid produces a Mermaid flowchart from a snapshot.
// It applies semantic styling:
//   - Initial state: ((Circle))
//   - Others: [Rectangle]
//   - Accepting states and the current position get classDef overlays.
//
// Edge labels show the input symbol, plus "/ output" for Mealy edges.
func Mermaid(snap *domain.Snapshot) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for _, state := range snap.States {
		safeID := sanitizeMermaidID(state.Name)

		opener, closer := "[", "]"
		if state.Initial {
			opener, closer = "((", "))"
		}

		label := state.Name
		if state.Output != "" {
			label = fmt.Sprintf("%s / %s", state.Name, state.Output)
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", safeID, opener, label, closer))

		for _, t := range state.Transitions {
			edgeLabel := string(t.Symbol)
			if t.Output != "" {
				edgeLabel = fmt.Sprintf("%s / %s", t.Symbol, t.Output)
			}
			sb.WriteString(fmt.Sprintf("    %s -- \"%s\" --> %s\n",
				safeID, escapeMermaidLabel(edgeLabel), sanitizeMermaidID(t.Target)))
		}
	}

	sb.WriteString("\n    %% Overlay Styles\n")
	sb.WriteString("    classDef accepting fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
	sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")
	for _, state := range snap.States {
		if state.Accepting {
			sb.WriteString(fmt.Sprintf("    class %s accepting;\n", sanitizeMermaidID(state.Name)))
		}
	}
	if snap.Current != "" {
		sb.WriteString(fmt.Sprintf("    class %s current;\n", sanitizeMermaidID(snap.Current)))
	}

	return sb.String()
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	return s
}

func escapeMermaidLabel(label string) string {
	return strings.ReplaceAll(label, "\"", "'")
}
