package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/automata/pkg/domain"
)

// Tree produces an indented depth-first rendering of a snapshot's graph,
// one line per state or edge. Already-visited targets are not expanded
// again, so cyclic graphs render finitely.
//
//	> p *
//	    0 -> p
//	    1 -> q
//	    q
//	        0 -> q
//	        1 -> p
//
// "> " marks the initial state, a trailing " *" marks accepting states.
func Tree(snap *domain.Snapshot) string {
	records := make(map[string]domain.StateRecord, len(snap.States))
	var root string
	for _, state := range snap.States {
		records[state.Name] = state
		if state.Initial {
			root = state.Name
		}
	}
	if root == "" {
		return ""
	}

	var sb strings.Builder
	visited := make(map[string]bool)

	var visit func(name string, depth int)
	visit = func(name string, depth int) {
		if visited[name] {
			return
		}
		visited[name] = true

		state := records[name]
		indent := strings.Repeat("    ", depth)
		sb.WriteString(indent + stateLabel(state) + "\n")

		for _, t := range state.Transitions {
			edge := fmt.Sprintf("%s%s%s -> %s", indent, "    ", t.Symbol, t.Target)
			if t.Output != "" {
				edge += fmt.Sprintf(" [%s]", t.Output)
			}
			sb.WriteString(edge + "\n")
			visit(t.Target, depth+1)
		}
	}

	visit(root, 0)
	return sb.String()
}

func stateLabel(state domain.StateRecord) string {
	label := state.Name
	if state.Output != "" {
		label = fmt.Sprintf("%s / %s", state.Name, state.Output)
	}
	if state.Initial {
		label = "> " + label
	}
	if state.Accepting {
		label += " *"
	}
	return label
}
