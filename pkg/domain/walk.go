package domain

// Walk returns every state reachable from root in a deterministic
// depth-first preorder, visiting each state exactly once.
//
// The visited set is keyed by state identity (pointer), not by name, so the
// traversal terminates on cyclic graphs and self-loops regardless of how
// states are labeled.
func Walk(root *State) []*State {
	if root == nil {
		return nil
	}

	var states []*State
	visited := make(map[*State]bool)

	var visit func(s *State)
	visit = func(s *State) {
		if visited[s] {
			return
		}
		visited[s] = true
		states = append(states, s)

		for _, symbol := range s.Symbols() {
			edge, _ := s.Transition(symbol)
			visit(edge.Target)
		}
	}

	visit(root)
	return states
}
