package statemachine

import (
	"fmt"
	"strings"
)

// DOT renders the transition table of sm as Graphviz source.
// Edges appear in registration order; current, when non-nil, is drawn filled.
func DOT(name string, sm StateMachine, current State) string {
	var b strings.Builder

	fmt.Fprintf(&b, "digraph %q {\n", name)
	b.WriteString("  rankdir=LR;\n")
	b.WriteString("  node [shape=box, style=rounded];\n")

	seen := make(map[string]bool)
	node := func(s State) {
		n := s.Name()
		if seen[n] {
			return
		}
		seen[n] = true
		if current != nil && current.Name() == n {
			fmt.Fprintf(&b, "  %q [style=\"rounded,filled\"];\n", n)
			return
		}
		fmt.Fprintf(&b, "  %q;\n", n)
	}

	transitions := sm.Transitions()
	for _, t := range transitions {
		node(t.From)
		node(t.To)
	}
	for _, t := range transitions {
		label := t.Event.Name()
		if len(t.Guards) > 0 {
			label += " [guarded]"
		}
		fmt.Fprintf(&b, "  %q -> %q [label=%q];\n", t.From.Name(), t.To.Name(), label)
	}

	b.WriteString("}\n")
	return b.String()
}
