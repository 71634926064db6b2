package main

import (
	"fmt"
	"io"

	"github.com/coregx/waverex/internal/graph"
	"github.com/fatih/color"
)

// exportDOT writes every node allocated in arena as a GraphViz digraph:
// one DOT node per graph node, labeled with its State (terminal nodes
// drawn as double circles), and one unlabeled DOT edge per outgoing
// edge. Back-edges (loops introduced by `*`/`+`) are
// drawn dashed so the rendered graph makes the distinction visible.
func exportDOT(w io.Writer, arena *graph.Arena, head *graph.Node, useColor bool) {
	label := color.New(color.FgCyan).SprintFunc()
	if !useColor {
		label = fmt.Sprint
	}

	fmt.Fprintln(w, "digraph waverex {")
	fmt.Fprintln(w, "    rankdir=LR;")

	for _, n := range arena.Nodes() {
		shape := "circle"
		if !n.HasEdges() {
			shape = "doublecircle"
		}
		fmt.Fprintf(w, "    n%d [shape=%s label=%q];\n", n.ID(), shape, label(stateLabel(n.State)))

		for _, e := range n.Edges() {
			style := ""
			if e.ID() <= n.ID() {
				style = " [style=dashed]"
			}
			fmt.Fprintf(w, "    n%d -> n%d%s;\n", n.ID(), e.ID(), style)
		}
	}

	if head != nil {
		fmt.Fprintf(w, "    _start [shape=point]; _start -> n%d;\n", head.ID())
	}

	fmt.Fprintln(w, "}")
}

func stateLabel(s graph.State) string {
	switch s.Kind {
	case graph.Str:
		return fmt.Sprintf("Str(%q)", s.Str)
	case graph.Set:
		return fmt.Sprintf("Set(%q)", s.Str)
	case graph.Scope:
		return fmt.Sprintf("Scope(%c-%c)", s.Lo, s.Hi)
	case graph.Not:
		return "Not"
	case graph.Dash:
		return "Dash"
	default:
		return s.Kind.String()
	}
}
