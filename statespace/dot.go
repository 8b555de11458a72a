package statespace

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/rivercross/river"
)

// WriteDOT renders g in Graphviz DOT format. Vertex labels carry the
// depth; the initial and goal states are drawn as double circles.
// Edges between consecutive states of highlight (typically a solution path)
// are drawn bold.
func (g *Graph) WriteDOT(w io.Writer, highlight []river.State) error {
	bold := make(map[[2]river.State]bool, len(highlight))
	for i := 1; i < len(highlight); i++ {
		bold[[2]river.State{highlight[i-1], highlight[i]}] = true
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "digraph rivercross {\n")
	fmt.Fprintf(bw, "\tlabel=%q;\n", fmt.Sprintf("N=%d, capacity=%d", g.model.N(), g.model.Capacity()))
	fmt.Fprintf(bw, "\tnode [shape=circle];\n")

	initial, goal := g.model.Initial(), g.model.Goal()
	for _, s := range g.vertices {
		shape := ""
		if s == initial || s == goal {
			shape = " shape=doublecircle"
		}
		fmt.Fprintf(bw, "\t%q [label=\"%s\\nd=%d\"%s];\n", s.String(), s, g.depth[s], shape)
	}
	for _, s := range g.vertices {
		for _, e := range g.adj[s] {
			style := ""
			if bold[[2]river.State{e.From, e.To}] {
				style = " style=bold"
			}
			fmt.Fprintf(bw, "\t%q -> %q [label=%q%s];\n", e.From.String(), e.To.String(), e.Load.String(), style)
		}
	}
	fmt.Fprintf(bw, "}\n")

	return bw.Flush()
}
