package graph

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pomviz/pomviz/coords"
)

// cycleEdgeAttrs marks edges that sit on a shortest dependency cycle.
const cycleEdgeAttrs = " [color=red,penwidth=2]"

// WriteDOT serializes the registry as Graphviz DOT. Every artifact gets
// a synthetic identifier label1..labelN assigned in All() order, so two
// renders of an unmutated registry produce identical output. Edges that
// lie on a shortest cycle (according to det) carry the color/width
// attributes; ordinary edges carry none. A nil det renders every edge
// plain.
func WriteDOT(w io.Writer, reg *Registry, det *CycleDetector) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "digraph {")

	ids := make(map[coords.Coordinates]string, reg.Len())
	id := 1
	for a := range reg.All() {
		label := fmt.Sprintf("label%d", id)
		ids[a.Coords] = label
		fmt.Fprintf(bw, "%s [label=\"%s\"]\n", label, escapeLabel(a.Coords.String()))
		id++
	}

	for a := range reg.All() {
		for dep := range a.DependsOn() {
			attrs := ""
			if det != nil && det.IsOnShortestCycle(a, dep) {
				attrs = cycleEdgeAttrs
			}
			fmt.Fprintf(bw, "%s -> %s%s\n", ids[a.Coords], ids[dep.Coords], attrs)
		}
	}

	fmt.Fprintln(bw, "}")
	return bw.Flush()
}

// escapeLabel escapes characters that would break a quoted DOT label.
func escapeLabel(s string) string {
	r := strings.NewReplacer(`"`, `\"`, "\n", `\n`)
	return r.Replace(s)
}
