// internal/views/dot.go
//
// Graphviz DOT output. The result renders with the usual tooling, for
// example: deploy graph site.yaml | dot -Tx11

package views

import (
	"fmt"
	"strings"

	"github.com/harten/deploy/internal/graph"
)

// DotView renders the dependency graph in DOT language notation.
type DotView struct{}

// Render returns the DOT digraph for the given dependency graph. Nodes are
// labeled with their package string; system-provided packages and induced
// edges are drawn dashed.
func (DotView) Render(g *graph.Graph) string {
	nodes := g.Nodes()
	ids := make(map[*graph.Node]string, len(nodes))
	for i, n := range nodes {
		ids[n] = fmt.Sprintf("node%d", i)
	}

	var out []string
	out = append(out, "digraph deps {")
	out = append(out, `    label="Build Dependencies";`)
	out = append(out, "")
	for _, n := range nodes {
		attrs := []string{fmt.Sprintf("label=%q", n.Package().String())}
		if n.SystemProvided() {
			attrs = append(attrs, `style="dashed"`)
		}
		out = append(out, fmt.Sprintf("    %s [%s];", ids[n], strings.Join(attrs, ", ")))
	}
	out = append(out, "")
	for _, n := range nodes {
		for _, e := range n.Edges() {
			line := fmt.Sprintf("    %s -> %s", ids[n], ids[e.To])
			if e.Kind == graph.EdgeInduced {
				line += ` [style="dashed"]`
			}
			out = append(out, line+";")
		}
	}
	out = append(out, "}")
	return strings.Join(out, "\n") + "\n"
}
