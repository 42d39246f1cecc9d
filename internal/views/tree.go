// internal/views/tree.go
//
// Console dependency tree, one node per line with box-drawing branches
// (actually it's UTF-8 art). Roots are the builds nothing else depends on;
// each subtree lists the node's dependencies.

package views

import (
	"fmt"
	"strings"

	"github.com/harten/deploy/internal/graph"
)

type branchSet struct {
	branch  string
	forward string
}

var (
	treeBranch        = branchSet{" ├─╴", " │  "}
	treeLast          = branchSet{" ╰─╴", "    "}
	treeBranchInduced = branchSet{"▶├┄ ", " │  "}
	treeLastInduced   = branchSet{"▶╰┄ ", "    "}
)

// TreeView renders the dependency graph as an indented tree.
type TreeView struct{}

// Render walks the graph from its roots and prints every node with its stage
// number. Stage zero is a leaf; higher stages depend on everything below.
func (v TreeView) Render(g *graph.Graph, stages map[string]int) string {
	var roots []*graph.Node
	for _, n := range g.Nodes() {
		if n.Root() {
			roots = append(roots, n)
		}
	}
	var lines []string
	onPath := make(map[*graph.Node]bool, g.Len())
	for i, root := range roots {
		v.subtree(&lines, onPath, stages, root, graph.EdgeDeclared, "", i == len(roots)-1)
	}
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

func (v TreeView) subtree(lines *[]string, onPath map[*graph.Node]bool, stages map[string]int, n *graph.Node, kind graph.EdgeKind, indent string, last bool) {
	set := treeBranch
	switch {
	case kind == graph.EdgeInduced && last:
		set = treeLastInduced
	case kind == graph.EdgeInduced:
		set = treeBranchInduced
	case last:
		set = treeLast
	}
	label := fmt.Sprintf("%s %d", n.Package(), stages[n.Package().String()])
	if onPath[n] {
		*lines = append(*lines, indent+set.branch+label+" (cycle)")
		return
	}
	*lines = append(*lines, indent+set.branch+label)

	onPath[n] = true
	edges := n.Edges()
	for i, e := range edges {
		v.subtree(lines, onPath, stages, e.To, e.Kind, indent+set.forward, i == len(edges)-1)
	}
	delete(onPath, n)
}
