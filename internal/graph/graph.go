package graph

import (
	"github.com/harten/deploy/internal/build"
)

// EdgeKind distinguishes dependency edges declared in the configuration from
// edges induced between version-specific and wildcard packages of the same
// name.
type EdgeKind string

const (
	EdgeDeclared EdgeKind = "declared"
	EdgeInduced  EdgeKind = "induced"
)

// Edge is a directed dependency edge: the owning node requires To.
type Edge struct {
	To   *Node
	Kind EdgeKind
}

// Node is one package in the dependency graph. Nodes backed by a declared
// Build are build steps; the rest are system-provided leaves that participate
// in ordering but never appear in the execution plan.
type Node struct {
	pkg        build.Package
	build      *build.Build
	edges      []Edge
	dependents int
}

// Package returns the package this node stands for.
func (n *Node) Package() build.Package { return n.pkg }

// Build returns the declared build backing this node, if any.
func (n *Node) Build() (build.Build, bool) {
	if n.build == nil {
		return build.Build{}, false
	}
	return *n.build, true
}

// SystemProvided reports whether the node is a dependency that no build in
// the configuration produces.
func (n *Node) SystemProvided() bool { return n.build == nil }

// Edges returns the outgoing dependency edges, declared edges first in
// declaration order. The returned slice is a copy.
func (n *Node) Edges() []Edge {
	if len(n.edges) == 0 {
		return nil
	}
	edges := make([]Edge, len(n.edges))
	copy(edges, n.edges)
	return edges
}

// Root reports whether no other node depends on this one.
func (n *Node) Root() bool { return n.dependents == 0 }

// Graph is the directed dependency graph of one deployment. It is a derived,
// transient view: construct it fresh from the loaded configuration on every
// invocation.
type Graph struct {
	nodes   map[string]*Node
	ordered []*Node
}

// New constructs the graph for a deployment. Build nodes are added in
// declaration order, then an edge build -> dependency for every declared
// dependency; dependencies not declared as builds become system-provided leaf
// nodes. Finally every version-specific package is linked to the wildcard
// package of the same name with an induced edge, so views and ordering see
// the relation between "foo" and "foo/1.2".
func New(deployment build.Deployment) *Graph {
	builds := deployment.Builds()
	g := &Graph{nodes: make(map[string]*Node, len(builds))}

	for i := range builds {
		pkg := builds[i].Package()
		if _, ok := g.nodes[pkg.String()]; ok {
			continue // duplicate declaration, the first one wins
		}
		g.add(&Node{pkg: pkg, build: &builds[i]})
	}
	for i := range builds {
		from := g.nodes[builds[i].Package().String()]
		if from.build != &builds[i] {
			continue // edges belong to the winning declaration
		}
		for _, dep := range builds[i].Dependencies() {
			to := g.ensure(dep)
			from.edges = append(from.edges, Edge{To: to, Kind: EdgeDeclared})
			to.dependents++
		}
	}
	g.linkWildcards()
	return g
}

// Nodes returns all nodes: builds in declaration order, then leaves in first
// reference order. The returned slice is a copy.
func (g *Graph) Nodes() []*Node {
	nodes := make([]*Node, len(g.ordered))
	copy(nodes, g.ordered)
	return nodes
}

// Node looks a node up by its package.
func (g *Graph) Node(pkg build.Package) (*Node, bool) {
	n, ok := g.nodes[pkg.String()]
	return n, ok
}

// Len returns the number of nodes, builds and leaves included.
func (g *Graph) Len() int { return len(g.ordered) }

func (g *Graph) add(n *Node) *Node {
	g.nodes[n.pkg.String()] = n
	g.ordered = append(g.ordered, n)
	return n
}

func (g *Graph) ensure(pkg build.Package) *Node {
	if n, ok := g.nodes[pkg.String()]; ok {
		return n
	}
	return g.add(&Node{pkg: pkg})
}

// linkWildcards adds induced edges from every version-specific node to the
// wildcard node of the same name, mirroring how a dependency on plain "foo"
// relates to a declared "foo/1.2" build.
func (g *Graph) linkWildcards() {
	for _, wild := range g.ordered {
		if !wild.pkg.Wildcard() {
			continue
		}
		for _, spec := range g.ordered {
			if spec.pkg.Wildcard() || spec.pkg.Name() != wild.pkg.Name() {
				continue
			}
			if spec.dependsOn(wild) {
				continue
			}
			spec.edges = append(spec.edges, Edge{To: wild, Kind: EdgeInduced})
			wild.dependents++
		}
	}
}

func (n *Node) dependsOn(other *Node) bool {
	for _, e := range n.edges {
		if e.To == other {
			return true
		}
	}
	return false
}
