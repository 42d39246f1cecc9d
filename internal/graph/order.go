package graph

import (
	"fmt"
	"strings"

	"github.com/harten/deploy/internal/build"
)

// CycleError reports that the declared builds transitively depend on
// themselves. Cycle holds the package strings along the offending path, with
// the entry point repeated at the end.
type CycleError struct {
	Cycle []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("graph: dependency cycle: %s", strings.Join(e.Cycle, " -> "))
}

type mark uint8

const (
	unvisited mark = iota
	inProgress
	done
)

// Order returns the execution plan: every declared build, each one strictly
// after all of its declared (and induced) dependencies. The traversal is a
// depth-first topological sort that starts from the builds in declaration
// order and descends each dependency list in declared order, so identical
// configurations always produce identical plans. System-provided leaves are
// traversed but never emitted.
func (g *Graph) Order() ([]build.Build, error) {
	marks := make(map[*Node]mark, len(g.ordered))
	plan := make([]build.Build, 0, len(g.ordered))
	var path []*Node

	var visit func(n *Node) error
	visit = func(n *Node) error {
		switch marks[n] {
		case done:
			return nil
		case inProgress:
			return cycleError(path, n)
		}
		marks[n] = inProgress
		path = append(path, n)
		for _, e := range n.edges {
			if err := visit(e.To); err != nil {
				return err
			}
		}
		path = path[:len(path)-1]
		marks[n] = done
		if n.build != nil {
			plan = append(plan, *n.build)
		}
		return nil
	}

	for _, n := range g.ordered {
		if err := visit(n); err != nil {
			return nil, err
		}
	}
	return plan, nil
}

// cycleError cuts the offending loop out of the traversal stack.
func cycleError(path []*Node, repeated *Node) *CycleError {
	start := 0
	for i, n := range path {
		if n == repeated {
			start = i
			break
		}
	}
	cycle := make([]string, 0, len(path)-start+1)
	for _, n := range path[start:] {
		cycle = append(cycle, n.pkg.String())
	}
	cycle = append(cycle, repeated.pkg.String())
	return &CycleError{Cycle: cycle}
}

// Stages computes each node's stage: the longest chain of builds strictly
// below it. System-provided leaves sit at stage zero and add no depth, so a
// build that needs only system packages is stage zero too. Stage numbers
// drive the GitLab view, where jobs of one stage may build in any order but
// stages run strictly in sequence. Returns a CycleError for cyclic graphs.
func (g *Graph) Stages() (map[string]int, error) {
	marks := make(map[*Node]mark, len(g.ordered))
	stages := make(map[string]int, len(g.ordered))
	var path []*Node

	var depth func(n *Node) (int, error)
	depth = func(n *Node) (int, error) {
		if marks[n] == done {
			return stages[n.pkg.String()], nil
		}
		if marks[n] == inProgress {
			return 0, cycleError(path, n)
		}
		marks[n] = inProgress
		path = append(path, n)
		stage := 0
		for _, e := range n.edges {
			d, err := depth(e.To)
			if err != nil {
				return 0, err
			}
			if e.To.build != nil {
				d++
			}
			if d > stage {
				stage = d
			}
		}
		path = path[:len(path)-1]
		marks[n] = done
		stages[n.pkg.String()] = stage
		return stage, nil
	}

	for _, n := range g.ordered {
		if _, err := depth(n); err != nil {
			return nil, err
		}
	}
	return stages, nil
}
