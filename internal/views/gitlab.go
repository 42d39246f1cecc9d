// internal/views/gitlab.go
//
// GitLab CI output: a `.gitlab-ci.yml`-includable document with one job per
// build. Jobs are grouped into stages by dependency depth, so GitLab runs
// each layer of the graph only after the layer below it finished. The exact
// syntax GitLab expects shifts between versions, so treat the output as a
// starting point for site-specific tuning.

package views

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/harten/deploy/internal/build"
	"github.com/harten/deploy/internal/graph"
	"github.com/harten/deploy/internal/script"
)

// GitlabView renders the execution plan as GitLab CI configuration.
type GitlabView struct{}

// Render emits the CI document for the plan. Job order follows the plan;
// `needs` lists the declared dependencies that are themselves builds.
func (GitlabView) Render(g *graph.Graph, plan []build.Build) (string, error) {
	stages, err := g.Stages()
	if err != nil {
		return "", err
	}

	maxStage := 0
	for _, b := range plan {
		if s := stages[b.Package().String()]; s > maxStage {
			maxStage = s
		}
	}
	stageNames := sequence()
	for i := 0; i <= maxStage; i++ {
		stageNames.Content = append(stageNames.Content, scalar(stageName(i)))
	}

	doc := mapping()
	appendPair(doc, scalar("stages"), stageNames)

	for _, section := range script.Sections(plan) {
		pkg := section.Build.Package()
		job := mapping()
		appendPair(job, scalar("stage"), scalar(stageName(stages[pkg.String()])))

		scriptSeq := sequence()
		for _, cmd := range section.Commands {
			scriptSeq.Content = append(scriptSeq.Content, scalar(cmd))
		}
		appendPair(job, scalar("script"), scriptSeq)

		needs := sequence()
		for _, dep := range section.Build.Dependencies() {
			if n, ok := g.Node(dep); ok && !n.SystemProvided() {
				needs.Content = append(needs.Content, scalar(dep.String()))
			}
		}
		if len(needs.Content) > 0 {
			appendPair(job, scalar("needs"), needs)
		}
		appendPair(doc, scalar(pkg.String()), job)
	}

	out, err := yaml.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("views: encode gitlab config: %w", err)
	}
	return string(out), nil
}

func stageName(i int) string { return fmt.Sprintf("stage-%d", i) }

func scalar(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Value: value}
}

func sequence() *yaml.Node {
	return &yaml.Node{Kind: yaml.SequenceNode}
}

func mapping() *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode}
}

func appendPair(m *yaml.Node, key, value *yaml.Node) {
	m.Content = append(m.Content, key, value)
}
