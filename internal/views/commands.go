// internal/views/commands.go
//
// The commands view renders an execution plan as a POSIX-shell script:
// `deploy show site.yaml > buildall.sh && ./buildall.sh`. Every load line
// carries an annotation telling the reader whether the dependency comes from
// the system or from a build earlier in the plan.

package views

import (
	"fmt"
	"strings"

	"github.com/harten/deploy/internal/build"
	"github.com/harten/deploy/internal/script"
)

const (
	annotationSystem       = "system provided"
	annotationJustRebuilt  = "just rebuilt"
	annotationMaybeRebuilt = "maybe rebuilt"
)

// CommandsView renders the ordered build commands of a plan.
type CommandsView struct {
	styles Styles
}

// NewCommandsView creates a commands view with the given style set.
func NewCommandsView(styles Styles) *CommandsView {
	return &CommandsView{styles: styles}
}

// Render returns the full command script for the plan, one section per build.
func (v *CommandsView) Render(plan []build.Build) string {
	var lines []string
	var done []build.Package
	for _, section := range script.Sections(plan) {
		pkg := section.Build.Package()
		lines = append(lines, "", v.styles.Header.Render(fmt.Sprintf("# Building %s", pkg)))
		lines = append(lines, v.styles.Muted.Render(script.PurgeCommand))
		for _, dep := range section.Build.Dependencies() {
			lines = append(lines, v.loadLine(dep, done))
		}
		lines = append(lines, v.styles.Command.Render(pkg.BuildCommand()))
		done = append(done, pkg)
	}
	return strings.Join(lines, "\n") + "\n"
}

// loadLine formats one module load with its provenance annotation.
func (v *CommandsView) loadLine(dep build.Package, done []build.Package) string {
	info := v.styles.Muted.Render(annotationSystem)
	for _, pkg := range done {
		if pkg == dep {
			info = v.styles.Fresh.Render(annotationJustRebuilt)
			break
		}
		if pkg.Name() == dep.Name() {
			info = v.styles.Stale.Render(annotationMaybeRebuilt)
		}
	}
	return fmt.Sprintf("%-40s", dep.LoadCommand()) + v.styles.Header.Render("# ") + info
}
