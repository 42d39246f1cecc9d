// Package script turns an execution plan into the ordered shell commands that
// realize it. Emission is pure formatting over the plan: the same sections
// feed both the rendered `show` output and the `run` executor, so the two can
// never disagree about what happens in which order.
package script

import "github.com/harten/deploy/internal/build"

// PurgeCommand resets the module environment before each build so that only
// the declared dependencies are loaded.
const PurgeCommand = "module purge"

// Section holds the commands for one build: the environment purge, one module
// load per declared dependency in declared order, then the Builder invocation.
type Section struct {
	Build    build.Build
	Commands []string
}

// Sections emits one section per plan entry, in plan order.
func Sections(plan []build.Build) []Section {
	sections := make([]Section, 0, len(plan))
	for _, b := range plan {
		deps := b.Dependencies()
		commands := make([]string, 0, len(deps)+2)
		commands = append(commands, PurgeCommand)
		for _, dep := range deps {
			commands = append(commands, dep.LoadCommand())
		}
		commands = append(commands, b.Package().BuildCommand())
		sections = append(sections, Section{Build: b, Commands: commands})
	}
	return sections
}

// Flatten concatenates all section commands into one sequence.
func Flatten(sections []Section) []string {
	var commands []string
	for _, s := range sections {
		commands = append(commands, s.Commands...)
	}
	return commands
}
