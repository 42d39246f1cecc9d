// Package runner executes an emitted command sequence directly instead of
// rendering it to a script. Execution is strictly sequential and fail-fast:
// builds install real software, so nothing is retried and nothing is rolled
// back. Whatever completed before a failure stays in place for the user to
// inspect.
package runner

import (
	"context"
	"fmt"
	"io"
	"os/exec"

	"github.com/harten/deploy/internal/logging"
	"github.com/harten/deploy/internal/script"
)

// ExecError reports the first command that failed, identifying the build it
// belongs to.
type ExecError struct {
	Build   string
	Command string
	Err     error
}

func (e *ExecError) Error() string {
	return fmt.Sprintf("runner: build %s: command %q: %v", e.Build, e.Command, e.Err)
}

func (e *ExecError) Unwrap() error { return e.Err }

// Runner runs plan sections against the host shell.
type Runner struct {
	// Stdout and Stderr receive the output of every executed command.
	Stdout io.Writer
	Stderr io.Writer
	// Log receives one diagnostic line per build and per command.
	Log *logging.Logger
}

// Run executes every section command through `sh -c`, in order, stopping at
// the first failure. Already-run builds are left as-is.
func (r *Runner) Run(ctx context.Context, sections []script.Section) error {
	for _, section := range sections {
		pkg := section.Build.Package()
		r.Log.Printf("building %s", pkg)
		for _, command := range section.Commands {
			r.Log.Debugf("exec: %s", command)
			cmd := exec.CommandContext(ctx, "sh", "-c", command)
			cmd.Stdout = r.Stdout
			cmd.Stderr = r.Stderr
			if err := cmd.Run(); err != nil {
				return &ExecError{Build: pkg.String(), Command: command, Err: err}
			}
		}
	}
	return nil
}
