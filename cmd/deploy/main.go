// cmd/deploy/main.go
//
// CLI entry point. `deploy` reads a site configuration (a YAML mapping of
// build name to dependency list), orders the builds so every dependency is
// built first, and renders or executes the resulting command sequence.

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/harten/deploy/internal/config"
	"github.com/harten/deploy/internal/graph"
	"github.com/harten/deploy/internal/logging"
	"github.com/harten/deploy/internal/runner"
	"github.com/harten/deploy/internal/script"
	"github.com/harten/deploy/internal/tui"
	"github.com/harten/deploy/internal/views"
)

const usage = `Usage: deploy [options] <command> <config>

  Deploy handles the organization of many build commands for a specific site
  when using the Builder tool. As Builds usually require prior loading of
  modules, and may be done in different variants, the complete software stack
  becomes difficult to track. Deploy manages a set of defined builds and can
  provide organizational overviews.

Commands:
  show      print the commands of all builds ordered by their dependencies;
            typical usage: deploy show site.yaml > buildall.sh && ./buildall.sh
  shell     alias of show
  graph     print a DOT graph of the package dependencies; convert it with
            Graphviz, for example: deploy graph site.yaml | dot -Tx11
  deps      print the dependency tree with stage numbers
  gitlab    print the build pipeline in a .gitlab-ci.yml includable format
  run       execute the ordered commands directly, stopping at the first failure
  browse    browse the execution plan interactively

Options:
  -v, -verbose    debug diagnostics on stderr
  -o <file>       write output to the given file instead of stdout
  -h, -help       print this text
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("deploy", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { fmt.Fprint(stderr, usage) }
	verbose := fs.Bool("v", false, "increase output")
	fs.BoolVar(verbose, "verbose", false, "increase output")
	outPath := fs.String("o", "", "write output to file")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}
	if fs.NArg() != 2 {
		fs.Usage()
		return 1
	}
	command, configPath := fs.Arg(0), fs.Arg(1)
	log := logging.New(stderr, *verbose)

	deployment, err := config.Load(configPath)
	if err != nil {
		return fail(stderr, err)
	}
	log.Debugf("loaded %d builds from %s", deployment.Len(), configPath)

	g := graph.New(deployment)
	log.Debugf("dependency graph has %d nodes", g.Len())

	// Cycles are surfaced before any output or execution, whatever the
	// command: an incorrectly ordered script has expensive consequences.
	plan, err := g.Order()
	if err != nil {
		return fail(stderr, err)
	}
	log.Debugf("execution plan has %d builds", len(plan))

	out := stdout
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			return fail(stderr, fmt.Errorf("deploy: create %s: %w", *outPath, err))
		}
		defer f.Close()
		out = f
	}
	styles := views.PlainStyles()
	if *outPath == "" && isTerminal(stdout) {
		styles = views.DefaultStyles()
	}

	switch command {
	case "show", "shell":
		fmt.Fprint(out, views.NewCommandsView(styles).Render(plan))
	case "graph":
		fmt.Fprint(out, views.DotView{}.Render(g))
	case "deps":
		stages, err := g.Stages()
		if err != nil {
			return fail(stderr, err)
		}
		fmt.Fprint(out, views.TreeView{}.Render(g, stages))
	case "gitlab":
		rendered, err := views.GitlabView{}.Render(g, plan)
		if err != nil {
			return fail(stderr, err)
		}
		fmt.Fprint(out, rendered)
	case "run":
		r := &runner.Runner{Stdout: stdout, Stderr: stderr, Log: log}
		if err := r.Run(context.Background(), script.Sections(plan)); err != nil {
			return fail(stderr, err)
		}
	case "browse":
		p := tea.NewProgram(tui.NewApp(plan), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fail(stderr, fmt.Errorf("deploy: run browser: %w", err))
		}
	default:
		fmt.Fprintf(stderr, "deploy: unknown command %q\n\n", command)
		fs.Usage()
		return 1
	}
	return 0
}

// fail prints the diagnostic and maps the error to the process exit code:
// 2 for configuration problems, 1 for everything else.
func fail(stderr io.Writer, err error) int {
	fmt.Fprintln(stderr, err)
	var cfgErr *config.Error
	if errors.As(err, &cfgErr) {
		return 2
	}
	return 1
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
