package runner

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/harten/deploy/internal/build"
	"github.com/harten/deploy/internal/logging"
	"github.com/harten/deploy/internal/script"
)

func sectionFor(t *testing.T, name string, commands ...string) script.Section {
	t.Helper()
	b, err := build.NewBuild(name, nil)
	if err != nil {
		t.Fatal(err)
	}
	return script.Section{Build: b, Commands: commands}
}

func TestRunExecutesInOrder(t *testing.T) {
	dir := t.TempDir()
	marker := filepath.Join(dir, "order.txt")
	sections := []script.Section{
		sectionFor(t, "first", "printf first >> "+marker),
		sectionFor(t, "second", "printf ,second >> "+marker),
	}
	var out, errOut bytes.Buffer
	r := &Runner{Stdout: &out, Stderr: &errOut, Log: logging.New(&errOut, false)}
	if err := r.Run(context.Background(), sections); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	data, err := os.ReadFile(marker)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "first,second" {
		t.Fatalf("commands ran out of order: %q", data)
	}
}

func TestRunFailFast(t *testing.T) {
	dir := t.TempDir()
	marker := filepath.Join(dir, "after.txt")
	sections := []script.Section{
		sectionFor(t, "doomed", "true", "false", "touch "+marker),
		sectionFor(t, "never", "touch "+marker),
	}
	var out, errOut bytes.Buffer
	r := &Runner{Stdout: &out, Stderr: &errOut, Log: logging.New(&errOut, false)}
	err := r.Run(context.Background(), sections)

	var execErr *ExecError
	if !errors.As(err, &execErr) {
		t.Fatalf("expected *ExecError, got %v", err)
	}
	if execErr.Build != "doomed/*/default" || execErr.Command != "false" {
		t.Fatalf("error should name build and command, got %+v", execErr)
	}
	if !strings.Contains(execErr.Error(), "doomed") {
		t.Fatalf("rendered error should name the build: %v", execErr)
	}
	if _, statErr := os.Stat(marker); !os.IsNotExist(statErr) {
		t.Fatal("no command may run after the first failure")
	}
}

func TestRunForwardsCommandOutput(t *testing.T) {
	sections := []script.Section{sectionFor(t, "echoer", "echo hello")}
	var out, errOut bytes.Buffer
	r := &Runner{Stdout: &out, Stderr: &errOut, Log: logging.New(&errOut, false)}
	if err := r.Run(context.Background(), sections); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if got := out.String(); got != "hello\n" {
		t.Fatalf("stdout = %q, want %q", got, "hello\n")
	}
}

func TestRunEmptyPlan(t *testing.T) {
	r := &Runner{Log: logging.New(nil, false)}
	if err := r.Run(context.Background(), nil); err != nil {
		t.Fatalf("empty plan should succeed: %v", err)
	}
}
