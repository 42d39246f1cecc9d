package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/harten/deploy/internal/build"
)

func testPlan(t *testing.T) []build.Build {
	t.Helper()
	boost, err := build.NewBuild("boost", []string{"gcc"})
	if err != nil {
		t.Fatal(err)
	}
	cooltool, err := build.NewBuild("cooltool", []string{"gcc", "boost"})
	if err != nil {
		t.Fatal(err)
	}
	return []build.Build{boost, cooltool}
}

func resized(t *testing.T, app *App) *App {
	t.Helper()
	model, _ := app.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return model.(*App)
}

func TestPlanListShowsBuilds(t *testing.T) {
	app := resized(t, NewApp(testPlan(t)))
	view := app.View()
	for _, want := range []string{"boost", "cooltool"} {
		if !strings.Contains(view, want) {
			t.Fatalf("plan view should list %q:\n%s", want, view)
		}
	}
}

func TestEnterOpensDetailAndEscReturns(t *testing.T) {
	app := resized(t, NewApp(testPlan(t)))

	model, _ := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	app = model.(*App)
	if app.state != stateDetail {
		t.Fatalf("enter should open the detail view, state = %d", app.state)
	}
	view := app.View()
	for _, want := range []string{"# Building boost/*/default", "module purge", "module load gcc", "build boost"} {
		if !strings.Contains(view, want) {
			t.Fatalf("detail view should contain %q:\n%s", want, view)
		}
	}

	model, _ = app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	app = model.(*App)
	if app.state != statePlan {
		t.Fatalf("esc should return to the plan list, state = %d", app.state)
	}
}

func TestDetailAnnotatesRebuiltDependency(t *testing.T) {
	app := resized(t, NewApp(testPlan(t)))
	app.selected = 1
	app.state = stateDetail
	view := app.View()
	if !strings.Contains(view, "just rebuilt") {
		t.Fatalf("boost precedes cooltool and must be annotated:\n%s", view)
	}
	if !strings.Contains(view, "system provided") {
		t.Fatalf("gcc is system provided:\n%s", view)
	}
}

func TestQuitKey(t *testing.T) {
	app := resized(t, NewApp(testPlan(t)))
	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("q should quit")
	}
	if msg := cmd(); msg != tea.Quit() {
		t.Fatalf("expected tea.Quit, got %#v", msg)
	}
}
