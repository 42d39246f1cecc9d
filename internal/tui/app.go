// internal/tui/app.go
//
// Interactive browser for an execution plan. It uses bubbletea, which follows
// The Elm Architecture: the App model holds all state, Update reacts to
// messages, View renders the current state to a string. The browser is
// read-only and never executes anything.

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/harten/deploy/internal/build"
	"github.com/harten/deploy/internal/script"
)

// appState represents which "screen" we're on.
type appState int

const (
	statePlan   appState = iota // ordered list of builds
	stateDetail                 // command section of one build
)

var (
	detailHeaderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#5B8DEF")).Bold(true)
	detailTextStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#A0AEC0"))
	freshStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#4CAF50"))
	staleStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#F7B801"))
	commandStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("#999999"))
)

type planItem struct {
	position int
	section  script.Section
}

func (i planItem) Title() string {
	return fmt.Sprintf("%d. %s", i.position+1, i.section.Build.Package())
}

func (i planItem) Description() string {
	deps := len(i.section.Build.Dependencies())
	switch deps {
	case 0:
		return "no declared dependencies"
	case 1:
		return "1 declared dependency"
	default:
		return fmt.Sprintf("%d declared dependencies", deps)
	}
}

func (i planItem) FilterValue() string {
	return i.section.Build.Package().String()
}

// App is the browser model. It holds the full plan plus the emitted command
// sections, so the detail screen never recomputes anything.
type App struct {
	state    appState
	list     list.Model
	plan     []build.Build
	sections []script.Section
	selected int
	width    int
	height   int
}

// NewApp builds the browser for an already-ordered execution plan.
func NewApp(plan []build.Build) *App {
	sections := script.Sections(plan)
	items := make([]list.Item, len(sections))
	for i, section := range sections {
		items[i] = planItem{position: i, section: section}
	}
	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Execution plan"
	l.SetShowStatusBar(false)
	return &App{list: l, plan: plan, sections: sections}
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.list.SetSize(msg.Width, msg.Height-1)
		return a, nil
	case tea.KeyMsg:
		switch a.state {
		case statePlan:
			switch msg.String() {
			case "q", "ctrl+c":
				return a, tea.Quit
			case "enter":
				if item, ok := a.list.SelectedItem().(planItem); ok {
					a.selected = item.position
					a.state = stateDetail
				}
				return a, nil
			}
		case stateDetail:
			switch msg.String() {
			case "q", "ctrl+c":
				return a, tea.Quit
			case "esc", "backspace":
				a.state = statePlan
				return a, nil
			}
		}
	}
	var cmd tea.Cmd
	a.list, cmd = a.list.Update(msg)
	return a, cmd
}

// View implements tea.Model.
func (a *App) View() string {
	if a.state == stateDetail {
		return a.detailView()
	}
	return a.list.View()
}

func (a *App) detailView() string {
	if a.selected < 0 || a.selected >= len(a.sections) {
		return helpStyle.Render("nothing selected")
	}
	section := a.sections[a.selected]
	pkg := section.Build.Package()

	var lines []string
	lines = append(lines, detailHeaderStyle.Render(fmt.Sprintf("# Building %s", pkg)))
	lines = append(lines, detailTextStyle.Render(script.PurgeCommand))
	for _, dep := range section.Build.Dependencies() {
		lines = append(lines, fmt.Sprintf("%-40s", dep.LoadCommand())+a.annotate(dep))
	}
	lines = append(lines, commandStyle.Render(pkg.BuildCommand()))
	lines = append(lines, "")
	lines = append(lines, helpStyle.Render("esc back · q quit"))
	return strings.Join(lines, "\n")
}

// annotate mirrors the commands view provenance labels against the builds
// that precede the selected one in the plan.
func (a *App) annotate(dep build.Package) string {
	label := detailTextStyle.Render("system provided")
	for _, done := range a.plan[:a.selected] {
		if done.Package() == dep {
			return freshStyle.Render("just rebuilt")
		}
		if done.Package().Name() == dep.Name() {
			label = staleStyle.Render("maybe rebuilt")
		}
	}
	return label
}
