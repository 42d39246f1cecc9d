package views

import "github.com/charmbracelet/lipgloss"

// Styles groups the terminal styles the views share. Plain styles keep the
// output byte-identical to the text itself, which is what gets written when
// the result goes to a pipe or a file.
type Styles struct {
	Header  lipgloss.Style // section comments
	Muted   lipgloss.Style // purge lines, system-provided annotations
	Fresh   lipgloss.Style // dependencies rebuilt earlier in the plan
	Stale   lipgloss.Style // name matches a rebuilt package, version differs
	Command lipgloss.Style // the Builder invocation itself
}

// DefaultStyles returns the colored style set for interactive terminals.
func DefaultStyles() Styles {
	return Styles{
		Header:  lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Fresh:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		Stale:   lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		Command: lipgloss.NewStyle().Bold(true),
	}
}

// PlainStyles returns styles that render text unchanged.
func PlainStyles() Styles {
	return Styles{}
}
