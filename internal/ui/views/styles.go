package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title       lipgloss.Style
	Dim         lipgloss.Style
	Status      lipgloss.Style
	Help        lipgloss.Style
	Main        lipgloss.Style
	Prompt      lipgloss.Style
	Highlight   lipgloss.Style
	Icon        lipgloss.Style
	GroupHeader lipgloss.Style
	Track       lipgloss.Style
	TrackNumber lipgloss.Style
	Duration    lipgloss.Style
	NoResults   lipgloss.Style
	StatusError lipgloss.Style
	Overlay     lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Dim: lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
		Help:        lipgloss.NewStyle().Faint(true),
		Main:        lipgloss.NewStyle().Padding(0, 1),
		Prompt:      lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Highlight:   lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Icon:        lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		GroupHeader: lipgloss.NewStyle().Bold(true),
		Track:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		TrackNumber: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Duration:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		NoResults: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Padding(1, 2),
		StatusError: lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		Overlay: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(1, 2),
	}
}
