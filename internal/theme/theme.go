package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the menu
// surfaces.
type Styles struct {
	Bar           *lipgloss.Style
	BarTitle      *lipgloss.Style
	BarTitleOpen  *lipgloss.Style
	Item          *lipgloss.Style
	SelectedItem  *lipgloss.Style
	DisabledItem  *lipgloss.Style
	Separator     *lipgloss.Style
	Popup         *lipgloss.Style
	Filter        *lipgloss.Style
	FilterPrompt  *lipgloss.Style
	Footer        *lipgloss.Style
	StatusMessage *lipgloss.Style
}

var defaultStyles = Styles{
	Bar: ptr(
		lipgloss.NewStyle().Background(lipgloss.Color("236")).Foreground(lipgloss.Color("249")),
	),
	BarTitle: ptr(
		lipgloss.NewStyle().Background(lipgloss.Color("236")).Foreground(lipgloss.Color("249")).Padding(0, 1),
	),
	BarTitleOpen: ptr(
		lipgloss.NewStyle().Background(lipgloss.Color("33")).Foreground(lipgloss.Color("255")).Bold(true).Padding(0, 1),
	),
	Item: ptr(
		lipgloss.NewStyle().Background(lipgloss.Color("237")).Foreground(lipgloss.Color("249")),
	),
	SelectedItem: ptr(
		lipgloss.NewStyle().Background(lipgloss.Color("33")).Foreground(lipgloss.Color("255")).Bold(true),
	),
	DisabledItem: ptr(
		lipgloss.NewStyle().Background(lipgloss.Color("237")).Foreground(lipgloss.Color("241")),
	),
	Separator: ptr(
		lipgloss.NewStyle().Background(lipgloss.Color("237")).Foreground(lipgloss.Color("240")),
	),
	Popup: ptr(
		lipgloss.NewStyle().Background(lipgloss.Color("237")),
	),
	Filter: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	FilterPrompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	),
	StatusMessage: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
