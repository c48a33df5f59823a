// Package theme holds the reusable Lip Gloss styles shared by the bundled
// region and widget primitives.
package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes the style set the bundled primitives draw with.
type Styles struct {
	PanelTitle   *lipgloss.Style
	PanelBody    *lipgloss.Style
	GroupBorder  *lipgloss.Style
	GroupTitle   *lipgloss.Style
	Label        *lipgloss.Style
	Button       *lipgloss.Style
	ButtonActive *lipgloss.Style
	Divider      *lipgloss.Style
	InputPrompt  *lipgloss.Style
	PickerMatch  *lipgloss.Style
	PickerItem   *lipgloss.Style
}

var defaultStyles = Styles{
	PanelTitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	PanelBody: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	),
	GroupBorder: ptr(
		lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")),
	),
	GroupTitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	Label: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Button: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")).Background(lipgloss.Color("238")),
	),
	ButtonActive: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("33")).Bold(true),
	),
	Divider: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	),
	InputPrompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	PickerMatch: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
	),
	PickerItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
}

// Default exposes the standard style set used across the bundled primitives.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
