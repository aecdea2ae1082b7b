package tui

import (
	"github.com/akyairhashvil/countdial/internal/config"
	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Name     string
	Title    lipgloss.Style
	Label    lipgloss.Style
	Rim      lipgloss.Style
	Mark     lipgloss.Style
	Numeral  lipgloss.Style
	Hand     lipgloss.Style
	Pivot    lipgloss.Style
	Shadow   lipgloss.Style
	Status   lipgloss.Style
	Error    lipgloss.Style
	Dim      lipgloss.Style
	Gradient [2]string
}

var Themes = map[string]Theme{
	config.ThemeLight: {
		Name:     "Light",
		Title:    lipgloss.NewStyle().Foreground(lipgloss.Color("63")).Bold(true),
		Label:    lipgloss.NewStyle().Foreground(lipgloss.Color("236")).Bold(true),
		Rim:      lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Mark:     lipgloss.NewStyle().Foreground(lipgloss.Color("238")).Bold(true),
		Numeral:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Hand:     lipgloss.NewStyle().Foreground(lipgloss.Color("205")),
		Pivot:    lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Shadow:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Status:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("160")).Bold(true),
		Dim:      lipgloss.NewStyle().Foreground(lipgloss.Color("248")),
		Gradient: [2]string{"#5A56E0", "#EE6FF8"},
	},
	config.ThemeDark: {
		Name:     "Dark",
		Title:    lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true),  // Cyan
		Label:    lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true), // White
		Rim:      lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Mark:     lipgloss.NewStyle().Foreground(lipgloss.Color("141")).Bold(true), // Purple
		Numeral:  lipgloss.NewStyle().Foreground(lipgloss.Color("117")),
		Hand:     lipgloss.NewStyle().Foreground(lipgloss.Color("212")), // Pink
		Pivot:    lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Shadow:   lipgloss.NewStyle().Foreground(lipgloss.Color("236")),
		Status:   lipgloss.NewStyle().Foreground(lipgloss.Color("246")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("210")).Bold(true),
		Dim:      lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Gradient: [2]string{"#BD93F9", "#FF79C6"},
	},
}

// CurrentTheme holds the currently active theme.
// We initialize it to light to avoid zero-value styles.
var CurrentTheme = Themes[config.ThemeLight]

// SetTheme switches the active theme, reporting whether name exists.
func SetTheme(name string) bool {
	t, ok := Themes[name]
	if ok {
		CurrentTheme = t
	}
	return ok
}

// nextTheme cycles light -> dark -> light.
func nextTheme(name string) string {
	if name == config.ThemeDark {
		return config.ThemeLight
	}
	return config.ThemeDark
}
