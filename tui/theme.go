package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Name       string
	Title      lipgloss.Color
	Normal     lipgloss.Color
	Button     lipgloss.Color
	ButtonText lipgloss.Color
	Focused    lipgloss.Color
	Accent     lipgloss.Color
	Muted      lipgloss.Color
	Error      lipgloss.Color
}

var themes = []Theme{
	{
		Name:       "Everforest",
		Title:      lipgloss.Color("#A7C080"),
		Normal:     lipgloss.Color("#D3C6AA"),
		Button:     lipgloss.Color("#3D484D"),
		ButtonText: lipgloss.Color("#D3C6AA"),
		Focused:    lipgloss.Color("#83C092"),
		Accent:     lipgloss.Color("#7FBBB3"),
		Muted:      lipgloss.Color("#7A8478"),
		Error:      lipgloss.Color("#E67E80"),
	},
	{
		Name:       "Kiro Purple",
		Title:      lipgloss.Color("205"),
		Normal:     lipgloss.Color("252"),
		Button:     lipgloss.Color("238"),
		ButtonText: lipgloss.Color("252"),
		Focused:    lipgloss.Color("170"),
		Accent:     lipgloss.Color("205"),
		Muted:      lipgloss.Color("241"),
		Error:      lipgloss.Color("196"),
	},
	{
		Name:       "Dracula",
		Title:      lipgloss.Color("#bd93f9"),
		Normal:     lipgloss.Color("#f8f8f2"),
		Button:     lipgloss.Color("#44475a"),
		ButtonText: lipgloss.Color("#f8f8f2"),
		Focused:    lipgloss.Color("#50fa7b"),
		Accent:     lipgloss.Color("#ff79c6"),
		Muted:      lipgloss.Color("#6272a4"),
		Error:      lipgloss.Color("#ff5555"),
	},
	{
		Name:       "Nord",
		Title:      lipgloss.Color("#88c0d0"),
		Normal:     lipgloss.Color("#eceff4"),
		Button:     lipgloss.Color("#3b4252"),
		ButtonText: lipgloss.Color("#eceff4"),
		Focused:    lipgloss.Color("#a3be8c"),
		Accent:     lipgloss.Color("#81a1c1"),
		Muted:      lipgloss.Color("#4c566a"),
		Error:      lipgloss.Color("#bf616a"),
	},
	{
		Name:       "Solarized",
		Title:      lipgloss.Color("#268bd2"),
		Normal:     lipgloss.Color("#839496"),
		Button:     lipgloss.Color("#073642"),
		ButtonText: lipgloss.Color("#93a1a1"),
		Focused:    lipgloss.Color("#859900"),
		Accent:     lipgloss.Color("#2aa198"),
		Muted:      lipgloss.Color("#586e75"),
		Error:      lipgloss.Color("#dc322f"),
	},
	{
		Name:       "Monokai",
		Title:      lipgloss.Color("#f92672"),
		Normal:     lipgloss.Color("#f8f8f2"),
		Button:     lipgloss.Color("#49483e"),
		ButtonText: lipgloss.Color("#f8f8f2"),
		Focused:    lipgloss.Color("#a6e22e"),
		Accent:     lipgloss.Color("#66d9ef"),
		Muted:      lipgloss.Color("#75715e"),
		Error:      lipgloss.Color("#f92672"),
	},
}

// ThemeNames returns the names of all built-in themes
func ThemeNames() []string {
	names := make([]string, len(themes))
	for i, t := range themes {
		names[i] = t.Name
	}
	return names
}

// ThemeIndex finds a theme by case-insensitive name.
// The empty name maps to the first theme.
func ThemeIndex(name string) (int, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, true
	}
	for i, t := range themes {
		if strings.EqualFold(t.Name, name) {
			return i, true
		}
	}
	return 0, false
}

func (t Theme) applyStyles() {
	titleStyle = lipgloss.NewStyle().
		Foreground(t.Title).
		Bold(true)

	normalStyle = lipgloss.NewStyle().
		Foreground(t.Normal)

	layoutTextStyle = lipgloss.NewStyle().
		Foreground(t.Normal).
		Bold(true)

	buttonStyle = lipgloss.NewStyle().
		Foreground(t.ButtonText).
		Background(t.Button).
		Padding(0, 1)

	focusedButtonStyle = lipgloss.NewStyle().
		Foreground(t.Button).
		Background(t.Focused).
		Bold(true).
		Padding(0, 1)

	cycleButtonStyle = lipgloss.NewStyle().
		Foreground(t.Button).
		Background(t.Accent).
		Bold(true).
		Padding(0, 1)

	selectedItemStyle = lipgloss.NewStyle().
		Foreground(t.Focused).
		Bold(true)

	statusStyle = lipgloss.NewStyle().
		Foreground(t.Muted)

	errorStyle = lipgloss.NewStyle().
		Foreground(t.Error)

	inputLabelStyle = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	inputHintStyle = lipgloss.NewStyle().
		Foreground(t.Muted).
		Italic(true)
}
