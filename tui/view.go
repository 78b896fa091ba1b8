package tui

import (
	"strings"

	"github.com/muesli/reflow/truncate"
)

const (
	appPaddingTop  = 1
	appPaddingLeft = 2

	appTitle         = "Layout Cycle"
	cycleButtonLabel = "Cycle layout"
)

func (m Model) statusView() string {
	msg := m.statusMessage
	if msg == "" {
		return ""
	}
	if m.width > 2*appPaddingLeft {
		msg = truncate.StringWithTail(msg, uint(m.width-2*appPaddingLeft), "…")
	}
	if m.statusIsError {
		return errorStyle.Render("⚠ " + msg)
	}
	return statusStyle.Render(msg)
}

func (m Model) themePickerView() string {
	var b strings.Builder
	b.WriteString(inputLabelStyle.Render("🎨 Select Theme"))
	b.WriteString(inputHintStyle.Render("  (↑/k ↓/j to preview, enter to select, esc to cancel)"))
	b.WriteString("\n\n")

	for i, t := range themes {
		cursor := "  "
		if i == m.previewTheme {
			cursor = "▸ "
		}
		name := t.Name
		if i == m.previewTheme {
			name = selectedItemStyle.Render(name)
		} else {
			name = normalStyle.Render(name)
		}
		b.WriteString(cursor + name + "\n")
	}
	return b.String()
}

// View renders the UI
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(appTitle) + "\n\n")
	b.WriteString(layoutTextStyle.Render(m.display.text) + "\n\n")
	b.WriteString(m.zones.Mark(zoneCycleButton, cycleButtonStyle.Render(cycleButtonLabel)) + "\n\n")
	b.WriteString(m.menu.view(m.zones) + "\n\n")
	b.WriteString(m.statusView() + "\n\n")

	switch m.mode {
	case modeTheme:
		b.WriteString(m.themePickerView())
	default:
		b.WriteString(m.help.View(m.keys))
	}

	return m.zones.Scan(appStyle.Render(b.String()))
}
