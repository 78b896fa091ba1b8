package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"layoutcycle/layout"
	"layoutcycle/log"
)

// onCycleClicked advances to the next layout and redraws the display and menu
func (m *Model) onCycleClicked() {
	next := m.state.Cycle()
	m.display.renderName(next)
	m.menu.rebuild(m.state)
	log.Printf("cycle: layout=%s index=%d", next, m.state.SelectionIndex)
}

// onMenuButtonClicked jumps to the layout named by a menu button payload.
// An unknown option is rejected before the state is touched.
func (m *Model) onMenuButtonClicked(option string) error {
	n, err := layout.Parse(option)
	if err != nil {
		return err
	}
	if err := m.state.Select(n); err != nil {
		return err
	}
	m.display.renderName(m.state.Current())
	m.menu.rebuild(m.state)
	log.Printf("menu: layout=%s index=%d", n, m.state.SelectionIndex)
	return nil
}

// pressMenuButton clicks the i-th menu button, if there is one
func (m *Model) pressMenuButton(i int) tea.Cmd {
	b, ok := m.menu.button(i)
	if !ok {
		return nil
	}
	return m.handleMenuClick(b.Option)
}

// handleMenuClick runs the menu handler and reports a rejected payload
func (m *Model) handleMenuClick(option string) tea.Cmd {
	if err := m.onMenuButtonClicked(option); err != nil {
		log.Printf("menu click rejected: %v", err)
		return m.setError(err.Error())
	}
	return nil
}

// setStatus shows msg on the status line and schedules it to clear
func (m *Model) setStatus(msg string) tea.Cmd {
	m.statusMessage = msg
	m.statusIsError = false
	return m.scheduleStatusClear()
}

func (m *Model) setError(msg string) tea.Cmd {
	m.statusMessage = msg
	m.statusIsError = true
	return m.scheduleStatusClear()
}

func (m *Model) scheduleStatusClear() tea.Cmd {
	set := time.Now()
	m.statusMessageTime = set
	return tea.Tick(statusMessageTTL, func(time.Time) tea.Msg {
		return clearStatusMsg(set)
	})
}

// applyConfig adopts a reloaded config. A config naming an unknown theme is
// rejected as a whole and nothing else from it is applied.
func (m *Model) applyConfig(msg ConfigUpdateMsg) tea.Cmd {
	if msg.Err != nil {
		return m.setError("config reload failed: " + msg.Err.Error())
	}
	if msg.Config == nil {
		return nil
	}

	idx, ok := ThemeIndex(msg.Config.Theme)
	if !ok {
		return m.setError(fmt.Sprintf("config reload failed: unknown theme %q", msg.Config.Theme))
	}

	m.help.ShowAll = msg.Config.ShowHelp
	if m.mode == modeTheme {
		// Escape from the picker restores the reloaded theme
		m.originalTheme = idx
		return m.setStatus("config reloaded")
	}
	m.themeIndex = idx
	themes[idx].applyStyles()
	return m.setStatus("config reloaded")
}
