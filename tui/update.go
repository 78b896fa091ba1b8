package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.mode {
		case modeTheme:
			return m.updateThemeMode(msg)
		default:
			return m.updateNormalMode(msg)
		}

	case tea.MouseMsg:
		if m.mode != modeNormal {
			return m, nil
		}
		return m.updateMouse(msg)

	case CycleClickMsg:
		m.onCycleClicked()
		return m, nil

	case MenuClickMsg:
		cmd := m.handleMenuClick(msg.Option)
		return m, cmd

	case ConfigUpdateMsg:
		cmd := m.applyConfig(msg)
		return m, tea.Batch(cmd, m.waitForConfigUpdate())

	case clearStatusMsg:
		if time.Time(msg).Equal(m.statusMessageTime) {
			m.statusMessage = ""
			m.statusIsError = false
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width - 2*appPaddingLeft
	}

	return m, nil
}

func (m Model) updateNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Theme):
		m.mode = modeTheme
		m.originalTheme = m.themeIndex
		m.previewTheme = m.themeIndex
		return m, nil

	case key.Matches(msg, m.keys.Cycle):
		m.onCycleClicked()
		return m, nil

	case key.Matches(msg, m.keys.Menu1):
		cmd := m.pressMenuButton(0)
		return m, cmd

	case key.Matches(msg, m.keys.Menu2):
		cmd := m.pressMenuButton(1)
		return m, cmd

	case key.Matches(msg, m.keys.NextFocus):
		m.menu.moveFocus(1)
		return m, nil

	case key.Matches(msg, m.keys.PrevFocus):
		m.menu.moveFocus(-1)
		return m, nil

	case key.Matches(msg, m.keys.Press):
		cmd := m.pressMenuButton(m.menu.focus)
		return m, cmd
	}

	return m, nil
}

// updateMouse routes a left press to the button whose zone contains it
func (m Model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	if m.zones.Get(zoneCycleButton).InBounds(msg) {
		m.onCycleClicked()
		return m, nil
	}

	// Only the current buttons are consulted, so a zone left over from a
	// previous frame cannot deliver a stale payload.
	for _, b := range m.menu.buttons {
		if m.zones.Get(menuZoneID(b.Option)).InBounds(msg) {
			cmd := m.handleMenuClick(b.Option)
			return m, cmd
		}
	}

	return m, nil
}

func (m Model) updateThemeMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		m.themeIndex = m.originalTheme
		themes[m.themeIndex].applyStyles()
		m.mode = modeNormal
		return m, nil
	case tea.KeyEnter:
		m.themeIndex = m.previewTheme
		themes[m.themeIndex].applyStyles()
		m.mode = modeNormal
		cmd := m.setStatus("Theme: " + themes[m.themeIndex].Name)
		return m, cmd
	case tea.KeyUp, tea.KeyShiftTab:
		m.previewPrev()
		return m, nil
	case tea.KeyDown, tea.KeyTab:
		m.previewNext()
		return m, nil
	}

	switch msg.String() {
	case "k":
		m.previewPrev()
	case "j":
		m.previewNext()
	case "q":
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) previewPrev() {
	if m.previewTheme > 0 {
		m.previewTheme--
		themes[m.previewTheme].applyStyles()
	}
}

func (m *Model) previewNext() {
	if m.previewTheme < len(themes)-1 {
		m.previewTheme++
		themes[m.previewTheme].applyStyles()
	}
}
