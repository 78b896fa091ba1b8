package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"layoutcycle/config"
	"layoutcycle/layout"
)

// Input modes
type inputMode int

const (
	modeNormal inputMode = iota
	modeTheme
)

const statusMessageTTL = 4 * time.Second

// ConfigUpdateMsg is sent when the config file is reloaded
type ConfigUpdateMsg struct {
	Config *config.Config
	Err    error
}

// MenuClickMsg delivers the payload of a clicked menu button
type MenuClickMsg struct {
	Option string
}

// CycleClickMsg is sent when the cycle button is pressed
type CycleClickMsg struct{}

// clearStatusMsg expires a status message set at the given time
type clearStatusMsg time.Time

// Model is the Bubble Tea model that owns the layout state
type Model struct {
	state   *layout.State
	display display
	menu    menu
	zones   *zone.Manager

	configEvents <-chan ConfigUpdateMsg
	width        int
	height       int

	mode inputMode

	// Theme picker
	themeIndex    int
	previewTheme  int
	originalTheme int

	// Help
	help help.Model
	keys keyMap

	// Status message (shown after actions)
	statusMessage     string
	statusIsError     bool
	statusMessageTime time.Time
}

// New creates a model with Tree active and the menu rendered.
// configEvents may be nil when hot reload is disabled.
func New(cfg *config.Config, configEvents <-chan ConfigUpdateMsg) Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	themeIndex, ok := ThemeIndex(cfg.Theme)
	if !ok {
		themeIndex = 0
	}
	themes[themeIndex].applyStyles()

	h := help.New()
	h.ShowAll = cfg.ShowHelp

	m := Model{
		state:        layout.NewState(),
		zones:        zone.New(),
		configEvents: configEvents,
		mode:         modeNormal,
		themeIndex:   themeIndex,
		help:         h,
		keys:         keys,
	}
	m.display.renderName(m.state.Current())
	m.menu.rebuild(m.state)
	return m
}

// Init starts listening for config reloads
func (m Model) Init() tea.Cmd {
	if m.configEvents != nil {
		return m.waitForConfigUpdate()
	}
	return nil
}

// waitForConfigUpdate waits for a reload event from the watcher
func (m Model) waitForConfigUpdate() tea.Cmd {
	return func() tea.Msg {
		if m.configEvents == nil {
			return nil
		}
		event, ok := <-m.configEvents
		if !ok {
			return nil
		}
		return event
	}
}

// ActiveLayout returns the layout currently displayed
func (m Model) ActiveLayout() layout.Name {
	return m.state.Current()
}

// DisplayText returns the text of the layout display
func (m Model) DisplayText() string {
	return m.display.text
}

// MenuLabels returns the labels of the menu buttons in order
func (m Model) MenuLabels() []string {
	return m.menu.labels()
}

// ThemeName returns the name of the theme in use
func (m Model) ThemeName() string {
	return themes[m.themeIndex].Name
}
