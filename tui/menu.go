package tui

import (
	"strings"

	zone "github.com/lrstanley/bubblezone"

	"layoutcycle/layout"
)

const menuGap = " "

// menuButton is one rendered choice. Option is the payload a click delivers.
type menuButton struct {
	Label  string
	Option string
}

// menu holds the buttons for every layout except the active one
type menu struct {
	buttons []menuButton
	focus   int
}

// rebuild replaces every button from scratch based on the state flags
func (mn *menu) rebuild(s *layout.State) {
	buttons := make([]menuButton, 0, layout.Count-1)
	for _, n := range layout.Choices {
		if s.IsActive(n) {
			continue
		}
		buttons = append(buttons, menuButton{Label: n.String(), Option: n.String()})
	}
	mn.buttons = buttons

	if mn.focus >= len(mn.buttons) {
		mn.focus = len(mn.buttons) - 1
	}
	if mn.focus < 0 {
		mn.focus = 0
	}
}

func (mn menu) labels() []string {
	labels := make([]string, len(mn.buttons))
	for i, b := range mn.buttons {
		labels[i] = b.Label
	}
	return labels
}

// button returns the button at position i
func (mn menu) button(i int) (menuButton, bool) {
	if i < 0 || i >= len(mn.buttons) {
		return menuButton{}, false
	}
	return mn.buttons[i], true
}

func (mn *menu) moveFocus(delta int) {
	if len(mn.buttons) == 0 {
		return
	}
	mn.focus = (mn.focus + delta + len(mn.buttons)) % len(mn.buttons)
}

func (mn menu) renderButton(i int) string {
	if i == mn.focus {
		return focusedButtonStyle.Render(mn.buttons[i].Label)
	}
	return buttonStyle.Render(mn.buttons[i].Label)
}

// view renders the buttons in a row, each marked with its own click zone
func (mn menu) view(zones *zone.Manager) string {
	parts := make([]string, len(mn.buttons))
	for i, b := range mn.buttons {
		parts[i] = zones.Mark(menuZoneID(b.Option), mn.renderButton(i))
	}
	return strings.Join(parts, menuGap)
}
