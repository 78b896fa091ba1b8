package tui

import "layoutcycle/layout"

const layoutTextPrefix = "Layout: "

// display is the text region showing the active layout
type display struct {
	text string
}

// render replaces the display text with choice. An unknown choice is
// rejected before anything is written.
func (d *display) render(choice string) error {
	if layout.IndexOf(choice) == -1 {
		return &layout.InvalidLayoutError{Choice: choice}
	}
	d.text = layoutTextPrefix + choice
	return nil
}

// renderName shows a layout already known to be one of layout.Choices
func (d *display) renderName(n layout.Name) {
	d.text = layoutTextPrefix + n.String()
}
