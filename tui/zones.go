package tui

// Zone IDs for bubblezone hit detection.
// Used both when rendering (zone.Mark) and when routing clicks (zone.Get().InBounds).
const zoneCycleButton = "zone-cycle-button"

// menuZoneID returns the zone ID of the menu button for a layout name
func menuZoneID(name string) string {
	return "zone-menu-" + name
}
