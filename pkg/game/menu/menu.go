// Package menu provides the static menus shown by text front ends.
package menu

// MenuItem represents a single item in a menu.
type MenuItem interface {
	// GetLabel returns the display label for this menu item.
	GetLabel() string
	// GetHelpText returns optional help text for this item.
	GetHelpText() string
}

// Menu is a titled list of items
type Menu interface {
	GetTitle() string
	GetMenuItems() []MenuItem
}

// Lines flattens a menu into printable lines: the title followed by one
// line per item, with its help text when it has any.
func Lines(m Menu) []string {
	items := m.GetMenuItems()
	lines := make([]string, 0, len(items)+1)
	lines = append(lines, m.GetTitle())
	for _, item := range items {
		line := "  " + item.GetLabel()
		if help := item.GetHelpText(); help != "" {
			line += "  " + help
		}
		lines = append(lines, line)
	}
	return lines
}
