package menu

import (
	"fmt"
	"strings"

	engineinput "minesweep/pkg/engine/input"
)

// BindingMenuItem represents a menu item for a command binding.
type BindingMenuItem struct {
	Action engineinput.Action
}

// GetLabel returns the display label for this binding menu item.
func (b *BindingMenuItem) GetLabel() string {
	codes := engineinput.GetBindingsByAction()[b.Action]
	codeText := strings.Join(codes, ", ")
	if codeText == "" {
		codeText = "(unbound)"
	}
	return fmt.Sprintf("%-9s %s", engineinput.ActionName(b.Action)+":", codeText)
}

// GetHelpText returns the arguments the command takes.
func (b *BindingMenuItem) GetHelpText() string {
	switch b.Action {
	case engineinput.ActionReveal, engineinput.ActionFlag, engineinput.ActionChord:
		return "COL ROW"
	case engineinput.ActionNewGame:
		return "[simple|normal|hard|custom COLS ROWS MINES]"
	case engineinput.ActionScores:
		return "[simple|normal|hard]"
	}
	return ""
}

// BindingsMenu lists every bound command.
type BindingsMenu struct {
	actions []engineinput.Action
}

// NewBindingsMenu creates the command listing.
func NewBindingsMenu() *BindingsMenu {
	return &BindingsMenu{
		actions: []engineinput.Action{
			engineinput.ActionReveal,
			engineinput.ActionFlag,
			engineinput.ActionChord,
			engineinput.ActionNewGame,
			engineinput.ActionRestart,
			engineinput.ActionScores,
			engineinput.ActionHelp,
			engineinput.ActionQuit,
		},
	}
}

// GetTitle returns the menu title.
func (h *BindingsMenu) GetTitle() string {
	return "Commands"
}

// GetMenuItems returns the menu items for the bindings menu.
func (h *BindingsMenu) GetMenuItems() []MenuItem {
	items := make([]MenuItem, len(h.actions))
	for i, action := range h.actions {
		items[i] = &BindingMenuItem{Action: action}
	}
	return items
}
