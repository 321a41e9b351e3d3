package renderer

import (
	engineinput "minesweep/pkg/engine/input"
	"minesweep/pkg/game/gameplay"
)

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleCovered
	StylePressed
	StyleFlag
	StyleQuestion
	StyleEmpty
	StyleMine
	StyleDetonated
	StyleWrongFlag
	StyleSubtle
	StyleStatusWon
	StyleStatusLost
	StyleCount1
	StyleCount2
	StyleCount3
	StyleCount4
	StyleCount5
	StyleCount6
	StyleCount7
	StyleCount8
)

// CountStyle returns the style for a revealed cell with n adjacent mines
func CountStyle(n int) TextStyle {
	if n < 1 || n > 8 {
		return StyleEmpty
	}
	return StyleCount1 + TextStyle(n-1)
}

// Renderer defines the interface for game rendering backends.
// The engine never calls a renderer; the executable drives one.
type Renderer interface {
	// Init initializes the renderer (colors, fonts, window, etc.)
	Init()

	// Clear clears the display
	Clear()

	// RenderFrame renders a complete game frame
	// This includes the board, status line, messages, and input prompt
	RenderFrame(g *gameplay.Game)

	// GetInput gets the next player intent
	GetInput() (engineinput.Intent, error)

	// StyleText applies a style to text and returns the styled string
	StyleText(text string, style TextStyle) string

	// ShowMessage displays a message to the user
	ShowMessage(msg string)
}
