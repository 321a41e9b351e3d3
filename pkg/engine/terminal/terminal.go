// Package terminal reports the size and shape of the controlling terminal.
package terminal

import (
	"os"

	"golang.org/x/term"
)

// Size is a character area
type Size struct {
	Width  int
	Height int
}

// Default is used whenever the terminal cannot be measured
var Default = Size{Width: 80, Height: 24}

// CellAspect is how many columns of text make up the width of one text row
const CellAspect = 2

// query measures a file descriptor; tests swap it out
var query = term.GetSize

// Portrait reports whether the area is taller than it is wide once
// character cells are corrected to square proportions
func (s Size) Portrait() bool {
	return s.Width < s.Height*CellAspect
}

// Detect measures the terminal on fd. Errors and degenerate sizes, as some
// ptys report 0x0, fall back to Default.
func Detect(fd int) Size {
	width, height, err := query(fd)
	if err != nil || width <= 0 || height <= 0 {
		return Default
	}
	return Size{Width: width, Height: height}
}

// Current measures the terminal attached to stdout
func Current() Size {
	return Detect(int(os.Stdout.Fd()))
}

// Width returns the width of the stdout terminal
func Width() int {
	return Current().Width
}

// IsPortrait reports whether the stdout terminal is portrait shaped
func IsPortrait() bool {
	return Current().Portrait()
}
