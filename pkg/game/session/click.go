package session

import (
	"errors"
	"fmt"

	"minesweep/pkg/engine/world"
)

// Button is a logical mouse button
type Button int

const (
	// Primary reveals a cell
	Primary Button = iota
	// Secondary cycles a cell through flagged and questioned
	Secondary
	// Tertiary chords on a revealed cell
	Tertiary
)

// ButtonCount is the number of logical buttons
const ButtonCount = 3

const noAnchor = -1

// ErrInvalidButton is returned for a button other than the three logical ones
var ErrInvalidButton = errors.New("invalid button")

// String returns the name of the button
func (b Button) String() string {
	switch b {
	case Primary:
		return "Primary"
	case Secondary:
		return "Secondary"
	case Tertiary:
		return "Tertiary"
	default:
		return "Unknown"
	}
}

// IsValid returns true for the three logical buttons
func (b Button) IsValid() bool {
	return b >= Primary && b <= Tertiary
}

// checkButton rejects buttons outside Primary..Tertiary
func checkButton(button Button) error {
	if !button.IsValid() {
		return fmt.Errorf("%w: %d", ErrInvalidButton, int(button))
	}
	return nil
}

// Press marks p as pressed by button. The game effect happens on Release.
// Pressing Tertiary also depresses the neighbors of p.
func (s *Session) Press(p world.Point, button Button) error {
	idx, err := s.locate(p)
	if err != nil {
		return err
	}
	if err := checkButton(button); err != nil {
		return err
	}

	s.mu.Lock()
	var out outcome
	if s.state == Running {
		s.resetChangedLocked()
		s.clearPressedLocked(button)
		s.anchor[button] = idx
		s.setPressedLocked(idx, button, true)
		out.updated = true
	}
	s.mu.Unlock()

	s.notify(out)
	return nil
}

// Hover moves the pointer while button is held. The pressed marking follows
// the pointer: it is shown only while the pointer is over the cell where the
// press started, so dragging off and back again is supported.
func (s *Session) Hover(p world.Point, button Button) error {
	idx, err := s.locate(p)
	if err != nil {
		return err
	}
	if err := checkButton(button); err != nil {
		return err
	}

	s.mu.Lock()
	var out outcome
	if s.state == Running && s.anchor[button] != noAnchor {
		anchor := s.anchor[button]
		s.clearPressedLocked(button)
		if idx == anchor {
			s.setPressedLocked(anchor, button, true)
		}
		out.updated = true
	}
	s.mu.Unlock()

	s.notify(out)
	return nil
}

// Release lets go of button over p. If p is the cell where the press
// started, the button's game effect is applied to it.
func (s *Session) Release(p world.Point, button Button) error {
	idx, err := s.locate(p)
	if err != nil {
		return err
	}
	if err := checkButton(button); err != nil {
		return err
	}

	s.mu.Lock()
	var out outcome
	if s.anchor[button] != noAnchor {
		anchor := s.anchor[button]
		s.resetChangedLocked()
		s.clearPressedLocked(button)
		s.anchor[button] = noAnchor
		out.updated = true
		if idx == anchor {
			s.applyLocked(idx, button, &out)
		}
	}
	s.mu.Unlock()

	s.notify(out)
	return nil
}

// Click is a press immediately followed by a release on the same cell
func (s *Session) Click(p world.Point, button Button) error {
	idx, err := s.locate(p)
	if err != nil {
		return err
	}
	if err := checkButton(button); err != nil {
		return err
	}

	s.mu.Lock()
	var out outcome
	s.resetChangedLocked()
	s.applyLocked(idx, button, &out)
	s.mu.Unlock()

	s.notify(out)
	return nil
}

// applyLocked dispatches a confirmed click to its game effect
func (s *Session) applyLocked(idx int, button Button, out *outcome) {
	if s.state != Running {
		return
	}
	switch button {
	case Primary:
		s.revealLocked(idx, out)
	case Secondary:
		s.cycleFlagLocked(idx, out)
	case Tertiary:
		s.chordLocked(idx, out)
	}
}

// setPressedLocked marks a cell, and for Tertiary its neighbors, pressed
func (s *Session) setPressedLocked(idx int, button Button, pressed bool) {
	s.pressed[idx][button] = pressed
	if button != Tertiary {
		return
	}
	for _, n := range s.board.Neighbors(idx) {
		s.pressed[n][button] = pressed
	}
}

// clearPressedLocked removes every pressed marking for button
func (s *Session) clearPressedLocked(button Button) {
	anchor := s.anchor[button]
	if anchor == noAnchor {
		return
	}
	s.setPressedLocked(anchor, button, false)
}
