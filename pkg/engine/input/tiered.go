package input

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/agnivade/levenshtein"

	"minesweep/pkg/engine/world"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceMouse
	DeviceTerminal
)

// Action represents a high-level intent in the game.
type Action int

const (
	ActionNone Action = iota

	// Cell actions, these carry a Point
	ActionReveal
	ActionFlag
	ActionChord

	// Meta / UI
	ActionNewGame
	ActionRestart
	ActionScores
	ActionHelp
	ActionQuit
)

// Intent is the 4th-layer, high-level description of what the player wants to do.
type Intent struct {
	Action Action

	// Point is the addressed cell for cell actions when HasPoint is set
	Point    world.Point
	HasPoint bool

	// Args holds any remaining words, e.g. the difficulty for ActionNewGame
	Args []string
}

// RawInput is the 1st-layer event emitted directly from an input device.
// Code is a device-specific identifier; for the terminal it is a whole line.
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the 2nd-layer representation after debouncing/deduplication.
// Terminal lines arrive already debounced, but the layer is kept so other
// devices can add repeat suppression here.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   strings.TrimSpace(raw.Code),
	}
}

// bindings maps command words to actions (3rd-layer bindings).
// Multiple words may point to the same Action.
var bindings = map[string]Action{
	"r":      ActionReveal,
	"reveal": ActionReveal,
	"o":      ActionReveal,
	"open":   ActionReveal,
	"dig":    ActionReveal,

	"f":    ActionFlag,
	"flag": ActionFlag,
	"m":    ActionFlag,
	"mark": ActionFlag,

	"c":     ActionChord,
	"chord": ActionChord,

	"n":       ActionNewGame,
	"new":     ActionNewGame,
	"restart": ActionRestart,
	"again":   ActionRestart,

	"s":           ActionScores,
	"scores":      ActionScores,
	"leaderboard": ActionScores,

	"?":    ActionHelp,
	"h":    ActionHelp,
	"help": ActionHelp,

	"q":    ActionQuit,
	"quit": ActionQuit,
	"exit": ActionQuit,
}

// levenshteinLimit is the largest edit distance accepted for a word of n runes
func levenshteinLimit(n int) int {
	switch {
	case n < 3:
		return 0
	case n <= 5:
		return 1
	default:
		return 2
	}
}

// lookupAction resolves a command word, exactly first and then by the
// closest binding within the edit distance limit. Ties go to the
// alphabetically first binding.
func lookupAction(word string) Action {
	word = strings.ToLower(word)
	if act, ok := bindings[word]; ok {
		return act
	}

	limit := levenshteinLimit(len([]rune(word)))
	if limit == 0 {
		return ActionNone
	}

	codes := make([]string, 0, len(bindings))
	for code := range bindings {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	best, bestDist := ActionNone, limit+1
	for _, code := range codes {
		if len(code) < 3 {
			continue
		}
		dist := levenshtein.ComputeDistance(word, code)
		if dist < bestDist {
			best, bestDist = bindings[code], dist
		}
	}
	return best
}

// MapToIntent is the 3rd+4th layer: it applies the current bindings to a
// debounced input and returns a high-level Intent.
func MapToIntent(ev DebouncedInput) Intent {
	words := strings.Fields(ev.Code)
	if len(words) == 0 {
		return Intent{Action: ActionNone}
	}

	// A bare "col row" pair is a reveal
	if p, ok := parsePoint(words); ok && len(words) == 2 {
		return Intent{Action: ActionReveal, Point: p, HasPoint: true}
	}

	in := Intent{Action: lookupAction(words[0])}
	rest := words[1:]
	switch in.Action {
	case ActionReveal, ActionFlag, ActionChord:
		if p, ok := parsePoint(rest); ok {
			in.Point = p
			in.HasPoint = true
			rest = rest[2:]
		}
	}
	if len(rest) > 0 {
		in.Args = rest
	}
	return in
}

// Parse turns a terminal line into an Intent
func Parse(line string) Intent {
	raw := RawInput{Device: DeviceTerminal, Code: line, Timestamp: time.Now()}
	return MapToIntent(NewDebouncedInput(raw))
}

func parsePoint(words []string) (world.Point, bool) {
	if len(words) < 2 {
		return world.Point{}, false
	}
	col, err := strconv.Atoi(words[0])
	if err != nil {
		return world.Point{}, false
	}
	row, err := strconv.Atoi(words[1])
	if err != nil {
		return world.Point{}, false
	}
	return world.Point{Col: col, Row: row}, true
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionReveal:
		return "Reveal"
	case ActionFlag:
		return "Flag"
	case ActionChord:
		return "Chord"
	case ActionNewGame:
		return "New Game"
	case ActionRestart:
		return "Restart"
	case ActionScores:
		return "Scores"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Ensure stable ordering of codes within each action so help text doesn't shuffle.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}
