package tui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/gookit/color"

	"minesweep/pkg/engine/input"
	"minesweep/pkg/engine/terminal"
	"minesweep/pkg/game/gameplay"
	"minesweep/pkg/game/menu"
	"minesweep/pkg/game/renderer"
	"minesweep/pkg/game/text"
)

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	out io.Writer
	in  *bufio.Reader

	styles map[renderer.TextStyle]color.Style
}

// New creates a new TUI renderer writing to stdout and reading from stdin
func New() *TUIRenderer {
	return NewWithIO(os.Stdout, nil)
}

// NewWithIO creates a TUI renderer on the given streams. A nil in reads
// from stdin.
func NewWithIO(out io.Writer, in io.Reader) *TUIRenderer {
	t := &TUIRenderer{out: out}
	if in != nil {
		t.in = bufio.NewReader(in)
	}
	return t
}

// Init initializes the TUI renderer (colors, etc.)
func (t *TUIRenderer) Init() {
	t.styles = map[renderer.TextStyle]color.Style{
		renderer.StyleCovered:    {color.FgGray},
		renderer.StylePressed:    {color.FgWhite, color.OpBold},
		renderer.StyleFlag:       {color.FgRed, color.OpBold},
		renderer.StyleQuestion:   {color.FgYellow},
		renderer.StyleEmpty:      {color.FgGray},
		renderer.StyleMine:       {color.FgWhite, color.OpBold},
		renderer.StyleDetonated:  {color.FgWhite, color.BgRed, color.OpBold},
		renderer.StyleWrongFlag:  {color.FgRed, color.OpReverse},
		renderer.StyleSubtle:     {color.FgGray, color.OpBold},
		renderer.StyleStatusWon:  {color.FgGreen, color.OpBold},
		renderer.StyleStatusLost: {color.FgRed, color.OpBold},

		// classic palette for the adjacency counts
		renderer.StyleCount1: {color.FgLightBlue},
		renderer.StyleCount2: {color.FgGreen},
		renderer.StyleCount3: {color.FgLightRed},
		renderer.StyleCount4: {color.FgBlue, color.OpBold},
		renderer.StyleCount5: {color.FgRed},
		renderer.StyleCount6: {color.FgCyan},
		renderer.StyleCount7: {color.FgMagenta},
		renderer.StyleCount8: {color.FgDarkGray},
	}
}

// Clear clears the terminal screen
func (t *TUIRenderer) Clear() {
	if t.out != os.Stdout {
		return
	}
	c := exec.Command("clear")
	c.Stdout = os.Stdout
	c.Run()
}

// GetInput reads a line and returns a high-level Intent
func (t *TUIRenderer) GetInput() (input.Intent, error) {
	var (
		line string
		err  error
	)
	if t.in != nil {
		line, err = input.ReadLine(t.in)
	} else {
		line, err = input.GetInput()
	}
	if err != nil {
		return input.Intent{}, err
	}

	raw := input.RawInput{
		Device:    input.DeviceTerminal,
		Code:      line,
		Timestamp: time.Now(),
	}
	return input.MapToIntent(input.NewDebouncedInput(raw)), nil
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(s string, style renderer.TextStyle) string {
	st, ok := t.styles[style]
	if !ok {
		return s
	}
	return st.Sprint(s)
}

// ShowMessage displays a message to the user
func (t *TUIRenderer) ShowMessage(msg string) {
	fmt.Fprintln(t.out, msg)
}

// RenderFrame renders a complete game frame
func (t *TUIRenderer) RenderFrame(g *gameplay.Game) {
	if s := g.Session(); s != nil {
		fmt.Fprintln(t.out, t.StyleText(renderer.StatusLine(s), t.statusStyle(g)))
		fmt.Fprintln(t.out)
		for _, line := range renderer.BoardLines(s, t.StyleText) {
			fmt.Fprintln(t.out, line)
		}
	}

	t.printScores(g)
	t.printHelp(g)
	t.printMessagesPane(g)

	fmt.Fprintf(t.out, "\n%s", text.Get("PROMPT"))
}

func (t *TUIRenderer) statusStyle(g *gameplay.Game) renderer.TextStyle {
	switch renderer.StatusKey(g.Session().State()) {
	case "STATUS_WON":
		return renderer.StyleStatusWon
	case "STATUS_LOST":
		return renderer.StyleStatusLost
	}
	return renderer.StyleNormal
}

// printScores renders the leaderboard requested by the last command
func (t *TUIRenderer) printScores(g *gameplay.Game) {
	view := g.PendingScores()
	if view == nil {
		return
	}

	fmt.Fprintln(t.out)
	fmt.Fprintln(t.out, t.StyleText(text.Get("SCORES_HEADER", view.Level.String()), renderer.StyleSubtle))
	for _, e := range view.Entries {
		fmt.Fprintf(t.out, "  %2d. %-20s %7.3f\n", e.Rank, e.Name, e.Time)
	}
}

// printHelp lists the commands when the player asked for help
func (t *TUIRenderer) printHelp(g *gameplay.Game) {
	if !g.PendingHelp() {
		return
	}

	fmt.Fprintln(t.out)
	for i, line := range menu.Lines(menu.NewBindingsMenu()) {
		if i == 0 {
			line = t.StyleText(line, renderer.StyleSubtle)
		}
		fmt.Fprintln(t.out, line)
	}
}

// printMessagesPane renders the messages log pane
func (t *TUIRenderer) printMessagesPane(g *gameplay.Game) {
	width := terminal.Width()

	label := " Messages "
	sideLen := (width - len(label)) / 2
	if sideLen < 1 {
		sideLen = 1
	}
	rightLen := width - sideLen - len(label)
	if rightLen < 1 {
		rightLen = 1
	}

	fmt.Fprintln(t.out)
	fmt.Fprintln(t.out, t.StyleText(strings.Repeat("─", sideLen)+label+strings.Repeat("─", rightLen), renderer.StyleSubtle))

	msgs := g.Messages()
	if len(msgs) == 0 {
		fmt.Fprintln(t.out, t.StyleText("  (no messages)", renderer.StyleSubtle))
	} else {
		for _, msg := range msgs {
			fmt.Fprintf(t.out, "  %s\n", msg)
		}
	}

	fmt.Fprintln(t.out, t.StyleText(strings.Repeat("─", width), renderer.StyleSubtle))
}
