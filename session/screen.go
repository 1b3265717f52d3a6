package session

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Screen is the display capability used between menu iterations.
type Screen interface {
	// Pause waits until the user has read the output of the last action.
	Pause(in *bufio.Reader)
	Clear()
}

// isTerminal is swapped out in tests.
var isTerminal = term.IsTerminal

// NewScreen returns an ANSIScreen when enabled is set and out is a terminal,
// otherwise a NoopScreen.
func NewScreen(out io.Writer, enabled bool) Screen {
	if !enabled {
		return NoopScreen{}
	}
	f, ok := out.(*os.File)
	if !ok || !isTerminal(int(f.Fd())) {
		return NoopScreen{}
	}
	return ANSIScreen{Out: out}
}

// ANSIScreen clears the terminal with ANSI escape sequences.
type ANSIScreen struct {
	Out io.Writer
}

func (s ANSIScreen) Pause(in *bufio.Reader) {
	fmt.Fprint(s.Out, "Press Enter to continue...")
	_, _ = in.ReadString('\n')
}

func (s ANSIScreen) Clear() {
	fmt.Fprint(s.Out, "\033[2J\033[H") // Clear screen and move cursor to top
}

// NoopScreen leaves the output untouched.
type NoopScreen struct{}

func (NoopScreen) Pause(*bufio.Reader) {}
func (NoopScreen) Clear()               {}
