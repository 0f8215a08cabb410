package tui

import (
	"os"

	"golang.org/x/term"
)

// OutputMode selects how results are presented.
type OutputMode int

const (
	// OutputModePlain writes unstyled text, suitable for pipes and logs.
	OutputModePlain OutputMode = iota
	// OutputModeStyled writes lipgloss-styled text once.
	OutputModeStyled
	// OutputModeInteractive runs the Bubble Tea program.
	OutputModeInteractive
)

// String returns the mode name.
func (m OutputMode) String() string {
	switch m {
	case OutputModeStyled:
		return "styled"
	case OutputModeInteractive:
		return "interactive"
	default:
		return "plain"
	}
}

const defaultTerminalWidth = 80

// isTerminal reports whether stdout is a terminal. Replaced in tests.
//
//nolint:gochecknoglobals // Test seam
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// IsTTY reports whether stdout is a terminal.
func IsTTY() bool {
	return isTerminal()
}

// TerminalWidth returns the width of stdout, or 80 when it is not a
// terminal.
func TerminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return defaultTerminalWidth
	}
	return w
}

// DetectOutputMode picks the output mode. forcePlain and noColor (or the
// NO_COLOR convention, or TERM=dumb) select plain output, as does a stdout
// that is not a terminal. noTTY, or running under CI, keeps the styled
// rendering but skips the interactive program.
func DetectOutputMode(forcePlain, noColor, noTTY bool) OutputMode {
	switch {
	case forcePlain, noColor, os.Getenv("NO_COLOR") != "", os.Getenv("TERM") == "dumb":
		return OutputModePlain
	case !IsTTY():
		return OutputModePlain
	case noTTY, os.Getenv("CI") != "":
		return OutputModeStyled
	default:
		return OutputModeInteractive
	}
}
