package utils

import (
	"os"

	"golang.org/x/term"
)

// GetTerminalWidth returns the width of the terminal window, clamped to
// a usable range; 80 when stdout is not a terminal.
func GetTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width < 20 {
		return 80
	}
	if width > 200 {
		return 200
	}
	return width
}
