package terminal

import (
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// GetSize returns the width and height of the terminal behind f.
// Falls back to defaults if f is not a terminal.
func GetSize(f *os.File) (width, height int) {
	width, height, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// GetWidth returns the width of the terminal behind stdout.
func GetWidth() int {
	width, _ := GetSize(os.Stdout)
	return width
}

// IsTerminal reports whether f is attached to a terminal, which decides
// whether output should be colored.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
