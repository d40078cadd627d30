package terminal

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// GetSize returns the current terminal width and height.
// Falls back to defaults if the size cannot be determined.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// IsTerminal reports whether stdin is attached to a terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// RawMode holds a terminal in raw mode until Restore is called.
type RawMode struct {
	fd    int
	state *term.State
}

// EnterRawMode puts stdin into raw mode so single key presses can be read
// without waiting for Enter.
func EnterRawMode() (*RawMode, error) {
	fd := int(os.Stdin.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("cannot set terminal to raw mode: %w", err)
	}
	return &RawMode{fd: fd, state: state}, nil
}

// Restore returns the terminal to the mode it was in before EnterRawMode.
// It is safe to call more than once.
func (r *RawMode) Restore() error {
	if r == nil || r.state == nil {
		return nil
	}
	err := term.Restore(r.fd, r.state)
	r.state = nil
	return err
}

// HideCursor and ShowCursor toggle the cursor for full-screen drawing.
func HideCursor() { fmt.Print("\x1b[?25l") }
func ShowCursor() { fmt.Print("\x1b[?25h") }

// Home moves the cursor to the top-left corner and clears the screen.
func Home() { fmt.Print("\x1b[H\x1b[2J") }
