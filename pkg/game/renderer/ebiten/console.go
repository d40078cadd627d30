package ebiten

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"rebind/pkg/game/gameplay"
)

const (
	maxConsoleHistory = 100
	consoleScrollStep = 10
	consoleLines      = 12
)

// consoleInput is the edit line of the console with its command history.
type consoleInput struct {
	active       bool
	text         string
	history      []string
	historyIndex int
	scrollOffset int
}

// toggle opens or closes the console. Closing drops the edit line.
func (c *consoleInput) toggle() {
	c.active = !c.active
	if !c.active {
		c.text = ""
		c.historyIndex = len(c.history)
	}
}

func (c *consoleInput) typeRunes(runes []rune) {
	for _, r := range runes {
		// the toggle key never reaches the line
		if r == '`' {
			continue
		}
		c.text += string(r)
	}
}

func (c *consoleInput) backspace() {
	if len(c.text) > 0 {
		r := []rune(c.text)
		c.text = string(r[:len(r)-1])
	}
}

// submit returns the edit line for execution and records it in the history.
func (c *consoleInput) submit() (string, bool) {
	cmd := strings.TrimSpace(c.text)
	c.text = ""
	if cmd == "" {
		return "", false
	}
	c.history = append(c.history, cmd)
	if len(c.history) > maxConsoleHistory {
		c.history = c.history[1:] // Keep last 100 commands
	}
	c.historyIndex = len(c.history)
	// show most recent output
	c.scrollOffset = 0
	return cmd, true
}

func (c *consoleInput) historyUp() {
	if c.historyIndex > 0 {
		c.historyIndex--
		c.text = c.history[c.historyIndex]
	}
}

func (c *consoleInput) historyDown() {
	if c.historyIndex < len(c.history)-1 {
		c.historyIndex++
		c.text = c.history[c.historyIndex]
	} else {
		c.historyIndex = len(c.history)
		c.text = ""
	}
}

// scroll moves the view by lines, positive towards older output.
func (c *consoleInput) scroll(lines, total int) {
	c.scrollOffset += lines
	if c.scrollOffset > total {
		c.scrollOffset = total
	}
	if c.scrollOffset < 0 {
		c.scrollOffset = 0
	}
}

// visible returns the output lines in view.
func (c *consoleInput) visible(output []string) []string {
	end := len(output) - c.scrollOffset
	start := end - consoleLines
	if start < 0 {
		start = 0
	}
	return output[start:end]
}

// ToggleConsole opens or closes the console. Held inputs are released on
// opening so typing does not leave the ship moving.
func (e *EbitenRenderer) ToggleConsole(s *gameplay.Session) {
	e.console.toggle()
	if e.console.active {
		s.Router.ReleaseAll()
	}
}

// handleConsoleInput edits and runs the command line. Nothing reaches the
// session while the console is open.
func (e *EbitenRenderer) handleConsoleInput(s *gameplay.Session) {
	c := &e.console

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyBackspace):
		c.backspace()
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter):
		if cmd, ok := c.submit(); ok {
			// errors are printed to the console output
			_ = s.Console.Execute(cmd)
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		c.historyUp()
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		c.historyDown()
	case inpututil.IsKeyJustPressed(ebiten.KeyPageUp):
		c.scroll(consoleScrollStep, len(s.Console.Output()))
	case inpututil.IsKeyJustPressed(ebiten.KeyPageDown):
		c.scroll(-consoleScrollStep, len(s.Console.Output()))
	default:
		e.runes = ebiten.AppendInputChars(e.runes[:0])
		c.typeRunes(e.runes)
	}
}

// drawConsole draws the console panel over the top of the window.
func (e *EbitenRenderer) drawConsole(screen *ebiten.Image, s *gameplay.Session) {
	height := float32((consoleLines + 2) * lineHeight)
	vector.DrawFilledRect(screen, 0, 0, float32(e.windowWidth), height, colorPanelBackground, false)

	y := 4
	for _, line := range e.console.visible(s.Console.Output()) {
		ebitenutil.DebugPrintAt(screen, line, 8, y)
		y += lineHeight
	}
	ebitenutil.DebugPrintAt(screen, "] "+e.console.text+"_", 8, int(height)-lineHeight)
}
