// Package tui is the terminal host: it reads raw-mode key bytes, turns them
// into press and release events and draws the field with ANSI styling.
package tui

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"rebind/pkg/engine/input"
	"rebind/pkg/engine/terminal"
	"rebind/pkg/game/config"
	"rebind/pkg/game/gameplay"
	"rebind/pkg/game/renderer"
	"rebind/pkg/game/state"
)

// Icons
const (
	IconShip  = "^"
	IconShot  = "|"
	IconEmpty = "·"
)

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	frameInterval time.Duration
	holds         *holdTracker

	colorShip    color.Style
	colorShot    color.Style
	colorSubtle  color.Style
	colorMessage color.Style
	colorPrompt  color.Style

	panel lipgloss.Style
	title lipgloss.Style

	out io.Writer
}

// New creates a new TUI renderer
func New(cfg *config.Config) *TUIRenderer {
	return &TUIRenderer{
		frameInterval: cfg.FrameInterval(),
		holds:         newHoldTracker(cfg.Terminal.ReleaseAfter),
		out:           os.Stdout,
	}
}

// Init initializes the TUI renderer (colors, etc.)
func (t *TUIRenderer) Init() {
	t.colorShip = color.Style{color.FgGreen, color.OpBold}
	t.colorShot = color.Style{color.FgYellow, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray}
	t.colorMessage = color.Style{color.FgMagenta}
	t.colorPrompt = color.Style{color.FgRed, color.OpBold}

	t.panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("63")).
		Padding(0, 1)
	t.title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("141"))
}

// Run drives the session from the terminal until the game quits or stdin closes.
func (t *TUIRenderer) Run(s *gameplay.Session) error {
	raw, err := terminal.EnterRawMode()
	if err != nil {
		return err
	}
	defer raw.Restore()

	terminal.HideCursor()
	defer terminal.ShowCursor()

	keys := make(chan string, 64)
	readErr := make(chan error, 1)
	go func() {
		readErr <- terminal.NewKeyReader(os.Stdin).Pump(keys)
	}()

	log.Printf("Terminal host running at %v per frame", t.frameInterval)

	ticker := time.NewTicker(t.frameInterval)
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case key := <-keys:
			code := input.TerminalCode(key)
			if t.holds.Seen(code, time.Now()) {
				s.Press(code)
			}

		case err := <-readErr:
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("reading terminal: %w", err)

		case now := <-ticker.C:
			for _, code := range t.holds.Expired(now) {
				s.Release(code)
			}
			s.Frame(now.Sub(last))
			last = now

			t.RenderFrame(s)
			if s.Game.Quit {
				return nil
			}
		}
	}
}

// RenderFrame draws the field and the HUD.
func (t *TUIRenderer) RenderFrame(s *gameplay.Session) {
	terminal.Home()
	frame := t.Frame(s)
	// raw mode disables output post-processing, so newlines need a carriage return
	fmt.Fprint(t.out, strings.ReplaceAll(frame, "\n", "\r\n"))
}

// Frame returns the screen contents for the session.
func (t *TUIRenderer) Frame(s *gameplay.Session) string {
	field := t.panel.Render(t.renderField(s.Game))

	var hud strings.Builder
	hud.WriteString(t.title.Render(gotext.Get("Controls")) + "\n")
	for _, line := range renderer.StatusLines(s) {
		if s.Game.Capturing && line == renderer.CapturePrompt(s) {
			line = t.colorPrompt.Sprint(line)
		}
		hud.WriteString(line + "\n")
	}
	if menu := renderer.MenuLines(s); menu != nil {
		hud.WriteString("\n" + t.title.Render(menu[0]) + "\n")
		for _, line := range menu[1:] {
			if strings.HasPrefix(line, "> ") {
				line = t.colorPrompt.Sprint(line)
			}
			hud.WriteString(line + "\n")
		}
	} else {
		hud.WriteString("\n" + t.title.Render(gotext.Get("Bindings")) + "\n")
		for _, line := range renderer.BindingLines(s.Manager, input.DeviceTerminal) {
			hud.WriteString(t.colorSubtle.Sprint(line) + "\n")
		}
	}
	side := t.panel.Render(strings.TrimRight(hud.String(), "\n"))

	var msgs strings.Builder
	for _, msg := range s.Game.Messages {
		msgs.WriteString(t.colorMessage.Sprint(msg) + "\n")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, field, side),
		msgs.String(),
	)
}

// renderField draws the ship and shots on the field grid.
func (t *TUIRenderer) renderField(g *state.Game) string {
	rows, cols := int(state.FieldHeight), int(state.FieldWidth)
	grid := make([][]string, rows)
	for r := range grid {
		grid[r] = make([]string, cols)
		for c := range grid[r] {
			grid[r][c] = t.colorSubtle.Sprint(IconEmpty)
		}
	}

	put := func(x, y float64, icon string) {
		r, c := int(y), int(x)
		if r >= 0 && r < rows && c >= 0 && c < cols {
			grid[r][c] = icon
		}
	}
	for _, shot := range g.Shots {
		put(shot.X, shot.Y, t.colorShot.Sprint(IconShot))
	}
	put(g.X, g.Y, t.colorShip.Sprint(IconShip))

	lines := make([]string, rows)
	for r := range grid {
		lines[r] = strings.Join(grid[r], "")
	}
	return strings.Join(lines, "\n")
}
