package ebiten

import (
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/leonelquinteros/gotext"

	"rebind/pkg/engine/input"
	"rebind/pkg/game/config"
	"rebind/pkg/game/controls"
	"rebind/pkg/game/gameplay"
	"rebind/pkg/game/renderer"
	"rebind/pkg/game/state"
)

// EbitenRenderer hosts the session in an Ebiten window. Ebiten reports key
// and button releases, so no key-up synthesis is needed here.
type EbitenRenderer struct {
	windowWidth  int
	windowHeight int

	session *gameplay.Session
	last    time.Time

	windowOpenedLogged bool

	console consoleInput

	// Reused between frames to avoid allocations.
	keys     []ebiten.Key
	gamepads []ebiten.GamepadID
	buttons  []ebiten.StandardGamepadButton
	runes    []rune
}

// New creates a new Ebiten renderer
func New(cfg *config.Config) *EbitenRenderer {
	return &EbitenRenderer{
		windowWidth:  cfg.Window.Width,
		windowHeight: cfg.Window.Height,
	}
}

// Init sets up the window
func (e *EbitenRenderer) Init() {
	ebiten.SetWindowSize(e.windowWidth, e.windowHeight)
	ebiten.SetWindowTitle(gotext.Get("Rebind"))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
}

// Run starts the Ebiten game loop and blocks until the window closes or the
// Quit control fires.
func (e *EbitenRenderer) Run(s *gameplay.Session) error {
	e.session = s
	e.last = time.Now()
	return ebiten.RunGame(e)
}

// Update handles input and game logic (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		log.Printf("Main window opened successfully (%dx%d)", w, h)
	}

	// Backtick toggles the console; while it is open it takes the keyboard.
	if inpututil.IsKeyJustPressed(ebiten.KeyGraveAccent) {
		e.ToggleConsole(e.session)
	} else if e.console.active {
		e.handleConsoleInput(e.session)
	} else {
		e.pollInput(e.session)
	}

	now := time.Now()
	e.session.Frame(now.Sub(e.last))
	e.last = now

	if e.session.Game.Quit {
		return ebiten.Termination
	}
	return nil
}

// Layout returns the game's logical screen size
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return e.windowWidth, e.windowHeight
}

// Draw renders the field and HUD (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	if e.session == nil {
		return
	}
	e.drawField(screen, e.session.Game)
	e.drawHUD(screen, e.session)
	if e.console.active {
		e.drawConsole(screen, e.session)
	}
}

func (e *EbitenRenderer) drawField(screen *ebiten.Image, g *state.Game) {
	vector.DrawFilledRect(screen,
		fieldOriginX, fieldOriginY,
		state.FieldWidth*cellSize, state.FieldHeight*cellSize,
		colorFieldBackground, false)

	for _, shot := range g.Shots {
		x, y := fieldToScreen(shot.X, shot.Y)
		vector.DrawFilledRect(screen, x-shotWidth/2, y-shotHeight/2, shotWidth, shotHeight, colorShot, false)
	}

	x, y := fieldToScreen(g.X, g.Y)
	vector.DrawFilledRect(screen, x-shipSize/2, y-shipSize/2, shipSize, shipSize, colorShip, true)
}

// fieldToScreen returns the pixel centre of a field position.
func fieldToScreen(x, y float64) (float32, float32) {
	return float32(fieldOriginX + x*cellSize), float32(fieldOriginY + y*cellSize)
}

func (e *EbitenRenderer) drawHUD(screen *ebiten.Image, s *gameplay.Session) {
	y := fieldOriginY

	// Axis gauges
	for _, a := range controls.Axes {
		axis, _ := s.Manager.Axis(a)
		e.drawAxisGauge(screen, hudOriginX, y+4, axis)
		name := controls.Name(input.AxisBinding[controls.Axis, controls.Button](a))
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s %+.2f", name, axis.Position), hudOriginX+axisBarWidth+8, y)
		y += lineHeight
	}
	y += lineHeight / 2

	for _, line := range renderer.StatusLines(s)[len(controls.Axes):] {
		ebitenutil.DebugPrintAt(screen, line, hudOriginX, y)
		y += lineHeight
	}
	if s.Game.Capturing {
		vector.StrokeRect(screen, fieldOriginX-2, fieldOriginY-2,
			state.FieldWidth*cellSize+4, state.FieldHeight*cellSize+4, 2, colorCapture, false)
	}
	y += lineHeight

	lines := renderer.MenuLines(s)
	if lines == nil {
		lines = append([]string{gotext.Get("Bindings")}, renderer.BindingLines(s.Manager, input.DeviceUnknown)...)
	}
	for _, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, hudOriginX, y)
		y += lineHeight
	}
	y += lineHeight

	for _, msg := range s.Game.Messages {
		ebitenutil.DebugPrintAt(screen, msg, hudOriginX, y)
		y += lineHeight
	}
}

// drawAxisGauge draws a centred bar filled towards the axis position.
func (e *EbitenRenderer) drawAxisGauge(screen *ebiten.Image, x, y int, a input.Axis) {
	const height = 8
	left, top := float32(x), float32(y)
	vector.DrawFilledRect(screen, left, top, axisBarWidth, height, colorAxisTrack, false)

	fill := colorAxisFill
	if a.Falling {
		fill = colorAxisFalling
	}
	centre := left + axisBarWidth/2
	w := float32(a.Position) * axisBarWidth / 2
	if w < 0 {
		vector.DrawFilledRect(screen, centre+w, top, -w, height, fill, false)
	} else if w > 0 {
		vector.DrawFilledRect(screen, centre, top, w, height, fill, false)
	}
	vector.DrawFilledRect(screen, centre-1, top-2, 2, height+4, colorAxisFalling, false)
}
