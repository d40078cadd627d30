package renderer

import (
	"rebind/pkg/game/gameplay"
)

// Renderer defines the interface for host backends. A host owns the frame
// loop: it polls its devices, feeds physical events to the session, calls
// Session.Frame once per frame and draws the result.
// Implementations include TUI (terminal) and Ebiten.
type Renderer interface {
	// Init initializes the renderer (colors, window, etc.)
	Init()

	// Run drives the session until the game quits or the host fails.
	Run(s *gameplay.Session) error
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}

// Init initializes the current renderer
func Init() {
	if Current != nil {
		Current.Init()
	}
}

// Run runs the session on the current renderer
func Run(s *gameplay.Session) error {
	if Current == nil {
		return nil
	}
	return Current.Run(s)
}
