package gameplay

import (
	"math"
	"strings"
	"testing"
	"time"

	"rebind/pkg/engine/input"
	"rebind/pkg/game/controls"
	"rebind/pkg/game/state"
)

const frame = 100 * time.Millisecond

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func newSession(t *testing.T) *Session {
	t.Helper()
	return NewSession(input.WithAxisScale(500))
}

func TestStep_IdleShipStays(t *testing.T) {
	s := newSession(t)
	x, y := s.Game.X, s.Game.Y
	for i := 0; i < 10; i++ {
		s.Frame(frame)
	}
	if s.Game.X != x || s.Game.Y != y {
		t.Errorf("ship moved to (%v, %v), want (%v, %v)", s.Game.X, s.Game.Y, x, y)
	}
	if s.Game.Frames != 10 {
		t.Errorf("Frames = %d, want 10", s.Game.Frames)
	}
}

func TestStep_MovesWithAxis(t *testing.T) {
	s := newSession(t)
	x := s.Game.X

	s.Press(input.KeyboardCode("ArrowRight"))
	s.Frame(frame) // axis 0 -> 0.2, ship has not moved yet
	s.Frame(frame) // ship moves at 0.2 * ShipSpeed

	want := x + 0.2*ShipSpeed*frame.Seconds()
	if !approx(s.Game.X, want) {
		t.Errorf("X = %v, want %v", s.Game.X, want)
	}
}

func TestStep_VerticalAxisUpIsScreenUp(t *testing.T) {
	s := newSession(t)
	y := s.Game.Y
	s.Analog(input.GamepadCode("left_y"), 1)
	s.Frame(frame)
	if s.Game.Y >= y {
		t.Errorf("Y = %v, want less than %v when pushing up", s.Game.Y, y)
	}
}

func TestStep_ShipStaysInField(t *testing.T) {
	s := newSession(t)
	s.Analog(input.GamepadCode("left_x"), -1)
	for i := 0; i < 100; i++ {
		s.Frame(frame)
	}
	if s.Game.X != 0 {
		t.Errorf("X = %v, want clamped to 0", s.Game.X)
	}
}

func TestStep_FireOncePerPress(t *testing.T) {
	s := newSession(t)
	fire := input.KeyboardCode("Space")

	s.Press(fire)
	for i := 0; i < 5; i++ {
		s.Frame(frame)
	}
	if s.Game.ShotsFired != 1 {
		t.Errorf("ShotsFired = %d while held, want 1", s.Game.ShotsFired)
	}

	s.Release(fire)
	s.Frame(frame)
	s.Press(fire)
	s.Frame(frame)
	if s.Game.ShotsFired != 2 {
		t.Errorf("ShotsFired = %d after second press, want 2", s.Game.ShotsFired)
	}
}

func TestStep_ShotsLeaveField(t *testing.T) {
	g := state.NewGame()
	g.Fire()
	moveShots(g, 10)
	if len(g.Shots) != 0 {
		t.Errorf("len(Shots) = %d, want 0 once off the field", len(g.Shots))
	}
}

func TestStep_Quit(t *testing.T) {
	s := newSession(t)
	s.Press(input.TerminalCode("q"))
	s.Frame(frame)
	if !s.Game.Quit {
		t.Error("Quit = false, want true")
	}
}

func TestStep_SlowHalvesSpeed(t *testing.T) {
	s := newSession(t)
	x := s.Game.X

	s.Analog(input.GamepadCode("left_x"), 1)
	s.Press(input.KeyboardCode("ShiftLeft"))
	s.Frame(frame)

	want := x + ShipSpeed*SlowFactor*frame.Seconds()
	if !approx(s.Game.X, want) {
		t.Errorf("X = %v, want %v", s.Game.X, want)
	}
}

// openMenu presses Rebind and runs the frame that opens the menu.
func openMenu(t *testing.T, s *Session) {
	t.Helper()
	s.Press(input.KeyboardCode("F2"))
	s.Frame(frame)
	s.Release(input.KeyboardCode("F2"))
	if s.Menu == nil {
		t.Fatal("Menu = nil after rebind press, want it open")
	}
}

func TestMenu_PausesPlay(t *testing.T) {
	s := newSession(t)
	s.Press(input.KeyboardCode("ArrowRight"))
	s.Frame(frame)
	openMenu(t, s)

	if s.Router.Held(input.KeyboardCode("ArrowRight")) {
		t.Error("ArrowRight still held after the menu opened")
	}
	x := s.Game.X
	s.Analog(input.GamepadCode("left_x"), 1)
	for i := 0; i < 5; i++ {
		s.Frame(frame)
	}
	if s.Game.X != x {
		t.Errorf("X = %v while the menu is open, want %v", s.Game.X, x)
	}
	if s.Game.ShotsFired != 0 {
		t.Errorf("ShotsFired = %d, want 0", s.Game.ShotsFired)
	}
}

func TestMenu_CloseDoesNotQuit(t *testing.T) {
	s := newSession(t)
	openMenu(t, s)

	s.Press(input.KeyboardCode("Escape"))
	if s.Menu != nil {
		t.Error("Menu still open after Quit, want closed")
	}
	s.Frame(frame)
	if s.Game.Quit {
		t.Error("Quit = true, want the menu close to swallow the press")
	}
}

func TestRebind(t *testing.T) {
	s := newSession(t)
	newKey := input.KeyboardCode("X")

	openMenu(t, s)
	s.Press(input.KeyboardCode("Space"))
	s.Release(input.KeyboardCode("Space"))
	if !s.Game.Capturing || s.CaptureTarget() != controls.ButtonFire {
		t.Fatalf("Capturing = %v, target = %v, want armed for Fire", s.Game.Capturing, s.CaptureTarget())
	}

	s.Press(newKey)
	if s.Game.Capturing {
		t.Error("Capturing = true after capture, want false")
	}
	fire := input.ButtonBinding[controls.Axis](controls.ButtonFire)
	if got := s.Manager.InputsFor(fire); len(got) != 1 || got[0] != newKey {
		t.Errorf("InputsFor(fire) = %v, want [%v]", got, newKey)
	}
	last := s.Game.Messages[len(s.Game.Messages)-1]
	if !strings.Contains(last, newKey.String()) {
		t.Errorf("last message = %q, want it to mention %v", last, newKey)
	}
	if s.Menu.HelpText() != last {
		t.Errorf("menu help = %q, want %q", s.Menu.HelpText(), last)
	}

	// the captured press does not fire; the next one does
	s.Press(input.KeyboardCode("F2"))
	s.Release(input.KeyboardCode("F2"))
	if s.Menu != nil {
		t.Fatal("Menu still open after Rebind, want closed")
	}
	s.Frame(frame)
	if s.Game.ShotsFired != 0 {
		t.Errorf("ShotsFired = %d after capture, want 0", s.Game.ShotsFired)
	}
	s.Release(newKey)
	s.Press(newKey)
	s.Frame(frame)
	if s.Game.ShotsFired != 1 {
		t.Errorf("ShotsFired = %d, want 1 from the new key", s.Game.ShotsFired)
	}

	s.Press(input.KeyboardCode("Space"))
	s.Frame(frame)
	if s.Game.ShotsFired != 1 {
		t.Errorf("ShotsFired = %d, want the old key unbound", s.Game.ShotsFired)
	}
}

func TestRebind_SelectSlow(t *testing.T) {
	s := newSession(t)
	openMenu(t, s)

	s.Press(input.KeyboardCode("ArrowDown"))
	s.Release(input.KeyboardCode("ArrowDown"))
	s.Press(input.KeyboardCode("Space"))
	if s.CaptureTarget() != controls.ButtonSlow {
		t.Fatalf("target = %v, want Slow", s.CaptureTarget())
	}

	key := input.TerminalCode("c")
	s.Press(key)
	slow := input.ButtonBinding[controls.Axis](controls.ButtonSlow)
	if got := s.Manager.InputsFor(slow); len(got) != 1 || got[0] != key {
		t.Errorf("InputsFor(slow) = %v, want [%v]", got, key)
	}
}

func TestRebind_ReservedInputCancels(t *testing.T) {
	s := newSession(t)
	openMenu(t, s)
	s.Press(input.KeyboardCode("Space"))

	s.Press(input.KeyboardCode("Escape"))
	if s.Game.Capturing {
		t.Error("Capturing = true after reserved input, want false")
	}
	fire := input.ButtonBinding[controls.Axis](controls.ButtonFire)
	if n := len(s.Manager.InputsFor(fire)); n != 5 {
		t.Errorf("len(InputsFor(fire)) = %d, want the default 5", n)
	}
	if s.Menu != nil {
		t.Error("reserved input was not handled by the menu after cancelling the capture")
	}
}

func TestCapture_NotArmed(t *testing.T) {
	s := newSession(t)
	if Capture(s.Game, s.Manager, s.Router, controls.ButtonFire, input.KeyboardCode("X")) {
		t.Error("Capture = true while not armed, want false")
	}
}

func TestRebind_DirectionKeyBecomesButton(t *testing.T) {
	s := newSession(t)
	up := input.KeyboardCode("ArrowUp")

	openMenu(t, s)
	s.Press(input.KeyboardCode("Space"))
	s.Press(up)
	s.Press(input.KeyboardCode("Escape"))
	s.Release(up)
	s.Frame(frame)

	s.Press(up)
	s.Frame(frame)
	s.Release(up)
	s.Frame(frame)
	if s.Game.ShotsFired != 1 {
		t.Errorf("ShotsFired = %d, want 1 from the rebound arrow", s.Game.ShotsFired)
	}
	if v, _ := s.Manager.Axis(controls.AxisVertical); v.Position != 0 {
		t.Errorf("vertical = %+v, want the arrow to no longer move the ship", v)
	}
}
