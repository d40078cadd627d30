package console

import (
	"errors"
	"strings"
	"testing"
	"time"

	"rebind/pkg/engine/input"
	"rebind/pkg/game/controls"
)

func newConsole(t *testing.T) (*Console, *controls.Manager, *controls.Router) {
	t.Helper()
	m, r := controls.New(input.WithAxisScale(500))
	return New(m, r), m, r
}

func lastLine(c *Console) string {
	out := c.Output()
	if len(out) == 0 {
		return ""
	}
	return out[len(out)-1]
}

func TestExecute_Empty(t *testing.T) {
	c, _, _ := newConsole(t)
	if err := c.Execute("   "); err != nil {
		t.Errorf("Execute(blank) = %v, want nil", err)
	}
	if len(c.Output()) != 0 {
		t.Errorf("Output = %q, want nothing for a blank line", c.Output())
	}
}

func TestExecute_BindButton(t *testing.T) {
	c, m, _ := newConsole(t)
	if err := c.Execute("bind Fire keyboard:X"); err != nil {
		t.Fatalf("Execute = %v", err)
	}
	b, ok := m.Binding(input.KeyboardCode("X"))
	if !ok || b != input.ButtonBinding[controls.Axis](controls.ButtonFire) {
		t.Errorf("Binding(X) = %v, %v, want fire", b, ok)
	}
	if n := len(m.InputsFor(b)); n != 6 {
		t.Errorf("len(InputsFor(fire)) = %d, want the old inputs kept", n)
	}
	if c.Output()[0] != "> bind Fire keyboard:X" {
		t.Errorf("Output[0] = %q, want the echoed command", c.Output()[0])
	}
}

func TestExecute_BindDigitalAxis(t *testing.T) {
	c, m, r := newConsole(t)
	key := input.KeyboardCode("L")
	if err := c.Execute("bind horizontal+ keyboard:L"); err != nil {
		t.Fatalf("Execute = %v", err)
	}

	r.Press(key)
	m.Tick(100 * time.Millisecond)
	if a, _ := m.Axis(controls.AxisHorizontal); a.Position != 0.2 {
		t.Errorf("Position = %v, want 0.2", a.Position)
	}
}

func TestExecute_BindAnalogAxis(t *testing.T) {
	c, m, r := newConsole(t)
	if err := c.Execute("bind vertical gamepad:right_y"); err != nil {
		t.Fatalf("Execute = %v", err)
	}
	r.Analog(input.GamepadCode("right_y"), 0.5)
	if a, _ := m.Axis(controls.AxisVertical); a.Position != 0.5 {
		t.Errorf("Position = %v, want 0.5", a.Position)
	}
}

func TestExecute_Rebind(t *testing.T) {
	c, m, _ := newConsole(t)
	if err := c.Execute("rebind slow terminal:c"); err != nil {
		t.Fatalf("Execute = %v", err)
	}
	slow := input.ButtonBinding[controls.Axis](controls.ButtonSlow)
	if got := m.InputsFor(slow); len(got) != 1 || got[0] != input.TerminalCode("c") {
		t.Errorf("InputsFor(slow) = %v, want [terminal:c]", got)
	}

	if err := c.Execute("rebind horizontal keyboard:L"); err == nil {
		t.Error("rebind of an axis succeeded, want an error")
	}
}

func TestExecute_Unbind(t *testing.T) {
	c, m, r := newConsole(t)
	left := input.KeyboardCode("ArrowLeft")

	r.Press(left)
	if err := c.Execute("unbind keyboard:ArrowLeft"); err != nil {
		t.Fatalf("Execute = %v", err)
	}
	if _, ok := m.Binding(left); ok {
		t.Error("ArrowLeft still bound")
	}
	if r.Held(left) {
		t.Error("ArrowLeft still held after unbind")
	}
	if !strings.HasPrefix(lastLine(c), "Unbound keyboard:ArrowLeft") {
		t.Errorf("last line = %q", lastLine(c))
	}

	if err := c.Execute("unbind keyboard:ArrowLeft"); err == nil {
		t.Error("second unbind succeeded, want an error")
	}
}

func TestExecute_ReservedInputs(t *testing.T) {
	c, m, _ := newConsole(t)

	if err := c.Execute("bind fire keyboard:Escape"); err == nil {
		t.Error("binding the quit key to fire succeeded, want an error")
	}
	if b, _ := m.Binding(input.KeyboardCode("Escape")); b.Button != controls.ButtonQuit {
		t.Errorf("Escape = %v, want it still on quit", b)
	}

	// the last input of a reserved control stays
	for _, code := range []string{"keyboard:F2", "gamepad:back"} {
		if err := c.Execute("unbind " + code); err != nil {
			t.Fatalf("unbind %s = %v", code, err)
		}
	}
	if err := c.Execute("unbind terminal:r"); err == nil {
		t.Error("unbinding the last rebind input succeeded, want an error")
	}
}

func TestExecute_Errors(t *testing.T) {
	c, _, _ := newConsole(t)
	tests := []struct {
		line  string
		usage bool
	}{
		{"bind fire", true},
		{"unbind", true},
		{"list a b", true},
		{"bind jump keyboard:X", false},
		{"bind fire mouse:left", false},
		{"frobnicate", false},
	}
	for _, tt := range tests {
		err := c.Execute(tt.line)
		if err == nil {
			t.Errorf("Execute(%q) = nil, want an error", tt.line)
			continue
		}
		if errors.Is(err, ErrUsage) != tt.usage {
			t.Errorf("Execute(%q) = %v, usage error %v", tt.line, err, tt.usage)
		}
		if tt.usage && !strings.HasPrefix(lastLine(c), "Usage: ") {
			t.Errorf("Execute(%q) printed %q, want usage", tt.line, lastLine(c))
		}
	}
}

func TestExecute_List(t *testing.T) {
	c, _, _ := newConsole(t)
	if err := c.Execute("list terminal"); err != nil {
		t.Fatalf("Execute = %v", err)
	}
	out := c.Output()
	if len(out) != 1+len(controls.Axes)+len(controls.Buttons) {
		t.Fatalf("Output = %q, want one line per control", out)
	}
	if !strings.Contains(out[3], "terminal:space, terminal:z") || strings.Contains(out[3], "keyboard") {
		t.Errorf("fire line = %q, want terminal inputs only", out[3])
	}

	if err := c.Execute("list mouse"); err == nil {
		t.Error("list mouse succeeded, want an error")
	}
}

func TestExecute_ClearAndHelp(t *testing.T) {
	c, _, _ := newConsole(t)
	c.Execute("help")
	if len(c.Output()) < 2 {
		t.Errorf("help printed %q", c.Output())
	}
	c.Execute("clear")
	if len(c.Output()) != 0 {
		t.Errorf("Output = %q after clear, want empty", c.Output())
	}
}

func TestOutputIsBounded(t *testing.T) {
	c, _, _ := newConsole(t)
	for i := 0; i < maxOutput; i++ {
		c.Execute("list")
	}
	if len(c.Output()) != maxOutput {
		t.Errorf("len(Output) = %d, want %d", len(c.Output()), maxOutput)
	}
}

func TestBindAll(t *testing.T) {
	c, m, _ := newConsole(t)
	err := c.BindAll(map[string][]string{
		"fire":        {"keyboard:X", "gamepad:button_b"},
		"horizontal-": {"keyboard:J"},
		"jump":        {"keyboard:K"},
		"slow":        {"not-a-code"},
	})
	if err == nil {
		t.Fatal("BindAll = nil, want the bad entries reported")
	}
	if !strings.Contains(err.Error(), "jump") || !strings.Contains(err.Error(), "not-a-code") {
		t.Errorf("BindAll error = %v, want both failures", err)
	}

	for _, code := range []input.Code{input.KeyboardCode("X"), input.GamepadCode("button_b"), input.KeyboardCode("J")} {
		if _, ok := m.Binding(code); !ok {
			t.Errorf("%v not bound", code)
		}
	}
}
