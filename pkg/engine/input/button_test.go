package input

import "testing"

func TestButtonApply(t *testing.T) {
	var b Button
	b.Apply(ButtonChange(true))
	if !b.Pressed {
		t.Error("Pressed = false after Apply(true), want true")
	}
	b.Apply(ButtonChange(false))
	if b.Pressed {
		t.Error("Pressed = true after Apply(false), want false")
	}
}

func TestButton_NewEventOnChange(t *testing.T) {
	var b Button
	b.Apply(ButtonChange(true))
	if !b.NewEvent {
		t.Error("NewEvent = false after press, want true")
	}
	b.Apply(ButtonChange(false))
	if !b.NewEvent {
		t.Error("NewEvent = false after press and release in one tick, want true")
	}
}

func TestButton_NewEventOnlyOnChange(t *testing.T) {
	var b Button
	b.Apply(ButtonChange(false))
	if b.NewEvent {
		t.Error("NewEvent = true after re-applying released, want false")
	}

	b = Button{Pressed: true}
	b.Apply(ButtonChange(true))
	if b.NewEvent {
		t.Error("NewEvent = true after re-applying pressed, want false")
	}
}

func TestButton_NewEventClearedByTick(t *testing.T) {
	b := Button{Pressed: true, NewEvent: true}
	b.Tick()
	if b.NewEvent {
		t.Error("NewEvent = true after Tick, want false")
	}
	if !b.Pressed {
		t.Error("Pressed = false after Tick, want true (Tick only clears the edge)")
	}
}

func TestButton_PulseIsOneTickWide(t *testing.T) {
	var b Button
	b.Apply(ButtonChange(true))
	b.Apply(ButtonChange(true))
	if !b.NewEvent {
		t.Fatal("NewEvent = false before Tick, want true")
	}

	b.Tick()
	b.Apply(ButtonChange(true))
	if b.NewEvent {
		t.Error("NewEvent = true after identical apply following Tick, want false")
	}

	b.Apply(ButtonChange(false))
	if !b.NewEvent {
		t.Error("NewEvent = false after the value flipped, want true")
	}
}
