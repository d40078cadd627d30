package tui

import (
	"testing"
	"time"

	"rebind/pkg/engine/input"
)

func TestHoldTracker(t *testing.T) {
	h := newHoldTracker(100 * time.Millisecond)
	start := time.Now()
	a := input.TerminalCode("a")
	d := input.TerminalCode("d")

	if !h.Seen(a, start) {
		t.Error("first Seen(a) = false, want a new press")
	}
	if h.Seen(a, start.Add(30*time.Millisecond)) {
		t.Error("repeat Seen(a) = true, want false while held")
	}
	h.Seen(d, start.Add(50*time.Millisecond))

	if got := h.Expired(start.Add(120 * time.Millisecond)); len(got) != 0 {
		t.Errorf("Expired at 120ms = %v, want none (a repeated at 30ms)", got)
	}

	got := h.Expired(start.Add(140 * time.Millisecond))
	if len(got) != 1 || got[0] != a {
		t.Errorf("Expired at 140ms = %v, want [%v]", got, a)
	}
	if h.Size() != 1 {
		t.Errorf("Size = %d, want 1", h.Size())
	}

	got = h.Expired(start.Add(time.Second))
	if len(got) != 1 || got[0] != d {
		t.Errorf("Expired at 1s = %v, want [%v]", got, d)
	}
	if !h.Seen(a, start.Add(2*time.Second)) {
		t.Error("Seen(a) after release = false, want a new press")
	}
}
