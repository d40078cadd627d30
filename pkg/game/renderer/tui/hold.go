package tui

import (
	"time"

	"github.com/zyedidia/generic/mapset"

	"rebind/pkg/engine/input"
)

// holdTracker synthesizes key-up events for terminals, which only report
// key-down (and auto-repeat). A key counts as held until no byte for it has
// arrived for releaseAfter.
type holdTracker struct {
	held         mapset.Set[input.Code]
	lastSeen     map[input.Code]time.Time
	releaseAfter time.Duration
}

func newHoldTracker(releaseAfter time.Duration) *holdTracker {
	return &holdTracker{
		held:         mapset.New[input.Code](),
		lastSeen:     make(map[input.Code]time.Time),
		releaseAfter: releaseAfter,
	}
}

// Seen records a key byte and reports whether it starts a new press.
func (h *holdTracker) Seen(code input.Code, now time.Time) bool {
	h.lastSeen[code] = now
	if h.held.Has(code) {
		return false
	}
	h.held.Put(code)
	return true
}

// Expired returns, and forgets, the keys that have gone quiet.
func (h *holdTracker) Expired(now time.Time) []input.Code {
	var expired []input.Code
	h.held.Each(func(code input.Code) {
		if now.Sub(h.lastSeen[code]) >= h.releaseAfter {
			expired = append(expired, code)
		}
	})
	for _, code := range expired {
		h.held.Remove(code)
		delete(h.lastSeen, code)
	}
	input.SortCodes(expired)
	return expired
}

// Size returns the number of held keys.
func (h *holdTracker) Size() int {
	return h.held.Size()
}
