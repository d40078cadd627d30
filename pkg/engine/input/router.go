package input

import (
	"math"

	"github.com/zyedidia/generic/mapset"
)

// DefaultDeadZone is the analog magnitude below which a stick reads as centred.
const DefaultDeadZone = 0.25

// Router turns physical press, release and analog events into Changes on a
// Manager. It carries the one piece of routing the Manager does not: which
// direction a digital input drives its axis in.
type Router[A, B, C comparable] struct {
	manager    *Manager[A, B, C]
	directions map[C]Direction
	held       mapset.Set[C]
	analog     map[C]float64
	deadZone   float64
}

// NewRouter creates a Router feeding m.
func NewRouter[A, B, C comparable](m *Manager[A, B, C]) *Router[A, B, C] {
	return &Router[A, B, C]{
		manager:    m,
		directions: make(map[C]Direction),
		held:       mapset.New[C](),
		analog:     make(map[C]float64),
		deadZone:   DefaultDeadZone,
	}
}

// Manager returns the Manager the router feeds.
func (r *Router[A, B, C]) Manager() *Manager[A, B, C] {
	return r.manager
}

// SetDeadZone sets the analog dead zone. Negative values are treated as zero.
func (r *Router[A, B, C]) SetDeadZone(dz float64) {
	r.deadZone = math.Max(dz, 0)
}

// AddDirection records the direction a digital axis input drives in.
func (r *Router[A, B, C]) AddDirection(input C, d Direction) {
	r.directions[input] = d
}

// RemoveDirection forgets the direction recorded for input.
func (r *Router[A, B, C]) RemoveDirection(input C) {
	delete(r.directions, input)
}

// Direction returns the direction recorded for input.
func (r *Router[A, B, C]) Direction(input C) (Direction, bool) {
	d, ok := r.directions[input]
	return d, ok
}

// Held reports whether input is currently held down.
func (r *Router[A, B, C]) Held(input C) bool {
	return r.held.Has(input)
}

// HeldInputs returns every input currently held down, in no particular order.
func (r *Router[A, B, C]) HeldInputs() []C {
	inputs := make([]C, 0, r.held.Size())
	r.held.Each(func(input C) {
		inputs = append(inputs, input)
	})
	return inputs
}

// Press handles input going down. Repeated presses of a held input are
// ignored. It reports whether input is bound.
func (r *Router[A, B, C]) Press(input C) bool {
	binding, ok := r.manager.Binding(input)
	if !ok {
		return false
	}
	if r.held.Has(input) {
		return true
	}
	r.held.Put(input)

	switch binding.Kind {
	case KindAxis:
		if d, ok := r.directions[input]; ok {
			r.manager.ApplyChange(binding, Velocity(d))
		}
	case KindButton:
		r.manager.ApplyChange(binding, ButtonChange(true))
	}
	return true
}

// Release handles input going up. The input's default change is applied if
// it has one that fits the control; otherwise buttons are released and axes
// are left alone. Releasing an input that was never pressed through the
// router changes nothing. It reports whether input is bound.
func (r *Router[A, B, C]) Release(input C) bool {
	binding, ok := r.manager.Binding(input)
	if !ok {
		r.held.Remove(input)
		return false
	}
	if !r.held.Has(input) {
		return true
	}
	r.held.Remove(input)
	// a default left over from before a rebind may be of the other kind
	if change, ok := r.manager.DefaultChange(input); ok && binding.Accepts(change) {
		r.manager.ApplyChange(binding, change)
		return true
	}
	if binding.Kind == KindButton {
		r.manager.ApplyChange(binding, ButtonChange(false))
	}
	return true
}

// Analog handles an analog reading in [-1, 1] for an axis input. Readings
// inside the dead zone are applied as zero, and a reading equal to the last
// one applied for input is dropped so that a resting stick does not fight a
// keyboard driving the same axis. Analog readings on button inputs press or
// release the button around the dead zone.
func (r *Router[A, B, C]) Analog(input C, v float64) bool {
	binding, ok := r.manager.Binding(input)
	if !ok {
		return false
	}

	if math.Abs(v) <= r.deadZone {
		v = 0
	}
	v = math.Max(-1, math.Min(1, v))

	// inputs start centred
	if r.analog[input] == v {
		return true
	}
	r.analog[input] = v

	switch binding.Kind {
	case KindAxis:
		r.manager.ApplyChange(binding, Position(v))
	case KindButton:
		if v != 0 {
			return r.Press(input)
		}
		return r.Release(input)
	}
	return true
}

// ReleaseAll releases every held input.
func (r *Router[A, B, C]) ReleaseAll() {
	for _, input := range r.HeldInputs() {
		r.Release(input)
	}
}
