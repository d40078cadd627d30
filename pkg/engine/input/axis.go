package input

import "time"

// DefaultAxisScale is the number of milliseconds a driven axis takes to
// travel one unit.
const DefaultAxisScale = 500.0

// AxisConfig holds the tuning shared by every axis of a Manager.
type AxisConfig struct {
	// Scale is milliseconds per unit of travel. Values <= 0 mean DefaultAxisScale.
	Scale float64
}

func (c AxisConfig) scale() float64 {
	if c.Scale <= 0 {
		return DefaultAxisScale
	}
	return c.Scale
}

// Axis is a continuous control normalised to [-1, 1].
type Axis struct {
	Position float64
	Velocity Direction
	// Falling is set while the axis eases back towards zero after a fall
	// trigger. It overrides Velocity.
	Falling bool
}

// Apply mutates the axis according to change.
func (a *Axis) Apply(change AxisChange) {
	a.Falling = false

	switch change.Kind {
	case AxisPosition:
		a.Position = change.Position
	case AxisVelocity:
		a.Velocity = change.Direction
	case AxisFalling:
		// Only a release of the direction already being driven starts a fall.
		if change.Direction != DirectionNone && change.Direction == a.Velocity {
			a.Falling = true
			a.Velocity = DirectionNone
		}
	}
}

// Tick advances the axis by delta using cfg's scale.
func (a *Axis) Tick(delta time.Duration, cfg AxisConfig) {
	var dx float64
	if a.Falling {
		if a.Position > 0 {
			dx = -1.0
		} else {
			dx = 1.0
		}
	} else {
		dx = a.Velocity.Dx()
	}

	a.Position += dx * float64(delta.Milliseconds()) / cfg.scale()

	if a.Falling {
		// reached or crossed zero
		if dx*a.Position >= 0 {
			a.Position = 0.0
			a.Falling = false
		}
		return
	}

	if a.Position > 1.0 {
		a.Position = 1.0
	} else if a.Position < -1.0 {
		a.Position = -1.0
	}
}
