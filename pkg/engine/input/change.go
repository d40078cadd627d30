package input

import "fmt"

// Direction is the direction an axis is being driven in.
// DirectionNone means the axis has no velocity.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionUp
	DirectionDown
)

// Dx returns the unit delta for the direction.
func (d Direction) Dx() float64 {
	switch d {
	case DirectionUp:
		return 1.0
	case DirectionDown:
		return -1.0
	default:
		return 0.0
	}
}

func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	default:
		return "none"
	}
}

// Change is an intended mutation of a control. It is either an AxisChange
// or a ButtonChange.
type Change interface {
	isChange()
}

// AxisChangeKind tags the payload carried by an AxisChange.
type AxisChangeKind int

const (
	AxisPosition AxisChangeKind = iota
	AxisVelocity
	AxisFalling
)

// AxisChange is a Change understood by an Axis.
type AxisChange struct {
	Kind      AxisChangeKind
	Position  float64
	Direction Direction
}

func (AxisChange) isChange() {}

// Position sets the axis position directly, as an analog stick does.
func Position(p float64) AxisChange {
	return AxisChange{Kind: AxisPosition, Position: p}
}

// Velocity starts driving the axis in the given direction.
func Velocity(d Direction) AxisChange {
	return AxisChange{Kind: AxisVelocity, Direction: d}
}

// Falling lets the axis ease back to zero, but only if it is currently
// being driven in direction d.
func Falling(d Direction) AxisChange {
	return AxisChange{Kind: AxisFalling, Direction: d}
}

func (c AxisChange) String() string {
	switch c.Kind {
	case AxisPosition:
		return fmt.Sprintf("position(%g)", c.Position)
	case AxisVelocity:
		return fmt.Sprintf("velocity(%s)", c.Direction)
	case AxisFalling:
		return fmt.Sprintf("falling(%s)", c.Direction)
	default:
		return "axis(?)"
	}
}

// ButtonChange is a Change understood by a Button: the new pressed value.
type ButtonChange bool

func (ButtonChange) isChange() {}

func (c ButtonChange) String() string {
	if c {
		return "pressed"
	}
	return "released"
}
