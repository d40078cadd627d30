package input

import "fmt"

// Kind is the kind of logical control a Binding refers to.
type Kind int

const (
	KindAxis Kind = iota
	KindButton
)

func (k Kind) String() string {
	if k == KindButton {
		return "button"
	}
	return "axis"
}

// Binding identifies a logical control by kind and key. Only the field
// matching Kind is meaningful; the other one is left at its zero value so
// that Bindings compare equal and can be used as map keys.
type Binding[A, B comparable] struct {
	Kind   Kind
	Axis   A
	Button B
}

// AxisBinding returns the Binding for the logical axis a.
func AxisBinding[A, B comparable](a A) Binding[A, B] {
	return Binding[A, B]{Kind: KindAxis, Axis: a}
}

// ButtonBinding returns the Binding for the logical button b.
func ButtonBinding[A, B comparable](b B) Binding[A, B] {
	return Binding[A, B]{Kind: KindButton, Button: b}
}

func (b Binding[A, B]) String() string {
	if b.Kind == KindButton {
		return fmt.Sprintf("button(%v)", b.Button)
	}
	return fmt.Sprintf("axis(%v)", b.Axis)
}

// Accepts reports whether change has the kind b can take.
func (b Binding[A, B]) Accepts(change Change) bool {
	switch change.(type) {
	case AxisChange:
		return b.Kind == KindAxis
	case ButtonChange:
		return b.Kind == KindButton
	}
	return false
}
