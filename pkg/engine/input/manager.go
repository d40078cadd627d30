package input

import (
	"fmt"
	"time"
)

// state is the live value of one logical control. Exactly one of axis and
// button is set, matching the Kind of the Binding it is stored under.
type state struct {
	axis   *Axis
	button *Button
}

// Option configures a Manager.
type Option func(*options)

type options struct {
	axis AxisConfig
}

// WithAxisScale sets the milliseconds-per-unit rate used by every axis.
func WithAxisScale(scale float64) Option {
	return func(o *options) {
		o.axis.Scale = scale
	}
}

// WithAxisConfig replaces the axis configuration.
func WithAxisConfig(cfg AxisConfig) Option {
	return func(o *options) {
		o.axis = cfg
	}
}

// Manager owns the live state of every logical control, the routing from raw
// inputs to logical controls and the per-input default changes.
//
// A Manager is not safe for concurrent use. Hosts call ApplyChange any number
// of times and Tick once per frame from the same goroutine.
type Manager[A, B, C comparable] struct {
	states         map[Binding[A, B]]*state
	bindings       map[C]Binding[A, B]
	defaultChanges map[C]Change
	axisConfig     AxisConfig
}

// NewManager creates an empty Manager.
func NewManager[A, B, C comparable](opts ...Option) *Manager[A, B, C] {
	o := options{axis: AxisConfig{Scale: DefaultAxisScale}}
	for _, opt := range opts {
		opt(&o)
	}

	return &Manager[A, B, C]{
		states:         make(map[Binding[A, B]]*state),
		bindings:       make(map[C]Binding[A, B]),
		defaultChanges: make(map[C]Change),
		axisConfig:     o.axis,
	}
}

// AxisConfig returns the axis tuning in use.
func (m *Manager[A, B, C]) AxisConfig() AxisConfig {
	return m.axisConfig
}

// AddAxisBinding routes input to the logical axis. The axis state is created
// on first registration and kept on later ones.
func (m *Manager[A, B, C]) AddAxisBinding(axis A, input C) {
	binding := AxisBinding[A, B](axis)
	m.bindings[input] = binding
	if _, ok := m.states[binding]; !ok {
		m.states[binding] = &state{axis: &Axis{}}
	}
}

// AddButtonBinding routes input to the logical button. The button state is
// created on first registration and kept on later ones.
func (m *Manager[A, B, C]) AddButtonBinding(button B, input C) {
	binding := ButtonBinding[A](button)
	m.bindings[input] = binding
	if _, ok := m.states[binding]; !ok {
		m.states[binding] = &state{button: &Button{}}
	}
}

// AddDefaultChange stores the change to apply when input returns to rest,
// replacing any previous default for input.
func (m *Manager[A, B, C]) AddDefaultChange(change Change, input C) {
	m.defaultChanges[input] = change
}

// RemoveDefaultChange drops the default change stored for input.
func (m *Manager[A, B, C]) RemoveDefaultChange(input C) {
	delete(m.defaultChanges, input)
}

// Binding returns the logical control input is routed to.
func (m *Manager[A, B, C]) Binding(input C) (Binding[A, B], bool) {
	b, ok := m.bindings[input]
	return b, ok
}

// DefaultChange returns the default change stored for input.
func (m *Manager[A, B, C]) DefaultChange(input C) (Change, bool) {
	c, ok := m.defaultChanges[input]
	return c, ok
}

// RemoveBinding drops the route for input. Live state of the control it
// pointed at is kept, as is any default change for input.
func (m *Manager[A, B, C]) RemoveBinding(input C) {
	delete(m.bindings, input)
}

// InputsFor returns every raw input routed to binding, in no particular order.
func (m *Manager[A, B, C]) InputsFor(binding Binding[A, B]) []C {
	var inputs []C
	for input, b := range m.bindings {
		if b == binding {
			inputs = append(inputs, input)
		}
	}
	return inputs
}

// ReplaceBindings removes every route to binding and routes input to it
// instead. Live state is kept.
func (m *Manager[A, B, C]) ReplaceBindings(binding Binding[A, B], input C) {
	for in, b := range m.bindings {
		if b == binding {
			delete(m.bindings, in)
		}
	}

	switch binding.Kind {
	case KindAxis:
		m.AddAxisBinding(binding.Axis, input)
	case KindButton:
		m.AddButtonBinding(binding.Button, input)
	}
}

// Axis returns a copy of the live state of axis. It reports false if the
// axis was never bound.
func (m *Manager[A, B, C]) Axis(axis A) (Axis, bool) {
	s, ok := m.states[AxisBinding[A, B](axis)]
	if !ok || s.axis == nil {
		return Axis{}, false
	}
	return *s.axis, true
}

// Button returns a copy of the live state of button. It reports false if the
// button was never bound.
func (m *Manager[A, B, C]) Button(button B) (Button, bool) {
	s, ok := m.states[ButtonBinding[A](button)]
	if !ok || s.button == nil {
		return Button{}, false
	}
	return *s.button, true
}

// ChangedButtons returns every bound button whose edge fired since the last Tick.
func (m *Manager[A, B, C]) ChangedButtons() map[B]Button {
	changed := make(map[B]Button)
	for binding, s := range m.states {
		if binding.Kind != KindButton || s.button == nil {
			continue
		}
		if s.button.NewEvent {
			changed[binding.Button] = *s.button
		}
	}
	return changed
}

// ButtonPressed reports whether button was pressed since the last Tick.
// A button held across ticks reports false after the first one.
func (m *Manager[A, B, C]) ButtonPressed(button B) bool {
	b, ok := m.Button(button)
	return ok && b.Pressed && b.NewEvent
}

// ButtonReleased reports whether button was released since the last Tick.
func (m *Manager[A, B, C]) ButtonReleased(button B) bool {
	b, ok := m.Button(button)
	return ok && !b.Pressed && b.NewEvent
}

// EachState calls fn for every live control. Exactly one of axis and button
// is non-nil. The values are copies.
func (m *Manager[A, B, C]) EachState(fn func(binding Binding[A, B], axis *Axis, button *Button)) {
	for binding, s := range m.states {
		switch {
		case s.axis != nil:
			a := *s.axis
			fn(binding, &a, nil)
		case s.button != nil:
			b := *s.button
			fn(binding, nil, &b)
		}
	}
}

// ApplyChange applies change to the live state of binding. Unknown bindings
// are ignored. Applying an axis change to a button binding, or the reverse,
// is a programming error and panics.
func (m *Manager[A, B, C]) ApplyChange(binding Binding[A, B], change Change) {
	s, ok := m.states[binding]
	if !ok {
		return
	}

	switch c := change.(type) {
	case AxisChange:
		if s.axis == nil {
			panic(fmt.Sprintf("input: axis change %s applied to %s", c, binding))
		}
		s.axis.Apply(c)
	case ButtonChange:
		if s.button == nil {
			panic(fmt.Sprintf("input: button change %s applied to %s", c, binding))
		}
		s.button.Apply(c)
	default:
		panic(fmt.Sprintf("input: unknown change %T applied to %s", change, binding))
	}
}

// ApplyInput applies change to whatever input is routed to. It reports false
// when input is unbound, in which case nothing happens.
func (m *Manager[A, B, C]) ApplyInput(input C, change Change) bool {
	binding, ok := m.bindings[input]
	if !ok {
		return false
	}
	m.ApplyChange(binding, change)
	return true
}

// ApplyDefault applies the default change stored for input to the control
// input is routed to. It reports whether a change was applied.
func (m *Manager[A, B, C]) ApplyDefault(input C) bool {
	change, ok := m.defaultChanges[input]
	if !ok {
		return false
	}
	return m.ApplyInput(input, change)
}

// Tick advances every live control once using the same delta.
func (m *Manager[A, B, C]) Tick(delta time.Duration) {
	for _, s := range m.states {
		switch {
		case s.axis != nil:
			s.axis.Tick(delta, m.axisConfig)
		case s.button != nil:
			s.button.Tick()
		}
	}
}
