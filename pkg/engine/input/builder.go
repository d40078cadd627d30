package input

// Builder accumulates bindings and default changes for a Manager.
//
//	m := input.NewBuilder[Axis, Button, input.Code]().
//		AddAxisBinding(AxisHorizontal, left).
//		AddDefaultChange(input.Falling(input.DirectionDown), left).
//		Build()
type Builder[A, B, C comparable] struct {
	manager *Manager[A, B, C]
}

// NewBuilder starts a Builder for a Manager created with opts.
func NewBuilder[A, B, C comparable](opts ...Option) *Builder[A, B, C] {
	return &Builder[A, B, C]{manager: NewManager[A, B, C](opts...)}
}

// AddAxisBinding calls Manager.AddAxisBinding.
func (b *Builder[A, B, C]) AddAxisBinding(axis A, input C) *Builder[A, B, C] {
	b.manager.AddAxisBinding(axis, input)
	return b
}

// AddButtonBinding calls Manager.AddButtonBinding.
func (b *Builder[A, B, C]) AddButtonBinding(button B, input C) *Builder[A, B, C] {
	b.manager.AddButtonBinding(button, input)
	return b
}

// AddDefaultChange calls Manager.AddDefaultChange.
func (b *Builder[A, B, C]) AddDefaultChange(change Change, input C) *Builder[A, B, C] {
	b.manager.AddDefaultChange(change, input)
	return b
}

// Build returns the Manager. The Builder must not be used afterwards.
func (b *Builder[A, B, C]) Build() *Manager[A, B, C] {
	m := b.manager
	b.manager = nil
	return m
}
