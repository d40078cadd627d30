package input

// Button is a discrete control with a pressed level and a one-tick edge pulse.
type Button struct {
	Pressed bool
	// NewEvent is true from the Apply that changed Pressed until the next Tick.
	NewEvent bool
}

// Apply sets the pressed value, raising NewEvent if it changed.
func (b *Button) Apply(change ButtonChange) {
	if b.Pressed != bool(change) {
		b.NewEvent = true
	}
	b.Pressed = bool(change)
}

// Tick clears the edge pulse.
func (b *Button) Tick() {
	b.NewEvent = false
}
