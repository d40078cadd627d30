package state

// Field size in world units. The ship is kept inside it.
const (
	FieldWidth  = 40.0
	FieldHeight = 20.0
)

const maxMessages = 5

// Shot is a projectile fired by the ship.
type Shot struct {
	X, Y float64
}

// Game represents the state of the demo
type Game struct {
	// Ship position, origin top-left, y grows downwards.
	X, Y float64

	Shots []Shot

	// ShotsFired counts every shot since the start.
	ShotsFired int

	Messages []string

	// Capturing is set while the next physical input will be bound to a
	// button chosen in the bindings menu.
	Capturing bool

	Quit bool

	Frames int
}

// NewGame creates a new game with the ship at the bottom centre of the field
func NewGame() *Game {
	return &Game{
		X:        FieldWidth / 2,
		Y:        FieldHeight - 2,
		Messages: make([]string, 0),
	}
}

// AddMessage adds a message to the game's message log
func (g *Game) AddMessage(msg string) {
	g.Messages = append(g.Messages, msg)

	// Keep only the last maxMessages
	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (g *Game) ClearMessages() {
	g.Messages = make([]string, 0)
}

// Fire spawns a shot at the ship
func (g *Game) Fire() {
	g.Shots = append(g.Shots, Shot{X: g.X, Y: g.Y - 1})
	g.ShotsFired++
}
