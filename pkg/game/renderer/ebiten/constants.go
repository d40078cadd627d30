// Package ebiten provides an Ebiten-based 2D graphical host for the demo.
package ebiten

import "image/color"

// Color palette
var (
	colorBackground      = color.RGBA{26, 26, 46, 255}    // Dark blue-gray
	colorFieldBackground = color.RGBA{15, 15, 26, 255}    // Darker for the play field
	colorShip            = color.RGBA{0, 255, 0, 255}     // Bright green
	colorShot            = color.RGBA{255, 220, 100, 255} // Yellow
	colorAxisTrack       = color.RGBA{60, 60, 80, 255}
	colorAxisFill        = color.RGBA{180, 150, 250, 255} // Blue-purple
	colorAxisFalling     = color.RGBA{120, 130, 180, 255} // Soft blue-purple-gray
	colorCapture         = color.RGBA{255, 100, 100, 255} // Bright red
	colorPanelBackground = color.RGBA{30, 30, 50, 220}    // Semi-transparent dark
)

// Layout in pixels
const (
	cellSize     = 12
	fieldOriginX = 16
	fieldOriginY = 16
	hudOriginX   = fieldOriginX + cellSize*40 + 24
	lineHeight   = 16
	shipSize     = 10
	shotWidth    = 2
	shotHeight   = 6
	axisBarWidth = 120
)
