// Package grid maps pointer coordinates onto the cells of a fixed grid.
package grid

import "math"

// Rect is the screen rectangle of the canvas, as reported by the host
// (DOM bounding rect, window layout).
type Rect struct {
	Left   float64
	Top    float64
	Width  float64
	Height float64
}

// Position is a point in canvas pixels, snapped to the top-left corner
// of a cell.
type Position struct {
	X float64
	Y float64
}

// Snap converts client coordinates into the position of the nearest cell.
// Pointers outside the canvas yield out-of-range, possibly negative,
// positions; callers decide whether to use them.
func Snap(clientX, clientY float64, rect Rect, cellWidth, cellHeight float64) Position {
	return Position{
		X: snapAxis(clientX-rect.Left, cellWidth),
		Y: snapAxis(clientY-rect.Top, cellHeight),
	}
}

// Update snaps p in place.
func (p *Position) Update(clientX, clientY float64, rect Rect, cellWidth, cellHeight float64) {
	*p = Snap(clientX, clientY, rect, cellWidth, cellHeight)
}

// Cell returns the column and row of p.
func (p Position) Cell(cellWidth, cellHeight float64) (col, row int) {
	return int(math.Round(p.X / cellWidth)), int(math.Round(p.Y / cellHeight))
}

// InBounds reports whether the cell at p starts inside a canvas of the
// given size.
func InBounds(p Position, width, height float64) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < width && p.Y < height
}

func snapAxis(offset, size float64) float64 {
	// Halves round away from zero.
	return math.Round((offset-size/2)/size) * size
}
