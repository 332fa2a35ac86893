// Package canvas draws the editor grid and painted cells onto a 2D
// drawing surface.
package canvas

import "github.com/ha1tch/pix/internal/history"

// GridStroke is the style of the grid lines.
const GridStroke = "rgba(150, 150, 150, 0.75)"

// Surface is the subset of a 2D drawing context the editor needs. Styles
// are CSS color strings. Resize sets the surface size in pixels and
// clears it, including any pending path.
type Surface interface {
	Resize(width, height int)
	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Stroke()
	FillRect(x, y, width, height float64)
	SetStrokeStyle(style string)
	SetFillStyle(style string)
}

var (
	_ Surface = (*ImageSurface)(nil)
	_ Surface = (*Recorder)(nil)
)

// Grid describes the canvas and cell dimensions in pixels.
type Grid struct {
	Width      int
	Height     int
	CellWidth  int
	CellHeight int
}

// DrawGrid resets the surface to the grid's size and strokes the cell
// boundaries, including the closing lines at the far edges when they
// fall on a cell boundary.
func DrawGrid(s Surface, g Grid) {
	s.Resize(g.Width, g.Height)
	s.BeginPath()
	s.SetStrokeStyle(GridStroke)

	if g.CellWidth > 0 {
		for x := 0; x <= g.Width; x += g.CellWidth {
			s.MoveTo(float64(x), 0)
			s.LineTo(float64(x), float64(g.Height))
		}
	}
	if g.CellHeight > 0 {
		for y := 0; y <= g.Height; y += g.CellHeight {
			s.MoveTo(0, float64(y))
			s.LineTo(float64(g.Width), float64(y))
		}
	}

	s.Stroke()
}

// Redraw repaints the grid and then every entry in draw order, so later
// entries cover earlier ones.
func Redraw(s Surface, g Grid, entries []history.Entry) {
	DrawGrid(s, g)
	for _, e := range entries {
		s.SetFillStyle(e.Color)
		s.FillRect(e.Position.X, e.Position.Y, float64(g.CellWidth), float64(g.CellHeight))
	}
}
