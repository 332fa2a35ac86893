package canvas

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
)

type segment struct {
	x0, y0, x1, y1 float64
}

// ImageSurface is a software Surface backed by an *image.RGBA. Lines are
// one pixel wide and not antialiased. Unparseable styles leave the
// previous style in place and are reported by Err.
type ImageSurface struct {
	img    *image.RGBA
	stroke color.NRGBA
	fill   color.NRGBA
	path   []segment
	cursor [2]float64
	err    error
}

// NewImageSurface creates a transparent surface of the given size.
func NewImageSurface(width, height int) *ImageSurface {
	s := &ImageSurface{
		stroke: color.NRGBA{A: 0xff},
		fill:   color.NRGBA{A: 0xff},
	}
	s.Resize(width, height)
	return s
}

// Image returns the backing image.
func (s *ImageSurface) Image() *image.RGBA { return s.img }

// Err returns the first style that failed to parse, if any.
func (s *ImageSurface) Err() error { return s.err }

func (s *ImageSurface) Resize(width, height int) {
	s.img = image.NewRGBA(image.Rect(0, 0, width, height))
	s.path = nil
}

func (s *ImageSurface) BeginPath() { s.path = s.path[:0] }

func (s *ImageSurface) MoveTo(x, y float64) { s.cursor = [2]float64{x, y} }

func (s *ImageSurface) LineTo(x, y float64) {
	s.path = append(s.path, segment{x0: s.cursor[0], y0: s.cursor[1], x1: x, y1: y})
	s.cursor = [2]float64{x, y}
}

func (s *ImageSurface) Stroke() {
	src := image.NewUniform(s.stroke)
	for _, seg := range s.path {
		s.line(seg, src)
	}
}

func (s *ImageSurface) FillRect(x, y, width, height float64) {
	r := image.Rect(
		int(math.Floor(x)), int(math.Floor(y)),
		int(math.Floor(x+width)), int(math.Floor(y+height)),
	).Intersect(s.img.Bounds())
	if r.Empty() {
		return
	}
	draw.Draw(s.img, r, image.NewUniform(s.fill), image.Point{}, draw.Over)
}

func (s *ImageSurface) SetStrokeStyle(style string) { s.setStyle(&s.stroke, style) }

func (s *ImageSurface) SetFillStyle(style string) { s.setStyle(&s.fill, style) }

func (s *ImageSurface) setStyle(dst *color.NRGBA, style string) {
	c, err := ParseColor(style)
	if err != nil {
		if s.err == nil {
			s.err = err
		}
		return
	}
	*dst = c
}

// line plots seg with Bresenham's algorithm, blending each pixel over
// what is already there.
func (s *ImageSurface) line(seg segment, src image.Image) {
	x0, y0 := int(math.Floor(seg.x0)), int(math.Floor(seg.y0))
	x1, y1 := int(math.Floor(seg.x1)), int(math.Floor(seg.y1))

	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx - dy

	bounds := s.img.Bounds()
	for {
		p := image.Pt(x0, y0)
		if p.In(bounds) {
			draw.Draw(s.img, image.Rectangle{Min: p, Max: p.Add(image.Pt(1, 1))}, src, image.Point{}, draw.Over)
		}

		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}
