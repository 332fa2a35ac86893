// Package rlcanvas implements the editor's drawing surface on a raylib
// render texture.
package rlcanvas

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/sirupsen/logrus"

	"github.com/ha1tch/pix/internal/canvas"
)

// Background is the color a resized surface is cleared to.
var Background = rl.White

var _ canvas.Surface = (*Surface)(nil)

type segment struct {
	from, to rl.Vector2
}

// Surface draws into a render texture. It must be used on the thread that
// owns the raylib window.
type Surface struct {
	target rl.RenderTexture2D
	loaded bool
	width  int
	height int

	stroke rl.Color
	fill   rl.Color
	path   []segment
	cursor rl.Vector2

	log logrus.FieldLogger
}

// New creates a surface. The texture is allocated on the first Resize.
func New(log logrus.FieldLogger) *Surface {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Surface{
		stroke: rl.Black,
		fill:   rl.Black,
		log:    log.WithField("component", "rlcanvas"),
	}
}

// Texture returns the render texture. Its image is stored bottom-up, so
// draw it with a negative source height.
func (s *Surface) Texture() rl.RenderTexture2D { return s.target }

// Size returns the surface size in pixels.
func (s *Surface) Size() (width, height int) { return s.width, s.height }

// Unload frees the render texture.
func (s *Surface) Unload() {
	if s.loaded {
		rl.UnloadRenderTexture(s.target)
		s.loaded = false
	}
}

func (s *Surface) Resize(width, height int) {
	if !s.loaded || width != s.width || height != s.height {
		s.Unload()
		s.target = rl.LoadRenderTexture(int32(width), int32(height))
		s.loaded = true
		s.width, s.height = width, height
	}

	rl.BeginTextureMode(s.target)
	rl.ClearBackground(Background)
	rl.EndTextureMode()

	s.path = s.path[:0]
}

func (s *Surface) BeginPath() { s.path = s.path[:0] }

func (s *Surface) MoveTo(x, y float64) {
	s.cursor = rl.Vector2{X: float32(x), Y: float32(y)}
}

func (s *Surface) LineTo(x, y float64) {
	to := rl.Vector2{X: float32(x), Y: float32(y)}
	s.path = append(s.path, segment{from: s.cursor, to: to})
	s.cursor = to
}

func (s *Surface) Stroke() {
	if !s.loaded {
		return
	}
	rl.BeginTextureMode(s.target)
	for _, seg := range s.path {
		rl.DrawLineV(seg.from, seg.to, s.stroke)
	}
	rl.EndTextureMode()
}

func (s *Surface) FillRect(x, y, width, height float64) {
	if !s.loaded {
		return
	}
	rl.BeginTextureMode(s.target)
	rl.DrawRectangleRec(rl.Rectangle{
		X:      float32(x),
		Y:      float32(y),
		Width:  float32(width),
		Height: float32(height),
	}, s.fill)
	rl.EndTextureMode()
}

func (s *Surface) SetStrokeStyle(style string) { s.setStyle(&s.stroke, style) }

func (s *Surface) SetFillStyle(style string) { s.setStyle(&s.fill, style) }

func (s *Surface) setStyle(dst *rl.Color, style string) {
	c, err := canvas.ParseColor(style)
	if err != nil {
		s.log.WithError(err).Warn("Ignoring style")
		return
	}
	*dst = Color(c)
}

// Color converts a parsed color to a raylib color.
func Color(c color.NRGBA) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}
