package canvas

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

const hexDigits = "0123456789abcdef"

// ErrBadColor is returned for style strings ParseColor does not understand.
var ErrBadColor = errors.New("unsupported color")

// ParseColor converts a CSS color string into a color. It accepts
// "#rgb", "#rrggbb", "rgb(r, g, b)" and "rgba(r, g, b, a)" with alpha in
// [0, 1].
func ParseColor(style string) (color.NRGBA, error) {
	style = strings.TrimSpace(strings.ToLower(style))

	switch {
	case strings.HasPrefix(style, "#"):
		return ParseHex(style)
	case strings.HasPrefix(style, "rgba(") && strings.HasSuffix(style, ")"):
		return parseFunc(style, "rgba(", 4)
	case strings.HasPrefix(style, "rgb(") && strings.HasSuffix(style, ")"):
		return parseFunc(style, "rgb(", 3)
	}
	return color.NRGBA{}, fmt.Errorf("%w: %q", ErrBadColor, style)
}

// ParseHex parses a "#rgb" or "#rrggbb" color.
func ParseHex(hex string) (color.NRGBA, error) {
	hex = strings.ToLower(hex)
	if !strings.HasPrefix(hex, "#") || len(hex) != 4 && len(hex) != 7 || strings.Trim(hex[1:], hexDigits) != "" {
		return color.NRGBA{}, fmt.Errorf("%w: %q is not a hex color", ErrBadColor, hex)
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: %q: %v", ErrBadColor, hex, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}, nil
}

func parseFunc(style, prefix string, n int) (color.NRGBA, error) {
	body := strings.TrimSuffix(strings.TrimPrefix(style, prefix), ")")
	parts := strings.Split(body, ",")
	if len(parts) != n {
		return color.NRGBA{}, fmt.Errorf("%w: %q: want %d components", ErrBadColor, style, n)
	}

	var rgb [3]uint8
	for i := 0; i < 3; i++ {
		v, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil || v < 0 || v > 255 {
			return color.NRGBA{}, fmt.Errorf("%w: %q: component %d out of range", ErrBadColor, style, i)
		}
		rgb[i] = uint8(v)
	}

	alpha := uint8(0xff)
	if n == 4 {
		a, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil || a < 0 || a > 1 {
			return color.NRGBA{}, fmt.Errorf("%w: %q: alpha out of range", ErrBadColor, style)
		}
		alpha = uint8(math.Round(a * 255))
	}

	return color.NRGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: alpha}, nil
}
