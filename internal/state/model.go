package state

import (
	"cmp"
	"encoding/hex"
	"fmt"
	"image/color"
	"strings"

	"gonum.org/v1/gonum/spatial/r2"
)

// Point is an immutable 2-D coordinate.
type Point struct{ X, Y float64 }

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Compare orders points lexicographically by X, then Y. The ordering carries
// no geometric meaning; it only makes points totally ordered.
func (p Point) Compare(o Point) int {
	if c := cmp.Compare(p.X, o.X); c != 0 {
		return c
	}
	return cmp.Compare(p.Y, o.Y)
}

// Less reports whether p sorts before o.
func (p Point) Less(o Point) bool {
	return p.Compare(o) < 0
}

// Vec converts p to a gonum vector.
func (p Point) Vec() r2.Vec {
	return r2.Vec{X: p.X, Y: p.Y}
}

// PointOf converts a gonum vector back to a Point.
func PointOf(v r2.Vec) Point {
	return Point{X: v.X, Y: v.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}

// Color is a non-premultiplied ARGB color with 8-bit channels. A nil *Color
// on a shape means "do not stroke/fill".
type Color struct {
	A, R, G, B uint8
}

// ARGB builds a Color from its four channels.
func ARGB(a, r, g, b uint8) *Color {
	return &Color{A: a, R: r, G: g, B: b}
}

// RGBA implements color.Color so a Color can be handed straight to renderers.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// String formats the color as #AARRGGBB.
func (c Color) String() string {
	return fmt.Sprintf("#%02X%02X%02X%02X", c.A, c.R, c.G, c.B)
}

// MarshalText writes the #AARRGGBB form.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText accepts "#AARRGGBB" or "#RRGGBB" (alpha FF).
func (c *Color) UnmarshalText(text []byte) error {
	s := strings.TrimPrefix(strings.TrimSpace(string(text)), "#")
	raw, err := hex.DecodeString(s)
	if err != nil {
		return fmt.Errorf("color %q: %w", string(text), err)
	}
	switch len(raw) {
	case 3:
		*c = Color{A: 0xFF, R: raw[0], G: raw[1], B: raw[2]}
	case 4:
		*c = Color{A: raw[0], R: raw[1], G: raw[2], B: raw[3]}
	default:
		return fmt.Errorf("color %q: want #AARRGGBB or #RRGGBB", string(text))
	}
	return nil
}

// LineCap describes how the ends of a stroke are decorated. It is only a hint
// for the renderer.
type LineCap int

const (
	CapFlat LineCap = iota
	CapSquare
	CapRound
	CapTriangle
)

func (c LineCap) String() string {
	switch c {
	case CapFlat:
		return "flat"
	case CapSquare:
		return "square"
	case CapRound:
		return "round"
	case CapTriangle:
		return "triangle"
	default:
		return "unknown"
	}
}

// MarshalText writes the lower-case cap name.
func (c LineCap) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText parses a cap name, case-insensitively.
func (c *LineCap) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "flat":
		*c = CapFlat
	case "square":
		*c = CapSquare
	case "round":
		*c = CapRound
	case "triangle":
		*c = CapTriangle
	default:
		return fmt.Errorf("unknown line cap %q", string(text))
	}
	return nil
}
