package export

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"

	"LineEditor/internal/state"

	"golang.org/x/image/vector"
)

// PNG writes the canvases to a PNG file at path.
func PNG(path string, canvases ...*state.Canvas) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WritePNG(f, canvases...); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// WritePNG encodes Rasterize(canvases...) to w.
func WritePNG(w io.Writer, canvases ...*state.Canvas) error {
	img, err := Rasterize(canvases...)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("write png: %w", err)
	}
	return nil
}

// Rasterize paints the canvases into an RGBA image one pixel per canvas
// unit. Pixels no canvas paints stay transparent. Round and triangle caps
// are drawn as square caps.
func Rasterize(canvases ...*state.Canvas) (*image.RGBA, error) {
	if len(canvases) == 0 {
		return nil, ErrNoCanvas
	}
	width, height := pageSize(canvases)
	w, h := int(math.Ceil(width)), int(math.Ceil(height))
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	z := vector.NewRasterizer(w, h)

	for _, c := range canvases {
		rasterCanvas(dst, z, c)
	}
	return dst, nil
}

func rasterCanvas(dst *image.RGBA, z *vector.Rasterizer, c *state.Canvas) {
	if c.Background != nil {
		r := image.Rect(0, 0, int(math.Ceil(c.Width)), int(math.Ceil(c.Height)))
		draw.Draw(dst, r, image.NewUniform(*c.Background), image.Point{}, draw.Over)
	}
	for _, s := range c.Children {
		if sub, ok := s.(*state.Canvas); ok {
			rasterCanvas(dst, z, sub)
			continue
		}
		stroke, thickness, capped := strokeOf(s)
		if stroke == nil || thickness <= 0 {
			continue
		}
		segs := segments(s)
		if len(segs) == 0 {
			continue
		}
		b := dst.Bounds()
		z.Reset(b.Dx(), b.Dy())
		for _, seg := range segs {
			quad(z, seg[0], seg[1], thickness, capped)
		}
		z.Draw(dst, b, image.NewUniform(*stroke), image.Point{})
	}
}

// strokeOf returns the stroke style of a drawable shape and whether its
// segment ends are extended by half the thickness.
func strokeOf(s state.Shape) (*state.Color, float64, bool) {
	switch v := s.(type) {
	case *state.LineShape:
		return v.Stroke, v.StrokeThickness, v.StartCap != state.CapFlat
	case *state.RectangleShape:
		return v.Stroke, v.StrokeThickness, true
	case *state.PolygonShape:
		return v.Stroke, v.StrokeThickness, v.StartCap != state.CapFlat
	}
	return nil, 0, false
}

// quad adds the outline of a thick segment from a to b. All quads wind the
// same way, so overlapping segments of one shape do not cancel out.
func quad(z *vector.Rasterizer, a, b state.Point, thickness float64, capped bool) {
	dx, dy := b.X-a.X, b.Y-a.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		if !capped {
			return
		}
		dx, dy, length = 1, 0, 1
	}
	ux, uy := dx/length, dy/length
	h := thickness / 2
	nx, ny := -uy*h, ux*h
	if capped {
		a = state.Pt(a.X-ux*h, a.Y-uy*h)
		b = state.Pt(b.X+ux*h, b.Y+uy*h)
	}
	z.MoveTo(float32(a.X+nx), float32(a.Y+ny))
	z.LineTo(float32(b.X+nx), float32(b.Y+ny))
	z.LineTo(float32(b.X-nx), float32(b.Y-ny))
	z.LineTo(float32(a.X-nx), float32(a.Y-ny))
	z.ClosePath()
}
