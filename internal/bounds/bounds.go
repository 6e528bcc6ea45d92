// Package bounds implements the interactive hit regions of shapes: hit
// testing, moving the part that was hit, and showing helper outlines on an
// overlay canvas.
package bounds

import (
	"LineEditor/internal/state"

	"gonum.org/v1/gonum/spatial/r2"
)

// HitResult names the region found by the most recent Contains call.
type HitResult int

const (
	HitNone HitResult = iota
	HitPoint1
	HitPoint2
	HitLine
	HitTopLeft
	HitBottomRight
	HitBody
)

func (h HitResult) String() string {
	switch h {
	case HitNone:
		return "None"
	case HitPoint1:
		return "Point1"
	case HitPoint2:
		return "Point2"
	case HitLine:
		return "Line"
	case HitTopLeft:
		return "TopLeft"
	case HitBottomRight:
		return "BottomRight"
	case HitBody:
		return "Body"
	default:
		return "Unknown"
	}
}

// Snapper quantizes a coordinate pair to a grid. *state.Canvas implements it.
type Snapper interface {
	SnapPoint(x, y float64) (float64, float64)
}

// helperSet holds the helper shapes a bounds object puts on its overlay canvas.
type helperSet struct {
	canvas  *state.Canvas
	shapes  []state.Shape
	visible bool
}

func (o *helperSet) show() {
	if o.visible {
		return
	}
	if o.canvas != nil {
		o.canvas.Add(o.shapes...)
	}
	o.visible = true
}

func (o *helperSet) hide() {
	if !o.visible {
		return
	}
	if o.canvas != nil {
		for _, s := range o.shapes {
			o.canvas.Remove(s)
		}
	}
	o.visible = false
}

// translate moves p by (dx, dy) and snaps the result when a grid is set.
func translate(p *state.PointShape, dx, dy float64, grid Snapper) {
	x, y := p.X+dx, p.Y+dy
	if grid != nil {
		x, y = grid.SnapPoint(x, y)
	}
	p.Set(x, y)
}

// square writes the corners of the size x size square centered on c into
// poly, rotated by radians around c. Corner order is top-left, top-right,
// bottom-right, bottom-left in the unrotated frame.
func square(poly *state.PolygonShape, c state.Point, size, radians float64) {
	rot := r2.NewRotation(radians, c.Vec())
	for i, corner := range state.Square(c, size).Corners() {
		p := state.PointOf(rot.Rotate(corner.Vec()))
		poly.Points[i].Set(p.X, p.Y)
	}
}
