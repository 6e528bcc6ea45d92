package bounds

import (
	"math"

	"LineEditor/internal/state"
)

// MinHandleSize is the smallest side of a rectangle corner handle, so thin
// rectangles stay easy to grab.
const MinHandleSize = 10.0

// RectangleBounds hit-tests a rectangle with a square handle on each of the
// two defining corners and an axis-aligned body covering the normalized
// rectangle plus half the stroke.
type RectangleBounds struct {
	rect *state.RectangleShape
	grid Snapper
	hit  HitResult

	topLeft     *state.PolygonShape
	bottomRight *state.PolygonShape
	body        *state.PolygonShape
	helpers     helperSet
}

var _ state.Bounds = (*RectangleBounds)(nil)

// NewRectangleBounds creates bounds for rect with helpers on overlay.
func NewRectangleBounds(rect *state.RectangleShape, overlay *state.Canvas, grid Snapper) *RectangleBounds {
	b := &RectangleBounds{
		rect:        rect,
		grid:        grid,
		topLeft:     state.NewPolygonShape(4),
		bottomRight: state.NewPolygonShape(4),
		body:        state.NewPolygonShape(4),
	}
	b.helpers.canvas = overlay
	b.helpers.shapes = []state.Shape{b.body, b.topLeft, b.bottomRight}
	return b
}

func (b *RectangleBounds) Update() {
	size := math.Max(b.rect.StrokeThickness, MinHandleSize)
	square(b.topLeft, b.rect.TopLeft.Point(), size, 0)
	square(b.bottomRight, b.rect.BottomRight.Point(), size, 0)

	box := b.rect.Box().Inflate(b.rect.StrokeThickness / 2)
	for i, c := range box.Corners() {
		b.body.Points[i].Set(c.X, c.Y)
	}
}

func (b *RectangleBounds) IsVisible() bool {
	return b.helpers.visible
}

func (b *RectangleBounds) Show() {
	b.helpers.show()
}

func (b *RectangleBounds) Hide() {
	b.helpers.hide()
}

func (b *RectangleBounds) Contains(x, y float64) bool {
	switch {
	case b.topLeft.Contains(x, y):
		b.hit = HitTopLeft
	case b.bottomRight.Contains(x, y):
		b.hit = HitBottomRight
	case b.body.Contains(x, y):
		b.hit = HitBody
	default:
		b.hit = HitNone
	}
	return b.hit != HitNone
}

func (b *RectangleBounds) Move(dx, dy float64) {
	switch b.hit {
	case HitTopLeft:
		translate(b.rect.TopLeft, dx, dy, b.grid)
	case HitBottomRight:
		translate(b.rect.BottomRight, dx, dy, b.grid)
	case HitBody:
		translate(b.rect.TopLeft, dx, dy, b.grid)
		translate(b.rect.BottomRight, dx, dy, b.grid)
	}
}

// Hit returns the region recorded by the last Contains call.
func (b *RectangleBounds) Hit() HitResult {
	return b.hit
}

// Polygons returns the two corner handles and the body polygon.
func (b *RectangleBounds) Polygons() (topLeft, bottomRight, body *state.PolygonShape) {
	return b.topLeft, b.bottomRight, b.body
}
