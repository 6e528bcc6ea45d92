package bounds

import (
	"math"

	"LineEditor/internal/state"
)

// LineBounds hit-tests a line with three oriented quadrilaterals: a square
// handle around each endpoint, aligned with the line, and a body polygon
// that runs along the line and covers both handles. The axis-aligned box of
// the body polygon is shown to the user as the selection rectangle.
type LineBounds struct {
	line *state.LineShape
	grid Snapper
	hit  HitResult

	point1    *state.PolygonShape
	point2    *state.PolygonShape
	body      *state.PolygonShape
	rectangle *state.RectangleShape
	helpers   helperSet
}

var _ state.Bounds = (*LineBounds)(nil)

// NewLineBounds creates bounds for line. Helper shapes go on overlay; moved
// endpoints are snapped through grid, which may be nil.
func NewLineBounds(line *state.LineShape, overlay *state.Canvas, grid Snapper) *LineBounds {
	b := &LineBounds{
		line:      line,
		grid:      grid,
		point1:    state.NewPolygonShape(4),
		point2:    state.NewPolygonShape(4),
		body:      state.NewPolygonShape(4),
		rectangle: state.NewRectangleShape(),
	}
	b.helpers.canvas = overlay
	b.helpers.shapes = []state.Shape{b.body, b.point1, b.point2, b.rectangle}
	return b
}

// Update rebuilds the hit polygons and the selection rectangle from the
// current endpoints and stroke thickness.
func (b *LineBounds) Update() {
	p1, p2 := b.line.Point1.Point(), b.line.Point2.Point()
	t := b.line.StrokeThickness
	radians := math.Atan2(p1.Y-p2.Y, p1.X-p2.X)

	square(b.point1, p1, t, radians)
	square(b.point2, p2, t, radians)

	// Corners 1 and 2 of the first handle sit beyond P1, corners 3 and 0 of
	// the second beyond P2, so the body spans both handles.
	h1, h2 := b.point1.Points, b.point2.Points
	b.body.Points[0].Set(h1[1].X, h1[1].Y)
	b.body.Points[1].Set(h1[2].X, h1[2].Y)
	b.body.Points[2].Set(h2[3].X, h2[3].Y)
	b.body.Points[3].Set(h2[0].X, h2[0].Y)

	box := state.BoxOf(b.body.Vertices()...)
	b.rectangle.TopLeft.Set(box.Min.X, box.Min.Y)
	b.rectangle.BottomRight.Set(box.Max.X, box.Max.Y)
}

func (b *LineBounds) IsVisible() bool {
	return b.helpers.visible
}

func (b *LineBounds) Show() {
	b.helpers.show()
}

func (b *LineBounds) Hide() {
	b.helpers.hide()
}

// Contains tests the endpoint handles before the body, so a point on a
// handle always selects the endpoint.
func (b *LineBounds) Contains(x, y float64) bool {
	switch {
	case b.point1.Contains(x, y):
		b.hit = HitPoint1
	case b.point2.Contains(x, y):
		b.hit = HitPoint2
	case b.body.Contains(x, y):
		b.hit = HitLine
	default:
		b.hit = HitNone
	}
	return b.hit != HitNone
}

// Move translates the endpoint or the whole line recorded by the last
// Contains call. For a whole-line move each endpoint is snapped on its own,
// so the two ends can land on different offsets.
func (b *LineBounds) Move(dx, dy float64) {
	switch b.hit {
	case HitPoint1:
		translate(b.line.Point1, dx, dy, b.grid)
	case HitPoint2:
		translate(b.line.Point2, dx, dy, b.grid)
	case HitLine:
		translate(b.line.Point1, dx, dy, b.grid)
		translate(b.line.Point2, dx, dy, b.grid)
	}
}

// Hit returns the region recorded by the last Contains call.
func (b *LineBounds) Hit() HitResult {
	return b.hit
}

// Polygons returns the endpoint handles and the body polygon.
func (b *LineBounds) Polygons() (point1, point2, body *state.PolygonShape) {
	return b.point1, b.point2, b.body
}

// Rectangle returns the axis-aligned selection rectangle.
func (b *LineBounds) Rectangle() *state.RectangleShape {
	return b.rectangle
}
