package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/spatial/r2"
)

func TestShapeDefaults(t *testing.T) {
	l := NewLineShape()
	assert.Equal(t, Color{A: 0xFF}, *l.Stroke)
	assert.Equal(t, 30.0, l.StrokeThickness)
	assert.Equal(t, CapSquare, l.StartCap)
	assert.Equal(t, CapSquare, l.EndCap)
	assert.Nil(t, l.Bounds())

	r := NewRectangleShape()
	assert.Equal(t, Color{A: 0xFF, R: 0xBF, G: 0x00, B: 0xFF}, *r.Stroke)
	assert.Equal(t, 2.0, r.StrokeThickness)

	p := NewPolygonShape(4)
	assert.Len(t, p.Points, 4)
	assert.Equal(t, Color{A: 0xFF, R: 0x00, G: 0xBF, B: 0xFF}, *p.Stroke)
	assert.Equal(t, CapRound, p.StartCap)
	assert.Equal(t, CapRound, p.EndCap)

	c := NewCanvas("drawing")
	assert.Equal(t, 600.0, c.Width)
	assert.Equal(t, 600.0, c.Height)
	assert.True(t, c.EnableSnap)
	assert.Equal(t, 15.0, c.SnapX)
	assert.Equal(t, 15.0, c.SnapY)
	assert.Nil(t, c.Background)
}

func TestShapeIDs(t *testing.T) {
	before := ShapesCreated()
	a, b := NewLineShape(), NewRectangleShape()
	assert.NotEmpty(t, a.ID())
	assert.NotEqual(t, a.ID(), b.ID())
	// A line owns two points, a rectangle two corners.
	assert.Equal(t, before+6, ShapesCreated())
}

func TestRectangleBoxNormalizes(t *testing.T) {
	r := NewRectangleShape()
	r.TopLeft.Set(50, 10)
	r.BottomRight.Set(20, 40)
	assert.Equal(t, Box{r2.NewBox(20, 10, 50, 40)}, r.Box())
}

func polygon(pts ...Point) *PolygonShape {
	p := NewPolygonShape(len(pts))
	for i, v := range pts {
		p.Points[i].Set(v.X, v.Y)
	}
	return p
}

func TestPolygonContains(t *testing.T) {
	sq := polygon(Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10))
	assert.True(t, sq.Contains(5, 5))
	assert.True(t, sq.Contains(0.5, 9.5))
	assert.False(t, sq.Contains(15, 5))
	assert.False(t, sq.Contains(5, -1))
	assert.False(t, sq.Contains(-0.5, 5))

	// Concave "L" shape.
	l := polygon(Pt(0, 0), Pt(10, 0), Pt(10, 4), Pt(4, 4), Pt(4, 10), Pt(0, 10))
	assert.True(t, l.Contains(2, 8))
	assert.True(t, l.Contains(8, 2))
	assert.False(t, l.Contains(8, 8))
}

func TestPolygonContainsDegenerate(t *testing.T) {
	assert.False(t, NewPolygonShape(0).Contains(0, 0))
	assert.False(t, polygon(Pt(0, 0)).Contains(0, 0))
	assert.False(t, polygon(Pt(0, 0), Pt(10, 10)).Contains(5, 5))
	// Zero-area ring with a horizontal edge must not divide by zero.
	assert.False(t, polygon(Pt(0, 0), Pt(10, 0), Pt(5, 0)).Contains(5, 0))
}

func TestPolygonContainsRigidTransform(t *testing.T) {
	ring := []Point{Pt(0, 0), Pt(20, 0), Pt(20, 10), Pt(0, 10)}
	samples := []Point{Pt(5, 5), Pt(19, 1), Pt(25, 5), Pt(-3, 4), Pt(10, 12)}

	// Quarter turn then translation: (x, y) -> (-y+dx, x+dy).
	transform := func(p Point) Point { return Pt(-p.Y+100, p.X-40) }

	orig := polygon(ring...)
	moved := make([]Point, len(ring))
	for i, p := range ring {
		moved[i] = transform(p)
	}
	rigid := polygon(moved...)

	for _, p := range samples {
		q := transform(p)
		assert.Equal(t, orig.Contains(p.X, p.Y), rigid.Contains(q.X, q.Y), "point %v", p)
	}
}

func TestBox(t *testing.T) {
	assert.Equal(t, Box{}, BoxOf())
	assert.Equal(t, Box{r2.NewBox(0, 0, 10, 10)}, BoxOf(Pt(10, 0), Pt(0, 10)))

	b := BoxOf(Pt(10, 20), Pt(-5, 40), Pt(0, 0))
	assert.Equal(t, Box{r2.NewBox(-5, 0, 10, 40)}, b)
	assert.Equal(t, 15.0, b.Width())
	assert.Equal(t, 40.0, b.Height())
	assert.True(t, b.Contains(10, 40))
	assert.False(t, b.Contains(10.1, 40))

	assert.Equal(t, Box{r2.NewBox(-7, -2, 12, 42)}, b.Inflate(2))
	assert.Equal(t, [4]Point{Pt(-5, 0), Pt(10, 0), Pt(10, 40), Pt(-5, 40)}, b.Corners())
	assert.Equal(t, Box{r2.NewBox(85, 85, 115, 115)}, Square(Pt(100, 100), 30))
}
