package state

// Bounds is the interactive helper a shape may own. It hit-tests the shape,
// moves it according to the region hit last, and shows or hides its own
// helper shapes on an overlay canvas.
type Bounds interface {
	// Update recomputes the hit geometry from the owning shape.
	Update()
	IsVisible() bool
	// Show and Hide are idempotent.
	Show()
	Hide()
	// Contains hit-tests (x, y) and records which region was hit for the
	// next Move.
	Contains(x, y float64) bool
	// Move translates the region recorded by the last Contains call by
	// (dx, dy). It is a no-op when nothing was hit.
	Move(dx, dy float64)
}

// Shape is the closed set of drawable variants: *PointShape, *LineShape,
// *RectangleShape, *PolygonShape and *Canvas. Renderers and hit-testers
// switch on the concrete type.
type Shape interface {
	ID() string
	// Bounds returns the owned interactive bounds, or nil for inert shapes.
	Bounds() Bounds
	SetBounds(b Bounds)

	shape()
}

// BaseShape carries the fields every variant shares.
type BaseShape struct {
	id     string
	bounds Bounds
}

func newBase() BaseShape {
	return BaseShape{id: newID()}
}

func (s *BaseShape) ID() string {
	return s.id
}

func (s *BaseShape) Bounds() Bounds {
	return s.bounds
}

// SetBounds attaches b to the shape, replacing any previous bounds.
func (s *BaseShape) SetBounds(b Bounds) {
	s.bounds = b
}

func (*BaseShape) shape() {}

// PointShape is a mutable point, used as a line endpoint or polygon vertex.
type PointShape struct {
	BaseShape
	X, Y float64
}

// NewPointShape creates a point shape at (x, y).
func NewPointShape(x, y float64) *PointShape {
	return &PointShape{BaseShape: newBase(), X: x, Y: y}
}

// Point returns the current coordinates as an immutable value.
func (p *PointShape) Point() Point {
	return Point{X: p.X, Y: p.Y}
}

// Set moves the point to (x, y).
func (p *PointShape) Set(x, y float64) {
	p.X, p.Y = x, y
}

// Compare orders point shapes the same way as Point.Compare.
func (p *PointShape) Compare(o *PointShape) int {
	return p.Point().Compare(o.Point())
}

// LineShape is a stroked segment between two endpoints.
type LineShape struct {
	BaseShape
	Point1, Point2  *PointShape
	Stroke          *Color
	StrokeThickness float64
	StartCap        LineCap
	EndCap          LineCap
}

// NewLineShape creates a black, 30 unit thick line at the origin with square
// caps.
func NewLineShape() *LineShape {
	return &LineShape{
		BaseShape:       newBase(),
		Point1:          NewPointShape(0, 0),
		Point2:          NewPointShape(0, 0),
		Stroke:          ARGB(0xFF, 0x00, 0x00, 0x00),
		StrokeThickness: 30,
		StartCap:        CapSquare,
		EndCap:          CapSquare,
	}
}

// RectangleShape is a stroked rectangle. TopLeft and BottomRight are kept as
// the user dragged them and are not normalized.
type RectangleShape struct {
	BaseShape
	TopLeft, BottomRight *PointShape
	Stroke               *Color
	StrokeThickness      float64
}

// NewRectangleShape creates an empty rectangle at the origin.
func NewRectangleShape() *RectangleShape {
	return &RectangleShape{
		BaseShape:       newBase(),
		TopLeft:         NewPointShape(0, 0),
		BottomRight:     NewPointShape(0, 0),
		Stroke:          ARGB(0xFF, 0xBF, 0x00, 0xFF),
		StrokeThickness: 2,
	}
}

// Box returns the normalized extent of the rectangle.
func (r *RectangleShape) Box() Box {
	return BoxOf(r.TopLeft.Point(), r.BottomRight.Point())
}

// PolygonShape is a closed ring of vertices; the last vertex connects back to
// the first.
type PolygonShape struct {
	BaseShape
	Points          []*PointShape
	Stroke          *Color
	StrokeThickness float64
	StartCap        LineCap
	EndCap          LineCap
}

// NewPolygonShape creates a polygon with n vertices at the origin.
func NewPolygonShape(n int) *PolygonShape {
	points := make([]*PointShape, n)
	for i := range points {
		points[i] = NewPointShape(0, 0)
	}
	return &PolygonShape{
		BaseShape:       newBase(),
		Points:          points,
		Stroke:          ARGB(0xFF, 0x00, 0xBF, 0xFF),
		StrokeThickness: 2,
		StartCap:        CapRound,
		EndCap:          CapRound,
	}
}

// Contains reports whether (x, y) lies inside the polygon using the even-odd
// ray casting rule. Rings with fewer than three vertices contain nothing.
func (p *PolygonShape) Contains(x, y float64) bool {
	n := len(p.Points)
	if n < 3 {
		return false
	}
	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		pi, pj := p.Points[i], p.Points[j]
		// The Y-range test must run first: it guarantees pj.Y != pi.Y
		// before the division.
		if (pi.Y > y) != (pj.Y > y) &&
			x < (pj.X-pi.X)*(y-pi.Y)/(pj.Y-pi.Y)+pi.X {
			inside = !inside
		}
	}
	return inside
}

// Vertices copies the current vertex coordinates.
func (p *PolygonShape) Vertices() []Point {
	out := make([]Point, len(p.Points))
	for i, v := range p.Points {
		out[i] = v.Point()
	}
	return out
}
