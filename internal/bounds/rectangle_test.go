package bounds

import (
	"testing"

	"LineEditor/internal/state"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRect(x1, y1, x2, y2, thickness float64) *state.RectangleShape {
	r := state.NewRectangleShape()
	r.TopLeft.Set(x1, y1)
	r.BottomRight.Set(x2, y2)
	r.StrokeThickness = thickness
	return r
}

func TestRectangleBoundsContains(t *testing.T) {
	b := NewRectangleBounds(newRect(10, 10, 110, 60, 2), nil, nil)
	b.Update()

	tests := []struct {
		x, y float64
		want HitResult
	}{
		{10, 10, HitTopLeft},
		{14, 6, HitTopLeft},
		{110, 60, HitBottomRight},
		{60, 35, HitBody},
		{110.5, 30, HitBody},
		{200, 200, HitNone},
		{60, 70, HitNone},
	}
	for _, tt := range tests {
		got := b.Contains(tt.x, tt.y)
		assert.Equal(t, tt.want != HitNone, got, "(%g,%g)", tt.x, tt.y)
		assert.Equal(t, tt.want, b.Hit(), "(%g,%g)", tt.x, tt.y)
	}
}

func TestRectangleBoundsHandleSize(t *testing.T) {
	b := NewRectangleBounds(newRect(0, 0, 100, 100, 40), nil, nil)
	b.Update()
	tl, _, _ := b.Polygons()
	box := state.BoxOf(tl.Vertices()...)
	assert.InDelta(t, 40, box.Width(), eps)

	b = NewRectangleBounds(newRect(0, 0, 100, 100, 1), nil, nil)
	b.Update()
	tl, _, _ = b.Polygons()
	box = state.BoxOf(tl.Vertices()...)
	assert.InDelta(t, MinHandleSize, box.Width(), eps)
}

func TestRectangleBoundsMove(t *testing.T) {
	rect := newRect(10, 10, 110, 60, 2)
	b := NewRectangleBounds(rect, nil, nil)
	b.Update()

	b.Move(5, 5)
	assert.Equal(t, state.Pt(10, 10), rect.TopLeft.Point())

	require.True(t, b.Contains(60, 35))
	b.Move(5, 5)
	assert.Equal(t, state.Pt(15, 15), rect.TopLeft.Point())
	assert.Equal(t, state.Pt(115, 65), rect.BottomRight.Point())

	b.Update()
	require.True(t, b.Contains(15, 15))
	b.Move(-5, 0)
	assert.Equal(t, state.Pt(10, 15), rect.TopLeft.Point())
	assert.Equal(t, state.Pt(115, 65), rect.BottomRight.Point())
}

func TestRectangleBoundsMoveSnaps(t *testing.T) {
	grid := state.NewCanvas("drawing")
	rect := newRect(15, 15, 110, 60, 2)
	b := NewRectangleBounds(rect, nil, grid)
	b.Update()

	require.True(t, b.Contains(110, 60))
	b.Move(3, 4)
	assert.Equal(t, state.Pt(15, 15), rect.TopLeft.Point())
	assert.Equal(t, state.Pt(120, 60), rect.BottomRight.Point())
}

func TestRectangleBoundsShowHide(t *testing.T) {
	overlay := state.NewCanvas("overlay")
	b := NewRectangleBounds(newRect(0, 0, 50, 50, 2), overlay, nil)
	b.Update()

	b.Show()
	b.Show()
	assert.Equal(t, 3, overlay.Len())
	b.Hide()
	b.Hide()
	assert.Zero(t, overlay.Len())
	assert.False(t, b.IsVisible())
}
