package state

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointCompare(t *testing.T) {
	assert.Equal(t, 0, Pt(1, 2).Compare(Pt(1, 2)))
	assert.Equal(t, -1, Pt(1, 9).Compare(Pt(2, 0)))
	assert.Equal(t, 1, Pt(2, 0).Compare(Pt(1, 9)))
	assert.Equal(t, -1, Pt(1, 1).Compare(Pt(1, 2)))
	assert.True(t, Pt(0, 5).Less(Pt(1, 0)))

	pts := []Point{Pt(3, 1), Pt(1, 2), Pt(1, 1), Pt(2, 0)}
	slices.SortFunc(pts, Point.Compare)
	assert.Equal(t, []Point{Pt(1, 1), Pt(1, 2), Pt(2, 0), Pt(3, 1)}, pts)

	assert.Equal(t, "(1.5,-2)", Pt(1.5, -2).String())
}

func TestPointShapeCompare(t *testing.T) {
	a, b := NewPointShape(1, 1), NewPointShape(1, 2)
	assert.Equal(t, -1, a.Compare(b))
	b.Set(1, 1)
	assert.Equal(t, 0, a.Compare(b))
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestColorText(t *testing.T) {
	var c Color
	require.NoError(t, c.UnmarshalText([]byte("#FFBF00FF")))
	assert.Equal(t, Color{A: 0xFF, R: 0xBF, G: 0x00, B: 0xFF}, c)

	require.NoError(t, c.UnmarshalText([]byte("e8e8e8")))
	assert.Equal(t, Color{A: 0xFF, R: 0xE8, G: 0xE8, B: 0xE8}, c)

	assert.Error(t, c.UnmarshalText([]byte("#12")))
	assert.Error(t, c.UnmarshalText([]byte("#GGGGGG")))

	text, err := ARGB(0x80, 0x01, 0x02, 0x03).MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "#80010203", string(text))
}

func TestColorRGBA(t *testing.T) {
	r, g, b, a := Color{A: 0xFF, R: 0x10, G: 0x20, B: 0x30}.RGBA()
	assert.Equal(t, uint32(0x1010), r)
	assert.Equal(t, uint32(0x2020), g)
	assert.Equal(t, uint32(0x3030), b)
	assert.Equal(t, uint32(0xFFFF), a)

	_, _, _, a = Color{}.RGBA()
	assert.Zero(t, a)
}

func TestLineCapText(t *testing.T) {
	var c LineCap
	require.NoError(t, c.UnmarshalText([]byte("Round")))
	assert.Equal(t, CapRound, c)
	require.NoError(t, c.UnmarshalText([]byte(" triangle ")))
	assert.Equal(t, CapTriangle, c)
	assert.Error(t, c.UnmarshalText([]byte("butt")))

	text, err := CapSquare.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "square", string(text))
	assert.Equal(t, "unknown", LineCap(42).String())
}
