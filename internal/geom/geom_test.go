package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDegrees(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{359.5, 359.5},
		{360, 0},
		{720, 0},
		{-90, 270},
		{450, 90},
		{-1e-15, 0},
		{math.NaN(), 0},
	}
	for _, tt := range tests {
		got := NormalizeDegrees(tt.in)
		assert.InDelta(t, tt.want, got, 1e-9, "NormalizeDegrees(%v)", tt.in)
		assert.True(t, got >= 0 && got < 360)
	}
}

func TestNormalizeDegreesKeepsInRangeValuesExact(t *testing.T) {
	for _, v := range []float64{0.1, 17.3, 359.999} {
		assert.Equal(t, v, NormalizeDegrees(v))
	}
}

func TestBoundsOf(t *testing.T) {
	r := BoundsOf(Pt(3, 4), Pt(-1, 10), Pt(2, -2))
	assert.Equal(t, Rect{X: -1, Y: -2, Width: 4, Height: 12}, r)
	assert.Equal(t, Rect{}, BoundsOf())

	assert.Equal(t, Rect{X: -3, Y: -4, Width: 8, Height: 16}, r.Inflate(2))

	cx, cy := r.Center()
	assert.Equal(t, 1.0, cx)
	assert.Equal(t, 4.0, cy)
	assert.True(t, r.Contains(-1, -2))
	assert.False(t, r.Contains(3.5, 0))
}

func TestPointHelpers(t *testing.T) {
	p := Pt(3, 4)
	assert.Equal(t, 5.0, p.Distance(Pt(0, 0)))
	assert.Equal(t, 25.0, p.DistanceSquared(Pt(0, 0)))
	assert.Equal(t, Pt(4, 6), p.Add(Pt(1, 2)))
	assert.Equal(t, Pt(2, 2), p.Sub(Pt(1, 2)))
	assert.InDelta(t, math.Pi/2, Pt(0, 5).AngleFrom(Pt(0, 0)), 1e-12)
	assert.InDelta(t, 180, Degrees(math.Pi), 1e-12)
}
