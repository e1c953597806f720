package shape

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grafika/grafika/internal/geom"
	"github.com/grafika/grafika/internal/render"
)

func newTestShape(kind Kind, tr Transform) *Shape {
	s := New(kind, 100, 100, 20, DefaultStyle())
	s.Transform = tr
	return s
}

func TestLocalWorldRoundTrip(t *testing.T) {
	transforms := []Transform{
		IdentityTransform(),
		{TranslateX: 15, TranslateY: -40, ScaleX: 1, ScaleY: 1, Rotation: 0},
		{ScaleX: 2, ScaleY: 0.5, Rotation: 33},
		{TranslateX: -7, TranslateY: 3, ScaleX: -1.5, ScaleY: 3, Rotation: 271.5},
		{ScaleX: 0.05, ScaleY: -0.05, Rotation: 359.9},
	}
	points := []geom.Point{{X: 0, Y: 0}, {X: 100, Y: 100}, {X: 123.4, Y: -56.7}, {X: 1e4, Y: 3}}

	for _, tr := range transforms {
		s := newTestShape(KindCross, tr)
		for _, p := range points {
			l := s.WorldToLocal(p.X, p.Y)
			back := s.LocalToWorld(l.X, l.Y)
			assert.InDelta(t, p.X, back.X, 1e-6, "transform %+v point %+v", tr, p)
			assert.InDelta(t, p.Y, back.Y, 1e-6, "transform %+v point %+v", tr, p)
		}
	}
}

func TestLocalToWorldAppliesScaleBeforeRotation(t *testing.T) {
	s := newTestShape(KindCross, Transform{ScaleX: 2, ScaleY: 1, Rotation: 90})
	// (10, 0) scaled to (20, 0), rotated 90 degrees (y down) to (0, 20).
	p := s.LocalToWorld(10, 0)
	assert.InDelta(t, 100, p.X, 1e-9)
	assert.InDelta(t, 120, p.Y, 1e-9)
}

func TestWorldToLocalGuardsZeroScale(t *testing.T) {
	s := newTestShape(KindCross, Transform{ScaleX: 0, ScaleY: 0, Rotation: 0})
	l := s.WorldToLocal(130, 90)
	assert.False(t, math.IsNaN(l.X) || math.IsInf(l.X, 0))
	assert.False(t, math.IsNaN(l.Y) || math.IsInf(l.Y, 0))
	assert.Equal(t, geom.Pt(30, -10), l)
}

func TestWorldPositionIsAnchorPlusTranslate(t *testing.T) {
	s := newTestShape(KindYinYang, Transform{TranslateX: 5, TranslateY: -8, ScaleX: 1, ScaleY: 1})
	assert.Equal(t, geom.Pt(105, 92), s.WorldPosition())
}

func TestBoundingBox(t *testing.T) {
	s := newTestShape(KindCross, IdentityTransform())
	assert.Equal(t, geom.Rect{X: 80, Y: 80, Width: 40, Height: 40}, s.BoundingBox())

	s.Rotation = 45
	bb := s.BoundingBox()
	half := 20 * math.Sqrt2
	assert.InDelta(t, 100-half, bb.X, 1e-9)
	assert.InDelta(t, 2*half, bb.Width, 1e-9)
	cx, cy := bb.Center()
	assert.InDelta(t, 100, cx, 1e-9)
	assert.InDelta(t, 100, cy, 1e-9)

	st := NewStroke(10, 10, Brush{Color: "#000000", Width: 4})
	st.AddPoint(30, 5)
	st.AddPoint(20, 40)
	assert.Equal(t, geom.Rect{X: 10, Y: 5, Width: 20, Height: 35}, st.BoundingBox())
}

func TestHandles(t *testing.T) {
	m := DefaultMetrics()
	s := newTestShape(KindCross, IdentityTransform())
	hs := s.Handles(m)
	require.Len(t, hs, 5)

	want := map[Role]geom.Point{
		RoleTopLeft:     {X: 80, Y: 80},
		RoleTopRight:    {X: 120, Y: 80},
		RoleBottomLeft:  {X: 80, Y: 120},
		RoleBottomRight: {X: 120, Y: 120},
		RoleRotate:      {X: 100, Y: 60},
	}
	for _, h := range hs {
		assert.InDelta(t, want[h.Role].X, h.Position.X, 1e-9, h.Role.String())
		assert.InDelta(t, want[h.Role].Y, h.Position.Y, 1e-9, h.Role.String())
	}
	assert.Equal(t, CursorResizeNWSE, hs[0].Cursor)
	assert.Equal(t, CursorResizeNESW, hs[1].Cursor)
	assert.Equal(t, CursorRotate, hs[4].Cursor)
	assert.True(t, RoleBottomRight.Resizes())
	assert.False(t, RoleRotate.Resizes())
}

func TestRotateHandleOffsetIsScaleIndependent(t *testing.T) {
	m := DefaultMetrics()
	s := newTestShape(KindCross, Transform{ScaleX: 1, ScaleY: 2})
	h, ok := s.HandleAt(geom.Pt(100, 100-40-20), m)
	require.True(t, ok)
	assert.Equal(t, RoleRotate, h.Role)

	// Zero scaleY is read as 1 for the offset.
	s.ScaleY = 0
	for _, h := range s.Handles(m) {
		assert.False(t, math.IsNaN(h.Position.Y))
	}
}

func TestHandleAtUsesPixelTolerance(t *testing.T) {
	m := DefaultMetrics()
	s := newTestShape(KindCross, Transform{ScaleX: 4, ScaleY: 4})

	h, ok := s.HandleAt(geom.Pt(20+8, 20), m)
	require.True(t, ok, "exactly on the hit radius")
	assert.Equal(t, RoleTopLeft, h.Role)

	_, ok = s.HandleAt(geom.Pt(20+8.01, 20), m)
	assert.False(t, ok)

	st := NewStroke(0, 0, Brush{Width: 2})
	assert.Empty(t, st.Handles(m))
}

func TestContainsCrescent(t *testing.T) {
	s := newTestShape(KindStarCrescent, IdentityTransform())
	r := s.Size

	assert.True(t, s.Contains(geom.Pt(100-r, 100)), "outer boundary is inclusive")
	assert.False(t, s.Contains(geom.Pt(100-r-1e-6, 100)))
	assert.False(t, s.Contains(geom.Pt(100, 100)), "origin lies in the hollow moon")
	assert.True(t, s.Contains(geom.Pt(100-0.9*r, 100)))
	assert.False(t, s.Contains(geom.Pt(100+0.9*r, 100)))
}

func TestContainsYinYang(t *testing.T) {
	s := newTestShape(KindYinYang, IdentityTransform())
	assert.True(t, s.Contains(geom.Pt(100, 100)))
	assert.True(t, s.Contains(geom.Pt(120, 100)))
	assert.False(t, s.Contains(geom.Pt(120.001, 100)))
	assert.False(t, s.Contains(geom.Pt(116, 116)))
}

func TestContainsCross(t *testing.T) {
	s := newTestShape(KindCross, IdentityTransform())
	tests := []struct {
		p    geom.Point
		want bool
	}{
		{geom.Pt(100, 100), true},
		{geom.Pt(100, 81), true},
		{geom.Pt(119, 100), true},
		{geom.Pt(115, 115), false},
		{geom.Pt(106, 80), true},
		{geom.Pt(108, 85), false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, s.Contains(tt.p), "%+v", tt.p)
	}
}

func TestContainsFollowsTransform(t *testing.T) {
	s := newTestShape(KindCross, Transform{TranslateX: 50, ScaleX: 1, ScaleY: 3, Rotation: 90})
	// Vertical bar scaled by 3 then rotated to horizontal, centered at (150, 100).
	assert.True(t, s.Contains(geom.Pt(150-55, 100)))
	assert.False(t, s.Contains(geom.Pt(150, 100-55)))
}

func TestStrokeIsNeverSelectable(t *testing.T) {
	st := NewStroke(10, 10, Brush{Width: 50})
	st.AddPoint(20, 20)
	assert.False(t, st.Selectable())
	assert.False(t, st.Contains(geom.Pt(10, 10)))
	assert.True(t, strings.HasPrefix(st.ID, "stroke_"))
	assert.Equal(t, geom.Identity(), st.Matrix())
}

func TestDrawEmitsShapeCommands(t *testing.T) {
	tests := []struct {
		kind Kind
		min  int
	}{
		{KindCross, 2},
		{KindStarCrescent, 5},
		{KindYinYang, 7},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			s := newTestShape(tt.kind, Transform{ScaleX: 2, ScaleY: 1, Rotation: 30})
			b := render.NewBuffer()
			s.Draw(b)
			require.GreaterOrEqual(t, b.Len(), tt.min)
			for _, cmd := range b.Commands() {
				assert.Equal(t, render.OpPath, cmd.Op)
				assert.Equal(t, s.ID, cmd.ObjectID)
				assert.Equal(t, s.Matrix().ToSlice(), cmd.Transform)
			}
		})
	}
}

func TestDrawRespectsStyleFlags(t *testing.T) {
	style := DefaultStyle()
	style.FillEnabled = false
	style.StrokeColor = "#123456"
	s := New(KindCross, 0, 0, 10, style)

	b := render.NewBuffer()
	s.Draw(b)
	for _, cmd := range b.Commands() {
		assert.Empty(t, cmd.Fill)
		assert.Equal(t, "#123456", cmd.Stroke)
	}

	s.StrokeEnabled = false
	s.FillEnabled = true
	s.FillColor = "#00ff00"
	b = render.NewBuffer()
	s.Draw(b)
	for _, cmd := range b.Commands() {
		assert.Equal(t, "#00ff00", cmd.Fill)
		assert.Empty(t, cmd.Stroke)
	}
}

func TestDrawStroke(t *testing.T) {
	brush := NewStroke(1, 1, Brush{Color: "#ff0000", Width: 6})
	b := render.NewBuffer()
	brush.Draw(b)
	assert.Zero(t, b.Len(), "a single brush point draws nothing")

	brush.AddPoint(5, 5)
	brush.Draw(b)
	require.Equal(t, 1, b.Len())
	cmd := b.Commands()[0]
	assert.Equal(t, "#ff0000", cmd.Stroke)
	assert.Equal(t, render.LineCapRound, cmd.LineCap)
	assert.False(t, cmd.Erases())

	eraser := NewStroke(3, 3, Brush{Color: "#FFFFFF", Width: 10, Erase: true})
	b = render.NewBuffer()
	eraser.Draw(b)
	require.Equal(t, 1, b.Len(), "tap erase")
	assert.True(t, b.Commands()[0].Erases())
	assert.NotEmpty(t, b.Commands()[0].Fill)

	eraser.AddPoint(9, 9)
	b = render.NewBuffer()
	eraser.Draw(b)
	require.Equal(t, 1, b.Len())
	assert.True(t, b.Commands()[0].Erases())
	assert.Equal(t, 10.0, b.Commands()[0].StrokeWidth)
}

func TestDrawSelectionIncludesHandles(t *testing.T) {
	s := newTestShape(KindYinYang, Transform{ScaleX: 0.5, ScaleY: 2})
	b := render.NewBuffer()
	s.DrawSelection(b, DefaultMetrics())
	require.Equal(t, 1+5, b.Len())

	box := b.Commands()[0]
	assert.InDelta(t, 2, box.StrokeWidth, 1e-9, "1 / min(|sx|, |sy|)")
	assert.Equal(t, []float64{6, 4}, box.Dash)

	b = render.NewBuffer()
	s.DrawOutline(b)
	require.Equal(t, 1, b.Len())
	assert.InDelta(t, 3, b.Commands()[0].StrokeWidth, 1e-9)
}

func TestCursorNames(t *testing.T) {
	assert.Equal(t, "default", CursorDefault.String())
	assert.Equal(t, "nwse-resize", CursorResizeNWSE.String())
	assert.Equal(t, "grab", CursorGrab.String())
	assert.Equal(t, "default", Cursor(99).String())
}
