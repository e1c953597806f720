package shape

import (
	"math"

	"github.com/grafika/grafika/internal/geom"
)

// WorldPosition returns the pivot: anchor plus translation.
func (s *Shape) WorldPosition() geom.Point {
	return geom.Point{X: s.X + s.TranslateX, Y: s.Y + s.TranslateY}
}

// Matrix returns the local-to-world matrix R(rotation) * S(scale) placed at
// the world position. Freehand strokes are stored in world space.
func (s *Shape) Matrix() geom.Matrix2D {
	if s.Kind == KindStroke {
		return geom.Identity()
	}
	p := s.WorldPosition()
	return geom.FromTransform(p.X, p.Y, s.ScaleX, s.ScaleY, s.Rotation)
}

// LocalToWorld maps a local point to world space: scale, then rotate,
// then translate to the world position.
func (s *Shape) LocalToWorld(lx, ly float64) geom.Point {
	return s.Matrix().Apply(geom.Point{X: lx, Y: ly})
}

// WorldToLocal is the inverse of LocalToWorld. A zero scale component is
// skipped instead of divided by, so the result never holds NaN or Inf.
func (s *Shape) WorldToLocal(wx, wy float64) geom.Point {
	if s.Kind == KindStroke {
		return geom.Point{X: wx, Y: wy}
	}
	p := s.WorldPosition()
	dx, dy := wx-p.X, wy-p.Y

	sin, cos := math.Sincos(-geom.Radians(s.Rotation))
	rx := dx*cos - dy*sin
	ry := dx*sin + dy*cos

	if s.ScaleX != 0 {
		rx /= s.ScaleX
	}
	if s.ScaleY != 0 {
		ry /= s.ScaleY
	}
	return geom.Point{X: rx, Y: ry}
}

// BoundingBox returns the axis-aligned box around the four transformed
// corners of the local square. It is not tight for rotated shapes.
// For freehand strokes it encloses the raw points.
func (s *Shape) BoundingBox() geom.Rect {
	if s.Kind == KindStroke {
		return geom.BoundsOf(s.Points...)
	}
	size := s.Size
	return geom.BoundsOf(
		s.LocalToWorld(-size, -size),
		s.LocalToWorld(size, -size),
		s.LocalToWorld(size, size),
		s.LocalToWorld(-size, size),
	)
}

// effectiveScale is the smaller absolute axis scale, with 0 read as 1.
// Overlay line widths are divided by it to stay one pixel wide.
func (s *Shape) effectiveScale() float64 {
	sx, sy := s.ScaleX, s.ScaleY
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}
	return math.Min(math.Abs(sx), math.Abs(sy))
}
