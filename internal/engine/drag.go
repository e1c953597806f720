package engine

import (
	"math"

	"github.com/grafika/grafika/internal/geom"
	"github.com/grafika/grafika/internal/shape"
)

// minDragScale is the smallest scale magnitude a resize drag can produce.
const minDragScale = 0.05

type dragKind int

const (
	dragMove dragKind = iota
	dragResize
	dragRotate
)

// dragSession lives from a grab on pointer-down to the release. Resize and
// rotate are always computed from the snapshot plus the total pointer
// delta, so returning the pointer to its start restores the snapshot.
type dragSession struct {
	kind dragKind

	snapshot shape.Transform
	pivot    geom.Point

	initialDist  float64
	initialAngle float64

	// offset of the pointer from the world position, for moves
	offset geom.Point
}

func newHandleDrag(s *shape.Shape, h shape.Handle, p geom.Point) *dragSession {
	d := &dragSession{
		snapshot: s.Transform,
		pivot:    s.WorldPosition(),
	}
	if h.Role.Resizes() {
		d.kind = dragResize
		d.initialDist = p.Distance(d.pivot)
		if d.initialDist == 0 {
			d.initialDist = 1
		}
	} else {
		d.kind = dragRotate
		d.initialAngle = p.AngleFrom(d.pivot)
	}
	return d
}

func newMoveDrag(s *shape.Shape, p geom.Point) *dragSession {
	return &dragSession{
		kind:     dragMove,
		snapshot: s.Transform,
		pivot:    s.WorldPosition(),
		offset:   p.Sub(s.WorldPosition()),
	}
}

// apply updates the shape for the pointer at p.
func (d *dragSession) apply(s *shape.Shape, p geom.Point) {
	switch d.kind {
	case dragResize:
		factor := p.Distance(d.pivot) / d.initialDist
		s.ScaleX = clampScale(d.snapshot.ScaleX*factor, d.snapshot.ScaleX)
		s.ScaleY = clampScale(d.snapshot.ScaleY*factor, d.snapshot.ScaleY)
	case dragRotate:
		delta := p.AngleFrom(d.pivot) - d.initialAngle
		s.Rotation = geom.NormalizeDegrees(d.snapshot.Rotation + geom.Degrees(delta))
	case dragMove:
		target := p.Sub(d.offset)
		s.TranslateX = target.X - s.X
		s.TranslateY = target.Y - s.Y
	}
}

// clampScale floors the magnitude of v at minDragScale and gives it the
// sign of orig.
func clampScale(v, orig float64) float64 {
	m := math.Max(minDragScale, math.Abs(v))
	if orig < 0 {
		return -m
	}
	return m
}
