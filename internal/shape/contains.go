package shape

import "github.com/grafika/grafika/internal/geom"

// Contains reports whether the world point lies on the shape. Each kind
// uses an analytic test in local space; boundaries are inclusive.
func (s *Shape) Contains(p geom.Point) bool {
	if !s.Selectable() {
		return false
	}
	l := s.WorldToLocal(p.X, p.Y)

	switch s.Kind {
	case KindCross:
		return crossContains(l, s.Size)
	case KindStarCrescent:
		return crescentContains(l, s.Size)
	case KindYinYang:
		return l.X*l.X+l.Y*l.Y <= s.Size*s.Size
	default:
		return squareContains(l, s.Size)
	}
}

func squareContains(l geom.Point, size float64) bool {
	return l.X >= -size && l.X <= size && l.Y >= -size && l.Y <= size
}

// crossContains tests the union of a vertical and a horizontal bar, each
// 2s long and s/1.5 thick. The hit bars are wider than the drawn ones so
// the thin cross is easier to grab.
func crossContains(l geom.Point, size float64) bool {
	half := size / 3
	inVertical := l.X >= -half && l.X <= half && l.Y >= -size && l.Y <= size
	inHorizontal := l.X >= -size && l.X <= size && l.Y >= -half && l.Y <= half
	return inVertical || inHorizontal
}

// crescentContains tests the ring between the outer disc (radius r at the
// origin) and the inner disc (radius 0.75r at (0.3r, 0)).
func crescentContains(l geom.Point, r float64) bool {
	outer := l.DistanceSquared(geom.Point{})
	inner := l.DistanceSquared(geom.Point{X: r * crescentOffset})
	innerR := r * crescentInnerRatio
	return outer <= r*r && inner >= innerR*innerR
}
