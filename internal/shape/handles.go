package shape

import (
	"math"

	"github.com/grafika/grafika/internal/geom"
)

// Role identifies what dragging a handle does.
type Role int

const (
	RoleTopLeft Role = iota
	RoleTopRight
	RoleBottomLeft
	RoleBottomRight
	RoleRotate
)

var roleNames = [...]string{"top-left", "top-right", "bottom-left", "bottom-right", "rotate"}

func (r Role) String() string {
	if int(r) < len(roleNames) {
		return roleNames[r]
	}
	return "unknown"
}

// Resizes reports whether the role is one of the four corner handles.
func (r Role) Resizes() bool {
	return r != RoleRotate
}

// Handle is a transient control point computed from a shape's transform.
type Handle struct {
	Role     Role
	Position geom.Point
	Cursor   Cursor
}

// Metrics holds the pixel sizes of handles. They do not scale with shapes.
type Metrics struct {
	HitRadius    float64 // pointer tolerance around a handle center
	DrawRadius   float64 // radius of the rendered handle dot
	RotateOffset float64 // distance of the rotate handle above the top edge
}

// DefaultMetrics returns the editor's built-in handle sizes.
func DefaultMetrics() Metrics {
	return Metrics{HitRadius: 8, DrawRadius: 4, RotateOffset: 20}
}

// Handles returns the four corner handles followed by the rotate handle.
// Freehand strokes have none.
func (s *Shape) Handles(m Metrics) []Handle {
	if !s.Selectable() {
		return nil
	}
	size := s.Size

	sy := s.ScaleY
	if sy == 0 {
		sy = 1
	}

	return []Handle{
		{Role: RoleTopLeft, Position: s.LocalToWorld(-size, -size), Cursor: CursorResizeNWSE},
		{Role: RoleTopRight, Position: s.LocalToWorld(size, -size), Cursor: CursorResizeNESW},
		{Role: RoleBottomLeft, Position: s.LocalToWorld(-size, size), Cursor: CursorResizeNESW},
		{Role: RoleBottomRight, Position: s.LocalToWorld(size, size), Cursor: CursorResizeNWSE},
		{Role: RoleRotate, Position: s.LocalToWorld(0, -size-m.RotateOffset/math.Abs(sy)), Cursor: CursorRotate},
	}
}

// HandleAt returns the first handle within the hit radius of p.
func (s *Shape) HandleAt(p geom.Point, m Metrics) (Handle, bool) {
	r2 := m.HitRadius * m.HitRadius
	for _, h := range s.Handles(m) {
		if p.DistanceSquared(h.Position) <= r2 {
			return h, true
		}
	}
	return Handle{}, false
}
