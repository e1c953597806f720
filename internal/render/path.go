package render

import "math"

// PathCommand represents a single path segment for rendering.
// Format matches Canvas2D:
//
//	["M", x, y]
//	["L", x, y]
//	["C", x1, y1, x2, y2, x, y]
//	["A", cx, cy, r, startAngle, endAngle, anticlockwise]
//	["Z"]
type PathCommand []interface{}

// Path builds a list of PathCommands.
type Path struct {
	cmds []PathCommand
}

// NewPath starts an empty path (beginPath).
func NewPath() *Path {
	return &Path{}
}

// MoveTo starts a new subpath.
func (p *Path) MoveTo(x, y float64) *Path {
	p.cmds = append(p.cmds, PathCommand{"M", x, y})
	return p
}

// LineTo adds a straight segment.
func (p *Path) LineTo(x, y float64) *Path {
	p.cmds = append(p.cmds, PathCommand{"L", x, y})
	return p
}

// CubicTo adds a cubic bezier segment.
func (p *Path) CubicTo(x1, y1, x2, y2, x, y float64) *Path {
	p.cmds = append(p.cmds, PathCommand{"C", x1, y1, x2, y2, x, y})
	return p
}

// Arc adds a circular arc with Canvas2D semantics: a straight line joins the
// current point to the arc start if a subpath is open.
func (p *Path) Arc(cx, cy, r, start, end float64, anticlockwise bool) *Path {
	p.cmds = append(p.cmds, PathCommand{"A", cx, cy, r, start, end, anticlockwise})
	return p
}

// Circle adds a full circle as its own subpath.
func (p *Path) Circle(cx, cy, r float64) *Path {
	p.MoveTo(cx+r, cy)
	return p.Arc(cx, cy, r, 0, 2*math.Pi, false)
}

// Rect adds a closed rectangle subpath.
func (p *Path) Rect(x, y, w, h float64) *Path {
	return p.MoveTo(x, y).
		LineTo(x+w, y).
		LineTo(x+w, y+h).
		LineTo(x, y+h).
		Close()
}

// Close closes the current subpath.
func (p *Path) Close() *Path {
	p.cmds = append(p.cmds, PathCommand{"Z"})
	return p
}

// Commands returns the built path.
func (p *Path) Commands() []PathCommand {
	return p.cmds
}

// toFloat64 converts an interface{} to float64.
func toFloat64(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	default:
		return 0
	}
}

func toBool(v interface{}) bool {
	b, _ := v.(bool)
	return b
}
