// Package shape implements the drawable, selectable shapes of the 2D editor:
// a tagged variant over shape kinds sharing one transform and style payload.
package shape

import (
	"github.com/grafika/grafika/internal/geom"
	"github.com/grafika/grafika/internal/typeid"
)

type Kind string

const (
	KindStroke       Kind = "stroke"
	KindCross        Kind = "cross"
	KindStarCrescent Kind = "starCrescent"
	KindYinYang      Kind = "yinYang"
)

// Closed reports whether the kind is one of the parametric closed shapes
// that carry a transform and can be selected.
func (k Kind) Closed() bool {
	switch k {
	case KindCross, KindStarCrescent, KindYinYang:
		return true
	default:
		return false
	}
}

// Transform is the affine state of a shape relative to its anchor.
// Rotation is in degrees and kept in [0, 360).
type Transform struct {
	TranslateX float64
	TranslateY float64
	ScaleX     float64
	ScaleY     float64
	Rotation   float64
}

// IdentityTransform is the transform of a freshly created shape.
func IdentityTransform() Transform {
	return Transform{ScaleX: 1, ScaleY: 1}
}

type Style struct {
	FillColor     string
	FillEnabled   bool
	StrokeColor   string
	StrokeEnabled bool
	StrokeWidth   float64
}

// DefaultStyle matches the editor's initial toolbar values.
func DefaultStyle() Style {
	return Style{
		FillColor:     "#000000",
		FillEnabled:   true,
		StrokeColor:   "#000000",
		StrokeEnabled: true,
		StrokeWidth:   2,
	}
}

// Brush configures a freehand stroke.
type Brush struct {
	Color string
	Width float64
	Erase bool
}

// Shape is a single object on the drawing surface. X, Y is the anchor in
// world space and Size the nominal half-extent of the local square.
//
// Freehand strokes (KindStroke) only use Points and Brush: they have no
// transform, no handles and are never hit by Contains.
type Shape struct {
	ID   string
	Kind Kind
	X    float64
	Y    float64
	Size float64

	Transform
	Style

	Points []geom.Point
	Brush  Brush
}

// New creates a closed shape of the given kind centered at (x, y).
func New(kind Kind, x, y, size float64, style Style) *Shape {
	return &Shape{
		ID:        typeid.NewShapeID(),
		Kind:      kind,
		X:         x,
		Y:         y,
		Size:      size,
		Transform: IdentityTransform(),
		Style:     style,
	}
}

// NewStroke starts a freehand stroke at (x, y).
func NewStroke(x, y float64, brush Brush) *Shape {
	return &Shape{
		ID:        typeid.NewStrokeID(),
		Kind:      KindStroke,
		X:         x,
		Y:         y,
		Transform: IdentityTransform(),
		Points:    []geom.Point{{X: x, Y: y}},
		Brush:     brush,
	}
}

// AddPoint appends a raw pointer sample to a freehand stroke.
func (s *Shape) AddPoint(x, y float64) {
	s.Points = append(s.Points, geom.Point{X: x, Y: y})
}

// Selectable reports whether the shape can be selected and transformed.
func (s *Shape) Selectable() bool {
	return s.Kind.Closed()
}
