package render

import (
	"math"

	"github.com/grafika/grafika/internal/geom"
)

// cubicSegment is one bezier piece of an arc approximation.
type cubicSegment struct {
	c1, c2, end geom.Point
}

// arcSweep resolves start/end/direction into a signed sweep the way
// CanvasRenderingContext2D.arc does.
func arcSweep(start, end float64, anticlockwise bool) float64 {
	const twoPi = 2 * math.Pi
	if !anticlockwise {
		if end-start >= twoPi {
			return twoPi
		}
		sweep := math.Mod(end-start, twoPi)
		if sweep < 0 {
			sweep += twoPi
		}
		return sweep
	}
	if start-end >= twoPi {
		return -twoPi
	}
	sweep := math.Mod(start-end, twoPi)
	if sweep < 0 {
		sweep += twoPi
	}
	return -sweep
}

// arcToCubics approximates an arc with at most quarter-turn bezier segments.
// It returns the arc start point and the segments that follow it.
func arcToCubics(cx, cy, r, start, end float64, anticlockwise bool) (geom.Point, []cubicSegment) {
	sweep := arcSweep(start, end, anticlockwise)
	first := geom.Pt(cx+r*math.Cos(start), cy+r*math.Sin(start))
	if sweep == 0 || r <= 0 {
		return first, nil
	}

	n := int(math.Ceil(math.Abs(sweep) / (math.Pi / 2)))
	step := sweep / float64(n)
	k := 4.0 / 3.0 * math.Tan(step/4)

	segs := make([]cubicSegment, 0, n)
	a1 := start
	for i := 0; i < n; i++ {
		a2 := a1 + step
		sin1, cos1 := math.Sincos(a1)
		sin2, cos2 := math.Sincos(a2)
		segs = append(segs, cubicSegment{
			c1:  geom.Pt(cx+r*(cos1-k*sin1), cy+r*(sin1+k*cos1)),
			c2:  geom.Pt(cx+r*(cos2+k*sin2), cy+r*(sin2-k*cos2)),
			end: geom.Pt(cx+r*cos2, cy+r*sin2),
		})
		a1 = a2
	}
	return first, segs
}
