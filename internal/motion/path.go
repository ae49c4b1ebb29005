// internal/motion/path.go
package motion

import "iter"

// DefaultResolution is the number of waypoints in a generated path,
// including both endpoints.
const DefaultResolution = 5000

// Control-point displacement tuning. Each control point is pushed away from
// its anchor by (axis span + controlPadding) * controlScale * r per axis,
// where r is a uniform integer in [controlFactorMin, controlFactorMax).
const (
	controlPadding   = 50.0
	controlScale     = 0.01
	controlFactorMin = 15
	controlFactorMax = 30
)

// PathGenerator produces randomized cursor paths approximating human hand
// motion. The shape is a cubic Bezier curve whose two control points are
// displaced to one randomly chosen side of the start-end segment, so the
// path arcs consistently instead of wobbling.
type PathGenerator struct {
	resolution int
	rng        Rand
}

// NewPathGenerator creates a generator emitting paths of the given
// resolution. Resolutions below 2 are replaced by DefaultResolution.
func NewPathGenerator(resolution int, rng Rand) *PathGenerator {
	if resolution < 2 {
		resolution = DefaultResolution
	}
	return &PathGenerator{resolution: resolution, rng: rng}
}

// Resolution returns the fixed number of points each generated path holds.
func (g *PathGenerator) Resolution() int {
	return g.resolution
}

// Generate returns a one-shot lazy sequence of exactly Resolution() points
// from start to end inclusive. The randomness (side and control-point
// displacements) is drawn up front, so the returned sequence itself is
// deterministic. Coinciding start and end still yield a full-length path.
func (g *PathGenerator) Generate(start, end Point) iter.Seq[Point] {
	// One sign for both axes of both control points keeps the arc on a
	// single side of the movement.
	sign := 1
	if g.rng.Intn(2) == 0 {
		sign = -1
	}
	c1 := g.controlPoint(start, end, start, sign)
	c2 := g.controlPoint(start, end, end, sign)

	interior := g.resolution - 2
	return func(yield func(Point) bool) {
		if !yield(start) {
			return
		}
		for i := 0; i < interior; i++ {
			t := float64(i) / float64(interior)
			if !yield(bezierPoint(start, c1, c2, end, t)) {
				return
			}
		}
		yield(end)
	}
}

// controlPoint displaces anchor by a randomized fraction of the movement's
// axis spans, toward the side selected by sign.
func (g *PathGenerator) controlPoint(start, end, anchor Point, sign int) Point {
	rx := controlFactorMin + g.rng.Intn(controlFactorMax-controlFactorMin)
	ry := controlFactorMin + g.rng.Intn(controlFactorMax-controlFactorMin)
	dx := (axisSpan(start.X, end.X) + controlPadding) * controlScale * float64(rx)
	dy := (axisSpan(start.Y, end.Y) + controlPadding) * controlScale * float64(ry)
	return Point{
		X: anchor.X + sign*int(dx),
		Y: anchor.Y + sign*int(dy),
	}
}

// MaxControlOffset reports the largest displacement a control point may
// receive on each axis for a movement between start and end. Generated
// waypoints always fall inside the endpoint bounding box expanded by this
// amount, since a Bezier curve stays within the convex hull of its anchors.
func MaxControlOffset(start, end Point) (dx, dy int) {
	limit := float64(controlFactorMax - 1)
	dx = int((axisSpan(start.X, end.X) + controlPadding) * controlScale * limit)
	dy = int((axisSpan(start.Y, end.Y) + controlPadding) * controlScale * limit)
	return dx, dy
}

// bezierPoint evaluates the cubic Bezier defined by the four anchors at
// parameter t in [0, 1]. Coordinates are truncated to integers.
func bezierPoint(p0, p1, p2, p3 Point, t float64) Point {
	u := 1 - t
	w0 := u * u * u
	w1 := 3 * u * u * t
	w2 := 3 * u * t * t
	w3 := t * t * t
	x := w0*float64(p0.X) + w1*float64(p1.X) + w2*float64(p2.X) + w3*float64(p3.X)
	y := w0*float64(p0.Y) + w1*float64(p1.Y) + w2*float64(p2.Y) + w3*float64(p3.Y)
	return Point{X: int(x), Y: int(y)}
}
