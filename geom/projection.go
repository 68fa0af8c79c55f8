package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// ProjectionResult is the foot of a query point on one segment together with
// the distance to it. T is the clamped segment parameter of Point.
type ProjectionResult struct {
	Distance float64
	Point    Point
	T        float64
}

// ProjectOnSegment projects p onto the closed segment [a, b].
//
// The returned point is a + t·(b − a) with t = dot(p−a, b−a)/|b−a|² clamped
// to [0, 1], and Distance is the Euclidean distance from p to it, which is the
// minimum distance from p to any point of the segment. A zero-length segment
// (a == b) projects everything onto a.
func ProjectOnSegment(p, a, b Point) ProjectionResult {
	if a == b {
		return ProjectionResult{Distance: Distance(p, a), Point: a}
	}
	ab := r2.Sub(b.vec(), a.vec())
	l2 := r2.Norm2(ab)
	if l2 == 0 || math.IsInf(l2, 1) {
		return projectScaled(p, a, b)
	}
	t := r2.Dot(r2.Sub(p.vec(), a.vec()), ab) / l2
	if math.IsNaN(t) {
		return projectScaled(p, a, b)
	}
	t = clamp01(t)
	proj := fromVec(r2.Add(a.vec(), r2.Scale(t, ab)))
	return ProjectionResult{Distance: Distance(p, proj), Point: proj, T: t}
}

// projectScaled handles segments whose squared length leaves the float64
// range. Coordinates are halved and divided by the largest half-extent so
// every intermediate stays finite.
func projectScaled(p, a, b Point) ProjectionResult {
	half := r2.Sub(r2.Scale(0.5, b.vec()), r2.Scale(0.5, a.vec()))
	s := math.Max(math.Abs(half.X), math.Abs(half.Y))
	t := math.NaN()
	if s > 0 {
		u := r2.Vec{X: half.X / s, Y: half.Y / s}
		w := r2.Vec{X: (0.5*p.X - 0.5*a.X) / s, Y: (0.5*p.Y - 0.5*a.Y) / s}
		t = r2.Dot(w, u) / r2.Norm2(u)
	}

	var proj Point
	switch {
	case math.IsNaN(t):
		// no usable direction: take the nearer endpoint, a on ties
		if Distance(p, b) < Distance(p, a) {
			proj, t = b, 1
		} else {
			proj, t = a, 0
		}
	case t <= 0:
		proj, t = a, 0
	case t >= 1:
		proj, t = b, 1
	default:
		// a + t·half + t·half stays between a and b at every step
		step := r2.Scale(t, half)
		proj = fromVec(r2.Add(r2.Add(a.vec(), step), step))
	}
	return ProjectionResult{Distance: Distance(p, proj), Point: proj, T: t}
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// OnSegment reports whether p lies on [a, b] within tol.
func OnSegment(p, a, b Point, tol float64) bool {
	return ProjectOnSegment(p, a, b).Distance <= tol
}
