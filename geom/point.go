package geom

import (
	"strconv"

	"gonum.org/v1/gonum/spatial/r2"
)

// Point is an immutable planar coordinate pair.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

func (p Point) vec() r2.Vec { return r2.Vec(p) }

func fromVec(v r2.Vec) Point { return Point(v) }

// Vec returns p as a gonum vector.
func (p Point) Vec() r2.Vec { return p.vec() }

func (p Point) String() string {
	return "(" + strconv.FormatFloat(p.X, 'g', -1, 64) + ", " + strconv.FormatFloat(p.Y, 'g', -1, 64) + ")"
}

// Distance returns the Euclidean distance between p and q.
func Distance(p, q Point) float64 {
	return r2.Norm(r2.Sub(p.vec(), q.vec()))
}

// Lerp returns a + t·(b − a).
func Lerp(a, b Point, t float64) Point {
	return fromVec(r2.Add(a.vec(), r2.Scale(t, r2.Sub(b.vec(), a.vec()))))
}
