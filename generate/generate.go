// Package generate produces synthetic inputs: circular traces and
// Manhattan-grid networks.
package generate

import (
	"math"

	"github.com/theoremus-urban-solutions/tracesnap/geom"
	"github.com/theoremus-urban-solutions/tracesnap/network"
)

// Circle returns n points evenly spaced counter-clockwise on a circle,
// starting at angle zero.
func Circle(n int, center geom.Point, radius float64) []geom.Point {
	if n <= 0 {
		return nil
	}
	out := make([]geom.Point, n)
	for i := range out {
		angle := 2 * math.Pi * float64(i) / float64(n)
		out[i] = geom.Pt(center.X+radius*math.Cos(angle), center.Y+radius*math.Sin(angle))
	}
	return out
}

// ManhattanGrid returns the unit edges of a width×height lattice of nodes
// spaced by spacing: every horizontal edge row by row, then every vertical
// edge column by column. Ids count from 0 in that order.
func ManhattanGrid(width, height int, spacing float64) []network.Edge {
	if width <= 0 || height <= 0 {
		return nil
	}
	out := make([]network.Edge, 0, GridEdgeCount(width, height))
	id := 0
	for y := 0; y < height; y++ {
		for x := 0; x < width-1; x++ {
			out = append(out, network.Edge{
				ID: id,
				A:  geom.Pt(float64(x)*spacing, float64(y)*spacing),
				B:  geom.Pt(float64(x+1)*spacing, float64(y)*spacing),
			})
			id++
		}
	}
	for x := 0; x < width; x++ {
		for y := 0; y < height-1; y++ {
			out = append(out, network.Edge{
				ID: id,
				A:  geom.Pt(float64(x)*spacing, float64(y)*spacing),
				B:  geom.Pt(float64(x)*spacing, float64(y+1)*spacing),
			})
			id++
		}
	}
	return out
}

// GridEdgeCount is the number of edges ManhattanGrid produces.
func GridEdgeCount(width, height int) int {
	if width <= 0 || height <= 0 {
		return 0
	}
	return height*(width-1) + width*(height-1)
}
