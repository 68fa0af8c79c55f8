package network

import (
	"iter"
	"math"
	"slices"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/theoremus-urban-solutions/tracesnap/geom"
)

// Edge is an undirected straight segment between A and B. A and B may be
// equal.
type Edge struct {
	ID int        `json:"id"`
	A  geom.Point `json:"a"`
	B  geom.Point `json:"b"`
}

// Degenerate reports whether the edge has zero length.
func (e Edge) Degenerate() bool { return e.A == e.B }

// Length returns the Euclidean length of the edge.
func (e Edge) Length() float64 { return geom.Distance(e.A, e.B) }

// Network holds edges in insertion order. It is read-only after New.
type Network struct {
	edges []Edge
}

// New builds a network from edges, keeping their order. The slice is
// copied; degenerate and duplicate edges are kept as given.
func New(edges []Edge) *Network {
	return &Network{edges: slices.Clone(edges)}
}

// Len returns the number of edges.
func (n *Network) Len() int {
	if n == nil {
		return 0
	}
	return len(n.edges)
}

// Edge returns the i-th edge in insertion order.
func (n *Network) Edge(i int) Edge { return n.edges[i] }

// Edges returns a copy of the edge list.
func (n *Network) Edges() []Edge {
	if n == nil {
		return nil
	}
	return slices.Clone(n.edges)
}

// All iterates edges in insertion order, yielding their index.
func (n *Network) All() iter.Seq2[int, Edge] {
	return func(yield func(int, Edge) bool) {
		if n == nil {
			return
		}
		for i, e := range n.edges {
			if !yield(i, e) {
				return
			}
		}
	}
}

// Bounds returns the axis-aligned box covering every endpoint. The zero box
// is returned for an empty network.
func (n *Network) Bounds() r2.Box {
	if n.Len() == 0 {
		return r2.Box{}
	}
	box := r2.Box{
		Min: r2.Vec{X: math.Inf(1), Y: math.Inf(1)},
		Max: r2.Vec{X: math.Inf(-1), Y: math.Inf(-1)},
	}
	for _, e := range n.edges {
		box = Extend(box, e.A)
		box = Extend(box, e.B)
	}
	return box
}

// Extend grows box to contain p.
func Extend(box r2.Box, p geom.Point) r2.Box {
	box.Min.X = math.Min(box.Min.X, p.X)
	box.Min.Y = math.Min(box.Min.Y, p.Y)
	box.Max.X = math.Max(box.Max.X, p.X)
	box.Max.Y = math.Max(box.Max.Y, p.Y)
	return box
}

// FromPolyline turns consecutive points into edges with ids starting at
// startID. Fewer than two points yield no edges.
func FromPolyline(startID int, pts []geom.Point) []Edge {
	if len(pts) < 2 {
		return nil
	}
	out := make([]Edge, 0, len(pts)-1)
	for i := 0; i+1 < len(pts); i++ {
		out = append(out, Edge{ID: startID + i, A: pts[i], B: pts[i+1]})
	}
	return out
}
