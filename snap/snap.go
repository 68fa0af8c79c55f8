package snap

import (
	"context"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/theoremus-urban-solutions/tracesnap/geom"
	"github.com/theoremus-urban-solutions/tracesnap/network"
)

// Match is the best projection found for one trace point.
type Match struct {
	Point     geom.Point `json:"point"`
	EdgeID    int        `json:"edge_id"`
	EdgeIndex int        `json:"edge_index"`
	Distance  float64    `json:"distance"`
}

// Snap returns, for each trace point, its nearest point on the network, in
// trace order.
func Snap(n *network.Network, trace []geom.Point) ([]geom.Point, error) {
	matches, err := SnapDetailed(n, trace)
	if err != nil {
		return nil, err
	}
	return Points(matches), nil
}

// SnapDetailed is Snap with the producing edge and distance kept per point.
func SnapDetailed(n *network.Network, trace []geom.Point) ([]Match, error) {
	if err := checkInputs(n, trace); err != nil {
		return nil, err
	}
	out := make([]Match, len(trace))
	for i, p := range trace {
		out[i] = nearest(n, p)
	}
	return out, nil
}

// Points strips matches down to their snapped points.
func Points(matches []Match) []geom.Point {
	out := make([]geom.Point, len(matches))
	for i, m := range matches {
		out[i] = m.Point
	}
	return out
}

func checkInputs(n *network.Network, trace []geom.Point) error {
	if n.Len() == 0 {
		return ErrEmptyNetwork
	}
	if len(trace) == 0 {
		return ErrEmptyTrace
	}
	return nil
}

// nearest scans every edge; only a strictly smaller distance replaces the
// current best, so the first edge in network order wins ties.
func nearest(n *network.Network, p geom.Point) Match {
	best := Match{Distance: math.Inf(1), EdgeIndex: -1}
	for i, e := range n.All() {
		res := geom.ProjectOnSegment(p, e.A, e.B)
		if best.EdgeIndex < 0 || res.Distance < best.Distance {
			best = Match{Point: res.Point, EdgeID: e.ID, EdgeIndex: i, Distance: res.Distance}
		}
	}
	return best
}

// Matcher runs the snapping of one trace, optionally in parallel.
type Matcher struct {
	// Workers bounds the goroutines used; values below 2 run sequentially.
	Workers int
}

// Match snaps trace onto n. Each worker owns a contiguous block of output
// slots, so the result is ordered like the trace and equal to SnapDetailed.
// ctx is checked between trace points.
func (m Matcher) Match(ctx context.Context, n *network.Network, trace []geom.Point) ([]Match, error) {
	if err := checkInputs(n, trace); err != nil {
		return nil, err
	}
	out := make([]Match, len(trace))

	workers := m.Workers
	if workers > len(trace) {
		workers = len(trace)
	}
	if workers < 2 {
		if err := matchRange(ctx, n, trace, out, 0, len(trace)); err != nil {
			return nil, err
		}
		return out, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	chunk := (len(trace) + workers - 1) / workers
	for lo := 0; lo < len(trace); lo += chunk {
		hi := min(lo+chunk, len(trace))
		g.Go(func() error {
			return matchRange(gctx, n, trace, out, lo, hi)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func matchRange(ctx context.Context, n *network.Network, trace []geom.Point, out []Match, lo, hi int) error {
	for i := lo; i < hi; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		out[i] = nearest(n, trace[i])
	}
	return nil
}
