/*
Package snap matches a trace onto a network by brute-force nearest
projection.

For every trace point each edge is projected in network order and the
strictly closest projection wins, so ties always go to the edge that comes
first. The search is linear in the number of edges; there is no spatial
index.

# Basic Usage

	matched, err := snap.Snap(net, trace)
	if errors.Is(err, snap.ErrEmptyInput) {
	    // nothing to match against, or nothing to match
	}

Use a Matcher to spread the per-point work over several goroutines or to
stop a long run through a context:

	m := snap.Matcher{Workers: runtime.NumCPU()}
	matches, err := m.Match(ctx, net, trace)

Results are identical to Snap whatever the worker count.
*/
package snap
