// Package network models a road or grid network as a flat, ordered bag of
// straight edges. No connectivity graph is built; edge order only matters
// for deterministic tie-breaking during snapping.
package network
