/*
Package gtfs builds a snapping network from the shapes of a GTFS static feed.

This package is data-source agnostic: it accepts raw zip bytes, an
io.ReaderAt or a local path and builds an in-memory index of shapes.txt
(and trips.txt, for route lookups). It does NOT handle HTTP downloads.

# Basic Usage

	idx, err := gtfs.NewShapeIndexFromFile("gtfs.zip")
	if err != nil {
	    log.Fatal(err)
	}

	// every shape, in shape_id order
	net := idx.Network()

	// only the shapes used by one route
	net = idx.Network(idx.ShapesForRoute("R1")...)

# Coordinates

Shape points become planar points with X = shape_pt_lon and Y =
shape_pt_lat. No geographic correction is applied, so distances reported by
the snapping engine are in degrees.

# Edge ids

Each shape contributes one edge per pair of consecutive points (after
sorting by shape_pt_sequence). Ids are assigned sequentially across shapes
in sorted shape_id order, starting at 0.
*/
package gtfs
