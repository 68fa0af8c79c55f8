package gtfs

import (
	"sort"

	"github.com/theoremus-urban-solutions/tracesnap/geom"
	"github.com/theoremus-urban-solutions/tracesnap/network"
)

// ShapeIndex stores GTFS shapes in memory
type ShapeIndex struct {
	ShapePoints  map[string][]geom.Point        // shape_id -> ordered points (lon, lat)
	routeShapes  map[string]map[string]struct{} // route_id -> shape_ids
	SkippedRows  int                            // shapes.txt rows dropped as malformed
	shapeSources int                            // number of shapes.txt files consumed
}

// NewShapeIndex creates a new empty shape index
func NewShapeIndex() *ShapeIndex {
	return &ShapeIndex{
		ShapePoints: map[string][]geom.Point{},
		routeShapes: map[string]map[string]struct{}{},
	}
}

// ShapeIDs returns every shape id in sorted order.
func (s *ShapeIndex) ShapeIDs() []string {
	ids := make([]string, 0, len(s.ShapePoints))
	for id := range s.ShapePoints {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// ShapesForRoute returns the sorted shape ids of the route's trips.
func (s *ShapeIndex) ShapesForRoute(routeID string) []string {
	set := s.routeShapes[routeID]
	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Network turns the given shapes, or every shape when none are named, into
// a network. Shapes are visited in sorted id order and unknown ids are
// ignored.
func (s *ShapeIndex) Network(shapeIDs ...string) *network.Network {
	if len(shapeIDs) == 0 {
		shapeIDs = s.ShapeIDs()
	} else {
		shapeIDs = append([]string(nil), shapeIDs...)
		sort.Strings(shapeIDs)
	}
	var edges []network.Edge
	for _, id := range shapeIDs {
		edges = append(edges, network.FromPolyline(len(edges), s.ShapePoints[id])...)
	}
	return network.New(edges)
}
