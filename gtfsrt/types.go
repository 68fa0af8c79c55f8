package gtfsrt

import "github.com/theoremus-urban-solutions/tracesnap/geom"

// Sample is one observed vehicle position.
type Sample struct {
	Point     geom.Point
	Timestamp int64 // POSIX seconds; 0 when neither entity nor header had one
	Bearing   *float64
}

// VehicleTrace is the ordered history of one vehicle.
type VehicleTrace struct {
	VehicleID string
	TripID    string
	RouteID   string
	Samples   []Sample
}

// Points returns the samples' positions in order.
func (t VehicleTrace) Points() []geom.Point {
	out := make([]geom.Point, len(t.Samples))
	for i, s := range t.Samples {
		out[i] = s.Point
	}
	return out
}
