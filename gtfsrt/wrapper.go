package gtfsrt

import (
	"fmt"
	"math"
	"sort"

	gtfsrtpb "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"google.golang.org/protobuf/proto"

	"github.com/theoremus-urban-solutions/tracesnap/geom"
)

type sampleKey struct {
	vehicle string
	ts      int64
	x, y    float64
}

// TraceBuilder accumulates VehiclePositions snapshots.
type TraceBuilder struct {
	traces  map[string]*VehicleTrace
	seen    map[sampleKey]struct{}
	Skipped int // vehicle entities without a usable position
}

// NewTraceBuilder creates an empty builder
func NewTraceBuilder() *TraceBuilder {
	return &TraceBuilder{
		traces: map[string]*VehicleTrace{},
		seen:   map[sampleKey]struct{}{},
	}
}

// AddFeed decodes one protobuf FeedMessage and adds its vehicle positions.
func (b *TraceBuilder) AddFeed(data []byte) error {
	var fm gtfsrtpb.FeedMessage
	if err := proto.Unmarshal(data, &fm); err != nil {
		return fmt.Errorf("decode gtfs-rt feed: %w", err)
	}
	b.AddFeedMessage(&fm)
	return nil
}

// AddFeedMessage adds the vehicle positions of a decoded feed.
func (b *TraceBuilder) AddFeedMessage(fm *gtfsrtpb.FeedMessage) {
	headerTS := int64(fm.GetHeader().GetTimestamp())
	for _, e := range fm.GetEntity() {
		v := e.GetVehicle()
		if v == nil {
			continue
		}
		pos := v.GetPosition()
		if pos == nil || pos.Latitude == nil || pos.Longitude == nil {
			b.Skipped++
			continue
		}
		lat := float64(pos.GetLatitude())
		lon := float64(pos.GetLongitude())
		if math.IsNaN(lat) || math.IsNaN(lon) || math.IsInf(lat, 0) || math.IsInf(lon, 0) {
			b.Skipped++
			continue
		}

		tripID := v.GetTrip().GetTripId()
		key := v.GetVehicle().GetId()
		if key == "" {
			key = tripID
		}
		if key == "" {
			key = e.GetId()
		}
		if key == "" {
			b.Skipped++
			continue
		}

		ts := int64(v.GetTimestamp())
		if ts == 0 {
			ts = headerTS
		}
		s := Sample{Point: geom.Pt(lon, lat), Timestamp: ts}
		if pos.Bearing != nil {
			bearing := float64(pos.GetBearing())
			s.Bearing = &bearing
		}

		sk := sampleKey{vehicle: key, ts: ts, x: s.Point.X, y: s.Point.Y}
		if _, dup := b.seen[sk]; dup {
			continue
		}
		b.seen[sk] = struct{}{}

		tr, ok := b.traces[key]
		if !ok {
			tr = &VehicleTrace{VehicleID: key}
			b.traces[key] = tr
		}
		if tripID != "" {
			tr.TripID = tripID
		}
		if routeID := v.GetTrip().GetRouteId(); routeID != "" {
			tr.RouteID = routeID
		}
		tr.Samples = append(tr.Samples, s)
	}
}

// Traces returns every vehicle's trace sorted by vehicle id, samples in
// timestamp order (arrival order for equal timestamps).
func (b *TraceBuilder) Traces() []VehicleTrace {
	ids := make([]string, 0, len(b.traces))
	for id := range b.traces {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	out := make([]VehicleTrace, 0, len(ids))
	for _, id := range ids {
		t, _ := b.Trace(id)
		out = append(out, t)
	}
	return out
}

// Trace returns one vehicle's trace.
func (b *TraceBuilder) Trace(vehicleID string) (VehicleTrace, bool) {
	tr, ok := b.traces[vehicleID]
	if !ok {
		return VehicleTrace{}, false
	}
	out := *tr
	out.Samples = append([]Sample(nil), tr.Samples...)
	sort.SliceStable(out.Samples, func(i, j int) bool { return out.Samples[i].Timestamp < out.Samples[j].Timestamp })
	return out, true
}

// ParseVehiclePositions builds traces from one or more feed snapshots.
func ParseVehiclePositions(feeds ...[]byte) ([]VehicleTrace, error) {
	b := NewTraceBuilder()
	for i, f := range feeds {
		if err := b.AddFeed(f); err != nil {
			return nil, fmt.Errorf("feed %d: %w", i, err)
		}
	}
	return b.Traces(), nil
}
