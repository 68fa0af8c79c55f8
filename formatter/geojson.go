package formatter

import (
	"io"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/theoremus-urban-solutions/tracesnap/snap"
)

// BuildGeoJSON returns the matched trajectory as a LineString feature
// followed by one Point feature per match, in trace order.
func BuildGeoJSON(runID string, matches []snap.Match) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	line := make(orb.LineString, len(matches))
	for i, m := range matches {
		line[i] = orb.Point{m.Point.X, m.Point.Y}
	}
	path := geojson.NewFeature(line)
	path.Properties["kind"] = "matched_trajectory"
	path.Properties["run_id"] = runID
	fc.Append(path)

	for i, m := range matches {
		f := geojson.NewFeature(orb.Point{m.Point.X, m.Point.Y})
		f.Properties["kind"] = "match"
		f.Properties["index"] = i
		f.Properties["edge_id"] = m.EdgeID
		f.Properties["distance"] = m.Distance
		fc.Append(f)
	}
	return fc
}

// WriteGeoJSON serializes BuildGeoJSON's collection.
func WriteGeoJSON(w io.Writer, runID string, matches []snap.Match) error {
	b, err := BuildGeoJSON(runID, matches).MarshalJSON()
	if err != nil {
		return err
	}
	if _, err := w.Write(b); err != nil {
		return err
	}
	_, err = w.Write([]byte("\n"))
	return err
}
