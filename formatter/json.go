package formatter

import (
	"encoding/json"
	"io"

	"github.com/theoremus-urban-solutions/tracesnap/snap"
	"github.com/theoremus-urban-solutions/tracesnap/utils"
)

// Report is the JSON document for one run.
type Report struct {
	RunID       string        `json:"run_id"`
	GeneratedAt string        `json:"generated_at"`
	Summary     snap.Summary  `json:"summary"`
	Matches     []MatchRecord `json:"matches"`
}

// MatchRecord is one matched point in a Report.
type MatchRecord struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	EdgeID   int     `json:"edge_id"`
	Distance float64 `json:"distance"`
}

// NewReport builds a Report stamped with the current time.
func NewReport(runID string, matches []snap.Match) Report {
	recs := make([]MatchRecord, len(matches))
	for i, m := range matches {
		recs[i] = MatchRecord{X: m.Point.X, Y: m.Point.Y, EdgeID: m.EdgeID, Distance: m.Distance}
	}
	return Report{
		RunID:       runID,
		GeneratedAt: utils.Iso8601Now(),
		Summary:     snap.Summarize(matches),
		Matches:     recs,
	}
}

// WriteJSON serializes a Report.
func WriteJSON(w io.Writer, r Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
