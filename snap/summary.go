package snap

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary describes how far a trace had to move to land on the network.
// MeanDistance is the average trace-to-match error.
type Summary struct {
	Points        int     `json:"points"`
	MeanDistance  float64 `json:"mean_distance"`
	MaxDistance   float64 `json:"max_distance"`
	TotalDistance float64 `json:"total_distance"`
	EdgesUsed     int     `json:"edges_used"`
}

// Summarize aggregates per-point distances. An empty input gives the zero
// Summary.
func Summarize(matches []Match) Summary {
	if len(matches) == 0 {
		return Summary{}
	}
	d := make([]float64, len(matches))
	used := make(map[int]struct{})
	for i, m := range matches {
		d[i] = m.Distance
		used[m.EdgeIndex] = struct{}{}
	}
	return Summary{
		Points:        len(matches),
		MeanDistance:  stat.Mean(d, nil),
		MaxDistance:   floats.Max(d),
		TotalDistance: floats.Sum(d),
		EdgesUsed:     len(used),
	}
}
