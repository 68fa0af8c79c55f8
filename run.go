package tracesnap

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/google/uuid"

	"github.com/theoremus-urban-solutions/tracesnap/config"
	"github.com/theoremus-urban-solutions/tracesnap/formatter"
	"github.com/theoremus-urban-solutions/tracesnap/geom"
	"github.com/theoremus-urban-solutions/tracesnap/gtfs"
	"github.com/theoremus-urban-solutions/tracesnap/gtfsrt"
	"github.com/theoremus-urban-solutions/tracesnap/internal"
	"github.com/theoremus-urban-solutions/tracesnap/loader"
	"github.com/theoremus-urban-solutions/tracesnap/network"
	"github.com/theoremus-urban-solutions/tracesnap/render"
	"github.com/theoremus-urban-solutions/tracesnap/snap"
	"github.com/theoremus-urban-solutions/tracesnap/utils"
)

// Result is the outcome of one Run.
type Result struct {
	RunID   string
	Network *network.Network
	Trace   []geom.Point
	Matches []snap.Match
	Summary snap.Summary
}

// Run loads the inputs named by cfg, matches the trace onto the network
// and writes the requested outputs. Nothing is written unless matching
// succeeds.
func Run(ctx context.Context, cfg config.AppConfig) (*Result, error) {
	format, err := formatter.ParseFormat(cfg.Output.Format)
	if err != nil {
		return nil, err
	}
	res := &Result{RunID: uuid.NewString()}

	res.Network, err = loadNetwork(cfg.Input)
	if err != nil {
		return nil, err
	}
	res.Trace, err = loadTrace(ctx, cfg.Input)
	if err != nil {
		return nil, err
	}
	internal.Infof("[%s] Read %d edges and %d trace points", res.RunID, res.Network.Len(), len(res.Trace))

	res.Matches, err = match(ctx, cfg.Snap, res.Network, res.Trace)
	if err != nil {
		return nil, err
	}
	res.Summary = snap.Summarize(res.Matches)

	if err := WriteMatches(cfg.Output.Path, format, res.RunID, res.Matches); err != nil {
		return nil, err
	}
	internal.Infof("[%s] Saved %d matched points to %s", res.RunID, len(res.Matches), cfg.Output.Path)

	if cfg.Output.SVG != "" {
		if err := render.Save(cfg.Output.SVG, res.Network, res.Trace, snap.Points(res.Matches)); err != nil {
			return nil, err
		}
		internal.Infof("[%s] Rendered %s", res.RunID, cfg.Output.SVG)
	}

	internal.Infof("[%s] mean error %.6f, max %.6f over %d edges",
		res.RunID, res.Summary.MeanDistance, res.Summary.MaxDistance, res.Summary.EdgesUsed)
	return res, nil
}

func match(ctx context.Context, sc config.SnapConfig, n *network.Network, trace []geom.Point) ([]snap.Match, error) {
	return snap.Matcher{Workers: resolveWorkers(sc.Workers)}.Match(ctx, n, trace)
}

// resolveWorkers maps the configured worker count to a matcher's: 0 means
// one per CPU.
func resolveWorkers(n int) int {
	if n == 0 {
		return runtime.NumCPU()
	}
	return n
}

// WriteMatches writes matches to path in the given format.
func WriteMatches(path string, format formatter.Format, runID string, matches []snap.Match) error {
	return formatter.WriteFile(path, func(w io.Writer) error {
		switch format {
		case formatter.FormatJSON:
			return formatter.WriteJSON(w, formatter.NewReport(runID, matches))
		case formatter.FormatGeoJSON:
			return formatter.WriteGeoJSON(w, runID, matches)
		default:
			return formatter.WriteText(w, snap.Points(matches))
		}
	})
}

func loadNetwork(in config.InputConfig) (*network.Network, error) {
	if in.GTFS != "" {
		n, err := gtfs.LoadNetwork(in.GTFS, in.GTFSRoute)
		if err != nil {
			return nil, err
		}
		internal.Debugf("built %d edges from gtfs %s", n.Len(), in.GTFS)
		return n, nil
	}
	n, stats, err := loader.LoadNetworkFile(in.Network)
	if err != nil {
		return nil, err
	}
	logStats(in.Network, stats)
	return n, nil
}

func loadTrace(ctx context.Context, in config.InputConfig) ([]geom.Point, error) {
	if len(in.GTFSRT) == 0 {
		pts, stats, err := loader.LoadTraceFile(in.Trace)
		if err != nil {
			return nil, err
		}
		logStats(in.Trace, stats)
		return pts, nil
	}

	client := gtfsrt.NewClient(time.Duration(in.TimeoutMS) * time.Millisecond)
	feeds, err := client.FetchAll(ctx, in.GTFSRT...)
	if err != nil {
		return nil, err
	}
	traces, err := gtfsrt.ParseVehiclePositions(feeds...)
	if err != nil {
		return nil, err
	}
	vt, err := pickVehicle(traces, in.Vehicle)
	if err != nil {
		return nil, err
	}
	if len(vt.Samples) > 0 {
		internal.Infof("using vehicle %s (trip %q): %d samples from %s to %s", vt.VehicleID, vt.TripID, len(vt.Samples),
			utils.Iso8601FromUnixSeconds(vt.Samples[0].Timestamp),
			utils.Iso8601FromUnixSeconds(vt.Samples[len(vt.Samples)-1].Timestamp))
	}
	return vt.Points(), nil
}

// pickVehicle returns the trace of vehicleID, or the first trace when no
// vehicle is named. No traces yields an empty trace, which matching refuses.
func pickVehicle(traces []gtfsrt.VehicleTrace, vehicleID string) (gtfsrt.VehicleTrace, error) {
	if vehicleID == "" {
		if len(traces) == 0 {
			return gtfsrt.VehicleTrace{}, nil
		}
		return traces[0], nil
	}
	for _, t := range traces {
		if t.VehicleID == vehicleID {
			return t, nil
		}
	}
	return gtfsrt.VehicleTrace{}, fmt.Errorf("vehicle %s not found in realtime feeds", vehicleID)
}

func logStats(path string, s loader.Stats) {
	if s.Skipped > 0 {
		internal.Warnf("%s: skipped %d of %d lines", path, s.Skipped, s.Lines)
		return
	}
	internal.Debugf("%s: %d records", path, s.Records)
}
