package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	lib "github.com/theoremus-urban-solutions/tracesnap"
	"github.com/theoremus-urban-solutions/tracesnap/config"
	"github.com/theoremus-urban-solutions/tracesnap/formatter"
	"github.com/theoremus-urban-solutions/tracesnap/generate"
	"github.com/theoremus-urban-solutions/tracesnap/geom"
	"github.com/theoremus-urban-solutions/tracesnap/internal"
)

// Generator defaults follow the stand-alone generators: a 6x6 node grid with
// unit spacing and a 40 point circle of radius 1.5 centred inside it.
const (
	defaultGridNodes    = 6
	defaultGridSpacing  = 1.0
	defaultCirclePoints = 40
	defaultCircleCX     = 2.5
	defaultCircleCY     = 2.5
	defaultCircleRadius = 1.5
)

func main() {
	def := config.Default()
	mode := flag.String("mode", "oneshot", "oneshot|serve|gen-grid|gen-circle")
	configPath := flag.String("config", "", "config file (default: ./config.yml if present)")
	networkPath := flag.String("network", def.Input.Network, "edge file: id ax ay bx by per line")
	tracePath := flag.String("trace", def.Input.Trace, "trace file: x y per line")
	gtfsPath := flag.String("gtfs", "", "GTFS zip whose shapes form the network (overrides -network)")
	gtfsRoute := flag.String("route", "", "only use shapes of this GTFS route")
	gtfsrtFeeds := flag.String("gtfsrt", "", "comma-separated GTFS-RT VehiclePositions URLs or files (overrides -trace)")
	vehicle := flag.String("vehicle", "", "vehicle id to take from the GTFS-RT feeds (default: first)")
	outPath := flag.String("out", def.Output.Path, "output file")
	format := flag.String("format", def.Output.Format, "text|json|geojson")
	svgPath := flag.String("svg", "", "also render network, trace and matches to this file (.svg/.png/.pdf)")
	workers := flag.Int("workers", def.Snap.Workers, "matcher workers (0 = one per CPU)")
	port := flag.Int("port", def.Server.Port, "HTTP port for -mode serve")
	logLevel := flag.String("log", def.Logging.Level, "debug|info|warn|error")
	width := flag.Int("width", defaultGridNodes, "gen-grid: nodes per row")
	height := flag.Int("height", defaultGridNodes, "gen-grid: nodes per column")
	spacing := flag.Float64("spacing", defaultGridSpacing, "gen-grid: node spacing")
	points := flag.Int("points", defaultCirclePoints, "gen-circle: number of points")
	cx := flag.Float64("cx", defaultCircleCX, "gen-circle: center x")
	cy := flag.Float64("cy", defaultCircleCY, "gen-circle: center y")
	radius := flag.Float64("radius", defaultCircleRadius, "gen-circle: radius")
	flag.Parse()

	internal.InitLogging(internal.LevelInfo)
	if err := config.LoadDotEnv(); err != nil {
		fatal(err)
	}
	if err := config.LoadAppConfig(*configPath); err != nil {
		fatal(err)
	}
	cfg := config.Config

	// Flags given on the command line win over file and environment.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "network":
			cfg.Input.Network = *networkPath
		case "trace":
			cfg.Input.Trace = *tracePath
		case "gtfs":
			cfg.Input.GTFS = *gtfsPath
		case "route":
			cfg.Input.GTFSRoute = *gtfsRoute
		case "gtfsrt":
			cfg.Input.GTFSRT = splitList(*gtfsrtFeeds)
		case "vehicle":
			cfg.Input.Vehicle = *vehicle
		case "out":
			cfg.Output.Path = *outPath
		case "format":
			cfg.Output.Format = *format
		case "svg":
			cfg.Output.SVG = *svgPath
		case "workers":
			cfg.Snap.Workers = *workers
		case "port":
			cfg.Server.Port = *port
		case "log":
			cfg.Logging.Level = *logLevel
		}
	})
	if err := config.Validate(cfg); err != nil {
		fatal(err)
	}
	level, err := internal.ParseLevel(cfg.Logging.Level)
	if err != nil {
		fatal(err)
	}
	internal.SetLevel(level)

	switch *mode {
	case "oneshot":
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		if _, err := lib.Run(ctx, cfg); err != nil {
			fatal(err)
		}
	case "serve":
		lib.StartServer(cfg)
		lib.HandleGracefulShutdown()
	case "gen-grid":
		edges := generate.ManhattanGrid(*width, *height, *spacing)
		if err := formatter.WriteFile(cfg.Input.Network, func(w io.Writer) error {
			return formatter.WriteEdgesCSV(w, edges)
		}); err != nil {
			fatal(err)
		}
		internal.Infof("Grid %dx%d with spacing %g generated and saved to %s (%d edges)",
			*width, *height, *spacing, cfg.Input.Network, len(edges))
	case "gen-circle":
		center := geom.Pt(*cx, *cy)
		pts := generate.Circle(*points, center, *radius)
		if err := formatter.WriteFile(cfg.Input.Trace, func(w io.Writer) error {
			return formatter.WriteTraceCSV(w, pts)
		}); err != nil {
			fatal(err)
		}
		internal.Infof("Generated %d circle points centered at %s with radius %g -> %s",
			len(pts), center, *radius, cfg.Input.Trace)
	default:
		fatal(fmt.Errorf("unknown mode %q", *mode))
	}
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func fatal(err error) {
	internal.Errorf("%v", err)
	os.Exit(1)
}
