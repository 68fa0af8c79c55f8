package gtfs

import (
	"archive/zip"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path"
	"sort"
	"strconv"
	"strings"

	"github.com/theoremus-urban-solutions/tracesnap/geom"
	"github.com/theoremus-urban-solutions/tracesnap/network"
)

// ErrNoShapes is returned when a feed has no shapes.txt.
var ErrNoShapes = errors.New("gtfs feed has no shapes.txt")

// NewShapeIndexFromBytes reads a GTFS zip held in memory.
func NewShapeIndexFromBytes(zipBytes []byte) (*ShapeIndex, error) {
	return NewShapeIndexFromReader(bytes.NewReader(zipBytes), int64(len(zipBytes)))
}

// NewShapeIndexFromReader reads a GTFS zip of the given size.
func NewShapeIndexFromReader(r io.ReaderAt, size int64) (*ShapeIndex, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("open gtfs zip: %w", err)
	}
	return loadZip(zr.File)
}

// NewShapeIndexFromFile opens a local GTFS zip file.
func NewShapeIndexFromFile(p string) (*ShapeIndex, error) {
	zr, err := zip.OpenReader(p)
	if err != nil {
		return nil, fmt.Errorf("open gtfs zip %s: %w", p, err)
	}
	defer zr.Close()
	return loadZip(zr.File)
}

// LoadNetwork reads the GTFS zip at p and builds a network from the shapes
// of routeID, or from every shape when routeID is empty.
func LoadNetwork(p, routeID string) (*network.Network, error) {
	idx, err := NewShapeIndexFromFile(p)
	if err != nil {
		return nil, err
	}
	if routeID == "" {
		return idx.Network(), nil
	}
	ids := idx.ShapesForRoute(routeID)
	if len(ids) == 0 {
		return nil, fmt.Errorf("route %s has no shapes in %s", routeID, p)
	}
	return idx.Network(ids...), nil
}

func loadZip(files []*zip.File) (*ShapeIndex, error) {
	g := NewShapeIndex()
	for _, f := range files {
		name := strings.ToLower(path.Base(f.Name))
		if name == "shapes.txt" || name == "trips.txt" {
			if err := g.consumeCSV(f, name); err != nil {
				return nil, fmt.Errorf("%s: %w", f.Name, err)
			}
		}
	}
	if g.shapeSources == 0 {
		return nil, ErrNoShapes
	}
	g.linkRoutes()
	return g, nil
}

func (g *ShapeIndex) consumeCSV(f *zip.File, name string) error {
	r, err := f.Open()
	if err != nil {
		return err
	}
	defer r.Close()
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1
	rec, err := csvr.ReadAll()
	if err != nil {
		return err
	}
	if name == "shapes.txt" {
		g.shapeSources++
	}
	if len(rec) == 0 {
		return nil
	}
	head := rec[0]
	if len(head) > 0 {
		head[0] = strings.TrimPrefix(head[0], "\ufeff")
	}
	idx := func(col string) int {
		for i, h := range head {
			if strings.EqualFold(strings.TrimSpace(h), col) {
				return i
			}
		}
		return -1
	}
	cell := func(row []string, i int) string {
		if i < 0 || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}
	switch name {
	case "trips.txt":
		rID := idx("route_id")
		tID := idx("trip_id")
		sh := idx("shape_id")
		if tID < 0 || sh < 0 {
			return nil
		}
		for _, row := range rec[1:] {
			trip, shape := cell(row, tID), cell(row, sh)
			if trip == "" || shape == "" {
				continue
			}
			if route := cell(row, rID); route != "" {
				if g.routeShapes[route] == nil {
					g.routeShapes[route] = map[string]struct{}{}
				}
				g.routeShapes[route][shape] = struct{}{}
			}
		}
	case "shapes.txt":
		sh := idx("shape_id")
		latIdx := idx("shape_pt_lat")
		lonIdx := idx("shape_pt_lon")
		seqIdx := idx("shape_pt_sequence")
		if sh < 0 || latIdx < 0 || lonIdx < 0 || seqIdx < 0 {
			return fmt.Errorf("missing required shapes.txt columns")
		}
		tmp := map[string][]struct {
			lon, lat float64
			seq      int
		}{}
		for _, row := range rec[1:] {
			shapeID := cell(row, sh)
			lat, errLat := strconv.ParseFloat(cell(row, latIdx), 64)
			lon, errLon := strconv.ParseFloat(cell(row, lonIdx), 64)
			seq, errSeq := strconv.Atoi(cell(row, seqIdx))
			if shapeID == "" || errLat != nil || errLon != nil || errSeq != nil {
				g.SkippedRows++
				continue
			}
			tmp[shapeID] = append(tmp[shapeID], struct {
				lon, lat float64
				seq      int
			}{lon, lat, seq})
		}
		for shapeID, arr := range tmp {
			sort.SliceStable(arr, func(i, j int) bool { return arr[i].seq < arr[j].seq })
			pts := make([]geom.Point, len(arr))
			for i, p := range arr {
				pts[i] = geom.Pt(p.lon, p.lat)
			}
			g.ShapePoints[shapeID] = pts
		}
	}
	return nil
}

// linkRoutes drops route entries whose shapes were never loaded.
func (g *ShapeIndex) linkRoutes() {
	for route, shapes := range g.routeShapes {
		for id := range shapes {
			if _, ok := g.ShapePoints[id]; !ok {
				delete(shapes, id)
			}
		}
		if len(shapes) == 0 {
			delete(g.routeShapes, route)
		}
	}
}
