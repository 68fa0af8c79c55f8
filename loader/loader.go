package loader

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/theoremus-urban-solutions/tracesnap/geom"
	"github.com/theoremus-urban-solutions/tracesnap/network"
)

const maxLineBytes = 1 << 20

// Stats counts what a read saw. Blank lines are not counted as skipped.
type Stats struct {
	Lines   int
	Records int
	Skipped int
}

// ReadNetwork parses edge records from r in file order.
func ReadNetwork(r io.Reader) (*network.Network, Stats, error) {
	var edges []network.Edge
	st, err := scan(r, func(fields []string) bool {
		e, ok := parseEdge(fields)
		if ok {
			edges = append(edges, e)
		}
		return ok
	})
	if err != nil {
		return nil, st, err
	}
	return network.New(edges), st, nil
}

// ReadTrace parses point records from r in file order.
func ReadTrace(r io.Reader) ([]geom.Point, Stats, error) {
	var pts []geom.Point
	st, err := scan(r, func(fields []string) bool {
		p, ok := parsePoint(fields)
		if ok {
			pts = append(pts, p)
		}
		return ok
	})
	if err != nil {
		return nil, st, err
	}
	return pts, st, nil
}

// LoadNetworkFile opens path and reads it with ReadNetwork.
func LoadNetworkFile(path string) (*network.Network, Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("could not open edge file %s: %w", path, err)
	}
	defer f.Close()
	n, st, err := ReadNetwork(f)
	if err != nil {
		return nil, st, fmt.Errorf("read edge file %s: %w", path, err)
	}
	return n, st, nil
}

// LoadTraceFile opens path and reads it with ReadTrace.
func LoadTraceFile(path string) ([]geom.Point, Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("could not open trace file %s: %w", path, err)
	}
	defer f.Close()
	pts, st, err := ReadTrace(f)
	if err != nil {
		return nil, st, fmt.Errorf("read trace file %s: %w", path, err)
	}
	return pts, st, nil
}

// scan feeds every non-blank line to record. Lines longer than maxLineBytes
// are counted as skipped without being parsed.
func scan(r io.Reader, record func(fields []string) bool) (Stats, error) {
	var st Stats
	br := bufio.NewReaderSize(r, 64*1024)
	var line []byte
	tooLong := false
	for {
		chunk, isPrefix, err := br.ReadLine()
		if err == io.EOF {
			return st, nil
		}
		if err != nil {
			return st, err
		}
		if !tooLong {
			if len(line)+len(chunk) > maxLineBytes {
				tooLong = true
				line = line[:0]
			} else {
				line = append(line, chunk...)
			}
		}
		if isPrefix {
			continue
		}

		st.Lines++
		switch {
		case tooLong:
			st.Skipped++
		default:
			fields := Fields(string(line))
			if len(fields) == 0 {
				break
			}
			if record(fields) {
				st.Records++
			} else {
				st.Skipped++
			}
		}
		line = line[:0]
		tooLong = false
	}
}

// Fields splits a line after turning commas into spaces.
func Fields(line string) []string {
	return strings.Fields(strings.ReplaceAll(line, ",", " "))
}

func parseEdge(f []string) (network.Edge, bool) {
	if len(f) < 5 {
		return network.Edge{}, false
	}
	id, err := strconv.Atoi(f[0])
	if err != nil {
		return network.Edge{}, false
	}
	var c [4]float64
	for i := range c {
		v, ok := parseCoord(f[i+1])
		if !ok {
			return network.Edge{}, false
		}
		c[i] = v
	}
	return network.Edge{ID: id, A: geom.Pt(c[0], c[1]), B: geom.Pt(c[2], c[3])}, true
}

func parsePoint(f []string) (geom.Point, bool) {
	if len(f) < 2 {
		return geom.Point{}, false
	}
	x, okX := parseCoord(f[0])
	y, okY := parseCoord(f[1])
	if !okX || !okY {
		return geom.Point{}, false
	}
	return geom.Pt(x, y), true
}

// parseCoord accepts finite decimal numbers only; NaN and Inf are rejected.
func parseCoord(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
