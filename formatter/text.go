package formatter

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/theoremus-urban-solutions/tracesnap/geom"
)

// Format names an output encoding.
type Format string

const (
	FormatText    Format = "text"
	FormatJSON    Format = "json"
	FormatGeoJSON Format = "geojson"
)

// ParseFormat accepts text, json and geojson; "" means text.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON, FormatGeoJSON:
		return Format(s), nil
	}
	return "", fmt.Errorf("unknown output format %q (want text|json|geojson)", s)
}

// WriteText writes one "x y" line per point with six fixed decimals.
func WriteText(w io.Writer, pts []geom.Point) error {
	bw := bufio.NewWriter(w)
	for _, p := range pts {
		if _, err := fmt.Fprintf(bw, "%.6f %.6f\n", p.X, p.Y); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteFile creates path and fills it through write. The file is removed
// again if write fails.
func WriteFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
