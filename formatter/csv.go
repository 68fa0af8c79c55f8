package formatter

import (
	"bufio"
	"fmt"
	"io"

	"github.com/theoremus-urban-solutions/tracesnap/geom"
	"github.com/theoremus-urban-solutions/tracesnap/network"
)

// WriteTraceCSV writes one "x,y" line per point, readable by loader.ReadTrace.
func WriteTraceCSV(w io.Writer, pts []geom.Point) error {
	bw := bufio.NewWriter(w)
	for _, p := range pts {
		if _, err := fmt.Fprintf(bw, "%.6f,%.6f\n", p.X, p.Y); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteEdgesCSV writes one "id,ax,ay,bx,by" line per edge, readable by
// loader.ReadNetwork.
func WriteEdgesCSV(w io.Writer, edges []network.Edge) error {
	bw := bufio.NewWriter(w)
	for _, e := range edges {
		if _, err := fmt.Fprintf(bw, "%d,%g,%g,%g,%g\n", e.ID, e.A.X, e.A.Y, e.B.X, e.B.Y); err != nil {
			return err
		}
	}
	return bw.Flush()
}
