// Package render draws a network, a raw trace and its matched points.
//
// Network edges are black, the trace is a red polyline and matched points
// are blue dots. Output format follows the file extension (svg, png, pdf).
package render

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/theoremus-urban-solutions/tracesnap/geom"
	"github.com/theoremus-urban-solutions/tracesnap/network"
)

var (
	networkColor = color.Black
	traceColor   = color.RGBA{R: 220, A: 255}
	matchColor   = color.RGBA{B: 220, A: 255}
)

// Size is the default drawing size.
const Size = 8 * vg.Inch

// Plot builds the figure. Any of the inputs may be empty.
func Plot(n *network.Network, trace, matched []geom.Point) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Trace snapping"
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	for i, e := range n.All() {
		l, err := plotter.NewLine(xys([]geom.Point{e.A, e.B}))
		if err != nil {
			return nil, fmt.Errorf("edge %d: %w", i, err)
		}
		l.Color = networkColor
		l.Width = vg.Points(1)
		p.Add(l)
	}

	if len(trace) > 0 {
		l, err := plotter.NewLine(xys(trace))
		if err != nil {
			return nil, fmt.Errorf("trace: %w", err)
		}
		l.Color = traceColor
		l.Width = vg.Points(1)
		p.Add(l)
		p.Legend.Add("trace", l)
	}

	if len(matched) > 0 {
		s, err := plotter.NewScatter(xys(matched))
		if err != nil {
			return nil, fmt.Errorf("matched: %w", err)
		}
		s.GlyphStyle.Color = matchColor
		s.GlyphStyle.Radius = vg.Points(2)
		s.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(s)
		p.Legend.Add("matched", s)
	}

	p.Legend.Top = true
	p.Legend.Left = false
	p.Legend.XOffs = -10
	p.Legend.YOffs = -10

	if box, ok := Frame(n, trace, matched); ok {
		p.X.Min, p.X.Max = box.Min.X, box.Max.X
		p.Y.Min, p.Y.Max = box.Min.Y, box.Max.Y
	}
	return p, nil
}

// Frame returns the square view box around every edge endpoint, trace point
// and matched point, padded on each side by 10% of the larger extent. Both
// axes get the same span so shapes are not distorted on the square canvas.
// ok is false when there is nothing to frame.
func Frame(n *network.Network, trace, matched []geom.Point) (box r2.Box, ok bool) {
	if n.Len() > 0 {
		box, ok = n.Bounds(), true
	}
	for _, pts := range [][]geom.Point{trace, matched} {
		for _, pt := range pts {
			if !ok {
				box, ok = r2.Box{Min: pt.Vec(), Max: pt.Vec()}, true
				continue
			}
			box = network.Extend(box, pt)
		}
	}
	if !ok {
		return r2.Box{}, false
	}

	w, h := box.Max.X-box.Min.X, box.Max.Y-box.Min.Y
	span := math.Max(w, h)
	pad := 0.1 * span
	if span == 0 {
		pad = 0.5
	}
	half := span/2 + pad
	c := r2.Vec{X: box.Min.X + w/2, Y: box.Min.Y + h/2}
	return r2.Box{
		Min: r2.Vec{X: c.X - half, Y: c.Y - half},
		Max: r2.Vec{X: c.X + half, Y: c.Y + half},
	}, true
}

// WriteSVG renders the figure as SVG into w.
func WriteSVG(w io.Writer, n *network.Network, trace, matched []geom.Point) error {
	p, err := Plot(n, trace, matched)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(Size, Size, "svg")
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}

// Save renders the figure to path; the extension picks the format.
func Save(path string, n *network.Network, trace, matched []geom.Point) error {
	p, err := Plot(n, trace, matched)
	if err != nil {
		return err
	}
	if err := p.Save(Size, Size, path); err != nil {
		return fmt.Errorf("could not save plot %s: %w", path, err)
	}
	return nil
}

func xys(pts []geom.Point) plotter.XYs {
	out := make(plotter.XYs, len(pts))
	for i, p := range pts {
		out[i] = plotter.XY{X: p.X, Y: p.Y}
	}
	return out
}
