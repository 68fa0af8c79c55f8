package render

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/theoremus-urban-solutions/tracesnap/generate"
	"github.com/theoremus-urban-solutions/tracesnap/geom"
	"github.com/theoremus-urban-solutions/tracesnap/network"
	"github.com/theoremus-urban-solutions/tracesnap/snap"
)

func TestPlotGridCircle(t *testing.T) {
	n := network.New(generate.ManhattanGrid(3, 3, 1))
	trace := generate.Circle(8, geom.Pt(1, 1), 0.8)
	matched, err := snap.Snap(n, trace)
	require.NoError(t, err)

	p, err := Plot(n, trace, matched)
	require.NoError(t, err)
	assert.Equal(t, "Trace snapping", p.Title.Text)
	assert.InDelta(t, -0.2, p.X.Min, 1e-9)
	assert.InDelta(t, 2.2, p.X.Max, 1e-9)
	assert.InDelta(t, -0.2, p.Y.Min, 1e-9)
	assert.InDelta(t, 2.2, p.Y.Max, 1e-9)
}

func TestFrame(t *testing.T) {
	tests := []struct {
		name     string
		n        *network.Network
		trace    []geom.Point
		matched  []geom.Point
		min, max r2.Vec
		ok       bool
	}{
		{
			name:    "wide network squared around its centre",
			n:       network.New([]network.Edge{{ID: 0, A: geom.Pt(0, 0), B: geom.Pt(10, 0)}}),
			trace:   []geom.Point{geom.Pt(5, 3)},
			matched: []geom.Point{geom.Pt(5, 0)},
			min:     r2.Vec{X: -1, Y: -4.5},
			max:     r2.Vec{X: 11, Y: 7.5},
			ok:      true,
		},
		{
			name:  "trace outside the network widens the box",
			n:     network.New([]network.Edge{{ID: 0, A: geom.Pt(0, 0), B: geom.Pt(0, 10)}}),
			trace: []geom.Point{geom.Pt(-10, 5)},
			min:   r2.Vec{X: -11, Y: -1},
			max:   r2.Vec{X: 1, Y: 11},
			ok:    true,
		},
		{
			name:  "single point",
			trace: []geom.Point{geom.Pt(2, 3)},
			min:   r2.Vec{X: 1.5, Y: 2.5},
			max:   r2.Vec{X: 2.5, Y: 3.5},
			ok:    true,
		},
		{name: "nothing to frame"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			box, ok := Frame(tt.n, tt.trace, tt.matched)
			require.Equal(t, tt.ok, ok)
			assert.InDelta(t, tt.min.X, box.Min.X, 1e-9)
			assert.InDelta(t, tt.min.Y, box.Min.Y, 1e-9)
			assert.InDelta(t, tt.max.X, box.Max.X, 1e-9)
			assert.InDelta(t, tt.max.Y, box.Max.Y, 1e-9)
		})
	}
}

func TestWriteSVGEmptyInputs(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSVG(&buf, nil, nil, nil))
	assert.True(t, strings.Contains(buf.String(), "<svg"))
}

func TestWriteSVG(t *testing.T) {
	n := network.New([]network.Edge{{ID: 0, A: geom.Pt(0, 0), B: geom.Pt(10, 0)}})
	var buf bytes.Buffer
	require.NoError(t, WriteSVG(&buf, n, []geom.Point{geom.Pt(5, 3), geom.Pt(6, 2)}, []geom.Point{geom.Pt(5, 0), geom.Pt(6, 0)}))
	assert.True(t, strings.Contains(buf.String(), "<svg"))
}

func TestSave(t *testing.T) {
	n := network.New([]network.Edge{{ID: 0, A: geom.Pt(0, 0), B: geom.Pt(10, 0)}})
	p := filepath.Join(t.TempDir(), "out.svg")
	require.NoError(t, Save(p, n, []geom.Point{geom.Pt(5, 3)}, []geom.Point{geom.Pt(5, 0)}))
	info, err := os.Stat(p)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}
