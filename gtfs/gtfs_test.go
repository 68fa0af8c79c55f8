package gtfs

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/tracesnap/geom"
	"github.com/theoremus-urban-solutions/tracesnap/network"
)

const shapesTxt = "\ufeffshape_id,shape_pt_lat,shape_pt_lon,shape_pt_sequence\n" +
	"B,42.0,23.0,2\n" +
	"B,42.0,23.1,1\n" +
	"A,10,20,3\n" +
	"A,10,21,1\n" +
	"A,11,21,2\n" +
	"A,oops,21,4\n" +
	"C,5,5,1\n"

const tripsTxt = "route_id,service_id,trip_id,shape_id\n" +
	"R1,WK,t1,A\n" +
	"R1,WK,t2,A\n" +
	"R2,WK,t3,B\n" +
	"R3,WK,t4,MISSING\n"

func buildZip(t *testing.T, files map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, body := range files {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(body))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestNewShapeIndexFromBytes(t *testing.T) {
	idx, err := NewShapeIndexFromBytes(buildZip(t, map[string]string{
		"shapes.txt": shapesTxt,
		"trips.txt":  tripsTxt,
		"stops.txt":  "stop_id\n",
	}))
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C"}, idx.ShapeIDs())
	assert.Equal(t, 1, idx.SkippedRows)
	assert.Equal(t, []geom.Point{geom.Pt(21, 10), geom.Pt(21, 11), geom.Pt(20, 10)}, idx.ShapePoints["A"])
	assert.Equal(t, []string{"A"}, idx.ShapesForRoute("R1"))
	assert.Empty(t, idx.ShapesForRoute("R3"))
	assert.Equal(t, []string{"B"}, idx.ShapesForRoute("R2"))

	want := []network.Edge{
		{ID: 0, A: geom.Pt(21, 10), B: geom.Pt(21, 11)},
		{ID: 1, A: geom.Pt(21, 11), B: geom.Pt(20, 10)},
		{ID: 2, A: geom.Pt(23.1, 42), B: geom.Pt(23, 42)},
	}
	if diff := cmp.Diff(want, idx.Network().Edges()); diff != "" {
		t.Errorf("network mismatch (-want +got):\n%s", diff)
	}

	onlyB := idx.Network(idx.ShapesForRoute("R2")...)
	require.Equal(t, 1, onlyB.Len())
	assert.Equal(t, 0, onlyB.Edge(0).ID)
}

func TestNewShapeIndexNestedDirectory(t *testing.T) {
	idx, err := NewShapeIndexFromBytes(buildZip(t, map[string]string{"feed/shapes.txt": shapesTxt}))
	require.NoError(t, err)
	assert.Len(t, idx.ShapeIDs(), 3)
}

func TestNewShapeIndexNoShapes(t *testing.T) {
	_, err := NewShapeIndexFromBytes(buildZip(t, map[string]string{"trips.txt": tripsTxt}))
	assert.ErrorIs(t, err, ErrNoShapes)
}

func TestNewShapeIndexMissingColumns(t *testing.T) {
	_, err := NewShapeIndexFromBytes(buildZip(t, map[string]string{"shapes.txt": "shape_id,lat,lon\nA,1,2\n"}))
	assert.Error(t, err)
}

func TestNewShapeIndexNotAZip(t *testing.T) {
	_, err := NewShapeIndexFromBytes([]byte("definitely not a zip"))
	assert.Error(t, err)
}

func TestNewShapeIndexFromFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "gtfs.zip")
	require.NoError(t, os.WriteFile(p, buildZip(t, map[string]string{"shapes.txt": shapesTxt}), 0o644))

	idx, err := NewShapeIndexFromFile(p)
	require.NoError(t, err)
	assert.Equal(t, 3, idx.Network().Len())

	_, err = NewShapeIndexFromFile(filepath.Join(t.TempDir(), "missing.zip"))
	assert.Error(t, err)
}

func TestLoadNetwork(t *testing.T) {
	p := filepath.Join(t.TempDir(), "gtfs.zip")
	require.NoError(t, os.WriteFile(p, buildZip(t, map[string]string{
		"shapes.txt": shapesTxt,
		"trips.txt":  tripsTxt,
	}), 0o644))

	all, err := LoadNetwork(p, "")
	require.NoError(t, err)
	assert.Equal(t, 3, all.Len())

	r1, err := LoadNetwork(p, "R1")
	require.NoError(t, err)
	require.Equal(t, 2, r1.Len())
	assert.Equal(t, geom.Pt(21, 10), r1.Edge(0).A)

	_, err = LoadNetwork(p, "R3")
	assert.ErrorContains(t, err, "no shapes")
}
