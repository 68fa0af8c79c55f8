package tracesnap

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/theoremus-urban-solutions/tracesnap/formatter"
	"github.com/theoremus-urban-solutions/tracesnap/geom"
	"github.com/theoremus-urban-solutions/tracesnap/internal"
	"github.com/theoremus-urban-solutions/tracesnap/network"
	"github.com/theoremus-urban-solutions/tracesnap/snap"
)

const maxRequestBytes = 32 << 20

type edgeJSON struct {
	ID int       `json:"id"`
	A  []float64 `json:"a"`
	B  []float64 `json:"b"`
}

type snapRequest struct {
	Network []edgeJSON  `json:"network"`
	Trace   [][]float64 `json:"trace"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type snapHandler struct {
	workers int
}

func newSnapHandler(workers int) *snapHandler {
	return &snapHandler{workers: resolveWorkers(workers)}
}

func toPoint(c []float64) (geom.Point, error) {
	if len(c) != 2 {
		return geom.Point{}, fmt.Errorf("want 2 coordinates, got %d", len(c))
	}
	return geom.Pt(c[0], c[1]), nil
}

// parse converts the request into engine inputs. Every coordinate pair must
// have exactly two numbers.
func (req snapRequest) parse() ([]network.Edge, []geom.Point, error) {
	edges := make([]network.Edge, len(req.Network))
	for i, e := range req.Network {
		a, err := toPoint(e.A)
		if err != nil {
			return nil, nil, fmt.Errorf("network[%d].a: %w", i, err)
		}
		b, err := toPoint(e.B)
		if err != nil {
			return nil, nil, fmt.Errorf("network[%d].b: %w", i, err)
		}
		edges[i] = network.Edge{ID: e.ID, A: a, B: b}
	}
	trace := make([]geom.Point, len(req.Trace))
	for i, c := range req.Trace {
		p, err := toPoint(c)
		if err != nil {
			return nil, nil, fmt.Errorf("trace[%d]: %w", i, err)
		}
		trace[i] = p
	}
	return edges, trace, nil
}

func (h *snapHandler) handleSnap(w http.ResponseWriter, r *http.Request) {
	var req snapRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBytes))
	if err := dec.Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	edges, trace, err := req.parse()
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	runID := uuid.NewString()
	matches, err := snap.Matcher{Workers: h.workers}.Match(r.Context(), network.New(edges), trace)
	switch {
	case errors.Is(err, snap.ErrEmptyInput):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
		return
	case err != nil:
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	internal.Debugf("[%s] snapped %d points onto %d edges", runID, len(trace), len(edges))
	writeJSON(w, http.StatusOK, formatter.NewReport(runID, matches))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
