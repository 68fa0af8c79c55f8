package tracesnap

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/tracesnap/formatter"
)

func doRequest(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	NewRouter(2).ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	rec := doRequest(t, http.MethodGet, "/api/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var got healthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "ok", got.Status)
}

func TestSnapEndpoint(t *testing.T) {
	rec := doRequest(t, http.MethodPost, "/api/snap",
		`{"network":[{"id":0,"a":[0,0],"b":[10,0]},{"id":1,"a":[0,0],"b":[0,10]}],"trace":[[5,3],[3,5]]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var rep formatter.Report
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rep))
	assert.NotEmpty(t, rep.RunID)
	assert.Equal(t, []formatter.MatchRecord{
		{X: 5, Y: 0, EdgeID: 0, Distance: 3},
		{X: 0, Y: 5, EdgeID: 1, Distance: 3},
	}, rep.Matches)
	assert.Equal(t, 2, rep.Summary.Points)
}

func TestSnapEndpointErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		code int
	}{
		{"malformed json", `{"network":`, http.StatusBadRequest},
		{"empty network", `{"network":[],"trace":[[1,1]]}`, http.StatusUnprocessableEntity},
		{"empty trace", `{"network":[{"id":0,"a":[0,0],"b":[1,0]}]}`, http.StatusUnprocessableEntity},
		{"edge without endpoints", `{"network":[{"id":3}],"trace":[[1,1]]}`, http.StatusBadRequest},
		{"edge with three coordinates", `{"network":[{"id":0,"a":[0,0,0],"b":[1,0]}],"trace":[[1,1]]}`, http.StatusBadRequest},
		{"short trace point", `{"network":[{"id":0,"a":[0,0],"b":[1,0]}],"trace":[[1,1],[2]]}`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, http.MethodPost, "/api/snap", tt.body)
			require.Equal(t, tt.code, rec.Code)
			var got errorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.NotEmpty(t, got.Error)
		})
	}
}

func TestSnapHandlerWorkers(t *testing.T) {
	assert.Equal(t, runtime.NumCPU(), newSnapHandler(0).workers)
	assert.Equal(t, 3, newSnapHandler(3).workers)
	assert.Equal(t, resolveWorkers(0), newSnapHandler(0).workers)
}

func TestSnapEndpointWrongMethod(t *testing.T) {
	rec := doRequest(t, http.MethodGet, "/api/snap", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
