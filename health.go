package tracesnap

import (
	"encoding/json"
	"net/http"

	"github.com/theoremus-urban-solutions/tracesnap/utils"
)

type healthResponse struct {
	Status string `json:"status"`
	Time   string `json:"time"`
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	resp := healthResponse{
		Status: "ok",
		Time:   utils.Iso8601Now(),
	}
	_ = json.NewEncoder(w).Encode(resp)
}
