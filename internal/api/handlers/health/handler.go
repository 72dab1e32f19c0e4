package health

import (
	"net/http"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
)

// StatusResponse HTTP response model
type StatusResponse struct {
	Status string `json:"status"`
}

// Handle GET /health
func Handle(w http.ResponseWriter, _ *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}
