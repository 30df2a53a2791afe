package handler

import (
	"encoding/json"
	"net/http"

	"bankist/service"
)

type HealthHandler struct {
	sessions *service.SessionManager
}

func NewHealthHandler(sessions *service.SessionManager) *HealthHandler {
	return &HealthHandler{sessions: sessions}
}

type healthResponse struct {
	Status   string `json:"status"`
	Sessions int    `json:"sessions"`
}

// Check godoc
// @Summary      Show the status of the server
// @Description  Reports liveness and the number of open sessions.
// @Tags         health
// @Produce      json
// @Success      200  {object}  handler.healthResponse
// @Router       /health [get]
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(healthResponse{Status: "ok", Sessions: h.sessions.Len()})
}
