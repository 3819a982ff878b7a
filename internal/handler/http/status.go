package http

import (
	"encoding/json"
	"net/http"

	"github.com/avdorokhov/devops-demo/internal/logger"
)

func (h *Handler) getStatus(w http.ResponseWriter, r *http.Request) {
	status := h.services.StatusService.GetStatus(r.Context())

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(status); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getStatus").Msg("error encoding status response")
	}
}

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	status := h.services.StatusService.GetStatus(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(status.Version))
}
