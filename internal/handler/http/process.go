package http

import (
	"encoding/json"
	"net/http"

	"github.com/avdorokhov/devops-demo/internal/logger"
)

func (h *Handler) processData(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var data map[string]any
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		log.Err(err).Str("func", "*Handler.processData").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	record := h.services.ProcessingService.Process(r.Context(), data)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(record); err != nil {
		log.Err(err).Str("func", "*Handler.processData").Msg("error encoding processed record")
	}
}
