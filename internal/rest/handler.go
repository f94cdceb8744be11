package rest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/archivehq/whatsapp-import/internal/config"
)

// Handler exposes the capture worker's operational surface. Browsing and
// filtering of stored records belongs to the presentation layer, not here.
type Handler struct {
	repository DBRepo
	groupName  string
}

func New(repo DBRepo, groupName string) *Handler {
	return &Handler{
		repository: repo,
		groupName:  groupName,
	}
}

type healthResponse struct {
	Status string `json:"status"`
}

type statsResponse struct {
	TotalSnippets   int64   `json:"total_snippets"`
	LatestTimestamp *string `json:"latest_timestamp,omitempty"`
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, healthResponse{Status: "ok"}, http.StatusOK)
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("Stats")

	total, err := h.repository.CountSnippets(r.Context())
	if err != nil {
		logger.Error(fmt.Sprintf("failed to count snippets: %v", err))
		h.writeError(w, "failed to count snippets", http.StatusInternalServerError)
		return
	}

	latest, err := h.repository.LatestTimestamp(r.Context(), h.groupName)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get latest timestamp: %v", err))
		h.writeError(w, "failed to get latest timestamp", http.StatusInternalServerError)
		return
	}

	response := statsResponse{TotalSnippets: total}
	if !latest.IsZero() {
		formatted := latest.Format(time.RFC3339)
		response.LatestTimestamp = &formatted
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func (h *Handler) writeError(w http.ResponseWriter, message string, status int) {
	h.writeJSON(w, map[string]string{"error": message}, status)
}
