package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"dyne/salesboard/internal/ingest"
	"dyne/salesboard/internal/logging"
)

func respondJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, statusCode int, message string) {
	respondJSON(w, statusCode, map[string]string{"error": message})
}

// respondUploadError maps ingestion failures onto status codes: client
// mistakes (bad extension, unusable columns) are 400, everything else
// is 500.
func respondUploadError(w http.ResponseWriter, r *http.Request, err error) {
	var vErr *ingest.ValidationError
	if errors.As(err, &vErr) {
		respondError(w, http.StatusBadRequest, vErr.Error())
		return
	}
	logging.Error("Upload failed",
		"path", r.URL.Path,
		"error", err.Error(),
	)
	respondError(w, http.StatusInternalServerError, err.Error())
}

// respondReportError hides query internals behind a stable message.
func respondReportError(w http.ResponseWriter, r *http.Request, err error, message string) {
	logging.Error("Report query failed",
		"path", r.URL.Path,
		"error", err.Error(),
	)
	respondError(w, http.StatusInternalServerError, message)
}
