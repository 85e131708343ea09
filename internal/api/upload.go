package api

import (
	"errors"
	"io"
	"net/http"

	"dyne/salesboard/internal/constants"
	"dyne/salesboard/internal/ingest"
	"dyne/salesboard/internal/logging"
	"dyne/salesboard/internal/middleware"
	"dyne/salesboard/internal/services"
)

// readUpload pulls the multipart "file" part and the "replace" flag out
// of the request. Oversized bodies and missing files come back as
// validation errors so they map to 400.
func readUpload(w http.ResponseWriter, r *http.Request) (filename string, data []byte, replace bool, err error) {
	r.Body = http.MaxBytesReader(w, r.Body, ingest.MaxUploadBytes)

	if err := r.ParseMultipartForm(ingest.MaxUploadBytes); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return "", nil, false, ingest.NewValidationError(constants.ErrFileTooLarge)
		}
		return "", nil, false, ingest.NewValidationError(constants.ErrNoFileUploaded)
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		return "", nil, false, ingest.NewValidationError(constants.ErrNoFileUploaded)
	}
	defer file.Close()

	data, err = io.ReadAll(file)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return "", nil, false, ingest.NewValidationError(constants.ErrFileTooLarge)
		}
		return "", nil, false, err
	}

	return header.Filename, data, r.FormValue("replace") == "true", nil
}

// SalesUploadHandler handles POST /api/sales/upload.
func SalesUploadHandler(svc *services.IngestService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filename, data, replace, err := readUpload(w, r)
		if err != nil {
			respondUploadError(w, r, err)
			return
		}

		log := logging.WithUpload(middleware.RequestID(r.Context()), "sales", filename)
		log.Infow("Upload received", "bytes", len(data), "replace", replace)

		result, err := svc.IngestSales(r.Context(), filename, data, replace)
		if err != nil {
			respondUploadError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, result)
	}
}

// RatingsUploadHandler handles POST /api/ratings/upload.
func RatingsUploadHandler(svc *services.IngestService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filename, data, replace, err := readUpload(w, r)
		if err != nil {
			respondUploadError(w, r, err)
			return
		}

		log := logging.WithUpload(middleware.RequestID(r.Context()), "ratings", filename)
		log.Infow("Upload received", "bytes", len(data), "replace", replace)

		result, err := svc.IngestRatings(r.Context(), filename, data, replace)
		if err != nil {
			respondUploadError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, result)
	}
}
