package rest

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/notekeeper-backend/internal/domain"
)

type errorResponse struct {
	Error  string          `json:"error"`
	Fields []fieldResponse `json:"fields,omitempty"`
}

type fieldResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// decodeJSON reads a JSON request body into dst. The returned error is
// already a *domain.ValidationError or a size error.
func decodeJSON(r *http.Request, dst any) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil {
		return nil
	}

	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return err
	}
	if errors.Is(err, io.EOF) {
		return domain.NewValidationError("body", "required")
	}
	return domain.NewValidationError("body", "invalid JSON")
}

// handleError maps service errors onto HTTP responses. notFound is the
// message used for domain.ErrNotFound.
func handleError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error, notFound string) {
	var (
		validation *domain.ValidationError
		maxErr     *http.MaxBytesError
	)

	switch {
	case errors.As(err, &validation):
		resp := errorResponse{Error: "validation failed", Fields: make([]fieldResponse, 0, len(validation.Errors))}
		for _, fe := range validation.Errors {
			resp.Fields = append(resp.Fields, fieldResponse{Field: fe.Field, Message: fe.Message})
		}
		if len(validation.Errors) == 1 {
			resp.Error = validation.Errors[0].Field + ": " + validation.Errors[0].Message
		}
		writeJSON(w, http.StatusBadRequest, resp)
	case errors.As(err, &maxErr):
		writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, notFound)
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, "already exists")
	default:
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
