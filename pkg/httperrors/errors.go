package httperrors

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sir_venger/questionnaire/internal/models"
	"github.com/sir_venger/questionnaire/pkg/versionproto"
)

const (
	DetailNoDraft        = "No draft to submit"
	DetailInvalidPayload = "Request body must be a JSON object"
	DetailTooLarge       = "Request body too large"
)

// Write переводит ошибку в HTTP-статус. fallback: общий текст для непредвиденных ошибок,
// внутренние подробности клиенту не отдаются.
func Write(w http.ResponseWriter, err error, fallback string) {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.Is(err, models.ErrNoDraft):
		JSON(w, http.StatusBadRequest, versionproto.ErrorResponse{Detail: DetailNoDraft})
	case errors.Is(err, models.ErrInvalidPayload):
		JSON(w, http.StatusUnprocessableEntity, versionproto.ErrorResponse{Detail: DetailInvalidPayload})
	case errors.As(err, &tooLarge):
		JSON(w, http.StatusRequestEntityTooLarge, versionproto.ErrorResponse{Detail: DetailTooLarge})
	default:
		JSON(w, http.StatusInternalServerError, versionproto.ErrorResponse{Detail: fallback})
	}
}

// JSON пишет тело ответа в JSON с заданным статусом.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
