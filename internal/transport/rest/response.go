package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/heartmarshall/dictproxy/internal/domain"
)

// ErrorResponse is the JSON body of every non-2xx response.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, ErrorResponse{Detail: detail})
}

// ErrorStatus maps a lookup error to an HTTP status and detail message.
//
// Provider status errors keep their status code, transport failures become
// 502 Bad Gateway, validation errors 400. Anything else is an internal error
// and its message is not exposed.
func ErrorStatus(err error) (int, string) {
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest, validationErr.Error()
	}

	var statusErr *domain.UpstreamStatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode, statusErr.Error()
	}

	var transportErr *domain.UpstreamTransportError
	if errors.As(err, &transportErr) {
		return http.StatusBadGateway, transportErr.Error()
	}

	return http.StatusInternalServerError, "internal server error"
}
