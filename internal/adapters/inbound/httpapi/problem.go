package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/euvat/euvat/internal/application"
	"github.com/euvat/euvat/vat"
)

var errValidation = errors.New("validation failed")

// ProblemDetail is an RFC 7807 problem body.
type ProblemDetail struct {
	Type   string `json:"type,omitempty"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(ProblemDetail{Title: title, Status: status, Detail: detail})
}

// respondError maps calculator errors to problem responses.
func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, vat.ErrUnknownCountry):
		writeProblem(w, http.StatusNotFound, "Unknown Country", err.Error())
	case errors.Is(err, vat.ErrRateNotAvailable):
		writeProblem(w, http.StatusUnprocessableEntity, "Rate Not Available", err.Error())
	case errors.Is(err, application.ErrCountryRequired), errors.Is(err, errValidation):
		writeProblem(w, http.StatusBadRequest, "Validation Failed", err.Error())
	default:
		writeProblem(w, http.StatusInternalServerError, "Internal Error", "")
	}
}

// errorKind labels an error for the calculation error counter.
func errorKind(err error) string {
	switch {
	case errors.Is(err, vat.ErrUnknownCountry):
		return "unknown_country"
	case errors.Is(err, vat.ErrRateNotAvailable):
		return "rate_not_available"
	case errors.Is(err, application.ErrCountryRequired), errors.Is(err, errValidation):
		return "validation"
	default:
		return "internal"
	}
}
