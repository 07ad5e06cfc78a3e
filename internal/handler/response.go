package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/kulturboden/api/internal/repository"
	"github.com/kulturboden/api/internal/service"
)

// Envelope is the uniform response wrapper used by every endpoint.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// WriteJSON writes a JSON response with the given status code
func WriteJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		_ = json.NewEncoder(w).Encode(body)
	}
}

// WriteData writes a successful envelope
func WriteData(w http.ResponseWriter, status int, data interface{}) {
	WriteJSON(w, status, Envelope{Success: true, Data: data})
}

// WriteError writes a failure envelope
func WriteError(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, Envelope{Success: false, Error: message})
}

// WriteServiceError maps service and repository errors to the envelope.
// Expected conditions get their dedicated status; everything else is a 500
// carrying the error text for operator diagnosis.
func WriteServiceError(w http.ResponseWriter, err error) {
	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError
	switch {
	case errors.As(err, &typeErr), errors.As(err, &syntaxErr):
		WriteError(w, http.StatusBadRequest, "invalid field value")
	case errors.Is(err, repository.ErrNotFound):
		WriteError(w, http.StatusNotFound, "not found")
	case errors.Is(err, service.ErrInvalidCredentials):
		WriteError(w, http.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, service.ErrInvalidStatus):
		WriteError(w, http.StatusBadRequest, "invalid status")
	case errors.Is(err, service.ErrIssueAlreadySent):
		WriteError(w, http.StatusBadRequest, "newsletter issue already sent")
	default:
		WriteError(w, http.StatusInternalServerError, err.Error())
	}
}

// WriteMethodNotAllowed writes a 405 envelope
func WriteMethodNotAllowed(w http.ResponseWriter) {
	WriteError(w, http.StatusMethodNotAllowed, "method not allowed")
}

// DecodeJSON decodes a JSON request body into the given struct
func DecodeJSON(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// queryID parses the numeric id query parameter. ok is false when the
// parameter is absent; a present but unparseable id is an error.
func queryID(r *http.Request) (id int, ok bool, err error) {
	raw := r.URL.Query().Get("id")
	if raw == "" {
		return 0, false, nil
	}
	id, err = strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, true, errors.New("invalid id")
	}
	return id, true, nil
}
