// Package respond writes the backend's JSON envelope.
package respond

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
)

// Meta is the pagination block of list responses.
type Meta struct {
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// Envelope wraps every response body.
type Envelope struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
	Meta    *Meta       `json:"meta,omitempty"`
}

// WriteJSON writes a JSON response with the given status code
func WriteJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

// WriteOK writes a success envelope.
func WriteOK(w http.ResponseWriter, data interface{}) {
	WriteJSON(w, http.StatusOK, Envelope{Code: http.StatusOK, Message: "success", Data: data})
}

// WritePage writes a success envelope carrying pagination metadata.
func WritePage(w http.ResponseWriter, data interface{}, meta Meta) {
	WriteJSON(w, http.StatusOK, Envelope{Code: http.StatusOK, Message: "success", Data: data, Meta: &meta})
}

// WriteError writes an error envelope whose code mirrors the HTTP status.
func WriteError(w http.ResponseWriter, statusCode int, message string) {
	if message == "" {
		message = http.StatusText(statusCode)
	}
	WriteJSON(w, statusCode, Envelope{Code: statusCode, Message: message})
}

// WriteBadRequest writes a 400 Bad Request response
func WriteBadRequest(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusBadRequest, message)
}

// WriteUnauthorized writes a 401 response
func WriteUnauthorized(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusUnauthorized, message)
}

// WriteNotFound writes a 404 Not Found response
func WriteNotFound(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusNotFound, message)
}

// WriteValidation writes a 422 response
func WriteValidation(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusUnprocessableEntity, message)
}
