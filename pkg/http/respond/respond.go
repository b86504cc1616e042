// Package respond writes the fixed JSON envelopes of the trivia API: every
// body carries a boolean success flag, and each error status maps to one
// fixed message regardless of the originating operation.
package respond

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the standardized error body.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

var messages = map[int]string{
	http.StatusBadRequest:          "bad request",
	http.StatusNotFound:            "resource not found",
	http.StatusUnprocessableEntity: "unprocessable",
	http.StatusInternalServerError: "internal server error",
}

// JSON writes an arbitrary payload with the given status.
func JSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// Error writes the fixed error envelope for a status code.
func Error(w http.ResponseWriter, status int) {
	msg, ok := messages[status]
	if !ok {
		msg = http.StatusText(status)
	}
	JSON(w, status, ErrorResponse{Success: false, Error: status, Message: msg})
}

func BadRequest(w http.ResponseWriter) { Error(w, http.StatusBadRequest) }

func NotFound(w http.ResponseWriter) { Error(w, http.StatusNotFound) }

func Unprocessable(w http.ResponseWriter) { Error(w, http.StatusUnprocessableEntity) }

func InternalError(w http.ResponseWriter) { Error(w, http.StatusInternalServerError) }
