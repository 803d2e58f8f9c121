package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-waitroom/models"
)

// WriteJSON serializes data to JSON and writes it with statusCode and a
// "Content-Type: application/json" header.
//
// If marshaling fails, it responds with 500 Internal Server Error and
// returns a wrapped error.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteSuccess writes a 200 envelope with data marshaled into its data field.
func WriteSuccess(w http.ResponseWriter, r *http.Request, data any) (int, error) {
	return writeSuccess(w, r, http.StatusOK, data)
}

// WriteCreated is [WriteSuccess] with a 201 status.
func WriteCreated(w http.ResponseWriter, r *http.Request, data any) (int, error) {
	return writeSuccess(w, r, http.StatusCreated, data)
}

func writeSuccess(w http.ResponseWriter, r *http.Request, statusCode int, data any) (int, error) {
	env := models.Envelope{Success: true}
	if data != nil {
		raw, err := json.Marshal(data)
		if err != nil {
			http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
			return 0, fmt.Errorf("error writing data to JSON: %w", err)
		}
		env.Data = raw
	}
	env.RequestID, _ = GetTraceIDFromContext(r.Context())
	return WriteJSON(w, env, statusCode)
}

// WriteFailure writes an envelope with success=false, the given error code
// and message.
func WriteFailure(w http.ResponseWriter, r *http.Request, statusCode int, code, message string) (int, error) {
	env := models.Envelope{
		Success: false,
		Error:   code,
		Message: message,
	}
	env.RequestID, _ = GetTraceIDFromContext(r.Context())

	return WriteJSON(w, env, statusCode)
}
