package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON encodes data and writes it with the given status. Every JSON
// response of the service describes the live deployment, so it is marked
// no-store.
//
// When data cannot be encoded nothing of it is written: the client gets a
// plain 500 and the encoding error is returned for the caller to log.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) error {
	body, err := json.Marshal(data)
	if err != nil {
		w.Header().Set("Cache-Control", "no-store")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return fmt.Errorf("error encoding JSON response: %w", err)
	}

	header := w.Header()
	header.Set("Content-Type", "application/json")
	header.Set("Cache-Control", "no-store")
	w.WriteHeader(statusCode)

	if _, err = w.Write(body); err != nil {
		return fmt.Errorf("error writing JSON response: %w", err)
	}
	return nil
}
