package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON answers with statusCode and data encoded as JSON. The route
// bodies are a JSON string ("pong") or a small object, so the whole value is
// marshaled before the header goes out: when marshaling fails the client
// gets the same plain-text 500 as any other internal error.
func WriteJSON(w http.ResponseWriter, statusCode int, data any) error {
	body, err := json.Marshal(data)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return fmt.Errorf("error encoding response body: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if _, err = w.Write(body); err != nil {
		return fmt.Errorf("error writing response body: %w", err)
	}

	return nil
}
