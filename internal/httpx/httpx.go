package httpx

import (
	"encoding/json"
	"net/http"
)

// JSON writes a JSON response with status code.
func JSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// Error writes {"message": "..."} with a given status.
func Error(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, map[string]string{"message": msg})
}

// Decode parses the JSON body into v and handles invalid JSON.
func Decode(w http.ResponseWriter, r *http.Request, v interface{}) error {
	if r.Body == nil {
		Error(w, http.StatusBadRequest, "Request body is required.")
		return http.ErrBodyNotAllowed
	}

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		Error(w, http.StatusBadRequest, "Invalid request body.")
		return err
	}

	return nil
}
