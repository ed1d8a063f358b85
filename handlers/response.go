package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"
)

// today returns the current UTC date in the ISO layout the date columns use.
func today() string {
	return time.Now().UTC().Format("2006-01-02")
}

// decodeOptional reads a JSON body that the endpoint does not require.
// An absent or empty body leaves v at its zero value.
func decodeOptional(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return nil
	}
	if err := json.NewDecoder(r.Body).Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// notFound and badRequest keep the error bodies uniform across handlers.
func notFound(w http.ResponseWriter, msg string) {
	http.Error(w, msg, http.StatusNotFound)
}

func badRequest(w http.ResponseWriter, msg string) {
	http.Error(w, msg, http.StatusBadRequest)
}

func serverError(w http.ResponseWriter, err error) {
	http.Error(w, err.Error(), http.StatusInternalServerError)
}
