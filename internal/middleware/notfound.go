package middleware

import (
	"net/http"

	json "github.com/json-iterator/go"
)

// NotFoundMessage is the body of every routing miss.
const NotFoundMessage = "Cannot find the requested resource"

// WriteJSONError writes {"error": msg} with the given status.
func WriteJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(struct {
		Error string `json:"error"`
	}{msg})
}

// NotFound answers any request no route claimed. It is used for unknown
// methods on known paths as well.
func NotFound(w http.ResponseWriter, r *http.Request) {
	WriteJSONError(w, http.StatusNotFound, NotFoundMessage)
}
