package http

import "net/http"

// writeInternalError answers 500 with a generic plain-text body; the cause
// is logged by the caller and never reaches the client.
func writeInternalError(w http.ResponseWriter) {
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

// writeUnauthorized answers 401 with the body "Unauthorized".
func writeUnauthorized(w http.ResponseWriter) {
	http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
}
