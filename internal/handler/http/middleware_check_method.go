package http

import (
	"net/http"
)

// methodNotFound is installed as the router's MethodNotAllowed handler.
//
// Every route of the API is a static GET path, so chi only calls this when a
// known path is requested with another method. The answer is the same plain
// 404 an unknown path gets, which keeps /secret and /userinfo from being
// discoverable through a 405.
func methodNotFound(w http.ResponseWriter, r *http.Request) {
	http.NotFound(w, r)
}
