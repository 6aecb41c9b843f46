// Package docs serves the API description document.
package docs

import (
	_ "embed"
	"net/http"
)

//go:embed openapi.json
var openapi []byte

func Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(openapi)
	})
}
