// Package web embeds the single-page client and serves it as static
// assets. All application state lives in the browser; the server side
// of this package is just a file server.
package web

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static
var assets embed.FS

// Handler returns an http.Handler serving the embedded client.
func Handler() http.Handler {
	sub, err := fs.Sub(assets, "static")
	if err != nil {
		panic(err)
	}
	return http.FileServer(http.FS(sub))
}
