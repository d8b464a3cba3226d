package static

import (
	"embed"
	"io/fs"
	"log"
	"net/http"
)

// NewFilesystemHandler serves assets from disk without caching, for -watch.
func NewFilesystemHandler(path string) http.HandlerFunc {
	fileServer := http.FileServer(http.Dir(path))
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store")
		fileServer.ServeHTTP(w, r)
	}
}

//go:embed files/*
var embedFS embed.FS

func NewEmbedHandler() http.HandlerFunc {
	files, err := fs.Sub(embedFS, "files")
	if err != nil {
		log.Fatal(err)
	}
	fileServer := http.FileServer(http.FS(files))
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "public, max-age=3600")
		fileServer.ServeHTTP(w, r)
	}
}
