package server

import (
	"net/http"
	"os"
	"path/filepath"
)

// mountFrontend wires the PWA assets when a frontend directory is configured
// and present. API-only deployments simply skip this.
func (s *Server) mountFrontend(mux *http.ServeMux) {
	dir := s.cfg.Server.FrontendDir
	if dir == "" {
		return
	}
	if _, err := os.Stat(dir); err != nil {
		return
	}

	mux.Handle("/icons/", http.StripPrefix("/icons/", http.FileServer(http.Dir(filepath.Join(dir, "icons")))))

	serve := func(name, contentType string) http.HandlerFunc {
		path := filepath.Join(dir, name)
		return func(w http.ResponseWriter, r *http.Request) {
			if contentType != "" {
				w.Header().Set("Content-Type", contentType)
			}
			http.ServeFile(w, r, path)
		}
	}

	mux.HandleFunc("/manifest.json", serve("manifest.json", "application/json"))
	mux.HandleFunc("/sw.js", serve("sw.js", "application/javascript"))
	mux.HandleFunc("/app.js", serve("app.js", "application/javascript"))
	mux.HandleFunc("/styles.css", serve("styles.css", "text/css"))

	index := filepath.Join(dir, "index.html")
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		http.ServeFile(w, r, index)
	})
}
