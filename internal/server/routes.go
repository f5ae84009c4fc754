package server

import (
	"net/http"
	"os"
)

// registerRoutes sets up all REST API routes on the mux.
func (s *Server) registerRoutes(mux *http.ServeMux) {
	// System
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/version", s.handleVersion)

	// Analysis
	mux.HandleFunc("/api/analyze/", s.handleAnalyze)
	mux.HandleFunc("/api/chart/", s.handleChart)

	// Unmatched API paths stay JSON even when static files are served at "/"
	mux.HandleFunc("/api/", func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, http.StatusNotFound, "Not found")
	})

	// Front end
	webRoot := s.app.Config.Server.WebRoot
	if info, err := os.Stat(webRoot); err == nil && info.IsDir() {
		mux.Handle("/", http.FileServer(http.Dir(webRoot)))
		s.logger.Debug().Str("web_root", webRoot).Msg("Serving static files")
	} else if webRoot != "" {
		s.logger.Debug().Str("web_root", webRoot).Msg("Web root not found - static files disabled")
	}
}
