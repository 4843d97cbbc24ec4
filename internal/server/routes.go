package server

import "net/http"

// registerRoutes sets up the page and all API endpoints.
func (s *Server) registerRoutes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("POST /api/analyze", s.handleAnalyze)
	mux.HandleFunc("GET /api/history", s.handleHistory)
	mux.HandleFunc("GET /api/session", s.handleSession)
	mux.HandleFunc("POST /api/session/connect", s.handleSessionConnect)
	mux.HandleFunc("POST /api/coralogix/search", s.handleCoralogixSearch)

	return s.corsMiddleware(s.logMiddleware(mux))
}
