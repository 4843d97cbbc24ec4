package server

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/itayornshtein-jpg/itay-logs-reviewer/internal/analyze"
	"github.com/itayornshtein-jpg/itay-logs-reviewer/internal/coralogix"
	"github.com/itayornshtein-jpg/itay-logs-reviewer/internal/session"
	"github.com/itayornshtein-jpg/itay-logs-reviewer/internal/source"
)

// maxUploadBytes bounds one analyze request body.
const maxUploadBytes = 64 << 20

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(indexHTML)
}

// handleAnalyze expands the dropped files into sources and runs the same
// pipeline as the CLI scan.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAPIError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.Files) == 0 {
		writeAPIError(w, http.StatusBadRequest, "at least one file is required")
		return
	}

	var sources []source.Source
	for _, file := range req.Files {
		if file.Name == "" {
			writeAPIError(w, http.StatusBadRequest, "every file needs a name")
			return
		}

		data := []byte(file.Content)
		if file.Encoding == "base64" {
			decoded, err := base64.StdEncoding.DecodeString(file.Content)
			if err != nil {
				writeAPIError(w, http.StatusBadRequest, "invalid base64 content for "+file.Name)
				return
			}
			data = decoded
		}

		expanded, err := s.collector.FromBytes(file.Name, data)
		if err != nil {
			if errors.Is(err, source.ErrNoSources) {
				writeAPIError(w, http.StatusBadRequest, file.Name+" contains no log sources")
				return
			}
			writeAPIError(w, http.StatusBadRequest, "could not read "+file.Name)
			return
		}
		sources = append(sources, expanded...)
	}

	report := analyze.Analyze(sources, s.cfg.Catalog, s.cfg.ReportOpts)
	entry := s.history.record(report)

	writeAPIJSON(w, AnalyzeResponse{ID: entry.ID, At: entry.At, Report: report})
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	writeAPIJSON(w, s.history.list())
}

func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	sess, err := session.Connect("", nil)
	if err != nil {
		// Not connected is a normal state for the page, not an API error.
		writeAPIJSON(w, SessionResponse{Connected: false})
		return
	}
	writeAPIJSON(w, sessionResponse(sess))
}

func (s *Server) handleSessionConnect(w http.ResponseWriter, r *http.Request) {
	var req ConnectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAPIError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sess, err := session.Connect(req.Token, req.Resources)
	if err != nil {
		writeAPIError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeAPIJSON(w, sessionResponse(sess))
}

func (s *Server) handleCoralogixSearch(w http.ResponseWriter, r *http.Request) {
	if s.cfg.Coralogix == nil {
		writeAPIError(w, http.StatusServiceUnavailable, "coralogix is not configured")
		return
	}

	var req CoralogixSearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAPIError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Query == "" {
		writeAPIError(w, http.StatusBadRequest, "query is required")
		return
	}

	result, err := s.cfg.Coralogix.Search(r.Context(), coralogix.SearchRequest{
		Query:      req.Query,
		Timeframe:  req.Timeframe,
		Filters:    req.Filters,
		Pagination: req.Pagination,
	})
	if err != nil {
		switch {
		case errors.Is(err, coralogix.ErrMissingAPIKey):
			writeAPIError(w, http.StatusServiceUnavailable, err.Error())
		case errors.Is(err, coralogix.ErrInvalidRequest):
			writeAPIError(w, http.StatusBadRequest, err.Error())
		default:
			writeAPIError(w, http.StatusBadGateway, err.Error())
		}
		return
	}
	writeAPIJSON(w, result)
}

func sessionResponse(sess *session.Session) SessionResponse {
	return SessionResponse{
		Connected: true,
		Account:   sess.Account,
		TokenHint: sess.TokenHint,
		Resources: sess.Resources,
		Summary:   sess.ResourceSummary(),
	}
}

func writeAPIJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(data)
}

func writeAPIError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: msg})
}
