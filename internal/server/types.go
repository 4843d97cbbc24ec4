package server

import (
	"time"

	"github.com/itayornshtein-jpg/itay-logs-reviewer/internal/analyze"
	"github.com/itayornshtein-jpg/itay-logs-reviewer/internal/coralogix"
)

// UploadedFile is one dropped file. Content is either plain text or, when
// Encoding is "base64", base64-encoded bytes (the page uses base64 for
// zip archives and anything that is not valid text).
type UploadedFile struct {
	Name     string `json:"name"`
	Content  string `json:"content"`
	Encoding string `json:"encoding"` // "text" (default) or "base64"
}

// AnalyzeRequest is the body of POST /api/analyze.
type AnalyzeRequest struct {
	Files []UploadedFile `json:"files"`
}

// AnalyzeResponse wraps the report with a run identity for the history
// list.
type AnalyzeResponse struct {
	ID     string         `json:"id"`
	At     time.Time      `json:"at"`
	Report analyze.Report `json:"report"`
}

// HistoryEntry is one remembered analysis run.
type HistoryEntry struct {
	ID      string    `json:"id"`
	At      time.Time `json:"at"`
	Summary string    `json:"summary"`
}

// SessionResponse reports the current (or missing) SSO connection.
type SessionResponse struct {
	Connected bool                   `json:"connected"`
	Account   string                 `json:"account,omitempty"`
	TokenHint string                 `json:"token_hint,omitempty"`
	Resources map[string]interface{} `json:"resources,omitempty"`
	Summary   string                 `json:"summary,omitempty"`
}

// ConnectRequest is the body of POST /api/session/connect.
type ConnectRequest struct {
	Token     string                 `json:"token"`
	Resources map[string]interface{} `json:"resources,omitempty"`
}

// CoralogixSearchRequest is the body of POST /api/coralogix/search.
type CoralogixSearchRequest struct {
	Query      string                 `json:"query"`
	Timeframe  coralogix.Timeframe    `json:"timeframe"`
	Filters    map[string]interface{} `json:"filters,omitempty"`
	Pagination *coralogix.Pagination  `json:"pagination,omitempty"`
}

// errorResponse is the uniform error body for API failures.
type errorResponse struct {
	Error string `json:"error"`
}
