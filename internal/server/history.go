package server

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/itayornshtein-jpg/itay-logs-reviewer/internal/analyze"
)

// historyLimit bounds the in-memory run history. Nothing is persisted
// across processes.
const historyLimit = 20

type historyRing struct {
	mu      sync.Mutex
	limit   int
	entries []HistoryEntry
}

func newHistoryRing(limit int) *historyRing {
	return &historyRing{limit: limit}
}

// record remembers a finished run and returns its id.
func (h *historyRing) record(report analyze.Report) HistoryEntry {
	entry := HistoryEntry{
		ID:      uuid.NewString(),
		At:      time.Now().UTC(),
		Summary: summarize(report),
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = append(h.entries, entry)
	if len(h.entries) > h.limit {
		h.entries = h.entries[len(h.entries)-h.limit:]
	}
	return entry
}

// list returns the remembered runs, newest first.
func (h *historyRing) list() []HistoryEntry {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]HistoryEntry, len(h.entries))
	for i, e := range h.entries {
		out[len(h.entries)-1-i] = e
	}
	return out
}

func summarize(report analyze.Report) string {
	return fmt.Sprintf("%d finding(s) across %d source(s)",
		report.TotalFindings, report.ScannedSources)
}
