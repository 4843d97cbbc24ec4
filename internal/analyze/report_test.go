package analyze

import (
	"reflect"
	"testing"

	"github.com/itayornshtein-jpg/itay-logs-reviewer/internal/patterns"
)

func TestReport_Empty(t *testing.T) {
	report := NewAggregator(patterns.Default(), Options{}).Report()

	if report.TotalFindings != 0 {
		t.Errorf("TotalFindings = %d, want 0", report.TotalFindings)
	}
	if len(report.TopMessages) != 0 {
		t.Errorf("TopMessages = %v, want empty", report.TopMessages)
	}
	if len(report.CountsByCategory) != 0 {
		t.Errorf("CountsByCategory = %v, want empty", report.CountsByCategory)
	}
}

func TestReport_RankingAndTieBreak(t *testing.T) {
	agg := NewAggregator(patterns.Default(), Options{})

	// "alpha" seen first, "beta" seen second; both end at count 2, so
	// alpha must rank first. "gamma" reaches 3 and ranks above both.
	agg.Ingest("x.log", 1, "ERROR alpha")
	agg.Ingest("x.log", 2, "ERROR beta")
	agg.Ingest("x.log", 3, "ERROR gamma")
	agg.Ingest("x.log", 4, "ERROR gamma")
	agg.Ingest("x.log", 5, "ERROR alpha")
	agg.Ingest("x.log", 6, "ERROR beta")
	agg.Ingest("x.log", 7, "ERROR gamma")

	report := agg.Report()
	got := make([]string, len(report.TopMessages))
	for i, m := range report.TopMessages {
		got[i] = m.Message
	}
	want := []string{"error gamma", "error alpha", "error beta"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("top messages = %v, want %v", got, want)
	}
}

func TestReport_TruncatesTopMessages(t *testing.T) {
	agg := NewAggregator(patterns.Default(), Options{TopMessages: 2})
	agg.Ingest("x.log", 1, "ERROR one")
	agg.Ingest("x.log", 2, "ERROR two")
	agg.Ingest("x.log", 3, "ERROR three")

	report := agg.Report()
	if len(report.TopMessages) != 2 {
		t.Errorf("len(TopMessages) = %d, want 2", len(report.TopMessages))
	}
	// Full counts stay available even for truncated messages.
	if report.CountsByCategory["error"] != 3 {
		t.Errorf("counts[error] = %d, want 3", report.CountsByCategory["error"])
	}
}

func TestReport_Idempotent(t *testing.T) {
	agg := NewAggregator(patterns.Default(), Options{})
	agg.Ingest("x.log", 1, "ERROR alpha 42")
	agg.Ingest("x.log", 2, "CRITICAL beta")

	first := agg.Report()
	second := agg.Report()
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Report() not stable:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}
