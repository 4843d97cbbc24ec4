package analyze

import "sort"

// MessageCount is one row of the ranked repeated-message list.
type MessageCount struct {
	Message string `json:"message" yaml:"message"`
	Count   int    `json:"count" yaml:"count"`
}

// Report is the read-only summary derived from an aggregate at the end of
// a run. Samples are bounded; CountsByCategory always carries the full
// counts even for categories whose findings fell outside the sample cap.
type Report struct {
	TotalFindings    int            `json:"total_findings" yaml:"total_findings"`
	ScannedSources   int            `json:"scanned_sources" yaml:"scanned_sources"`
	CountsByCategory map[string]int `json:"counts_by_category" yaml:"counts_by_category"`
	TopMessages      []MessageCount `json:"top_messages" yaml:"top_messages"`
	Samples          []Finding      `json:"samples" yaml:"samples"`
}

// Report derives the summary from the current aggregate state. It does not
// mutate the aggregator, so calling it again with unchanged state returns
// an equal report.
func (a *Aggregator) Report() Report {
	counts := make(map[string]int, len(a.counts))
	for category, n := range a.counts {
		counts[category] = n
	}

	// Rank by frequency, ties broken by first-seen order. a.seen already
	// holds the messages in first-seen order, so a stable sort on count
	// alone preserves the tie-break.
	top := make([]MessageCount, 0, len(a.seen))
	for _, msg := range a.seen {
		top = append(top, MessageCount{Message: msg, Count: a.freq[msg]})
	}
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].Count > top[j].Count
	})
	if len(top) > a.opts.TopMessages {
		top = top[:a.opts.TopMessages]
	}

	samples := make([]Finding, len(a.samples))
	copy(samples, a.samples)

	return Report{
		TotalFindings:    a.total,
		ScannedSources:   a.scanned,
		CountsByCategory: counts,
		TopMessages:      top,
		Samples:          samples,
	}
}
