// Package analyze turns classified log lines into an aggregate and a
// ranked report. The whole pipeline is a single synchronous pass: every
// line is classified at most once and folded into one Aggregator.
package analyze

import (
	"regexp"
	"strings"

	"github.com/itayornshtein-jpg/itay-logs-reviewer/internal/patterns"
	"github.com/itayornshtein-jpg/itay-logs-reviewer/internal/source"
)

// DefaultSampleLimit caps the number of findings kept verbatim in a report.
const DefaultSampleLimit = 20

// DefaultTopMessages caps the ranked repeated-message list.
const DefaultTopMessages = 10

// Finding is a single classified log line.
type Finding struct {
	Source     string `json:"source" yaml:"source"`
	LineNo     int    `json:"line_no" yaml:"line_no"`
	Line       string `json:"line" yaml:"line"`
	Category   string `json:"category" yaml:"category"`
	Suggestion string `json:"suggestion" yaml:"suggestion"`
}

// Options tunes report truncation. Zero values fall back to the defaults.
type Options struct {
	SampleLimit int
	TopMessages int
}

func (o Options) withDefaults() Options {
	if o.SampleLimit <= 0 {
		o.SampleLimit = DefaultSampleLimit
	}
	if o.TopMessages <= 0 {
		o.TopMessages = DefaultTopMessages
	}
	return o
}

// Aggregator accumulates findings across sources. One instance per run;
// it is not safe for concurrent use.
type Aggregator struct {
	catalog patterns.Catalog
	opts    Options

	counts  map[string]int
	freq    map[string]int
	seen    []string // normalized messages in first-seen order
	samples []Finding
	total   int
	scanned int
}

// NewAggregator creates an empty aggregate for the given catalog.
func NewAggregator(catalog patterns.Catalog, opts Options) *Aggregator {
	return &Aggregator{
		catalog: catalog,
		opts:    opts.withDefaults(),
		counts:  make(map[string]int),
		freq:    make(map[string]int),
	}
}

// Ingest classifies one line and, if it matches, folds the finding into
// the aggregate. Unmatched lines contribute nothing.
func (a *Aggregator) Ingest(sourceName string, lineNo int, line string) {
	entry, ok := a.catalog.Classify(line)
	if !ok {
		return
	}
	a.add(Finding{
		Source:     sourceName,
		LineNo:     lineNo,
		Line:       line,
		Category:   entry.Category,
		Suggestion: entry.Suggestion,
	})
}

// RecordReadError records a source that could not be read as a synthetic
// finding so that partial coverage is visible in the final report.
func (a *Aggregator) RecordReadError(sourceName string, err error) {
	a.add(Finding{
		Source:     sourceName,
		LineNo:     0,
		Line:       "read error: " + err.Error(),
		Category:   patterns.CategoryReadError,
		Suggestion: patterns.ReadErrorSuggestion,
	})
}

// ScanSource feeds one collected source through the aggregator. Sources
// that carry a read error become a single read-error finding; their lines
// (if any were salvaged) are still scanned.
func (a *Aggregator) ScanSource(src source.Source) {
	a.scanned++
	if src.Err != nil {
		a.RecordReadError(src.Name, src.Err)
	}
	for i, line := range src.Lines {
		a.Ingest(src.Name, i+1, line)
	}
}

func (a *Aggregator) add(f Finding) {
	a.total++
	a.counts[f.Category]++
	msg := Normalize(f.Line)
	if _, ok := a.freq[msg]; !ok {
		a.seen = append(a.seen, msg)
	}
	a.freq[msg]++
	if len(a.samples) < a.opts.SampleLimit {
		a.samples = append(a.samples, f)
	}
}

var (
	digitRun = regexp.MustCompile(`[0-9]+`)
	spaceRun = regexp.MustCompile(`\s+`)
)

// Normalize collapses the variable parts of a log line so near-duplicate
// messages count as one: lowercase, every maximal digit run replaced by
// "#", whitespace runs collapsed to a single space, and trimmed.
// Normalizing an already-normalized message is a no-op.
func Normalize(s string) string {
	s = strings.ToLower(s)
	s = digitRun.ReplaceAllString(s, "#")
	s = spaceRun.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// Analyze runs the full pipeline over the collected sources and builds
// the report.
func Analyze(sources []source.Source, catalog patterns.Catalog, opts Options) Report {
	agg := NewAggregator(catalog, opts)
	for _, src := range sources {
		agg.ScanSource(src)
	}
	return agg.Report()
}
