// Package patterns provides the ordered error-pattern catalog and the
// line classifier built on top of it.
package patterns

import "regexp"

// CategoryReadError is the synthetic category attached to sources that
// could not be read. It is never matched against log lines and must not
// appear as a catalog entry.
const CategoryReadError = "read-error"

// ReadErrorSuggestion is the remediation hint attached to read-error findings.
const ReadErrorSuggestion = "Check that the file is readable and not corrupted, then rerun the scan."

// Entry is one immutable catalog row: a category name, a case-insensitive
// matcher, and the remediation hint reported alongside matched lines.
type Entry struct {
	Category   string
	Matcher    *regexp.Regexp
	Suggestion string
}

// Catalog is an ordered list of entries. Order is priority: the classifier
// stops at the first match, so specific failure modes (traceback, timeout)
// must precede the generic ERROR/CRITICAL tokens.
type Catalog []Entry

// Classify returns the first entry whose matcher accepts the line.
// A line that matches nothing returns ok=false; that is not an error.
func (c Catalog) Classify(line string) (Entry, bool) {
	for _, e := range c {
		if e.Matcher.MatchString(line) {
			return e, true
		}
	}
	return Entry{}, false
}

// Categories returns the catalog's category names in priority order.
func (c Catalog) Categories() []string {
	out := make([]string, len(c))
	for i, e := range c {
		out[i] = e.Category
	}
	return out
}

// Default returns the built-in catalog. Appending an entry is all it takes
// to teach the reviewer a new category.
func Default() Catalog {
	return Catalog{
		{
			Category:   "traceback",
			Matcher:    regexp.MustCompile(`(?i)Traceback \(most recent call last\)`),
			Suggestion: "Inspect the stack trace below this line to locate the failing call site.",
		},
		{
			Category:   "exception",
			Matcher:    regexp.MustCompile(`(?i)\b[a-zA-Z_.]*Exception\b|panic:`),
			Suggestion: "Find the exception type and message, then trace where it was raised.",
		},
		{
			Category:   "timeout",
			Matcher:    regexp.MustCompile(`(?i)\btimed? ?out\b|\btimeout\b`),
			Suggestion: "Investigate upstream slowness or increase timeout settings.",
		},
		{
			Category:   "connection-failure",
			Matcher:    regexp.MustCompile(`(?i)connection refused|failed to connect|connection reset|connection aborted`),
			Suggestion: "Verify service availability and network/firewall settings.",
		},
		{
			Category:   "missing-file",
			Matcher:    regexp.MustCompile(`(?i)no such file|file not found|FileNotFound|\bENOENT\b`),
			Suggestion: "Confirm the path or resource exists and permissions are correct.",
		},
		{
			Category:   "permission-denied",
			Matcher:    regexp.MustCompile(`(?i)permission denied|access denied|\bEACCES\b`),
			Suggestion: "Check user permissions or run with elevated privileges.",
		},
		{
			Category:   "out-of-memory",
			Matcher:    regexp.MustCompile(`(?i)out of memory|\boom[- ]?kill|cannot allocate memory`),
			Suggestion: "Reduce workload, increase memory limits, or enable paging.",
		},
		{
			Category:   "error",
			Matcher:    regexp.MustCompile(`(?i)\bERROR\b`),
			Suggestion: "Review surrounding context for the root cause and retry the failing action.",
		},
		{
			Category:   "critical",
			Matcher:    regexp.MustCompile(`(?i)\bCRITICAL\b|\bFATAL\b`),
			Suggestion: "Treat as an outage signal: check service health and recent deploys first.",
		},
	}
}
