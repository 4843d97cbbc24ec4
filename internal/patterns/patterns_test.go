package patterns

import "testing"

func TestClassify_Categories(t *testing.T) {
	catalog := Default()

	tests := []struct {
		name     string
		line     string
		category string
	}{
		{"plain error", "2024-01-01 ERROR something broke", "error"},
		{"plain critical", "CRITICAL disk failure on /dev/sda", "critical"},
		{"fatal counts as critical", "FATAL: shutting down", "critical"},
		{"lowercase error", "error: handler returned 500", "error"},
		{"timeout", "request timeout after 30s", "timeout"},
		{"timed out", "operation timed out waiting for lock", "timeout"},
		{"connection refused", "dial tcp: connection refused", "connection-failure"},
		{"failed to connect", "failed to connect to db-primary", "connection-failure"},
		{"missing file", "open /etc/app.conf: no such file or directory", "missing-file"},
		{"file not found exception name", "raised FileNotFoundError while loading", "missing-file"},
		{"permission denied", "mkdir /var/lib/app: permission denied", "permission-denied"},
		{"out of memory", "worker killed: out of memory", "out-of-memory"},
		{"java exception", "java.lang.NullPointerException at Foo.bar", "exception"},
		{"go panic", "panic: runtime error: index out of range", "exception"},
		{"traceback", "Traceback (most recent call last):", "traceback"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, ok := catalog.Classify(tt.line)
			if !ok {
				t.Fatalf("Classify(%q) matched nothing, want %q", tt.line, tt.category)
			}
			if entry.Category != tt.category {
				t.Errorf("Classify(%q) = %q, want %q", tt.line, entry.Category, tt.category)
			}
			if entry.Suggestion == "" {
				t.Errorf("Classify(%q) returned an empty suggestion", tt.line)
			}
		})
	}
}

func TestClassify_NoMatch(t *testing.T) {
	catalog := Default()

	for _, line := range []string{
		"",
		"INFO server started on :8080",
		"DEBUG cache warmed in 12ms",
		"user logged in successfully",
	} {
		if entry, ok := catalog.Classify(line); ok {
			t.Errorf("Classify(%q) = %q, want no match", line, entry.Category)
		}
	}
}

func TestClassify_PriorityOrdering(t *testing.T) {
	catalog := Default()

	// A traceback line that also contains ERROR must classify as
	// traceback: catalog order doubles as priority.
	line := "ERROR Traceback (most recent call last): ValueError"
	entry, ok := catalog.Classify(line)
	if !ok {
		t.Fatalf("Classify(%q) matched nothing", line)
	}
	if entry.Category != "traceback" {
		t.Errorf("Classify(%q) = %q, want traceback", line, entry.Category)
	}

	// Specific failure modes outrank the generic ERROR token.
	line = "ERROR Connection timeout to host 10.0.0.5"
	entry, _ = catalog.Classify(line)
	if entry.Category != "timeout" {
		t.Errorf("Classify(%q) = %q, want timeout", line, entry.Category)
	}
}

func TestDefault_OrderAndReservedCategory(t *testing.T) {
	catalog := Default()
	categories := catalog.Categories()

	if len(categories) == 0 {
		t.Fatal("default catalog is empty")
	}
	if categories[0] != "traceback" {
		t.Errorf("first category = %q, want traceback", categories[0])
	}

	index := make(map[string]int, len(categories))
	for i, c := range categories {
		if _, dup := index[c]; dup {
			t.Errorf("duplicate category %q in catalog", c)
		}
		index[c] = i
	}
	for _, specific := range []string{"timeout", "connection-failure", "missing-file"} {
		if index[specific] > index["error"] {
			t.Errorf("category %q ordered after generic error", specific)
		}
	}

	if _, ok := index[CategoryReadError]; ok {
		t.Errorf("%q must not be a catalog entry", CategoryReadError)
	}
}
