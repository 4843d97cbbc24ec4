package analyze

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/spf13/afero"

	"github.com/itayornshtein-jpg/itay-logs-reviewer/internal/patterns"
	"github.com/itayornshtein-jpg/itay-logs-reviewer/internal/source"
)

func zipWith(t *testing.T, name, content string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	f, err := w.Create(name)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

// TestPipeline_DirectoryScan runs the full collect-classify-aggregate
// pipeline over an in-memory directory and checks the report end to end.
func TestPipeline_DirectoryScan(t *testing.T) {
	fs := afero.NewMemMapFs()
	files := map[string]string{
		"/logs/a.log": "2024-01-01 ERROR Connection timeout to host 10.0.0.5\n" +
			"2024-01-01 ERROR Connection timeout to host 10.0.0.5\n" +
			"2024-01-01 ERROR Connection timeout to host 10.0.0.5\n",
		"/logs/b.log": "Traceback (most recent call last): ValueError\n",
	}
	for name, content := range files {
		if err := afero.WriteFile(fs, name, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}

	collector := source.NewCollector(fs, source.Options{Recursive: true})
	sources, err := collector.Collect("/logs")
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}

	report := Analyze(sources, patterns.Default(), Options{})

	if report.ScannedSources != 2 {
		t.Errorf("ScannedSources = %d, want 2", report.ScannedSources)
	}
	if report.TotalFindings != 4 {
		t.Errorf("TotalFindings = %d, want 4", report.TotalFindings)
	}
	if got := report.CountsByCategory["timeout"]; got != 3 {
		t.Errorf("counts[timeout] = %d, want 3", got)
	}
	if got := report.CountsByCategory["traceback"]; got != 1 {
		t.Errorf("counts[traceback] = %d, want 1", got)
	}

	if len(report.TopMessages) == 0 {
		t.Fatal("TopMessages is empty")
	}
	top := report.TopMessages[0]
	if top.Count != 3 {
		t.Errorf("top message count = %d, want 3", top.Count)
	}
	if top.Message != "#-#-# error connection timeout to host #.#.#.#" {
		t.Errorf("top message = %q", top.Message)
	}

	seen := map[string]bool{}
	for _, f := range report.Samples {
		seen[f.Source] = true
	}
	if !seen["a.log"] || !seen["b.log"] {
		t.Errorf("samples missing a source: %v", seen)
	}
}

// TestPipeline_ZipEqualsDirectory feeds the same content as a directory
// and as an archive and expects byte-identical reports.
func TestPipeline_ZipEqualsDirectory(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "/dir/app.log",
		[]byte("ERROR request 7 failed\npanic: oh no\n"), 0644); err != nil {
		t.Fatal(err)
	}

	collector := source.NewCollector(fs, source.Options{Recursive: true})
	fromDir, err := collector.Collect("/dir")
	if err != nil {
		t.Fatalf("Collect dir: %v", err)
	}
	fromZip, err := collector.FromBytes("bundle.zip", zipWith(t, "app.log",
		"ERROR request 7 failed\npanic: oh no\n"))
	if err != nil {
		t.Fatalf("FromBytes: %v", err)
	}

	dirReport := Analyze(fromDir, patterns.Default(), Options{})
	zipReport := Analyze(fromZip, patterns.Default(), Options{})

	if dirReport.TotalFindings != zipReport.TotalFindings {
		t.Errorf("TotalFindings diverge: dir %d, zip %d",
			dirReport.TotalFindings, zipReport.TotalFindings)
	}
	if len(dirReport.Samples) != len(zipReport.Samples) {
		t.Fatalf("sample counts diverge: dir %d, zip %d",
			len(dirReport.Samples), len(zipReport.Samples))
	}
	for i := range dirReport.Samples {
		if dirReport.Samples[i] != zipReport.Samples[i] {
			t.Errorf("sample %d diverges:\ndir: %+v\nzip: %+v",
				i, dirReport.Samples[i], zipReport.Samples[i])
		}
	}
}
