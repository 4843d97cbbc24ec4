// Package ui renders reports for the terminal. It is presentation only:
// the same analyze.Report feeds both this renderer and the web app.
package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/itayornshtein-jpg/itay-logs-reviewer/internal/analyze"
)

// RenderReport formats a report as a human-readable block.
func RenderReport(report analyze.Report) string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Log analysis report"))
	b.WriteString("\n")
	b.WriteString(StyleSubtle.Render(strings.Repeat("─", 60)))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Sources scanned : %d\n", report.ScannedSources)
	fmt.Fprintf(&b, "Total findings  : %d\n", report.TotalFindings)

	if len(report.CountsByCategory) > 0 {
		b.WriteString("\n")
		b.WriteString(StyleSectionTitle.Render("Findings by category"))
		b.WriteString("\n")
		categories := make([]string, 0, len(report.CountsByCategory))
		for category := range report.CountsByCategory {
			categories = append(categories, category)
		}
		sort.Strings(categories)
		for _, category := range categories {
			fmt.Fprintf(&b, " - %s: %d\n", category, report.CountsByCategory[category])
		}
	}

	if len(report.TopMessages) > 0 {
		b.WriteString("\n")
		b.WriteString(StyleSectionTitle.Render("Top repeated messages"))
		b.WriteString("\n")
		for _, m := range report.TopMessages {
			fmt.Fprintf(&b, " - (%dx) %s\n", m.Count, m.Message)
		}
	}

	if len(report.Samples) > 0 {
		b.WriteString("\n")
		b.WriteString(StyleSectionTitle.Render("Sample findings"))
		b.WriteString("\n")
		for _, f := range report.Samples {
			fmt.Fprintf(&b, "%s %s:%d -> %s\n",
				StyleCategory.Render("["+f.Category+"]"), f.Source, f.LineNo, f.Line)
			fmt.Fprintf(&b, "  %s\n", StyleSuggestion.Render("Suggestion: "+f.Suggestion))
		}
	}

	if report.TotalFindings == 0 {
		b.WriteString("\n")
		b.WriteString(StyleSuccess.Render("No findings. The scanned sources look clean."))
		b.WriteString("\n")
	}

	return b.String()
}

// RenderCatalog formats the pattern catalog for the terminal.
func RenderCatalog(rows []CatalogRow) string {
	var b strings.Builder
	b.WriteString(StyleTitle.Render("Pattern catalog (priority order, first match wins)"))
	b.WriteString("\n")
	b.WriteString(StyleSubtle.Render(strings.Repeat("─", 60)))
	b.WriteString("\n")
	for i, row := range rows {
		fmt.Fprintf(&b, "%2d. %s  %s\n", i+1, StyleCategory.Render(row.Category), StyleSubtle.Render(row.Pattern))
		fmt.Fprintf(&b, "    %s\n", StyleSuggestion.Render(row.Suggestion))
	}
	return b.String()
}

// CatalogRow is one displayable catalog entry.
type CatalogRow struct {
	Category   string `json:"category"`
	Pattern    string `json:"pattern"`
	Suggestion string `json:"suggestion"`
}
