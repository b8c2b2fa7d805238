package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	domain "posprep/domain/report"
	"posprep/internal/errors"
	"posprep/ports"
)

// csvHeader is the flat record-set layout consumed by spreadsheet
// dashboards downstream.
var csvHeader = []string{"Severity", "Sheet", "Row", "Column", "Issue", "Suggested Fix"}

// CSVRenderer exports a report as a flat record set.
type CSVRenderer struct{}

var _ ports.ReportRenderer = CSVRenderer{}

// Render writes one record per issue.
func (CSVRenderer) Render(r domain.Report) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, errors.Wrap(err, "failed to write report header")
	}
	for _, iss := range r.Issues {
		row := ""
		if iss.SourceRow > 0 {
			row = strconv.Itoa(iss.SourceRow)
		}
		record := []string{
			string(iss.Severity),
			iss.Sheet,
			row,
			iss.Field,
			iss.Message,
			iss.SuggestedValue,
		}
		if err := w.Write(record); err != nil {
			return nil, errors.Wrap(err, "failed to write report record")
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, errors.Wrap(err, "failed to flush report")
	}
	return buf.Bytes(), nil
}

// MarkdownRenderer produces a human-readable summary document.
type MarkdownRenderer struct{}

var _ ports.ReportRenderer = MarkdownRenderer{}

// Render builds the markdown source of the summary.
func (MarkdownRenderer) Render(r domain.Report) ([]byte, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "# Onboarding validation report\n\n")
	fmt.Fprintf(&b, "Run `%s` generated %s\n\n", r.RunID, r.GeneratedAt.Format("2006-01-02 15:04 UTC"))
	fmt.Fprintf(&b, "**Score: %d/100 (%s)**\n\n", r.Score, r.Band)

	counts := r.CountBySeverity()
	fmt.Fprintf(&b, "%d critical, %d warnings, %d informational\n\n",
		counts[domain.SeverityCritical], counts[domain.SeverityWarning], counts[domain.SeverityInfo])

	b.WriteString("## Tables\n\n")
	b.WriteString("| Table | Sheet | Present | Rows |\n|---|---|---|---|\n")
	for _, t := range r.Tables {
		fmt.Fprintf(&b, "| %s | %s | %t | %d |\n", t.Table, t.Sheet, t.Present, t.RowCount)
	}

	if len(r.Issues) > 0 {
		b.WriteString("\n## Issues\n\n")
		b.WriteString("| Severity | Sheet | Row | Column | Issue | Suggested fix |\n|---|---|---|---|---|---|\n")
		for _, iss := range r.Issues {
			row := ""
			if iss.SourceRow > 0 {
				row = strconv.Itoa(iss.SourceRow)
			}
			fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s |\n",
				iss.Severity, iss.Sheet, row, iss.Field, iss.Message, iss.SuggestedValue)
		}
	}
	return []byte(b.String()), nil
}

// HTMLRenderer renders the markdown summary to HTML for browser
// dashboards.
type HTMLRenderer struct{}

var _ ports.ReportRenderer = HTMLRenderer{}

// Render converts the markdown summary into a standalone HTML fragment.
func (HTMLRenderer) Render(r domain.Report) ([]byte, error) {
	md, err := MarkdownRenderer{}.Render(r)
	if err != nil {
		return nil, err
	}
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.Tables)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	return markdown.ToHTML(md, p, renderer), nil
}
