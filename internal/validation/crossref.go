package validation

import (
	"fmt"

	"posprep/domain/report"
	"posprep/domain/workbook"
)

// CheckReferences validates that every reference in the dependent
// table's reference field exists, after normalization, in the trusted
// universe. Empty and placeholder references are skipped. Ghost
// references carry the original text so the report shows what the
// client actually typed.
func CheckReferences(table *workbook.LogicalTable, refField string, universe workbook.ValidNameUniverse) []report.Issue {
	var issues []report.Issue
	for _, row := range table.Rows {
		raw := row.Get(refField)
		if raw == "" || workbook.IsPlaceholder(raw) {
			continue
		}
		if universe.Contains(workbook.NormalizeIdentifier(raw)) {
			continue
		}
		issues = append(issues, report.Issue{
			Severity:  report.SeverityCritical,
			Kind:      report.KindGhostReference,
			Table:     table.Name,
			Sheet:     table.SheetName,
			SourceRow: row.SourceRow,
			Field:     refField,
			Value:     raw,
			Message:   fmt.Sprintf("%s %q does not match any stock or manufactured item", refField, raw),
		})
	}
	return issues
}
