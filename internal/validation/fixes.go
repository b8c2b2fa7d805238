package validation

import (
	"posprep/domain/report"
	"posprep/domain/workbook"
	"posprep/internal/config"
	"posprep/ports"
)

// PlanFixes turns accepted suggestions into concrete cell writes. The
// column for each field is re-derived through the same ResolveHeader and
// ResolveColumns used at load time, so a fix always targets the column
// its value came out of. Issues without a suggestion, without a source
// row, or against tables that no longer resolve are skipped.
func PlanFixes(doc *workbook.Document, catalog workbook.Catalog, cfg config.EngineConfig, issues []report.Issue) []ports.FixTarget {
	specs := make(map[string]workbook.TableSpec, len(catalog))
	for _, spec := range catalog {
		specs[spec.Name] = spec
	}

	type columns struct {
		sheet    string
		columnOf map[string]int
	}
	resolved := make(map[string]*columns)

	var fixes []ports.FixTarget
	for _, iss := range issues {
		if iss.SuggestedValue == "" || iss.SourceRow == 0 || iss.Field == "" {
			continue
		}
		spec, ok := specs[iss.Table]
		if !ok {
			continue
		}

		cols := resolved[iss.Table]
		if cols == nil {
			sheet := doc.Sheet(spec.SheetName)
			if sheet == nil {
				continue
			}
			headerRow, err := ResolveHeader(sheet, spec.Name, spec.Marker, cfg.HeaderScanRows)
			if err != nil {
				continue
			}
			_, columnOf := ResolveColumns(sheet, headerRow)
			cols = &columns{sheet: sheet.Name, columnOf: columnOf}
			resolved[iss.Table] = cols
		}

		col, ok := cols.columnOf[iss.Field]
		if !ok {
			continue
		}
		fixes = append(fixes, ports.FixTarget{
			Sheet:     cols.sheet,
			SourceRow: iss.SourceRow,
			Column:    col,
			Value:     iss.SuggestedValue,
		})
	}
	return fixes
}
