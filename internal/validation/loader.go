package validation

import (
	"strings"

	"posprep/domain/workbook"
	"posprep/internal/errors"
)

// LoadTable materializes the rows below a resolved header into a
// LogicalTable. Field names are trimmed, the identity column is resolved
// by marker substring (first match wins), and rows whose identity cell
// is empty or a template example sentinel are dropped. SourceRow is the
// 1-based physical row: dataset index + header index + 2 (one for the
// 1-based sheet, one because data starts the row after the header).
func LoadTable(sheet *workbook.Sheet, spec workbook.TableSpec, headerRow int) (*workbook.LogicalTable, error) {
	fields, columnOf := ResolveColumns(sheet, headerRow)

	identity := workbook.FindField(fields, spec.Marker)
	if identity == "" {
		// Header row matched the marker but no usable field name did;
		// a merged or decorated header cell can cause this.
		return nil, errors.HeaderNotFound(spec.Name, spec.Marker)
	}

	table := &workbook.LogicalTable{
		Name:           spec.Name,
		SheetName:      sheet.Name,
		HeaderRow:      headerRow,
		Fields:         fields,
		ColumnOf:       columnOf,
		IdentityColumn: identity,
	}

	for i := headerRow + 1; i < len(sheet.Cells); i++ {
		// Reading through columnOf keeps duplicated header names
		// first-column-wins, the same column a fix would target.
		values := make(map[string]string, len(columnOf))
		for field, col := range columnOf {
			if col < len(sheet.Cells[i]) {
				values[field] = sheet.Cells[i][col]
			}
		}

		id := strings.TrimSpace(values[identity])
		if id == "" || workbook.IsPlaceholder(id) {
			continue
		}

		table.Rows = append(table.Rows, workbook.Row{
			SourceRow: i + 1,
			Values:    values,
		})
	}

	return table, nil
}
