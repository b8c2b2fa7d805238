package validation

import (
	"strings"

	"posprep/domain/workbook"
	"posprep/internal/errors"
)

// collapseWhitespace trims a cell and squeezes internal whitespace runs
// to single spaces so marker matching is insensitive to sloppy spacing.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// ResolveHeader scans at most scanRows raw rows of a sheet for the
// marker phrase (case-insensitive substring, per cell). Onboarding
// templates often carry example blocks with their own copy of the
// header, so when several rows match, the LAST one wins: the bottom-most
// header is the one clients filled their data under. This is a pinned
// policy, not a proven-correct algorithm; a marker phrase occurring
// inside genuine data below the real header will still win.
func ResolveHeader(sheet *workbook.Sheet, table, marker string, scanRows int) (int, error) {
	needle := strings.ToLower(collapseWhitespace(marker))
	limit := scanRows
	if limit > len(sheet.Cells) {
		limit = len(sheet.Cells)
	}

	found := -1
	for i := 0; i < limit; i++ {
		for _, cell := range sheet.Cells[i] {
			if strings.Contains(strings.ToLower(collapseWhitespace(cell)), needle) {
				found = i
				break
			}
		}
	}
	if found < 0 {
		return 0, errors.HeaderNotFound(table, marker)
	}
	return found, nil
}

// ResolveColumns trims the header row into field names and builds the
// field -> 0-based column position map. Load and fix-apply both go
// through this function, so a fix always lands in the same column the
// value was read from.
func ResolveColumns(sheet *workbook.Sheet, headerRow int) (fields []string, columnOf map[string]int) {
	columnOf = make(map[string]int)
	if headerRow >= len(sheet.Cells) {
		return nil, columnOf
	}
	for col, name := range sheet.Cells[headerRow] {
		trimmed := strings.TrimSpace(name)
		fields = append(fields, trimmed)
		if trimmed == "" {
			continue
		}
		if _, seen := columnOf[trimmed]; !seen {
			columnOf[trimmed] = col
		}
	}
	return fields, columnOf
}
