package workbook

import "strings"

// Document is an in-memory spreadsheet container: an ordered set of sheets
// with raw, header-less cell content. It is the only input the validation
// engine reads and it is never mutated by a run.
type Document struct {
	Sheets []Sheet
}

// Sheet holds one worksheet's raw cells. Cells are addressed
// [row][column], 0-based, exactly as read from the file.
type Sheet struct {
	Name   string
	Hidden bool
	Cells  [][]string
}

// Sheet returns the visible sheet with the given name, or nil.
// Hidden sheets are invisible to the engine entirely.
func (d *Document) Sheet(name string) *Sheet {
	for i := range d.Sheets {
		s := &d.Sheets[i]
		if s.Hidden {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(s.Name), strings.TrimSpace(name)) {
			return s
		}
	}
	return nil
}

// Row is one data row of a resolved table. Values are keyed by trimmed
// field name. SourceRow is the 1-based physical row in the original
// document and exists for traceability only, never for business logic.
type Row struct {
	SourceRow int
	Values    map[string]string
}

// Get returns the trimmed value of a field, or "" when absent.
func (r Row) Get(field string) string {
	return strings.TrimSpace(r.Values[field])
}

// LogicalTable is the result of resolving one sheet against its marker
// phrase: the chosen header row, the trimmed field names in column order,
// the identity column, and the surviving data rows.
type LogicalTable struct {
	Name           string
	SheetName      string
	HeaderRow      int // 0-based index of the resolved header row
	Fields         []string
	ColumnOf       map[string]int // field name -> 0-based column position
	IdentityColumn string
	Rows           []Row
}

// FindField resolves a field by case-insensitive substring match
// against a header's field names, first match wins. Returns "" when no
// field matches. Every marker-to-field lookup in the engine goes
// through here, so loading, checking and fix planning all agree on
// which column a marker names.
func FindField(fields []string, marker string) string {
	needle := strings.ToLower(strings.TrimSpace(marker))
	for _, f := range fields {
		if f == "" {
			continue
		}
		if strings.Contains(strings.ToLower(f), needle) {
			return f
		}
	}
	return ""
}

// FindField resolves a field against the table's header.
func (t *LogicalTable) FindField(marker string) string {
	return FindField(t.Fields, marker)
}

// Placeholder sentinels mark template example rows that must never be
// validated or counted.
var placeholderSentinels = map[string]struct{}{
	"EXAMPLE":  {},
	"EXAMPLES": {},
}

// IsPlaceholder reports whether a cell value is a template example
// sentinel (case-insensitive, trimmed).
func IsPlaceholder(value string) bool {
	_, ok := placeholderSentinels[strings.ToUpper(strings.TrimSpace(value))]
	return ok
}
