package ports

import (
	"posprep/domain/report"
	"posprep/domain/workbook"
)

// DocumentSource opens a tabular container into the in-memory Document
// model. Implementations must preserve sheet order, hidden flags and raw
// cell text, and must not apply any header interpretation.
type DocumentSource interface {
	// Open parses raw container bytes. The only fatal validation
	// condition, an unreadable container, surfaces here.
	Open(data []byte) (*workbook.Document, error)
}

// FixTarget locates one cell write produced by an accepted suggestion.
type FixTarget struct {
	Sheet     string
	SourceRow int    // 1-based physical row
	Column    int    // 0-based column position
	Value     string // written numerically when it parses as a number
}

// DocumentWriter produces a corrected copy of the original container
// with the given cell writes applied. The original bytes are never
// modified; every untargeted cell stays byte-identical.
type DocumentWriter interface {
	ApplyFixes(original []byte, fixes []FixTarget) ([]byte, error)
}

// ReportRenderer turns a validation report into an export artifact.
type ReportRenderer interface {
	Render(r report.Report) ([]byte, error)
}
