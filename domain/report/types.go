package report

import (
	"time"

	"github.com/google/uuid"
)

// Severity ranks how strongly an issue blocks the downstream import.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
	SeverityInfo     Severity = "info"
)

// IssueKind names the condition that produced an issue.
type IssueKind string

const (
	KindEmptyTable        IssueKind = "empty_table"
	KindMalformedValue    IssueKind = "malformed_value"
	KindDuplicateIdentity IssueKind = "duplicate_identity"
	KindGhostReference    IssueKind = "ghost_reference"
	KindDerivedValue      IssueKind = "derived_value"
)

// Issue is one finding against one cell (or one table, for table-level
// findings where SourceRow is 0 and Field is empty). Issues are pure
// output and are never mutated after creation, with one exception: the
// suggestion engine fills SuggestedValue before the report is sealed.
type Issue struct {
	Severity       Severity  `json:"severity"`
	Kind           IssueKind `json:"kind"`
	Table          string    `json:"table"`
	Sheet          string    `json:"sheet"`
	SourceRow      int       `json:"source_row,omitempty"`
	Field          string    `json:"field,omitempty"`
	Value          string    `json:"value,omitempty"`
	Message        string    `json:"message"`
	SuggestedValue string    `json:"suggested_value,omitempty"`
}

// ColumnProfile summarizes one numeric column of a loaded table. It is
// informational context for the report, not a validation result.
type ColumnProfile struct {
	Field string  `json:"field"`
	Count int     `json:"count"`
	Mean  float64 `json:"mean"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
}

// TableReport describes how one catalog table fared.
type TableReport struct {
	Table    string          `json:"table"`
	Sheet    string          `json:"sheet"`
	Present  bool            `json:"present"`
	RowCount int             `json:"row_count"`
	Profiles []ColumnProfile `json:"profiles,omitempty"`
}

// Report is the complete output of one validation run.
type Report struct {
	RunID       string        `json:"run_id"`
	GeneratedAt time.Time     `json:"generated_at"`
	Score       int           `json:"score"`
	Band        Band          `json:"band"`
	Tables      []TableReport `json:"tables"`
	Issues      []Issue       `json:"issues"`
}

// NewReport stamps a fresh run identity.
func NewReport() Report {
	return Report{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
	}
}

// CountBySeverity tallies issues per severity.
func (r *Report) CountBySeverity() map[Severity]int {
	counts := make(map[Severity]int, 3)
	for _, iss := range r.Issues {
		counts[iss.Severity]++
	}
	return counts
}
