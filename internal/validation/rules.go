package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"posprep/domain/report"
	"posprep/domain/workbook"
)

var (
	nonNumericChars = regexp.MustCompile(`[^0-9.]`)
	trailingDecimal = regexp.MustCompile(`\.0+$`)
	hierarchySplit  = regexp.MustCompile(`[/>\\-]`)
)

// ruleBinding is a FieldRule resolved against a loaded table's header.
// Bindings are computed eagerly at load time; a rule whose field marker
// matches nothing produces one precise table-level warning instead of
// silently checking the wrong column.
type ruleBinding struct {
	rule  workbook.FieldRule
	field string
	outer string // hierarchy only
	inner string // hierarchy only
}

// bindRules resolves every rule of a table spec against the loaded
// header. Unresolvable bindings come back as issues.
func bindRules(table *workbook.LogicalTable, spec workbook.TableSpec) ([]ruleBinding, []report.Issue) {
	var bindings []ruleBinding
	var issues []report.Issue

	for _, rule := range spec.Rules {
		field := table.FindField(rule.FieldMarker)
		if field == "" {
			issues = append(issues, report.Issue{
				Severity: report.SeverityWarning,
				Kind:     report.KindMalformedValue,
				Table:    spec.Name,
				Sheet:    table.SheetName,
				Message:  fmt.Sprintf("no column matching %q found, %s check skipped", rule.FieldMarker, rule.Kind),
			})
			continue
		}
		b := ruleBinding{rule: rule, field: field}
		if rule.Kind == workbook.RuleHierarchy {
			b.outer = table.FindField(rule.OuterMarker)
			b.inner = table.FindField(rule.InnerMarker)
		}
		bindings = append(bindings, b)
	}
	return bindings, issues
}

// checkRow runs one bound rule against one row, emitting at most one
// issue per field. codeLength is the required length for fixed-length
// codes.
func checkRow(table *workbook.LogicalTable, b ruleBinding, row workbook.Row, codeLength int) []report.Issue {
	switch b.rule.Kind {
	case workbook.RulePresence:
		return checkPresence(table, b, row)
	case workbook.RuleNumeric:
		return checkNumeric(table, b, row)
	case workbook.RuleCode:
		return checkCode(table, b, row, codeLength)
	case workbook.RuleHierarchy:
		return checkHierarchy(table, b, row)
	}
	return nil
}

func checkPresence(table *workbook.LogicalTable, b ruleBinding, row workbook.Row) []report.Issue {
	if row.Get(b.field) != "" {
		return nil
	}
	return []report.Issue{{
		Severity:  report.SeverityCritical,
		Kind:      report.KindMalformedValue,
		Table:     table.Name,
		Sheet:     table.SheetName,
		SourceRow: row.SourceRow,
		Field:     b.field,
		Message:   fmt.Sprintf("%s is required", b.field),
	}}
}

// checkNumeric strips everything outside [0-9.] and expects the
// remainder to parse as a non-negative decimal. Text that cleans up to a
// valid number ("R 25.50") is a format warning with the cleaned value as
// the fix; text that cannot be salvaged is critical with no fix.
func checkNumeric(table *workbook.LogicalTable, b ruleBinding, row workbook.Row) []report.Issue {
	raw := row.Get(b.field)
	if raw == "" || workbook.IsPlaceholder(raw) {
		return nil
	}

	stripped := nonNumericChars.ReplaceAllString(raw, "")
	val, err := strconv.ParseFloat(stripped, 64)
	if err != nil || val < 0 {
		return []report.Issue{{
			Severity:  report.SeverityCritical,
			Kind:      report.KindMalformedValue,
			Table:     table.Name,
			Sheet:     table.SheetName,
			SourceRow: row.SourceRow,
			Field:     b.field,
			Value:     raw,
			Message:   fmt.Sprintf("%s %q is not a non-negative number", b.field, raw),
		}}
	}
	if stripped == raw {
		return nil
	}
	return []report.Issue{{
		Severity:       report.SeverityWarning,
		Kind:           report.KindMalformedValue,
		Table:          table.Name,
		Sheet:          table.SheetName,
		SourceRow:      row.SourceRow,
		Field:          b.field,
		Value:          raw,
		Message:        fmt.Sprintf("%s %q contains non-numeric characters", b.field, raw),
		SuggestedValue: stripped,
	}}
}

// checkCode enforces a fixed-length digit code. A trailing ".0" left by
// spreadsheet numeric formatting is dropped before checking. Non-digit
// codes are critical with no fix; short digit codes get a left-zero-pad
// fix.
func checkCode(table *workbook.LogicalTable, b ruleBinding, row workbook.Row, codeLength int) []report.Issue {
	raw := row.Get(b.field)
	if raw == "" || workbook.IsPlaceholder(raw) {
		return nil
	}

	code := trailingDecimal.ReplaceAllString(raw, "")
	for _, r := range code {
		if r < '0' || r > '9' {
			return []report.Issue{{
				Severity:  report.SeverityCritical,
				Kind:      report.KindMalformedValue,
				Table:     table.Name,
				Sheet:     table.SheetName,
				SourceRow: row.SourceRow,
				Field:     b.field,
				Value:     raw,
				Message:   fmt.Sprintf("%s %q must be a %d-digit code", b.field, raw, codeLength),
			}}
		}
	}

	switch {
	case len(code) == codeLength:
		return nil
	case len(code) < codeLength:
		padded := strings.Repeat("0", codeLength-len(code)) + code
		return []report.Issue{{
			Severity:       report.SeverityWarning,
			Kind:           report.KindMalformedValue,
			Table:          table.Name,
			Sheet:          table.SheetName,
			SourceRow:      row.SourceRow,
			Field:          b.field,
			Value:          raw,
			Message:        fmt.Sprintf("%s %q is shorter than %d digits", b.field, raw, codeLength),
			SuggestedValue: padded,
		}}
	default:
		return []report.Issue{{
			Severity:  report.SeverityCritical,
			Kind:      report.KindMalformedValue,
			Table:     table.Name,
			Sheet:     table.SheetName,
			SourceRow: row.SourceRow,
			Field:     b.field,
			Value:     raw,
			Message:   fmt.Sprintf("%s %q is longer than %d digits", b.field, raw, codeLength),
		}}
	}
}

// checkDuplicates flags every row whose normalized identity was already
// claimed by an earlier row; the first occurrence keeps the name.
// Duplicate identities would otherwise collapse into a single universe
// entry and double-import downstream.
func checkDuplicates(table *workbook.LogicalTable) []report.Issue {
	seen := make(map[string]int, len(table.Rows))
	var issues []report.Issue
	for _, row := range table.Rows {
		raw := row.Get(table.IdentityColumn)
		id := workbook.NormalizeIdentifier(raw)
		first, dup := seen[id]
		if !dup {
			seen[id] = row.SourceRow
			continue
		}
		issues = append(issues, report.Issue{
			Severity:  report.SeverityCritical,
			Kind:      report.KindDuplicateIdentity,
			Table:     table.Name,
			Sheet:     table.SheetName,
			SourceRow: row.SourceRow,
			Field:     table.IdentityColumn,
			Value:     raw,
			Message:   fmt.Sprintf("%s %q duplicates row %d", table.IdentityColumn, raw, first),
		})
	}
	return issues
}

// checkHierarchy splits a delimited path like "Drinks > Hot" into outer
// and inner segments and proposes them for the empty menu/category
// fields. Already-present values are never overwritten; proposals are
// informational issues so the fix applier can write them back.
func checkHierarchy(table *workbook.LogicalTable, b ruleBinding, row workbook.Row) []report.Issue {
	raw := row.Get(b.field)
	if raw == "" || workbook.IsPlaceholder(raw) {
		return nil
	}
	if !hierarchySplit.MatchString(raw) {
		return nil
	}

	parts := hierarchySplit.Split(raw, -1)
	outer := strings.TrimSpace(parts[0])
	inner := strings.TrimSpace(parts[len(parts)-1])

	var issues []report.Issue
	propose := func(field, value string) {
		if field == "" || value == "" || row.Get(field) != "" {
			return
		}
		issues = append(issues, report.Issue{
			Severity:       report.SeverityInfo,
			Kind:           report.KindDerivedValue,
			Table:          table.Name,
			Sheet:          table.SheetName,
			SourceRow:      row.SourceRow,
			Field:          field,
			Message:        fmt.Sprintf("%s derived from %s %q", field, b.field, raw),
			SuggestedValue: value,
		})
	}
	propose(b.outer, outer)
	propose(b.inner, inner)
	return issues
}
