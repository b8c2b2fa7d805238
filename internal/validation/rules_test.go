package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"posprep/domain/report"
	"posprep/domain/workbook"
)

func singleRowTable(field, value string, extra map[string]string) (*workbook.LogicalTable, workbook.Row) {
	values := map[string]string{field: value}
	for k, v := range extra {
		values[k] = v
	}
	fields := make([]string, 0, len(values))
	for k := range values {
		fields = append(fields, k)
	}
	table := &workbook.LogicalTable{
		Name:      "products",
		SheetName: "Products",
		Fields:    fields,
	}
	return table, workbook.Row{SourceRow: 10, Values: values}
}

func TestPresenceRule(t *testing.T) {
	table, row := singleRowTable("Product Name", "", nil)
	b := ruleBinding{rule: workbook.FieldRule{Kind: workbook.RulePresence}, field: "Product Name"}

	issues := checkRow(table, b, row, 4)
	require.Len(t, issues, 1)
	assert.Equal(t, report.SeverityCritical, issues[0].Severity)
	assert.Empty(t, issues[0].SuggestedValue)

	table, row = singleRowTable("Product Name", "Espresso", nil)
	assert.Empty(t, checkRow(table, b, row, 4))
}

func TestNumericRule(t *testing.T) {
	b := ruleBinding{rule: workbook.FieldRule{Kind: workbook.RuleNumeric}, field: "Selling Price"}

	tests := []struct {
		name       string
		value      string
		severity   report.Severity
		suggestion string
	}{
		{"clean value passes", "25.50", "", ""},
		{"currency prefix is salvageable", "R 25.50", report.SeverityWarning, "25.50"},
		{"thousands noise is salvageable", "1,250.00", report.SeverityWarning, "1250.00"},
		{"unsalvageable text", "ask manager", report.SeverityCritical, ""},
		{"double decimal point", "1.2.3", report.SeverityCritical, ""},
		{"empty skipped", "", "", ""},
		{"placeholder skipped", "EXAMPLE", "", ""},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			table, row := singleRowTable("Selling Price", test.value, nil)
			issues := checkRow(table, b, row, 4)
			if test.severity == "" {
				assert.Empty(t, issues)
				return
			}
			require.Len(t, issues, 1)
			assert.Equal(t, test.severity, issues[0].Severity)
			assert.Equal(t, test.suggestion, issues[0].SuggestedValue)
		})
	}
}

func TestCodeRule(t *testing.T) {
	b := ruleBinding{rule: workbook.FieldRule{Kind: workbook.RuleCode}, field: "PLU Code"}

	tests := []struct {
		name       string
		value      string
		severity   report.Severity
		suggestion string
	}{
		{"exact length passes", "1001", "", ""},
		{"short code gets padded", "12", report.SeverityWarning, "0012"},
		{"spreadsheet decimal artifact", "1001.0", "", ""},
		{"non-digit is critical", "12a", report.SeverityCritical, ""},
		{"too long is critical", "12345", report.SeverityCritical, ""},
		{"empty skipped", "", "", ""},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			table, row := singleRowTable("PLU Code", test.value, nil)
			issues := checkRow(table, b, row, 4)
			if test.severity == "" {
				assert.Empty(t, issues)
				return
			}
			require.Len(t, issues, 1)
			assert.Equal(t, test.severity, issues[0].Severity)
			assert.Equal(t, test.suggestion, issues[0].SuggestedValue)
		})
	}
}

func TestHierarchyRule(t *testing.T) {
	b := ruleBinding{
		rule:  workbook.FieldRule{Kind: workbook.RuleHierarchy},
		field: "Menu Path",
		outer: "Menu",
		inner: "Category",
	}

	t.Run("splits and proposes both targets", func(t *testing.T) {
		table, row := singleRowTable("Menu Path", "Food > Pizzas", map[string]string{"Menu": "", "Category": ""})
		issues := checkRow(table, b, row, 4)
		require.Len(t, issues, 2)
		assert.Equal(t, report.SeverityInfo, issues[0].Severity)
		assert.Equal(t, "Food", issues[0].SuggestedValue)
		assert.Equal(t, "Pizzas", issues[1].SuggestedValue)
	})

	t.Run("each delimiter splits", func(t *testing.T) {
		for _, path := range []string{"Food/Pizzas", "Food > Pizzas", "Food - Pizzas", `Food \ Pizzas`} {
			table, row := singleRowTable("Menu Path", path, map[string]string{"Menu": "", "Category": ""})
			issues := checkRow(table, b, row, 4)
			require.Len(t, issues, 2, "path %q", path)
			assert.Equal(t, "Food", issues[0].SuggestedValue, "path %q", path)
			assert.Equal(t, "Pizzas", issues[1].SuggestedValue, "path %q", path)
		}
	})

	t.Run("does not overwrite present values", func(t *testing.T) {
		table, row := singleRowTable("Menu Path", "Food > Pizzas", map[string]string{"Menu": "Specials", "Category": ""})
		issues := checkRow(table, b, row, 4)
		require.Len(t, issues, 1)
		assert.Equal(t, "Category", issues[0].Field)
	})

	t.Run("multi segment uses first and last", func(t *testing.T) {
		table, row := singleRowTable("Menu Path", "Food > Mains > Pizzas", map[string]string{"Menu": "", "Category": ""})
		issues := checkRow(table, b, row, 4)
		require.Len(t, issues, 2)
		assert.Equal(t, "Food", issues[0].SuggestedValue)
		assert.Equal(t, "Pizzas", issues[1].SuggestedValue)
	})

	t.Run("no delimiter no issue", func(t *testing.T) {
		table, row := singleRowTable("Menu Path", "Food", map[string]string{"Menu": "", "Category": ""})
		assert.Empty(t, checkRow(table, b, row, 4))
	})
}

func TestDuplicateIdentityRule(t *testing.T) {
	table := &workbook.LogicalTable{
		Name:           "stock_items",
		SheetName:      "Stock Items",
		Fields:         []string{"Stock Item Name"},
		IdentityColumn: "Stock Item Name",
		Rows: []workbook.Row{
			{SourceRow: 2, Values: map[string]string{"Stock Item Name": "Tomato"}},
			{SourceRow: 3, Values: map[string]string{"Stock Item Name": "Flour"}},
			{SourceRow: 4, Values: map[string]string{"Stock Item Name": "Tomato (Raw)"}},
			{SourceRow: 5, Values: map[string]string{"Stock Item Name": "Tomato"}},
		},
	}

	issues := checkDuplicates(table)
	require.Len(t, issues, 2)
	for _, iss := range issues {
		assert.Equal(t, report.SeverityCritical, iss.Severity)
		assert.Equal(t, report.KindDuplicateIdentity, iss.Kind)
	}
	// Normalization makes "Tomato (Raw)" collide with "Tomato"; the
	// first occurrence keeps the name, every later one is flagged.
	assert.Equal(t, 4, issues[0].SourceRow)
	assert.Equal(t, "Tomato (Raw)", issues[0].Value)
	assert.Contains(t, issues[0].Message, "row 2")
	assert.Equal(t, 5, issues[1].SourceRow)

	table.Rows = table.Rows[:2]
	assert.Empty(t, checkDuplicates(table))
}

func TestBindRulesReportsUnresolvableField(t *testing.T) {
	table := &workbook.LogicalTable{
		Name:      "products",
		SheetName: "Products",
		Fields:    []string{"Product Name"},
	}
	spec := workbook.TableSpec{
		Name: "products",
		Rules: []workbook.FieldRule{
			{Kind: workbook.RulePresence, FieldMarker: "product name"},
			{Kind: workbook.RuleNumeric, FieldMarker: "selling price"},
		},
	}

	bindings, issues := bindRules(table, spec)
	assert.Len(t, bindings, 1)
	require.Len(t, issues, 1)
	assert.Contains(t, issues[0].Message, "selling price")
}
