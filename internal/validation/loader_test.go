package validation

import (
	"testing"

	"posprep/domain/workbook"
	"posprep/internal/testkit"
)

func stockSpec() workbook.TableSpec {
	return workbook.TableSpec{
		Name:      "stock_items",
		SheetName: "Stock Items",
		Marker:    "stock item name",
	}
}

func TestLoadTableFiltersPlaceholdersAndEmpties(t *testing.T) {
	sheet := testkit.Sheet("Stock Items",
		[]string{"instructions"},
		[]string{"Stock Item Name", "Unit Cost"},
		[]string{"EXAMPLE", "1.00"},
		[]string{"Tomato", "3.50"},
		[]string{"   ", "9.99"},
		[]string{"", ""},
		[]string{"Flour", "8.20"},
	)

	table, err := LoadTable(&sheet, stockSpec(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(table.Rows) != 2 {
		t.Fatalf("expected 2 surviving rows, got %d", len(table.Rows))
	}
	if table.Rows[0].Get("Stock Item Name") != "Tomato" {
		t.Errorf("unexpected first row: %v", table.Rows[0].Values)
	}
	if table.IdentityColumn != "Stock Item Name" {
		t.Errorf("identity column = %q", table.IdentityColumn)
	}
}

func TestLoadTableSourceRowIsPhysical(t *testing.T) {
	// Header at sheet row index 1 (physical row 2); first data row is
	// physical row 3.
	sheet := testkit.Sheet("Stock Items",
		[]string{"instructions"},
		[]string{"Stock Item Name", "Unit Cost"},
		[]string{"Tomato", "3.50"},
		[]string{"EXAMPLE", "0.00"},
		[]string{"Flour", "8.20"},
	)

	table, err := LoadTable(&sheet, stockSpec(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if table.Rows[0].SourceRow != 3 {
		t.Errorf("first data row SourceRow = %d, want 3", table.Rows[0].SourceRow)
	}
	// The placeholder row is dropped but Flour keeps its real position.
	if table.Rows[1].SourceRow != 5 {
		t.Errorf("second data row SourceRow = %d, want 5", table.Rows[1].SourceRow)
	}
}

func TestLoadTableShortRowsAreSafe(t *testing.T) {
	sheet := testkit.Sheet("Stock Items",
		[]string{"Stock Item Name", "Unit Cost", "PLU Code"},
		[]string{"Tomato"},
	)

	table, err := LoadTable(&sheet, stockSpec(), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(table.Rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(table.Rows))
	}
	if got := table.Rows[0].Get("Unit Cost"); got != "" {
		t.Errorf("missing trailing cells should read empty, got %q", got)
	}
}

func TestLoadTableDuplicateHeaderReadsFirstColumn(t *testing.T) {
	// Two "Unit Cost" columns: reads must come from the column
	// ResolveColumns maps, so a later fix lands on the cell whose value
	// produced the issue.
	sheet := testkit.Sheet("Stock Items",
		[]string{"Stock Item Name", "Unit Cost", "Unit Cost"},
		[]string{"Tomato", "3.50", "99.99"},
	)

	table, err := LoadTable(&sheet, stockSpec(), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := table.Rows[0].Get("Unit Cost"); got != "3.50" {
		t.Errorf("duplicate header must read the first column, got %q", got)
	}
	if col := table.ColumnOf["Unit Cost"]; col != 1 {
		t.Errorf("ColumnOf[\"Unit Cost\"] = %d, want 1", col)
	}
}

func TestLoadTableNoIdentityColumn(t *testing.T) {
	sheet := testkit.Sheet("Stock Items",
		[]string{"Something Else", "Unit Cost"},
	)
	if _, err := LoadTable(&sheet, stockSpec(), 0); err == nil {
		t.Error("expected an error when no field matches the marker")
	}
}
