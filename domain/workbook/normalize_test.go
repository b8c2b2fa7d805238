package workbook

import "testing"

func TestNormalizeIdentifier(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain name untouched", "Tomato", "Tomato"},
		{"strips manufactured tag", "Tomato Sauce (Manufactured)", "Tomato Sauce"},
		{"strips raw tag", "Tomato (Raw)", "Tomato"},
		{"tag case insensitive", "Tomato (RAW)", "Tomato"},
		{"tag in the middle", "Tomato (Raw) Paste", "Tomato Paste"},
		{"surrounding whitespace", "  Flour  ", "Flour"},
		{"collapses doubled spaces", "Cheddar  Cheese", "Cheddar Cheese"},
		{"empty string", "", ""},
		{"only a tag", "(Manufactured)", ""},
		{"keeps identity characters", "Piri-Piri Chicken 500g", "Piri-Piri Chicken 500g"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := NormalizeIdentifier(test.input)
			if got != test.expected {
				t.Errorf("NormalizeIdentifier(%q) = %q, want %q", test.input, got, test.expected)
			}
		})
	}
}

func TestNormalizeIdentifierIdempotent(t *testing.T) {
	inputs := []string{
		"", "Tomato", "Tomato Sauce (Manufactured)", "  spaced  out  ",
		"(raw)(raw)Tomato", "already normalized",
	}
	for _, in := range inputs {
		once := NormalizeIdentifier(in)
		twice := NormalizeIdentifier(once)
		if once != twice {
			t.Errorf("normalization not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}

func TestIsPlaceholder(t *testing.T) {
	for _, v := range []string{"EXAMPLE", "example", " Examples ", "EXAMPLES"} {
		if !IsPlaceholder(v) {
			t.Errorf("expected %q to be a placeholder", v)
		}
	}
	for _, v := range []string{"", "Tomato", "example item"} {
		if IsPlaceholder(v) {
			t.Errorf("did not expect %q to be a placeholder", v)
		}
	}
}

func TestFindField(t *testing.T) {
	fields := []string{"", "Stock Item Name", "Unit Cost (R)", "Item Notes"}

	tests := []struct {
		marker string
		want   string
	}{
		{"stock item name", "Stock Item Name"},
		{"unit cost", "Unit Cost (R)"},
		{"item", "Stock Item Name"}, // first match wins
		{"  ITEM  ", "Stock Item Name"},
		{"supplier", ""},
	}
	for _, test := range tests {
		if got := FindField(fields, test.marker); got != test.want {
			t.Errorf("FindField(%q) = %q, want %q", test.marker, got, test.want)
		}
	}

	table := &LogicalTable{Fields: fields}
	if got := table.FindField("unit cost"); got != "Unit Cost (R)" {
		t.Errorf("table lookup = %q, want the same resolution as FindField", got)
	}
}

func TestUniverseFromTables(t *testing.T) {
	stock := &LogicalTable{
		IdentityColumn: "Stock Item Name",
		Rows: []Row{
			{SourceRow: 2, Values: map[string]string{"Stock Item Name": "Tomato"}},
			{SourceRow: 3, Values: map[string]string{"Stock Item Name": "Cheddar Cheese "}},
		},
	}
	manufactured := &LogicalTable{
		IdentityColumn: "Manufactured Item Name",
		Rows: []Row{
			{SourceRow: 2, Values: map[string]string{"Manufactured Item Name": "Tomato Sauce (Manufactured)"}},
		},
	}

	u := UniverseFromTables(stock, nil, manufactured)

	if u.Size() != 3 {
		t.Fatalf("expected 3 universe members, got %d", u.Size())
	}
	for _, want := range []string{"Tomato", "Cheddar Cheese", "Tomato Sauce"} {
		if !u.Contains(want) {
			t.Errorf("expected universe to contain %q", want)
		}
	}
	if u.Contains("Tomato Sauce (Manufactured)") {
		t.Error("universe should hold normalized identifiers only")
	}
}

func TestDocumentSheetSkipsHidden(t *testing.T) {
	doc := Document{Sheets: []Sheet{
		{Name: "Stock Items", Hidden: true},
		{Name: "Products"},
	}}

	if doc.Sheet("Stock Items") != nil {
		t.Error("hidden sheet must be invisible")
	}
	if doc.Sheet("products") == nil {
		t.Error("visible sheet lookup should be case-insensitive")
	}
}
