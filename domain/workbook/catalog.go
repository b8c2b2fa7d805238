package workbook

// RuleKind names a field-level validation rule. Rules are independent
// and each emits at most one issue per field per row.
type RuleKind string

const (
	RulePresence  RuleKind = "presence"
	RuleNumeric   RuleKind = "numeric"
	RuleCode      RuleKind = "code"
	RuleHierarchy RuleKind = "hierarchy"
)

// FieldRule binds a rule to a field, resolved by case-insensitive
// substring match against the table's header (first match wins). The
// binding is computed once at table-load time so a missing field fails
// with a precise diagnostic instead of silently skipping the check.
type FieldRule struct {
	Kind        RuleKind
	FieldMarker string
	// Hierarchy targets: the fields the split populates when empty.
	OuterMarker string
	InnerMarker string
}

// TableSpec declares one logical table of the onboarding workbook: which
// sheet holds it, the marker phrase that anchors its header and identity
// column, whether the downstream import can proceed without it, whether
// its identifiers feed the trusted reference universe, and the field
// rules that apply to its rows.
type TableSpec struct {
	Name          string
	SheetName     string
	Marker        string
	Mandatory     bool
	TrustedSource bool
	// UniqueIdentity requires each normalized identity to appear once.
	// Recipe lines reuse ingredient names across products, so not every
	// table carries it.
	UniqueIdentity bool
	// ReferenceMarker names the field whose values must exist in the
	// trusted universe. Empty means the table has no cross-reference.
	ReferenceMarker string
	Rules           []FieldRule
}

// Catalog is the fixed set of logical tables expected in a workbook.
type Catalog []TableSpec

// DefaultCatalog describes the standard restaurant onboarding template:
// stock and manufactured items form the trusted ingredient universe,
// recipe lines reference into it, products and employees stand alone.
func DefaultCatalog() Catalog {
	return Catalog{
		{
			Name:           "stock_items",
			SheetName:      "Stock Items",
			Marker:         "stock item name",
			Mandatory:      true,
			TrustedSource:  true,
			UniqueIdentity: true,
			Rules: []FieldRule{
				{Kind: RulePresence, FieldMarker: "stock item name"},
				{Kind: RuleNumeric, FieldMarker: "unit cost"},
				{Kind: RuleCode, FieldMarker: "plu code"},
			},
		},
		{
			Name:           "manufactured_items",
			SheetName:      "Manufactured Items",
			Marker:         "manufactured item name",
			TrustedSource:  true,
			UniqueIdentity: true,
			Rules: []FieldRule{
				{Kind: RulePresence, FieldMarker: "manufactured item name"},
				{Kind: RuleNumeric, FieldMarker: "batch cost"},
			},
		},
		{
			Name:           "products",
			SheetName:      "Products",
			Marker:         "product name",
			Mandatory:      true,
			UniqueIdentity: true,
			Rules: []FieldRule{
				{Kind: RulePresence, FieldMarker: "product name"},
				{Kind: RuleNumeric, FieldMarker: "selling price"},
				{Kind: RuleCode, FieldMarker: "plu code"},
				{Kind: RuleHierarchy, FieldMarker: "menu path", OuterMarker: "menu", InnerMarker: "category"},
			},
		},
		{
			Name:            "recipes",
			SheetName:       "Recipes",
			Marker:          "ingredient name",
			ReferenceMarker: "ingredient name",
			Rules: []FieldRule{
				{Kind: RulePresence, FieldMarker: "product name"},
				{Kind: RuleNumeric, FieldMarker: "quantity"},
			},
		},
		{
			Name:           "employees",
			SheetName:      "Employees",
			Marker:         "employee name",
			UniqueIdentity: true,
			Rules: []FieldRule{
				{Kind: RulePresence, FieldMarker: "employee name"},
				{Kind: RuleNumeric, FieldMarker: "pay rate"},
				{Kind: RuleCode, FieldMarker: "employee code"},
			},
		},
	}
}
