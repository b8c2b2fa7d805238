package workbook

// ValidNameUniverse is the immutable set of normalized identifiers that
// dependent tables are allowed to reference. It is assembled once per
// validation run from the trusted source tables and then only read.
type ValidNameUniverse struct {
	names map[string]struct{}
}

// NewUniverse builds a universe from already-normalized identifiers.
func NewUniverse(normalized ...string) ValidNameUniverse {
	names := make(map[string]struct{}, len(normalized))
	for _, n := range normalized {
		if n == "" {
			continue
		}
		names[n] = struct{}{}
	}
	return ValidNameUniverse{names: names}
}

// UniverseFromTables builds a universe from the identity column of one or
// more trusted tables, normalizing each identifier. Absent (nil) tables
// contribute nothing.
func UniverseFromTables(tables ...*LogicalTable) ValidNameUniverse {
	u := ValidNameUniverse{names: make(map[string]struct{})}
	for _, t := range tables {
		if t == nil {
			continue
		}
		for _, row := range t.Rows {
			n := NormalizeIdentifier(row.Get(t.IdentityColumn))
			if n != "" {
				u.names[n] = struct{}{}
			}
		}
	}
	return u
}

// Contains reports whether a normalized identifier is in the universe.
func (u ValidNameUniverse) Contains(normalized string) bool {
	_, ok := u.names[normalized]
	return ok
}

// Names returns the universe members in no particular order. The slice
// is a copy; callers cannot reach the underlying set.
func (u ValidNameUniverse) Names() []string {
	out := make([]string, 0, len(u.names))
	for n := range u.names {
		out = append(out, n)
	}
	return out
}

// Size returns the number of distinct identifiers.
func (u ValidNameUniverse) Size() int {
	return len(u.names)
}
