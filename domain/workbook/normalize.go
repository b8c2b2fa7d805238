package workbook

import (
	"regexp"
	"strings"
)

// Classification tags that templates append to ingredient names to mark
// where an item comes from. They carry no identity: "Tomato (Raw)" and
// "Tomato" are the same stock item for referential purposes.
var classificationTags = regexp.MustCompile(`(?i)\((?:raw|manufactured)\)`)

// NormalizeIdentifier canonicalizes a join-key identifier: strips the
// known classification tags anywhere in the string (case-insensitive),
// collapses the doubled spaces that stripping leaves behind, and trims.
// Idempotent: NormalizeIdentifier(NormalizeIdentifier(x)) ==
// NormalizeIdentifier(x). Nothing beyond the tags is discarded.
func NormalizeIdentifier(raw string) string {
	s := classificationTags.ReplaceAllString(raw, "")
	for strings.Contains(s, "  ") {
		s = strings.ReplaceAll(s, "  ", " ")
	}
	return strings.TrimSpace(s)
}
