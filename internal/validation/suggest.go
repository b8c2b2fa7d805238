package validation

import (
	"posprep/domain/report"
	"posprep/domain/workbook"
	"posprep/ports"
)

// AttachSuggestions fills SuggestedValue on ghost-reference issues using
// the similarity matcher. A suggestion is attached only when the best
// universe match scores at or above the threshold; below it the issue
// stays suggestion-free rather than guessing.
func AttachSuggestions(issues []report.Issue, universe workbook.ValidNameUniverse, matcher ports.SimilarityMatcher, threshold int) []report.Issue {
	hasGhost := false
	for i := range issues {
		if issues[i].Kind == report.KindGhostReference {
			hasGhost = true
			break
		}
	}
	if !hasGhost {
		return issues
	}
	if !matcher.Available() {
		// One call so the null matcher logs its capability notice.
		matcher.BestMatch("", nil)
		return issues
	}

	candidates := universe.Names()
	for i := range issues {
		if issues[i].Kind != report.KindGhostReference || issues[i].SuggestedValue != "" {
			continue
		}
		best, ok := matcher.BestMatch(workbook.NormalizeIdentifier(issues[i].Value), candidates)
		if ok && best.Score >= threshold {
			issues[i].SuggestedValue = best.Candidate
		}
	}
	return issues
}
