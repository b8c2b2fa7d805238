package ports

// Match is one approximate-match candidate with its similarity score
// on a [0,100] scale.
type Match struct {
	Candidate string
	Score     int
}

// SimilarityMatcher is the approximate-matching capability used to turn
// ghost references into fix suggestions. Implementations are selected
// once at startup; when the capability is unavailable a null matcher is
// installed and the engine runs without suggestions.
type SimilarityMatcher interface {
	// BestMatch returns the closest candidate and its score, or
	// ok=false when there are no candidates or the capability is
	// unavailable.
	BestMatch(target string, candidates []string) (Match, bool)

	// Available reports whether real matching is in effect.
	Available() bool
}
