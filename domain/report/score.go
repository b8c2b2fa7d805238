package report

// Severity weights and band boundaries are the single source of truth
// for scoring. Rules never embed these numbers.
const (
	WeightCritical = 10
	WeightWarning  = 1
	WeightInfo     = 0

	MaxScore = 100

	// Band boundaries (score strictly greater than the boundary).
	BandGoodAbove           = 80
	BandNeedsAttentionAbove = 50
)

// Band is the human-facing summary of a score.
type Band string

const (
	BandPristine       Band = "pristine"
	BandGood           Band = "good"
	BandNeedsAttention Band = "needs_attention"
	BandBlocking       Band = "blocking"
)

// Weight returns the scoring weight for a severity.
func Weight(s Severity) int {
	switch s {
	case SeverityCritical:
		return WeightCritical
	case SeverityWarning:
		return WeightWarning
	default:
		return WeightInfo
	}
}

// ComputeScore reduces MaxScore by the summed issue weights, clamped at
// zero. mandatoryEmpty forces a hard floor of zero before clamping: a
// required table with no usable rows blocks the import no matter how
// clean everything else is.
func ComputeScore(issues []Issue, mandatoryEmpty bool) int {
	if mandatoryEmpty {
		return 0
	}
	score := MaxScore
	for _, iss := range issues {
		score -= Weight(iss.Severity)
	}
	if score < 0 {
		score = 0
	}
	return score
}

// BandFor maps a score onto its status band.
func BandFor(score int) Band {
	switch {
	case score >= MaxScore:
		return BandPristine
	case score > BandGoodAbove:
		return BandGood
	case score > BandNeedsAttentionAbove:
		return BandNeedsAttention
	default:
		return BandBlocking
	}
}
