package fuzzy

import (
	"sync"

	fuzzywuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"posprep/internal/logging"
	"posprep/ports"
)

// Matcher scores approximate string similarity on a [0,100] scale using
// a weighted ratio, the same scale the suggestion threshold is defined
// against.
type Matcher struct{}

// NewMatcher creates the real similarity matcher.
func NewMatcher() *Matcher {
	return &Matcher{}
}

var _ ports.SimilarityMatcher = (*Matcher)(nil)

// BestMatch returns the highest-scoring candidate for the target.
func (m *Matcher) BestMatch(target string, candidates []string) (ports.Match, bool) {
	best := ports.Match{Score: -1}
	for _, c := range candidates {
		score := fuzzywuzzy.WRatio(target, c)
		if score > best.Score {
			best = ports.Match{Candidate: c, Score: score}
		}
	}
	if best.Score < 0 {
		return ports.Match{}, false
	}
	return best, true
}

// Available reports that real matching is in effect.
func (m *Matcher) Available() bool {
	return true
}

// NullMatcher is the explicit no-op capability installed when
// approximate matching is switched off. It logs a single notice and
// then emits nothing; validation continues unaffected.
type NullMatcher struct {
	logger *logging.Logger
	once   sync.Once
}

// NewNullMatcher creates the degraded matcher.
func NewNullMatcher(logger *logging.Logger) *NullMatcher {
	if logger == nil {
		logger = logging.DefaultLogger
	}
	return &NullMatcher{logger: logger}
}

var _ ports.SimilarityMatcher = (*NullMatcher)(nil)

// BestMatch never returns a match.
func (m *NullMatcher) BestMatch(string, []string) (ports.Match, bool) {
	m.once.Do(func() {
		m.logger.Warn("approximate matching unavailable, suggestions disabled for this run")
	})
	return ports.Match{}, false
}

// Available reports that matching is degraded.
func (m *NullMatcher) Available() bool {
	return false
}

// Select picks the matcher once at startup. Suggestions are an optional
// capability: when disabled the engine gets the null object, never a
// nil.
func Select(enabled bool, logger *logging.Logger) ports.SimilarityMatcher {
	if enabled {
		return NewMatcher()
	}
	return NewNullMatcher(logger)
}
