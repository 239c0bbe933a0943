// Package search proposes a stored title when an exact-title lookup misses.
package search

import (
	"log/slog"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Suggester ranks stored titles against a query that found nothing.
type Suggester struct {
	logger *slog.Logger
}

// NewSuggester creates a new suggester
func NewSuggester(logger *slog.Logger) *Suggester {
	if logger == nil {
		logger = slog.Default()
	}
	return &Suggester{logger: logger}
}

// Suggest returns the closest title to query, if any is close enough.
// Subsequence matches (case-insensitive) win; otherwise the title with the
// smallest edit distance within a third of the query length is used.
func (s *Suggester) Suggest(query string, titles []string) (string, bool) {
	if query == "" || len(titles) == 0 {
		return "", false
	}

	matches := fuzzy.RankFindFold(query, titles)
	if len(matches) > 0 {
		// Lower distance first, then insertion order
		sort.SliceStable(matches, func(i, j int) bool {
			if matches[i].Distance != matches[j].Distance {
				return matches[i].Distance < matches[j].Distance
			}
			return matches[i].OriginalIndex < matches[j].OriginalIndex
		})
		s.logger.Debug("suggestion by subsequence", "query", query, "title", matches[0].Target)
		return matches[0].Target, true
	}

	limit := len(query) / 3
	if limit < 1 {
		limit = 1
	}

	best, bestDist := "", limit+1
	lowerQuery := strings.ToLower(query)
	for _, title := range titles {
		d := fuzzy.LevenshteinDistance(lowerQuery, strings.ToLower(title))
		if d < bestDist {
			best, bestDist = title, d
		}
	}

	if best == "" {
		return "", false
	}
	s.logger.Debug("suggestion by edit distance", "query", query, "title", best, "distance", bestDist)
	return best, true
}
