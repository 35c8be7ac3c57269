package matching

import (
	"sort"
)

// Default ranking policy. Both are configuration, not mechanism; the service
// layer overrides them from the environment.
const (
	DefaultMinScore    = 40
	DefaultResultLimit = 10
)

// Rank returns the scored matches admitted by the minimum-score threshold,
// sorted by score descending and truncated to limit. Ties break on investor
// ID ascending so output is deterministic regardless of pool iteration order.
func Rank(scored []ScoredMatch, minScore, limit int) []ScoredMatch {
	if minScore <= 0 {
		minScore = DefaultMinScore
	}
	if limit <= 0 {
		limit = DefaultResultLimit
	}

	admitted := make([]ScoredMatch, 0, len(scored))
	for _, m := range scored {
		if m.Score >= minScore {
			admitted = append(admitted, m)
		}
	}

	sort.Slice(admitted, func(i, j int) bool {
		if admitted[i].Score != admitted[j].Score {
			return admitted[i].Score > admitted[j].Score
		}
		return admitted[i].InvestorID.String() < admitted[j].InvestorID.String()
	})

	if len(admitted) > limit {
		admitted = admitted[:limit]
	}

	return admitted
}
