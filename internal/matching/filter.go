package matching

import (
	"github.com/raiseready/match-engine/internal/models"
)

// ExclusionReason explains why a candidate pair was rejected before scoring.
// Diagnostic only, never surfaced to end users.
type ExclusionReason string

const (
	// ExcludedNone means the pair is eligible
	ExcludedNone ExclusionReason = ""
	// ExcludedBelowReadiness means the artifact fell below the
	// investor's readiness threshold
	ExcludedBelowReadiness ExclusionReason = "below_readiness_threshold"
	// ExcludedDealBreaker means a deal-breaker rule matched the founder
	ExcludedDealBreaker ExclusionReason = "deal_breaker"
)

// CheckEligibility applies the hard gates that exclude a candidate pair
// before scoring. The readiness gate runs strictly first: a founder below
// the bar is never evaluated against deal breakers. Any single matching
// deal-breaker rule rejects.
func CheckEligibility(artifact models.Artifact, profile models.FounderProfile, criteria InvestorCriteria) (bool, ExclusionReason) {
	if artifact.ReadinessScore < criteria.MinReadinessScore {
		return false, ExcludedBelowReadiness
	}

	for _, rule := range criteria.DealBreakers {
		if rule.Excludes(profile) {
			return false, ExcludedDealBreaker
		}
	}

	return true, ExcludedNone
}
