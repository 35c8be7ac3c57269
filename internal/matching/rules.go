package matching

import (
	"strings"

	"github.com/raiseready/match-engine/internal/models"
)

// DealBreakerRule is an investor-stated exclusion condition recognized by the
// engine. Extraction text is mapped to rules once, at normalization time, so
// the eligibility filter never touches free text.
type DealBreakerRule int

const (
	// RuleNoB2C excludes founders whose type is "b2c".
	RuleNoB2C DealBreakerRule = iota
	// RuleRequiresRevenue excludes founders without revenue.
	RuleRequiresRevenue
	// RuleNoHardware excludes founders whose type includes "hardware".
	RuleNoHardware
)

// String returns the rule name for diagnostics and logging
func (r DealBreakerRule) String() string {
	switch r {
	case RuleNoB2C:
		return "no_b2c"
	case RuleRequiresRevenue:
		return "requires_revenue"
	case RuleNoHardware:
		return "no_hardware"
	default:
		return "unknown"
	}
}

// Excludes reports whether the rule disqualifies the given founder.
func (r DealBreakerRule) Excludes(profile models.FounderProfile) bool {
	switch r {
	case RuleNoB2C:
		return profile.FounderType == "b2c"
	case RuleRequiresRevenue:
		return !profile.HasRevenue
	case RuleNoHardware:
		return strings.Contains(profile.FounderType, "hardware")
	default:
		return false
	}
}

// clausePatterns documents the mapping from extraction text to rules. The
// extraction step produces free-form clauses; only these phrases are
// recognized. Anything else is inert so that unrecognized clause text can
// never silently exclude every candidate.
var clausePatterns = []struct {
	substring string
	rule      DealBreakerRule
}{
	{"no b2c", RuleNoB2C},
	{"must have revenue", RuleRequiresRevenue},
	{"no hardware", RuleNoHardware},
}

// ParseDealBreakers maps free-text deal-breaker clauses to the recognized
// rule set. Clauses matching no known pattern are dropped. A clause matching
// more than one pattern yields each matched rule.
func ParseDealBreakers(clauses []string) []DealBreakerRule {
	var rules []DealBreakerRule
	for _, clause := range clauses {
		lower := strings.ToLower(clause)
		for _, p := range clausePatterns {
			if strings.Contains(lower, p.substring) {
				rules = append(rules, p.rule)
			}
		}
	}
	return rules
}
