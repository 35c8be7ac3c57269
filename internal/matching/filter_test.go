package matching

import (
	"testing"

	"github.com/raiseready/match-engine/internal/models"
)

func TestReadinessGate(t *testing.T) {
	criteria := InvestorCriteria{MinReadinessScore: 70}
	profile := models.FounderProfile{HasRevenue: true}

	eligible, reason := CheckEligibility(models.Artifact{ReadinessScore: 69}, profile, criteria)
	if eligible {
		t.Error("Expected artifact below threshold to be rejected")
	}
	if reason != ExcludedBelowReadiness {
		t.Errorf("Expected %q, got %q", ExcludedBelowReadiness, reason)
	}

	eligible, reason = CheckEligibility(models.Artifact{ReadinessScore: 70}, profile, criteria)
	if !eligible {
		t.Errorf("Expected artifact at threshold to pass, got %q", reason)
	}
}

func TestReadinessGateRunsBeforeDealBreakers(t *testing.T) {
	// A founder below the bar must report the readiness exclusion even
	// when a deal breaker would also match.
	criteria := InvestorCriteria{
		MinReadinessScore: 70,
		DealBreakers:      []DealBreakerRule{RuleRequiresRevenue},
	}
	profile := models.FounderProfile{HasRevenue: false}

	eligible, reason := CheckEligibility(models.Artifact{ReadinessScore: 50}, profile, criteria)
	if eligible {
		t.Error("Expected rejection")
	}
	if reason != ExcludedBelowReadiness {
		t.Errorf("Expected readiness gate to fire first, got %q", reason)
	}
}

func TestDealBreakerRejection(t *testing.T) {
	criteria := InvestorCriteria{
		MinReadinessScore: 70,
		DealBreakers:      []DealBreakerRule{RuleNoB2C, RuleRequiresRevenue},
	}
	artifact := models.Artifact{ReadinessScore: 85}

	// Any single matching rule rejects.
	eligible, reason := CheckEligibility(artifact, models.FounderProfile{FounderType: "saas", HasRevenue: false}, criteria)
	if eligible {
		t.Error("Expected pre-revenue founder to be rejected")
	}
	if reason != ExcludedDealBreaker {
		t.Errorf("Expected %q, got %q", ExcludedDealBreaker, reason)
	}

	eligible, _ = CheckEligibility(artifact, models.FounderProfile{FounderType: "saas", HasRevenue: true}, criteria)
	if !eligible {
		t.Error("Expected founder clearing all rules to pass")
	}
}

func TestEmptyDealBreakersNeverReject(t *testing.T) {
	criteria := InvestorCriteria{MinReadinessScore: 70}
	profile := models.FounderProfile{FounderType: "b2c", HasRevenue: false}

	eligible, _ := CheckEligibility(models.Artifact{ReadinessScore: 70}, profile, criteria)
	if !eligible {
		t.Error("Expected pair with no deal breakers to pass rule 2")
	}
}
