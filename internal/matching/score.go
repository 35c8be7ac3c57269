package matching

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/raiseready/match-engine/internal/models"
)

// Candidate is an eligible (artifact, criteria) pair awaiting scoring.
// Ephemeral, exists only within one matching run.
type Candidate struct {
	Artifact models.Artifact
	Profile  models.FounderProfile
	Criteria InvestorCriteria
}

// ScoredMatch is a candidate with its computed score and the reasons shown
// to the investor as match justification.
type ScoredMatch struct {
	InvestorID   uuid.UUID `json:"investor_id"`
	InvestorName string    `json:"investor_name"`
	Score        int       `json:"score"`
	Reasons      []string  `json:"reasons"`
}

// ScoreWeights holds the point values for each scoring component. The sum of
// all components is 100, so a score can never exceed it.
type ScoreWeights struct {
	Geography   int
	Sector      int
	Stage       int
	Impact      int
	QualityHigh int
	QualityBase int
}

// DefaultScoreWeights returns the production weight table
func DefaultScoreWeights() ScoreWeights {
	return ScoreWeights{
		Geography:   30,
		Sector:      25,
		Stage:       15,
		Impact:      20,
		QualityHigh: 10,
		QualityBase: 5,
	}
}

// ScoreCandidate computes the additive match score for an eligible candidate.
// Each component is independent and non-negative, fires at most once, and
// contributes exactly one reason string when it fires. Ineligibility is
// handled entirely by CheckEligibility; nothing here subtracts points.
func ScoreCandidate(c Candidate, w ScoreWeights) (int, []string) {
	score := 0
	var reasons []string

	// Geography: an empty preference list and an explicit "global" focus
	// both mean the investor goes anywhere.
	market := c.Profile.TargetMarket
	if market == "" {
		market = "global"
	}
	if len(c.Criteria.Geography) == 0 || containsString(c.Criteria.Geography, "global") || containsString(c.Criteria.Geography, market) {
		score += w.Geography
		reasons = append(reasons, fmt.Sprintf("Invests in %s", market))
	}

	// Sector: bidirectional substring match between the founder's sector
	// tag and each required sector, so "fintech" pairs with "tech".
	for _, sector := range c.Criteria.Sectors {
		if strings.Contains(c.Profile.FounderType, sector) || strings.Contains(sector, c.Profile.FounderType) {
			score += w.Sector
			reasons = append(reasons, "Focuses on your sector")
			break
		}
	}

	stage := c.Profile.FundingStage
	if stage == "" {
		stage = "seed"
	}
	if containsString(c.Criteria.Stages, stage) {
		score += w.Stage
		reasons = append(reasons, fmt.Sprintf("Invests at %s stage", stage))
	}

	// Impact alignment is a presence-only signal on the investor side.
	if c.Criteria.HasImpactFocus {
		score += w.Impact
		reasons = append(reasons, "Aligned on impact goals")
	}

	// Quality bonus relative to the investor's own threshold. The higher
	// bonus subsumes the lower.
	switch {
	case c.Artifact.ReadinessScore >= c.Criteria.MinReadinessScore+10:
		score += w.QualityHigh
		reasons = append(reasons, "Your deck exceeds their quality bar")
	case c.Artifact.ReadinessScore >= c.Criteria.MinReadinessScore:
		score += w.QualityBase
		reasons = append(reasons, "Meets their quality threshold")
	}

	return score, reasons
}

func containsString(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}
