package matching

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"

	"github.com/raiseready/match-engine/internal/models"
)

func TestScoreFullExample(t *testing.T) {
	// Canonical vector: geography 30 + sector 25 + stage 15 + impact 20 +
	// base quality bonus 5 = 95 for a readiness of 85 against a bar of 70.
	candidate := Candidate{
		Artifact: models.Artifact{ReadinessScore: 85},
		Profile: models.FounderProfile{
			TargetMarket: "Kenya",
			FounderType:  "social",
			FundingStage: "seed",
			HasRevenue:   true,
		},
		Criteria: InvestorCriteria{
			Geography:         []string{"global"},
			Sectors:           []string{"social"},
			Stages:            []string{"seed"},
			MinReadinessScore: 70,
			HasImpactFocus:    true,
		},
	}

	score, reasons := ScoreCandidate(candidate, DefaultScoreWeights())
	if score != 95 {
		t.Errorf("Expected score 95, got %d", score)
	}

	want := []string{
		"Invests in Kenya",
		"Focuses on your sector",
		"Invests at seed stage",
		"Aligned on impact goals",
		"Meets their quality threshold",
	}
	if diff := cmp.Diff(want, reasons); diff != "" {
		t.Errorf("Reasons mismatch (-want +got):\n%s", diff)
	}
}

func TestScoreGeographyComponent(t *testing.T) {
	w := DefaultScoreWeights()
	base := Candidate{
		Artifact: models.Artifact{ReadinessScore: 50},
		Profile:  models.FounderProfile{TargetMarket: "Kenya"},
	}

	tests := []struct {
		name      string
		geography []string
		fires     bool
	}{
		{"empty list never excludes", nil, true},
		{"global investor", []string{"global"}, true},
		{"direct market match", []string{"Kenya", "Uganda"}, true},
		{"no overlap", []string{"Brazil"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base
			c.Criteria = InvestorCriteria{Geography: tt.geography, MinReadinessScore: 70}
			score, _ := ScoreCandidate(c, w)
			fired := score >= w.Geography
			if fired != tt.fires {
				t.Errorf("Geography fired=%v, want %v (score %d)", fired, tt.fires, score)
			}
		})
	}
}

func TestScoreSectorBidirectionalMatch(t *testing.T) {
	w := DefaultScoreWeights()
	artifact := models.Artifact{ReadinessScore: 50}
	criteria := InvestorCriteria{Sectors: []string{"tech"}, Geography: []string{"Brazil"}, MinReadinessScore: 70}

	// Founder tag contains the required sector.
	score, _ := ScoreCandidate(Candidate{Artifact: artifact, Profile: models.FounderProfile{FounderType: "fintech", TargetMarket: "Kenya"}, Criteria: criteria}, w)
	if score != w.Sector {
		t.Errorf("Expected superstring match to score %d, got %d", w.Sector, score)
	}

	// Required sector contains the founder tag.
	criteria.Sectors = []string{"deep-tech-hardware"}
	score, _ = ScoreCandidate(Candidate{Artifact: artifact, Profile: models.FounderProfile{FounderType: "hardware", TargetMarket: "Kenya"}, Criteria: criteria}, w)
	if score != w.Sector {
		t.Errorf("Expected substring match to score %d, got %d", w.Sector, score)
	}

	// Sector fires at most once even with multiple matching entries.
	criteria.Sectors = []string{"fintech", "tech"}
	score, reasons := ScoreCandidate(Candidate{Artifact: artifact, Profile: models.FounderProfile{FounderType: "fintech", TargetMarket: "Kenya"}, Criteria: criteria}, w)
	if score != w.Sector {
		t.Errorf("Expected single sector contribution %d, got %d", w.Sector, score)
	}
	if len(reasons) != 1 {
		t.Errorf("Expected one reason, got %v", reasons)
	}
}

func TestScoreQualityBonus(t *testing.T) {
	w := DefaultScoreWeights()
	profile := models.FounderProfile{TargetMarket: "Kenya"}
	criteria := InvestorCriteria{Geography: []string{"Brazil"}, MinReadinessScore: 70}

	// At threshold + 10 the higher bonus subsumes the lower.
	score, reasons := ScoreCandidate(Candidate{Artifact: models.Artifact{ReadinessScore: 80}, Profile: profile, Criteria: criteria}, w)
	if score != w.QualityHigh {
		t.Errorf("Expected high bonus %d, got %d", w.QualityHigh, score)
	}
	if len(reasons) != 1 || reasons[0] != "Your deck exceeds their quality bar" {
		t.Errorf("Unexpected reasons %v", reasons)
	}

	// Between threshold and threshold + 10, only the base bonus fires.
	score, _ = ScoreCandidate(Candidate{Artifact: models.Artifact{ReadinessScore: 75}, Profile: profile, Criteria: criteria}, w)
	if score != w.QualityBase {
		t.Errorf("Expected base bonus %d, got %d", w.QualityBase, score)
	}

	// Below threshold neither fires. Eligibility normally screens this
	// out; the scorer must still stay non-negative on its own.
	score, _ = ScoreCandidate(Candidate{Artifact: models.Artifact{ReadinessScore: 60}, Profile: profile, Criteria: criteria}, w)
	if score != 0 {
		t.Errorf("Expected no bonus below threshold, got %d", score)
	}
}

func TestScoreNeverExceeds100(t *testing.T) {
	candidate := Candidate{
		Artifact: models.Artifact{ReadinessScore: 100},
		Profile: models.FounderProfile{
			TargetMarket: "global",
			FounderType:  "social",
			FundingStage: "seed",
		},
		Criteria: InvestorCriteria{
			InvestorID:        uuid.New(),
			Geography:         []string{"global"},
			Sectors:           []string{"social"},
			Stages:            []string{"seed"},
			MinReadinessScore: 70,
			HasImpactFocus:    true,
		},
	}

	score, reasons := ScoreCandidate(candidate, DefaultScoreWeights())
	if score != 100 {
		t.Errorf("Expected maximum attainable score 100, got %d", score)
	}
	if len(reasons) != 5 {
		t.Errorf("Expected five reasons at full score, got %v", reasons)
	}
}

func TestScoreEmptyProfileDefaults(t *testing.T) {
	// Absent target market degrades to "global", absent stage to "seed".
	candidate := Candidate{
		Artifact: models.Artifact{ReadinessScore: 50},
		Profile:  models.FounderProfile{},
		Criteria: InvestorCriteria{
			Geography:         []string{"global"},
			Stages:            []string{"seed"},
			MinReadinessScore: 70,
		},
	}

	score, reasons := ScoreCandidate(candidate, DefaultScoreWeights())
	if score != 45 {
		t.Errorf("Expected geography + stage = 45, got %d", score)
	}
	if reasons[0] != "Invests in global" {
		t.Errorf("Expected global market default, got %q", reasons[0])
	}
}
