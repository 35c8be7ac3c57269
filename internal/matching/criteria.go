package matching

import (
	"github.com/google/uuid"

	"github.com/raiseready/match-engine/internal/models"
)

// DefaultMinReadiness is the readiness-score threshold applied when an
// investor has not set one.
const DefaultMinReadiness = 70

// InvestorCriteria is the normalized, merged view of an investor's
// preferences used for one matching run. Derived, never stored.
type InvestorCriteria struct {
	InvestorID        uuid.UUID
	InvestorName      string
	Geography         []string
	Sectors           []string
	Stages            []string
	MinReadinessScore int
	DealBreakers      []DealBreakerRule
	HasImpactFocus    bool
}

// NormalizeCriteria merges an investor's static record with its most recent
// discovery extraction, if any. Per field, the extraction value wins when
// non-empty, otherwise the static record value is used. Missing data always
// resolves to a neutral default that never excludes a candidate.
// defaultMinReadiness applies when the record leaves the threshold unset;
// pass 0 to use DefaultMinReadiness.
func NormalizeCriteria(rec models.InvestorRecord, ext *models.DiscoveryExtraction, defaultMinReadiness int) InvestorCriteria {
	if defaultMinReadiness <= 0 {
		defaultMinReadiness = DefaultMinReadiness
	}

	criteria := InvestorCriteria{
		InvestorID:        rec.ID,
		InvestorName:      rec.Name,
		Geography:         rec.Geography,
		Sectors:           rec.Sectors,
		Stages:            rec.Stages,
		MinReadinessScore: defaultMinReadiness,
		HasImpactFocus:    len(rec.SDGs) > 0,
	}

	if rec.MinReadinessScore != nil {
		criteria.MinReadinessScore = *rec.MinReadinessScore
	}

	if ext != nil {
		if len(ext.GeographyFocus) > 0 {
			criteria.Geography = ext.GeographyFocus
		}
		if len(ext.RequiredSectors) > 0 {
			criteria.Sectors = ext.RequiredSectors
		}
		if len(ext.PreferredStages) > 0 {
			criteria.Stages = ext.PreferredStages
		}
		// Deal breakers come only from the extraction. No extraction
		// means no deal breakers.
		criteria.DealBreakers = ParseDealBreakers(ext.DealBreakers)
	}

	return criteria
}
