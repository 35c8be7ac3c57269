package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Artifact represents a scored pitch deck submitted by a founder.
// Artifacts are immutable once scored; a revised deck is stored as a new
// version rather than mutated in place.
type Artifact struct {
	ID             uuid.UUID  `json:"id" db:"id"`
	FounderID      uuid.UUID  `json:"founder_id" db:"founder_id"`
	ReadinessScore int        `json:"readiness_score" db:"readiness_score"`
	Sectors        StringList `json:"sectors" db:"sectors"`
	Stages         StringList `json:"stages" db:"stages"`
	Geography      StringList `json:"geography" db:"geography"`
	Version        int        `json:"version" db:"version"`
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`
}

// FounderProfile represents the founder attributes read by the matching
// engine. Owned and mutated by the founder via profile management.
type FounderProfile struct {
	FounderID    uuid.UUID `json:"founder_id" db:"founder_id"`
	FundingStage string    `json:"funding_stage" db:"funding_stage"`
	TargetMarket string    `json:"target_market" db:"target_market"`
	FounderType  string    `json:"founder_type" db:"founder_type"`
	HasRevenue   bool      `json:"has_revenue" db:"has_revenue"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// InvestorRecord represents an investor's static profile preferences.
type InvestorRecord struct {
	ID                uuid.UUID  `json:"id" db:"id"`
	Name              string     `json:"name" db:"name"`
	Geography         StringList `json:"geography" db:"geography"`
	Sectors           StringList `json:"sectors" db:"sectors"`
	Stages            StringList `json:"stages" db:"stages"`
	MinReadinessScore *int       `json:"min_readiness_score" db:"min_readiness_score"`
	SDGs              IntList    `json:"sdgs" db:"sdgs"`
	CreatedAt         time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at" db:"updated_at"`
}

// DiscoveryExtraction holds structured criteria extracted from an investor's
// conversational discovery session. Overlays the static record field-by-field
// when present and non-empty.
type DiscoveryExtraction struct {
	InvestorID      uuid.UUID  `json:"investor_id" db:"investor_id"`
	RequiredSectors StringList `json:"required_sectors" db:"required_sectors"`
	PreferredStages StringList `json:"preferred_stages" db:"preferred_stages"`
	GeographyFocus  StringList `json:"geography_focus" db:"geography_focus"`
	DealBreakers    StringList `json:"deal_breakers" db:"deal_breakers"`
	CreatedAt       time.Time  `json:"created_at" db:"created_at"`
}

// PooledInvestor pairs an investor record with its most recent discovery
// extraction, if one exists.
type PooledInvestor struct {
	Record     InvestorRecord
	Extraction *DiscoveryExtraction
}

// MatchStatus represents match lifecycle status values
type MatchStatus string

const (
	// MatchSuggested is the status assigned by the engine. External
	// workflows own any later transitions.
	MatchSuggested MatchStatus = "suggested"
)

// PersistedMatch represents a stored founder/investor match. At most one row
// exists per (founder, investor, artifact) triple; re-matching replaces score
// and reasons in place.
type PersistedMatch struct {
	ID           uuid.UUID   `json:"id" db:"id"`
	FounderID    uuid.UUID   `json:"founder_id" db:"founder_id"`
	InvestorID   uuid.UUID   `json:"investor_id" db:"investor_id"`
	ArtifactID   uuid.UUID   `json:"artifact_id" db:"artifact_id"`
	Score        int         `json:"score" db:"match_score"`
	Reasons      StringList  `json:"reasons" db:"match_reasons"`
	Status       MatchStatus `json:"status" db:"status"`
	InvestorName string      `json:"investor_name,omitempty" db:"-"`
	CreatedAt    time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at" db:"updated_at"`
}

// StringList represents a list of strings stored as a JSONB column
type StringList []string

// Value implements driver.Valuer for StringList
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner for StringList
func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("cannot scan %T into StringList", value)
	}

	return json.Unmarshal(bytes, l)
}

// IntList represents a list of integers stored as a JSONB column
type IntList []int

// Value implements driver.Valuer for IntList
func (l IntList) Value() (driver.Value, error) {
	if l == nil {
		l = IntList{}
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner for IntList
func (l *IntList) Scan(value interface{}) error {
	if value == nil {
		*l = IntList{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("cannot scan %T into IntList", value)
	}

	return json.Unmarshal(bytes, l)
}
