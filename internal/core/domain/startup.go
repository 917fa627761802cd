package domain

import "time"

// FundingStage is how far along a startup claims to be.
type FundingStage string

const (
	StageIdea    FundingStage = "idea"
	StageMVP     FundingStage = "MVP"
	StageRevenue FundingStage = "revenue"
)

// ValidStage reports whether s is an enumerated funding stage.
func ValidStage(s FundingStage) bool {
	return s == StageIdea || s == StageMVP || s == StageRevenue
}

// Startup is a founder-owned listing.
type Startup struct {
	ID            string       `json:"id" bson:"_id,omitempty"`
	FounderID     string       `json:"founder_id" bson:"founder_id"`
	Name          string       `json:"name" bson:"name"`
	Domain        string       `json:"domain" bson:"domain"`
	Stage         FundingStage `json:"stage" bson:"stage"`
	Description   string       `json:"description,omitempty" bson:"description,omitempty"`
	FundingTarget float64      `json:"funding_target,omitempty" bson:"funding_target,omitempty"`
	EquityOffered float64      `json:"equity_offered,omitempty" bson:"equity_offered,omitempty"`
	PitchDeckURL  string       `json:"pitch_deck_url,omitempty" bson:"pitch_deck_url,omitempty"`
	VideoURL      string       `json:"video_url,omitempty" bson:"video_url,omitempty"`
	CreatedAt     time.Time    `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at" bson:"updated_at"`
}

// StartupSummary is a Startup with its founder's public profile embedded,
// for list/read responses that need display data.
type StartupSummary struct {
	Startup
	Founder *PublicProfile `json:"founder,omitempty"`
}
