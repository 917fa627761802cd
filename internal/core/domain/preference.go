package domain

import "time"

// InvestorPreference holds an investor's declared matching filters.
// Display-side only: nothing in the backend enforces them.
type InvestorPreference struct {
	ID         string         `json:"id" bson:"_id,omitempty"`
	InvestorID string         `json:"investor_id" bson:"investor_id"`
	Domains    []string       `json:"domains,omitempty" bson:"domains,omitempty"`
	Stages     []FundingStage `json:"stages,omitempty" bson:"stages,omitempty"`
	Locations  []string       `json:"locations,omitempty" bson:"locations,omitempty"`
	MinEquity  float64        `json:"min_equity,omitempty" bson:"min_equity,omitempty"`
	MaxEquity  float64        `json:"max_equity,omitempty" bson:"max_equity,omitempty"`
	UpdatedAt  time.Time      `json:"updated_at" bson:"updated_at"`
}
