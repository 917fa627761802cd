package domain

import "time"

// PitchStatus is the lifecycle state of a pitch sent to an investor.
type PitchStatus string

const (
	PitchPending    PitchStatus = "pending"
	PitchViewed     PitchStatus = "viewed"
	PitchInterested PitchStatus = "interested"
	PitchRejected   PitchStatus = "rejected"
)

// pitchTransitions defines the allowed state machine transitions.
// interested and rejected are terminal.
var pitchTransitions = map[PitchStatus][]PitchStatus{
	PitchPending: {PitchViewed, PitchInterested, PitchRejected},
	PitchViewed:  {PitchInterested, PitchRejected},
}

// CanTransitionTo reports whether a transition from the current status to next is valid.
func (s PitchStatus) CanTransitionTo(next PitchStatus) bool {
	for _, allowed := range pitchTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ValidPitchStatus reports whether s is an enumerated pitch status.
func ValidPitchStatus(s PitchStatus) bool {
	switch s {
	case PitchPending, PitchViewed, PitchInterested, PitchRejected:
		return true
	}
	return false
}

// Pitch is a founder's approach to a single investor about one startup.
// FounderID owns the record; only InvestorID may move the status.
type Pitch struct {
	ID         string      `json:"id" bson:"_id,omitempty"`
	StartupID  string      `json:"startup_id" bson:"startup_id"`
	FounderID  string      `json:"founder_id" bson:"founder_id"`
	InvestorID string      `json:"investor_id" bson:"investor_id"`
	Status     PitchStatus `json:"status" bson:"status"`
	Message    string      `json:"message,omitempty" bson:"message,omitempty"`
	CreatedAt  time.Time   `json:"created_at" bson:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at" bson:"updated_at"`
}

// PitchSummary expands the referenced startup and parties for display.
type PitchSummary struct {
	Pitch
	Startup  *Startup       `json:"startup,omitempty"`
	Founder  *PublicProfile `json:"founder,omitempty"`
	Investor *PublicProfile `json:"investor,omitempty"`
}
