package domain

import "time"

// Notification kinds produced by the dispatcher.
const (
	NotifyPitchReceived = "pitch_received"
	NotifyPitchStatus   = "pitch_status"
	NotifyMessage       = "message"
	NotifyMeeting       = "meeting"
	NotifyRating        = "rating"
)

// Notification is a per-recipient record of something that happened.
type Notification struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	RecipientID string    `json:"recipient_id" bson:"recipient_id"`
	ActorID     string    `json:"actor_id,omitempty" bson:"actor_id,omitempty"`
	Kind        string    `json:"kind" bson:"kind"`
	Text        string    `json:"text" bson:"text"`
	PitchID     string    `json:"pitch_id,omitempty" bson:"pitch_id,omitempty"`
	Read        bool      `json:"read" bson:"read"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}
