package domain

import "time"

// Meeting is a scheduled call between a founder and an investor,
// optionally tied to a pitch.
type Meeting struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	OrganizerID string    `json:"organizer_id" bson:"organizer_id"`
	AttendeeID  string    `json:"attendee_id" bson:"attendee_id"`
	PitchID     string    `json:"pitch_id,omitempty" bson:"pitch_id,omitempty"`
	Title       string    `json:"title" bson:"title"`
	ScheduledAt time.Time `json:"scheduled_at" bson:"scheduled_at"`
	MeetingLink string    `json:"meeting_link,omitempty" bson:"meeting_link,omitempty"`
	Notes       string    `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}
