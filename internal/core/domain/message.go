package domain

import "time"

// Message is a direct message between two users.
type Message struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	SenderID    string    `json:"sender_id" bson:"sender_id"`
	RecipientID string    `json:"recipient_id" bson:"recipient_id"`
	Body        string    `json:"body" bson:"body"`
	Read        bool      `json:"read" bson:"read"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}
