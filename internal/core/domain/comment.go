package domain

import "time"

// Comment is free text an authenticated user leaves on a startup listing.
type Comment struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	AuthorID  string    `json:"author_id" bson:"author_id"`
	StartupID string    `json:"startup_id" bson:"startup_id"`
	Body      string    `json:"body" bson:"body"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// CommentSummary embeds the author's public profile for display.
type CommentSummary struct {
	Comment
	Author *PublicProfile `json:"author,omitempty"`
}
