package domain

import "time"

// Rating is a 1-5 score one user leaves on another, optionally about a startup.
type Rating struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	RaterID   string    `json:"rater_id" bson:"rater_id"`
	SubjectID string    `json:"subject_id" bson:"subject_id"`
	StartupID string    `json:"startup_id,omitempty" bson:"startup_id,omitempty"`
	Score     int       `json:"score" bson:"score"`
	Comment   string    `json:"comment,omitempty" bson:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
