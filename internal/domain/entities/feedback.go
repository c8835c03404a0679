package entities

import "time"

// Feedback is a user's thumbs-up/down on an answer they received.
type Feedback struct {
	ID        string    `json:"id"`
	Question  string    `json:"question"`
	Helpful   bool      `json:"helpful"`
	Language  string    `json:"language"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
