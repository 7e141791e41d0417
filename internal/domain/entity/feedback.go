package entity

import "time"

const (
	MinRating = 1
	MaxRating = 5
)

// Feedback is a registered attendee's review of an event.
type Feedback struct {
	ID        string    `json:"id"`
	EventID   string    `json:"event_id"`
	UserID    string    `json:"user_id,omitempty"` // Hidden when Anonymous.
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	Anonymous bool      `json:"anonymous"`
	CreatedAt time.Time `json:"created_at"`
}

// ValidRating reports whether rating is within MinRating..MaxRating.
func ValidRating(rating int) bool {
	return rating >= MinRating && rating <= MaxRating
}

// FeedbackSummary is the public view of an event's feedback.
type FeedbackSummary struct {
	EventID       string      `json:"event_id"`
	Count         int         `json:"count"`
	AverageRating float64     `json:"average_rating"`
	Items         []*Feedback `json:"items"`
}
