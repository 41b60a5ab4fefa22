package models

import "time"

// Review rates a title on a 1..10 scale with an optional comment.
type Review struct {
	ID            string       `json:"id"`
	UserID        string       `json:"user_id"`
	MovieSeriesID string       `json:"movie_series_id"`
	Rating        int          `json:"rating"`
	Comment       string       `json:"comment,omitempty"`
	User          *UserSummary `json:"user,omitempty"` // reviewer summary, filled on reads
	CreatedAt     time.Time    `json:"created_at"`
}
