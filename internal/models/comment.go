package models

import "time"

// Comment attaches free text to either a review or a title; exactly
// one of ReviewID/MovieSeriesID is set.
type Comment struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	ReviewID      string    `json:"review_id,omitempty"`
	MovieSeriesID string    `json:"movie_series_id,omitempty"`
	Content       string    `json:"content"`
	CreatedAt     time.Time `json:"created_at"`
}
