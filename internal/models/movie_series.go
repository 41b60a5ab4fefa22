package models

import "time"

// MovieSeries is a movie or series entry. Title is unique; POST acts
// as upsert-by-title.
type MovieSeries struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	ReleaseYear int       `json:"release_year,omitempty"`
	Genres      []string  `json:"genres,omitempty"`
	CreatedBy   string    `json:"created_by,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// TitleDetail is a MovieSeries with its reviews and direct comments,
// as returned by the detail endpoint.
type TitleDetail struct {
	MovieSeries
	Reviews  []Review  `json:"reviews"`
	Comments []Comment `json:"comments"`
}

// TitleEdge is a favorite/watchlist entry: the edge plus a summary of
// the linked title.
type TitleEdge struct {
	UserID      string    `json:"user_id"`
	MovieSeries TitleInfo `json:"movie_series"`
}

// TitleInfo is the short title form embedded in edge listings.
type TitleInfo struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Genres      []string `json:"genres,omitempty"`
}
