package models

import "time"

// Activity event types streamed over the websocket feed.
const (
	ActivityReviewCreated = "REVIEW_CREATED"
	ActivityFollowed      = "FOLLOWED"
	ActivityUnfollowed    = "UNFOLLOWED"
	ActivityFavorited     = "FAVORITED"
	ActivityUnfavorited   = "UNFAVORITED"
	ActivityWatchlisted   = "WATCHLISTED"
	ActivityUnwatchlisted = "UNWATCHLISTED"
)

// ActivityEvent is one entry on the live activity feed.
type ActivityEvent struct {
	Type       string    `json:"type"`
	ActorID    string    `json:"actor_id"`
	SubjectID  string    `json:"subject_id,omitempty"` // followed user or title id
	OccurredAt time.Time `json:"occurred_at"`
}
