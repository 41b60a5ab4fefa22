package models

import "time"

// User is the full account record as stored. PasswordHash and the
// reset-token bookkeeping never leave the API boundary.
type User struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	Username       string    `json:"username"`
	Name           string    `json:"name,omitempty"`
	PasswordHash   string    `json:"-"`
	Bio            string    `json:"bio,omitempty"`
	ProfileImage   string    `json:"profile_image,omitempty"`
	ResetToken     string    `json:"-"`
	ResetTokenUsed bool      `json:"-"`
	CreatedAt      time.Time `json:"created_at"`
}

// UserSummary is the short form embedded in follower/following lists
// and review payloads.
type UserSummary struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email,omitempty"`
	ProfileImage string `json:"profile_image,omitempty"`
}

// Summary trims a User down to its list representation.
func (u User) Summary() UserSummary {
	return UserSummary{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		ProfileImage: u.ProfileImage,
	}
}

// UserProfile is a User plus the nested associations returned by the
// detail and search endpoints.
type UserProfile struct {
	User
	Followers []UserSummary `json:"followers"`
	Following []UserSummary `json:"following"`
	Reviews   []Review      `json:"reviews"`
	Favorites []TitleEdge   `json:"favorites"`
	Watchlist []TitleEdge   `json:"watchlist"`
}

// UserFilter narrows the account search. Zero value matches everyone.
type UserFilter struct {
	Username string // substring match
	Name     string // case-insensitive substring match
}
