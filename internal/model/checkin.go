package model

import "time"

// CheckIn represents a dated progress record a participant submits against a
// challenge. For every (user, challenge) pair at most one check-in may exist
// per calendar day; the Day field holds the UTC midnight of the day the entry
// was written and backs the storage-level uniqueness constraint. Check-ins are
// immutable once created.
type CheckIn struct {
	ID        string    `json:"id"`
	User      string    `json:"user"`
	Challenge string    `json:"challenge"`
	Project   *string   `json:"project,omitempty"`
	Content   string    `json:"content,omitempty"`
	Mood      string    `json:"mood,omitempty"`
	Images    []string  `json:"images,omitempty"`
	Date      time.Time `json:"date"`
	Day       time.Time `json:"day"`
	CreatedOn time.Time `json:"created_on"`
}

// CheckInWithChallenge is a read projection of a check-in with the challenge
// reference resolved to its title
type CheckInWithChallenge struct {
	CheckIn
	ChallengeTitle string `json:"challenge_title,omitempty"`
}

// CheckInWithUser is a read projection of a check-in with the user reference
// resolved to a display handle
type CheckInWithUser struct {
	CheckIn
	Username string `json:"username,omitempty"`
}

// Business constraints
const (
	MaxCheckInContentLength = 4000
	MaxCheckInMoodLength    = 32
	MaxCheckInImages        = 10
)

// CreateCheckInRequest represents a request to log a daily check-in
type CreateCheckInRequest struct {
	ChallengeID string   `json:"challenge_id"`
	Content     string   `json:"content,omitempty"`
	Mood        string   `json:"mood,omitempty"`
	ProjectID   *string  `json:"project_id,omitempty"`
	Images      []string `json:"images,omitempty"`
}
