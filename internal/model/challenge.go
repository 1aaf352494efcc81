package model

import "time"

// Challenge represents a time-boxed activity with a creator and a roster of
// participants. The creator is always the first participant; the roster only
// ever grows, one unique user at a time.
type Challenge struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description,omitempty"`
	DurationDays int       `json:"duration_days"`
	StartDate    time.Time `json:"start_date"`
	Creator      string    `json:"creator"`
	Participants []string  `json:"participants"`
	Tags         []string  `json:"tags,omitempty"`
	CreatedOn    time.Time `json:"created_on"`
	UpdatedOn    time.Time `json:"updated_on"`
}

// IsParticipant returns true if the user is on the challenge roster
func (c *Challenge) IsParticipant(userID string) bool {
	for _, p := range c.Participants {
		if p == userID {
			return true
		}
	}
	return false
}

// ChallengeSummary is a read projection of a challenge with the creator
// reference resolved to a display handle
type ChallengeSummary struct {
	Challenge
	CreatorUsername string `json:"creator_username,omitempty"`
}

// Business constraints
const (
	MaxChallengeTitleLength = 120
	MaxChallengeDescLength  = 2000
	MaxChallengeTags        = 10
)

// CreateChallengeRequest represents a request to create a challenge
type CreateChallengeRequest struct {
	Title        string   `json:"title"`
	Description  string   `json:"description,omitempty"`
	DurationDays int      `json:"duration_days"`
	Tags         []string `json:"tags,omitempty"`
}
