package model

import "time"

// Project represents an artifact a user builds in association with a
// challenge. Owner and challenge are fixed at creation; all other fields are
// mutable by the owner only.
type Project struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Owner       string    `json:"owner"`
	Challenge   string    `json:"challenge"`
	TechStack   []string  `json:"tech_stack,omitempty"`
	RepoLink    string    `json:"repo_link,omitempty"`
	Screenshots []string  `json:"screenshots,omitempty"`
	CreatedOn   time.Time `json:"created_on"`
	UpdatedOn   time.Time `json:"updated_on"`
}

// ProjectSummary is a read projection of a project with owner and challenge
// references resolved to display fields
type ProjectSummary struct {
	Project
	OwnerUsername  string `json:"owner_username,omitempty"`
	ChallengeTitle string `json:"challenge_title,omitempty"`
}

// Business constraints
const (
	MaxProjectTitleLength = 120
	MaxProjectDescLength  = 2000
)

// CreateProjectRequest represents a request to create a project
type CreateProjectRequest struct {
	Title       string   `json:"title"`
	ChallengeID string   `json:"challenge_id"`
	Description string   `json:"description,omitempty"`
	TechStack   []string `json:"tech_stack,omitempty"`
	RepoLink    string   `json:"repo_link,omitempty"`
	Screenshots []string `json:"screenshots,omitempty"`
}

// UpdateProjectRequest represents a request to update a project. Owner and
// Challenge are carried only so stale clients that still send them do not
// fail decoding; the service never applies them.
type UpdateProjectRequest struct {
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	TechStack   *[]string `json:"tech_stack,omitempty"`
	RepoLink    *string   `json:"repo_link,omitempty"`
	Screenshots *[]string `json:"screenshots,omitempty"`
	Owner       *string   `json:"owner,omitempty"`
	Challenge   *string   `json:"challenge,omitempty"`
}
