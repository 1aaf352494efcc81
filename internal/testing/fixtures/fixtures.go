// Package fixtures provides test data factories for e2e testing.
//
// Each factory method creates entities with sensible defaults while allowing
// customization via option functions. Factories insert through the repository
// layer and return fully populated models.
//
// Usage:
//
//	f := fixtures.New(tdb.DB)
//	user := f.CreateUser(t)
//	challenge := f.CreateChallenge(t, user)
//	checkin := f.CreateCheckIn(t, user, challenge)
package fixtures

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"testing"
	"time"

	"github.com/daypact/api/internal/database"
	"github.com/daypact/api/internal/model"
	"github.com/daypact/api/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// Factory creates test entities in the database
type Factory struct {
	users      *repository.UserRepository
	challenges *repository.ChallengeRepository
	checkins   *repository.CheckInRepository
	projects   *repository.ProjectRepository
}

// New creates a new fixture factory
func New(db database.Database) *Factory {
	return &Factory{
		users:      repository.NewUserRepository(db),
		challenges: repository.NewChallengeRepository(db),
		checkins:   repository.NewCheckInRepository(db),
		projects:   repository.NewProjectRepository(db),
	}
}

// randomID generates a random hex ID
func randomID() string {
	b := make([]byte, 8)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// ctx returns a context with timeout
func ctx() context.Context {
	c, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	_ = cancel
	return c
}

// ============================================================================
// User Fixtures
// ============================================================================

// UserOpts customizes user creation
type UserOpts struct {
	Email    string
	Username string
	Password string
}

// CreateUser creates a user with optional customizations
func (f *Factory) CreateUser(t *testing.T, opts ...func(*UserOpts)) *model.User {
	t.Helper()

	o := &UserOpts{
		Email:    fmt.Sprintf("user_%s@test.local", randomID()),
		Username: fmt.Sprintf("user_%s", randomID()),
		Password: "testpass123",
	}
	for _, fn := range opts {
		fn(o)
	}

	// MinCost keeps fixture creation fast
	hash, err := bcrypt.GenerateFromPassword([]byte(o.Password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("fixtures: failed to hash password: %v", err)
	}
	hashStr := string(hash)

	user := &model.User{
		Username: o.Username,
		Email:    o.Email,
		Hash:     &hashStr,
	}
	if err := f.users.Create(ctx(), user); err != nil {
		t.Fatalf("fixtures: failed to create user: %v", err)
	}

	user.Hash = nil
	return user
}

// WithEmail sets the user email
func WithEmail(email string) func(*UserOpts) {
	return func(o *UserOpts) { o.Email = email }
}

// WithUsername sets the username
func WithUsername(username string) func(*UserOpts) {
	return func(o *UserOpts) { o.Username = username }
}

// ============================================================================
// Challenge Fixtures
// ============================================================================

// ChallengeOpts customizes challenge creation
type ChallengeOpts struct {
	Title        string
	Description  string
	DurationDays int
	Tags         []string
}

// CreateChallenge creates a challenge with the given user as creator.
// The creator is automatically on the participant roster.
func (f *Factory) CreateChallenge(t *testing.T, creator *model.User, opts ...func(*ChallengeOpts)) *model.Challenge {
	t.Helper()

	o := &ChallengeOpts{
		Title:        fmt.Sprintf("Challenge %s", randomID()),
		Description:  "Test challenge description",
		DurationDays: 30,
	}
	for _, fn := range opts {
		fn(o)
	}

	challenge := &model.Challenge{
		Title:        o.Title,
		Description:  o.Description,
		DurationDays: o.DurationDays,
		Creator:      creator.ID,
		Tags:         o.Tags,
	}
	if err := f.challenges.Create(ctx(), challenge); err != nil {
		t.Fatalf("fixtures: failed to create challenge: %v", err)
	}

	return challenge
}

// WithChallengeTitle sets the challenge title
func WithChallengeTitle(title string) func(*ChallengeOpts) {
	return func(o *ChallengeOpts) { o.Title = title }
}

// WithDuration sets the challenge duration in days
func WithDuration(days int) func(*ChallengeOpts) {
	return func(o *ChallengeOpts) { o.DurationDays = days }
}

// WithTags sets the challenge tags
func WithTags(tags ...string) func(*ChallengeOpts) {
	return func(o *ChallengeOpts) { o.Tags = tags }
}

// JoinChallenge adds a user to the challenge roster
func (f *Factory) JoinChallenge(t *testing.T, user *model.User, challenge *model.Challenge) {
	t.Helper()

	added, err := f.challenges.AddParticipant(ctx(), challenge.ID, user.ID)
	if err != nil {
		t.Fatalf("fixtures: failed to join challenge: %v", err)
	}
	if !added {
		t.Fatalf("fixtures: user %s already on challenge %s", user.ID, challenge.ID)
	}
}

// ============================================================================
// CheckIn Fixtures
// ============================================================================

// CheckInOpts customizes check-in creation
type CheckInOpts struct {
	Content string
	Mood    string
	Project *string
	Images  []string
	Day     time.Time
}

// CreateCheckIn creates a check-in for today by the given user
func (f *Factory) CreateCheckIn(t *testing.T, user *model.User, challenge *model.Challenge, opts ...func(*CheckInOpts)) *model.CheckIn {
	t.Helper()

	o := &CheckInOpts{
		Content: "Shipped something today",
		Day:     time.Now().UTC().Truncate(24 * time.Hour),
	}
	for _, fn := range opts {
		fn(o)
	}

	checkin := &model.CheckIn{
		User:      user.ID,
		Challenge: challenge.ID,
		Project:   o.Project,
		Content:   o.Content,
		Mood:      o.Mood,
		Images:    o.Images,
		Day:       o.Day,
	}
	if err := f.checkins.Create(ctx(), checkin); err != nil {
		t.Fatalf("fixtures: failed to create check-in: %v", err)
	}

	return checkin
}

// WithContent sets the check-in content
func WithContent(content string) func(*CheckInOpts) {
	return func(o *CheckInOpts) { o.Content = content }
}

// WithMood sets the check-in mood
func WithMood(mood string) func(*CheckInOpts) {
	return func(o *CheckInOpts) { o.Mood = mood }
}

// OnDay pins the check-in to a specific UTC day
func OnDay(day time.Time) func(*CheckInOpts) {
	return func(o *CheckInOpts) { o.Day = day.UTC().Truncate(24 * time.Hour) }
}

// ForProject links the check-in to a project
func ForProject(project *model.Project) func(*CheckInOpts) {
	return func(o *CheckInOpts) { o.Project = &project.ID }
}

// ============================================================================
// Project Fixtures
// ============================================================================

// ProjectOpts customizes project creation
type ProjectOpts struct {
	Title       string
	Description string
	TechStack   []string
	RepoLink    string
	Screenshots []string
}

// CreateProject creates a project owned by the given user
func (f *Factory) CreateProject(t *testing.T, owner *model.User, challenge *model.Challenge, opts ...func(*ProjectOpts)) *model.Project {
	t.Helper()

	o := &ProjectOpts{
		Title:       fmt.Sprintf("Project %s", randomID()),
		Description: "Test project description",
	}
	for _, fn := range opts {
		fn(o)
	}

	project := &model.Project{
		Title:       o.Title,
		Description: o.Description,
		Owner:       owner.ID,
		Challenge:   challenge.ID,
		TechStack:   o.TechStack,
		RepoLink:    o.RepoLink,
		Screenshots: o.Screenshots,
	}
	if err := f.projects.Create(ctx(), project); err != nil {
		t.Fatalf("fixtures: failed to create project: %v", err)
	}

	return project
}

// WithTitle sets the project title
func WithTitle(title string) func(*ProjectOpts) {
	return func(o *ProjectOpts) { o.Title = title }
}

// WithTechStack sets the project tech stack
func WithTechStack(stack ...string) func(*ProjectOpts) {
	return func(o *ProjectOpts) { o.TechStack = stack }
}

// WithRepoLink sets the project repository link
func WithRepoLink(link string) func(*ProjectOpts) {
	return func(o *ProjectOpts) { o.RepoLink = link }
}
