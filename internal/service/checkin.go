package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/daypact/api/internal/database"
	"github.com/daypact/api/internal/model"
)

// CheckInRepository defines the interface for check-in storage
type CheckInRepository interface {
	Create(ctx context.Context, checkIn *model.CheckIn) error
	ExistsSince(ctx context.Context, userID, challengeID string, since time.Time) (bool, error)
	ListByUser(ctx context.Context, userID string) ([]*model.CheckInWithChallenge, error)
	ListByChallenge(ctx context.Context, challengeID string) ([]*model.CheckInWithUser, error)
}

// ChallengeRepositoryForCheckIn is the challenge lookup the ledger needs to
// validate foreign references
type ChallengeRepositoryForCheckIn interface {
	GetByID(ctx context.Context, id string) (*model.Challenge, error)
}

// CheckInService enforces the one-check-in-per-user-per-challenge-per-day
// invariant. The day window is derived from the server clock at write time,
// truncated to UTC midnight; clients cannot supply dates, so the uniqueness
// rule cannot be bypassed by backdating.
type CheckInService struct {
	repo          CheckInRepository
	challengeRepo ChallengeRepositoryForCheckIn
	now           func() time.Time
}

// CheckInServiceConfig holds configuration for the check-in service
type CheckInServiceConfig struct {
	CheckInRepo   CheckInRepository
	ChallengeRepo ChallengeRepositoryForCheckIn
}

// NewCheckInService creates a new check-in service
func NewCheckInService(cfg CheckInServiceConfig) *CheckInService {
	return &CheckInService{
		repo:          cfg.CheckInRepo,
		challengeRepo: cfg.ChallengeRepo,
		now:           time.Now,
	}
}

// CreateCheckIn logs a daily check-in against a challenge. Fails with
// ErrAlreadyCheckedInToday when the user already has an entry for the current
// UTC calendar day, whether detected by the existence query or by the
// storage-level (user, challenge, day) unique index when two requests race.
func (s *CheckInService) CreateCheckIn(ctx context.Context, userID string, req model.CreateCheckInRequest) (*model.CheckIn, error) {
	if strings.TrimSpace(req.ChallengeID) == "" {
		return nil, ErrCheckInChallengeRequired
	}
	if len(req.Content) > model.MaxCheckInContentLength {
		return nil, ErrCheckInContentTooLong
	}
	if len(req.Mood) > model.MaxCheckInMoodLength {
		return nil, ErrCheckInMoodTooLong
	}
	if len(req.Images) > model.MaxCheckInImages {
		return nil, ErrTooManyCheckInImages
	}

	challenge, err := s.challengeRepo.GetByID(ctx, req.ChallengeID)
	if err != nil {
		return nil, err
	}
	if challenge == nil {
		return nil, ErrChallengeNotFound
	}

	dayStart := s.now().UTC().Truncate(24 * time.Hour)

	exists, err := s.repo.ExistsSince(ctx, userID, req.ChallengeID, dayStart)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyCheckedInToday
	}

	checkIn := &model.CheckIn{
		User:      userID,
		Challenge: req.ChallengeID,
		Project:   req.ProjectID,
		Content:   strings.TrimSpace(req.Content),
		Mood:      strings.TrimSpace(req.Mood),
		Images:    req.Images,
		Day:       dayStart,
	}

	if err := s.repo.Create(ctx, checkIn); err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			return nil, ErrAlreadyCheckedInToday
		}
		return nil, err
	}

	return checkIn, nil
}

// ListMyCheckIns returns the caller's check-ins, newest-created first, with
// challenge titles resolved.
func (s *CheckInService) ListMyCheckIns(ctx context.Context, userID string) ([]*model.CheckInWithChallenge, error) {
	return s.repo.ListByUser(ctx, userID)
}

// ListChallengeCheckIns returns a challenge's check-ins, newest-created
// first, with usernames resolved. Any authenticated caller may read these,
// participant or not.
func (s *CheckInService) ListChallengeCheckIns(ctx context.Context, challengeID string) ([]*model.CheckInWithUser, error) {
	return s.repo.ListByChallenge(ctx, challengeID)
}
