package service

import (
	"context"
	"strings"

	"github.com/daypact/api/internal/model"
)

// ChallengeRepository defines the interface for challenge storage
type ChallengeRepository interface {
	Create(ctx context.Context, challenge *model.Challenge) error
	GetByID(ctx context.Context, id string) (*model.Challenge, error)
	ListNewestFirst(ctx context.Context) ([]*model.ChallengeSummary, error)
	AddParticipant(ctx context.Context, challengeID, userID string) (bool, error)
}

// ChallengeService handles challenge lifecycle business logic
type ChallengeService struct {
	repo ChallengeRepository
}

// ChallengeServiceConfig holds configuration for the challenge service
type ChallengeServiceConfig struct {
	ChallengeRepo ChallengeRepository
}

// NewChallengeService creates a new challenge service
func NewChallengeService(cfg ChallengeServiceConfig) *ChallengeService {
	return &ChallengeService{
		repo: cfg.ChallengeRepo,
	}
}

// CreateChallenge creates a challenge with the caller as creator and first
// participant.
func (s *ChallengeService) CreateChallenge(ctx context.Context, creatorID string, req model.CreateChallengeRequest) (*model.Challenge, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, ErrChallengeTitleRequired
	}
	if len(title) > model.MaxChallengeTitleLength {
		return nil, ErrChallengeTitleTooLong
	}
	if len(req.Description) > model.MaxChallengeDescLength {
		return nil, ErrChallengeDescTooLong
	}
	if req.DurationDays <= 0 {
		return nil, ErrChallengeDurationInvalid
	}
	if len(req.Tags) > model.MaxChallengeTags {
		return nil, ErrTooManyChallengeTags
	}

	challenge := &model.Challenge{
		Title:        title,
		Description:  strings.TrimSpace(req.Description),
		DurationDays: req.DurationDays,
		Creator:      creatorID,
		Tags:         req.Tags,
	}

	if err := s.repo.Create(ctx, challenge); err != nil {
		return nil, err
	}

	return challenge, nil
}

// ListChallenges returns all challenges, newest-created first, with creator
// display handles resolved.
func (s *ChallengeService) ListChallenges(ctx context.Context) ([]*model.ChallengeSummary, error) {
	return s.repo.ListNewestFirst(ctx)
}

// GetChallenge retrieves a challenge by ID
func (s *ChallengeService) GetChallenge(ctx context.Context, id string) (*model.Challenge, error) {
	challenge, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if challenge == nil {
		return nil, ErrChallengeNotFound
	}
	return challenge, nil
}

// JoinChallenge adds the user to the challenge roster. A repeated join by the
// same user fails with ErrAlreadyJoined and never duplicates membership: the
// roster append is a conditional update that only fires when the user is
// absent, so even two joins racing each other admit the user exactly once.
func (s *ChallengeService) JoinChallenge(ctx context.Context, challengeID, userID string) error {
	challenge, err := s.repo.GetByID(ctx, challengeID)
	if err != nil {
		return err
	}
	if challenge == nil {
		return ErrChallengeNotFound
	}
	if challenge.IsParticipant(userID) {
		return ErrAlreadyJoined
	}

	added, err := s.repo.AddParticipant(ctx, challengeID, userID)
	if err != nil {
		return err
	}
	if !added {
		// Lost the race to a concurrent join by the same user.
		return ErrAlreadyJoined
	}
	return nil
}
