package repository

import (
	"context"
	"errors"

	"github.com/daypact/api/internal/database"
	"github.com/daypact/api/internal/model"
)

// ChallengeRepository handles challenge data access
type ChallengeRepository struct {
	db database.Database
}

// NewChallengeRepository creates a new challenge repository
func NewChallengeRepository(db database.Database) *ChallengeRepository {
	return &ChallengeRepository{db: db}
}

// Create creates a new challenge. The creator record link is also the only
// entry on the initial roster.
func (r *ChallengeRepository) Create(ctx context.Context, challenge *model.Challenge) error {
	query := `
		CREATE challenge CONTENT {
			title: $title,
			description: IF $description IS NOT NULL THEN $description ELSE NONE END,
			duration_days: $duration_days,
			start_date: time::now(),
			creator: type::record($creator),
			participants: [type::record($creator)],
			tags: $tags,
			created_on: time::now(),
			updated_on: time::now()
		}
	`

	vars := map[string]interface{}{
		"title":         challenge.Title,
		"description":   nilIfEmpty(challenge.Description),
		"duration_days": challenge.DurationDays,
		"creator":       challenge.Creator,
		"tags":          emptyIfNil(challenge.Tags),
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return err
	}

	rows := unwrapResult(result)
	if len(rows) == 0 {
		return errors.New("no result returned")
	}
	data, err := recordRow(rows[0])
	if err != nil {
		return err
	}

	challenge.ID = getRecordID(data, "id")
	challenge.StartDate = getTime(data, "start_date")
	challenge.Participants = []string{challenge.Creator}
	challenge.Tags = emptyIfNil(challenge.Tags)
	challenge.CreatedOn = getTime(data, "created_on")
	challenge.UpdatedOn = getTime(data, "updated_on")
	return nil
}

// GetByID retrieves a challenge by ID. Returns (nil, nil) when absent.
func (r *ChallengeRepository) GetByID(ctx context.Context, id string) (*model.Challenge, error) {
	query := `SELECT * FROM type::record($id)`
	vars := map[string]interface{}{"id": id}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	data, err := recordRow(result)
	if err != nil {
		return nil, err
	}
	return parseChallenge(data), nil
}

// ListNewestFirst retrieves all challenges, newest-created first, with the
// creator reference resolved to a username via record-link traversal.
func (r *ChallengeRepository) ListNewestFirst(ctx context.Context) ([]*model.ChallengeSummary, error) {
	query := `
		SELECT *, creator.username AS creator_username
		FROM challenge
		ORDER BY created_on DESC
	`

	result, err := r.db.Query(ctx, query, nil)
	if err != nil {
		return nil, err
	}

	rows := unwrapResult(result)
	summaries := make([]*model.ChallengeSummary, 0, len(rows))
	for _, row := range rows {
		data, err := recordRow(row)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, &model.ChallengeSummary{
			Challenge:       *parseChallenge(data),
			CreatorUsername: getString(data, "creator_username"),
		})
	}
	return summaries, nil
}

// AddParticipant appends a user to the roster if and only if they are not
// already on it, as a single conditional update. Returns false when the
// condition failed, i.e. the user was already a participant.
func (r *ChallengeRepository) AddParticipant(ctx context.Context, challengeID, userID string) (bool, error) {
	query := `
		UPDATE type::record($id)
		SET participants += type::record($user), updated_on = time::now()
		WHERE type::record($user) NOT IN participants
		RETURN AFTER
	`
	vars := map[string]interface{}{
		"id":   challengeID,
		"user": userID,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return false, err
	}

	return len(unwrapResult(result)) > 0, nil
}

func parseChallenge(data map[string]interface{}) *model.Challenge {
	return &model.Challenge{
		ID:           getRecordID(data, "id"),
		Title:        getString(data, "title"),
		Description:  getString(data, "description"),
		DurationDays: getInt(data, "duration_days"),
		StartDate:    getTime(data, "start_date"),
		Creator:      getRecordID(data, "creator"),
		Participants: getRecordIDSlice(data, "participants"),
		Tags:         getStringSlice(data, "tags"),
		CreatedOn:    getTime(data, "created_on"),
		UpdatedOn:    getTime(data, "updated_on"),
	}
}
