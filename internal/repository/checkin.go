package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/daypact/api/internal/database"
	"github.com/daypact/api/internal/model"
)

// CheckInRepository handles check-in data access
type CheckInRepository struct {
	db database.Database
}

// NewCheckInRepository creates a new check-in repository
func NewCheckInRepository(db database.Database) *CheckInRepository {
	return &CheckInRepository{db: db}
}

// Create persists a check-in. The checkin_user_challenge_day unique index
// rejects a second entry for the same (user, challenge, day); that failure
// surfaces as database.ErrDuplicate so the service can report the conflict
// even when two requests race past the existence check.
func (r *CheckInRepository) Create(ctx context.Context, checkIn *model.CheckIn) error {
	query := `
		CREATE checkin CONTENT {
			user: type::record($user),
			challenge: type::record($challenge),
			project: IF $project IS NOT NULL THEN type::record($project) ELSE NONE END,
			content: IF $content IS NOT NULL THEN $content ELSE NONE END,
			mood: IF $mood IS NOT NULL THEN $mood ELSE NONE END,
			images: $images,
			date: time::now(),
			day: $day,
			created_on: time::now()
		}
	`

	vars := map[string]interface{}{
		"user":      checkIn.User,
		"challenge": checkIn.Challenge,
		"project":   ptrOrNil(checkIn.Project),
		"content":   nilIfEmpty(checkIn.Content),
		"mood":      nilIfEmpty(checkIn.Mood),
		"images":    emptyIfNil(checkIn.Images),
		"day":       checkIn.Day,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		if isUniqueConstraintError(err) {
			return fmt.Errorf("%w: check-in for this day already exists", database.ErrDuplicate)
		}
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

	checkIn.ID = getRecordID(data, "id")
	checkIn.Date = getTime(data, "date")
	checkIn.Images = emptyIfNil(checkIn.Images)
	checkIn.CreatedOn = getTime(data, "created_on")
	return nil
}

// ExistsSince reports whether the user already has a check-in for the
// challenge dated at or after the given instant.
func (r *CheckInRepository) ExistsSince(ctx context.Context, userID, challengeID string, since time.Time) (bool, error) {
	query := `
		SELECT id FROM checkin
		WHERE user = type::record($user)
		  AND challenge = type::record($challenge)
		  AND date >= $since
		LIMIT 1
	`
	vars := map[string]interface{}{
		"user":      userID,
		"challenge": challengeID,
		"since":     since,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return false, err
	}

	return len(unwrapResult(result)) > 0, nil
}

// ListByUser retrieves a user's check-ins, newest-created first, with the
// challenge reference resolved to its title.
func (r *CheckInRepository) ListByUser(ctx context.Context, userID string) ([]*model.CheckInWithChallenge, error) {
	query := `
		SELECT *, challenge.title AS challenge_title
		FROM checkin
		WHERE user = type::record($user)
		ORDER BY created_on DESC
	`
	vars := map[string]interface{}{"user": userID}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	rows := unwrapResult(result)
	out := make([]*model.CheckInWithChallenge, 0, len(rows))
	for _, row := range rows {
		data, err := recordRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, &model.CheckInWithChallenge{
			CheckIn:        *parseCheckIn(data),
			ChallengeTitle: getString(data, "challenge_title"),
		})
	}
	return out, nil
}

// ListByChallenge retrieves a challenge's check-ins, newest-created first,
// with the user reference resolved to a display handle.
func (r *CheckInRepository) ListByChallenge(ctx context.Context, challengeID string) ([]*model.CheckInWithUser, error) {
	query := `
		SELECT *, user.username AS username
		FROM checkin
		WHERE challenge = type::record($challenge)
		ORDER BY created_on DESC
	`
	vars := map[string]interface{}{"challenge": challengeID}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	rows := unwrapResult(result)
	out := make([]*model.CheckInWithUser, 0, len(rows))
	for _, row := range rows {
		data, err := recordRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, &model.CheckInWithUser{
			CheckIn:  *parseCheckIn(data),
			Username: getString(data, "username"),
		})
	}
	return out, nil
}

func parseCheckIn(data map[string]interface{}) *model.CheckIn {
	return &model.CheckIn{
		ID:        getRecordID(data, "id"),
		User:      getRecordID(data, "user"),
		Challenge: getRecordID(data, "challenge"),
		Project:   getRecordIDPtr(data, "project"),
		Content:   getString(data, "content"),
		Mood:      getString(data, "mood"),
		Images:    getStringSlice(data, "images"),
		Date:      getTime(data, "date"),
		Day:       getTime(data, "day"),
		CreatedOn: getTime(data, "created_on"),
	}
}
