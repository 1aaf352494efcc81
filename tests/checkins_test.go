package tests

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/daypact/api/internal/model"
	"github.com/daypact/api/internal/repository"
	"github.com/daypact/api/internal/service"
	"github.com/daypact/api/internal/testing/fixtures"
	"github.com/daypact/api/internal/testing/testdb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/*
FEATURE: Check-In Ledger
DOMAIN: Participation

ACCEPTANCE CRITERIA:
===================

AC-CHECKIN-001: Create Check-In
  GIVEN a user and a challenge
  WHEN the user checks in with content and mood
  THEN a check-in for today's UTC day is recorded

AC-CHECKIN-002: Create Check-In - Unknown Challenge
  GIVEN a challenge ID that does not exist
  WHEN the user checks in against it
  THEN request fails with challenge not found

AC-CHECKIN-003: One Check-In Per Day
  GIVEN the user already checked in today for a challenge
  WHEN the user checks in again for the same challenge
  THEN request fails with already checked in today
  AND exactly one check-in exists for that day

AC-CHECKIN-004: Concurrent Check-Ins
  GIVEN two simultaneous check-ins for the same user, challenge, day
  WHEN both race past the existence check
  THEN exactly one succeeds
  AND the loser gets already checked in today

AC-CHECKIN-005: Separate Challenges Same Day
  GIVEN a user enrolled in two challenges
  WHEN the user checks in to both on the same day
  THEN both check-ins are recorded

AC-CHECKIN-006: List My Check-Ins
  GIVEN check-ins by two users
  WHEN one user lists their check-ins
  THEN only their own entries are returned
  AND each carries the challenge title

AC-CHECKIN-007: List Challenge Check-Ins
  GIVEN check-ins against two challenges
  WHEN the feed for one challenge is listed
  THEN only that challenge's entries are returned
  AND each carries the author's username

AC-CHECKIN-008: Content Validation
  GIVEN content longer than the maximum
  WHEN the user checks in
  THEN request fails with validation error
*/

// createCheckInService creates a CheckInService instance for testing
func createCheckInService(t *testing.T, tdb *testdb.TestDB) *service.CheckInService {
	t.Helper()

	checkinRepo := repository.NewCheckInRepository(tdb.DB)
	challengeRepo := repository.NewChallengeRepository(tdb.DB)

	return service.NewCheckInService(service.CheckInServiceConfig{
		CheckInRepo:   checkinRepo,
		ChallengeRepo: challengeRepo,
	})
}

func TestCheckIn_Create(t *testing.T) {
	// AC-CHECKIN-001: Create Check-In
	tdb := testdb.New(t)
	defer tdb.Close()

	f := fixtures.New(tdb.DB)
	checkinService := createCheckInService(t, tdb)
	ctx := context.Background()

	user := f.CreateUser(t)
	challenge := f.CreateChallenge(t, user)

	checkin, err := checkinService.CreateCheckIn(ctx, user.ID, model.CreateCheckInRequest{
		ChallengeID: challenge.ID,
		Content:     "Wired up the login flow",
		Mood:        "energized",
	})

	require.NoError(t, err)
	require.NotNil(t, checkin)
	assert.NotEmpty(t, checkin.ID)
	assert.Equal(t, user.ID, checkin.User)
	assert.Equal(t, challenge.ID, checkin.Challenge)

	today := time.Now().UTC().Truncate(24 * time.Hour)
	assert.True(t, checkin.Day.Equal(today), "day = %v, want %v", checkin.Day, today)
}

func TestCheckIn_UnknownChallenge(t *testing.T) {
	// AC-CHECKIN-002: Create Check-In - Unknown Challenge
	tdb := testdb.New(t)
	defer tdb.Close()

	f := fixtures.New(tdb.DB)
	checkinService := createCheckInService(t, tdb)
	ctx := context.Background()

	user := f.CreateUser(t)

	_, err := checkinService.CreateCheckIn(ctx, user.ID, model.CreateCheckInRequest{
		ChallengeID: "challenge:doesnotexist",
		Content:     "orphan entry",
	})
	assert.ErrorIs(t, err, service.ErrChallengeNotFound)
}

func TestCheckIn_OncePerDay(t *testing.T) {
	// AC-CHECKIN-003: One Check-In Per Day
	tdb := testdb.New(t)
	defer tdb.Close()

	f := fixtures.New(tdb.DB)
	checkinService := createCheckInService(t, tdb)
	ctx := context.Background()

	user := f.CreateUser(t)
	challenge := f.CreateChallenge(t, user)

	_, err := checkinService.CreateCheckIn(ctx, user.ID, model.CreateCheckInRequest{
		ChallengeID: challenge.ID,
		Content:     "first",
	})
	require.NoError(t, err)

	_, err = checkinService.CreateCheckIn(ctx, user.ID, model.CreateCheckInRequest{
		ChallengeID: challenge.ID,
		Content:     "second",
	})
	assert.ErrorIs(t, err, service.ErrAlreadyCheckedInToday)

	mine, err := checkinService.ListMyCheckIns(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, mine, 1)
}

func TestCheckIn_ConcurrentSameDay(t *testing.T) {
	// AC-CHECKIN-004: Concurrent Check-Ins
	tdb := testdb.New(t)
	defer tdb.Close()

	f := fixtures.New(tdb.DB)
	checkinService := createCheckInService(t, tdb)
	ctx := context.Background()

	user := f.CreateUser(t)
	challenge := f.CreateChallenge(t, user)

	const attempts = 5
	errs := make([]error, attempts)

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = checkinService.CreateCheckIn(ctx, user.ID, model.CreateCheckInRequest{
				ChallengeID: challenge.ID,
				Content:     "racing",
			})
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, service.ErrAlreadyCheckedInToday)
		}
	}
	assert.Equal(t, 1, succeeded, "exactly one concurrent check-in should win")

	mine, err := checkinService.ListMyCheckIns(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, mine, 1)
}

func TestCheckIn_SeparateChallengesSameDay(t *testing.T) {
	// AC-CHECKIN-005: Separate Challenges Same Day
	tdb := testdb.New(t)
	defer tdb.Close()

	f := fixtures.New(tdb.DB)
	checkinService := createCheckInService(t, tdb)
	ctx := context.Background()

	user := f.CreateUser(t)
	first := f.CreateChallenge(t, user)
	second := f.CreateChallenge(t, user)

	_, err := checkinService.CreateCheckIn(ctx, user.ID, model.CreateCheckInRequest{
		ChallengeID: first.ID,
		Content:     "one",
	})
	require.NoError(t, err)

	_, err = checkinService.CreateCheckIn(ctx, user.ID, model.CreateCheckInRequest{
		ChallengeID: second.ID,
		Content:     "two",
	})
	require.NoError(t, err)

	mine, err := checkinService.ListMyCheckIns(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, mine, 2)
}

func TestCheckIn_ListMine(t *testing.T) {
	// AC-CHECKIN-006: List My Check-Ins
	tdb := testdb.New(t)
	defer tdb.Close()

	f := fixtures.New(tdb.DB)
	checkinService := createCheckInService(t, tdb)
	ctx := context.Background()

	alice := f.CreateUser(t)
	bob := f.CreateUser(t)
	challenge := f.CreateChallenge(t, alice, fixtures.WithChallengeTitle("Daily Writing"))
	f.JoinChallenge(t, bob, challenge)

	f.CreateCheckIn(t, alice, challenge)
	f.CreateCheckIn(t, bob, challenge)

	mine, err := checkinService.ListMyCheckIns(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, alice.ID, mine[0].User)
	assert.Equal(t, "Daily Writing", mine[0].ChallengeTitle)
}

func TestCheckIn_ListByChallenge(t *testing.T) {
	// AC-CHECKIN-007: List Challenge Check-Ins
	tdb := testdb.New(t)
	defer tdb.Close()

	f := fixtures.New(tdb.DB)
	checkinService := createCheckInService(t, tdb)
	ctx := context.Background()

	alice := f.CreateUser(t)
	bob := f.CreateUser(t)
	tracked := f.CreateChallenge(t, alice)
	other := f.CreateChallenge(t, bob)

	f.CreateCheckIn(t, alice, tracked)
	f.CreateCheckIn(t, bob, other)

	feed, err := checkinService.ListChallengeCheckIns(ctx, tracked.ID)
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Equal(t, tracked.ID, feed[0].Challenge)
	assert.Equal(t, alice.Username, feed[0].Username)
}

func TestCheckIn_ContentTooLong(t *testing.T) {
	// AC-CHECKIN-008: Content Validation
	tdb := testdb.New(t)
	defer tdb.Close()

	f := fixtures.New(tdb.DB)
	checkinService := createCheckInService(t, tdb)
	ctx := context.Background()

	user := f.CreateUser(t)
	challenge := f.CreateChallenge(t, user)

	_, err := checkinService.CreateCheckIn(ctx, user.ID, model.CreateCheckInRequest{
		ChallengeID: challenge.ID,
		Content:     strings.Repeat("x", model.MaxCheckInContentLength+1),
	})
	assert.ErrorIs(t, err, service.ErrCheckInContentTooLong)
}
