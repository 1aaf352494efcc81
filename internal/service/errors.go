package service

import "errors"

// Centralized service layer errors.
// All errors returned by service methods are defined here for consistency
// and to make error handling in handlers predictable.

// ===== Authentication Errors =====
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameRequired   = errors.New("username is required")
	ErrUsernameTooLong    = errors.New("username exceeds maximum length")
	ErrInvalidEmail       = errors.New("invalid email format")
	ErrPasswordRequired   = errors.New("password is required")
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters")
	ErrPasswordTooLong    = errors.New("password must be at most 128 characters")
)

// ===== Challenge Errors =====
var (
	ErrChallengeNotFound        = errors.New("challenge not found")
	ErrChallengeTitleRequired   = errors.New("challenge title is required")
	ErrChallengeTitleTooLong    = errors.New("challenge title exceeds maximum length")
	ErrChallengeDescTooLong     = errors.New("challenge description exceeds maximum length")
	ErrChallengeDurationInvalid = errors.New("challenge duration must be a positive number of days")
	ErrTooManyChallengeTags     = errors.New("too many challenge tags")
	ErrAlreadyJoined            = errors.New("already joined this challenge")
)

// ===== CheckIn Errors =====
var (
	ErrCheckInChallengeRequired = errors.New("check-in challenge is required")
	ErrAlreadyCheckedInToday    = errors.New("already checked in today")
	ErrCheckInContentTooLong    = errors.New("check-in content exceeds maximum length")
	ErrCheckInMoodTooLong       = errors.New("check-in mood exceeds maximum length")
	ErrTooManyCheckInImages     = errors.New("too many check-in images")
)

// ===== Project Errors =====
var (
	ErrProjectNotFound          = errors.New("project not found")
	ErrProjectTitleRequired     = errors.New("project title is required")
	ErrProjectTitleTooLong      = errors.New("project title exceeds maximum length")
	ErrProjectDescTooLong       = errors.New("project description exceeds maximum length")
	ErrProjectChallengeRequired = errors.New("project challenge is required")
	ErrProjectChallengeDangling = errors.New("project challenge does not exist")
	ErrNotProjectOwner          = errors.New("not authorized to update this project")
)
