package handler

import (
	"errors"

	"github.com/daypact/api/internal/database"
	"github.com/daypact/api/internal/model"
	"github.com/daypact/api/internal/service"
)

// MapServiceError converts a service error to a ProblemDetails response.
// This centralizes error handling logic for all handlers, ensuring consistent
// HTTP status codes and error messages across the API.
func MapServiceError(err error) *model.ProblemDetails {
	if err == nil {
		return nil
	}

	switch {
	// ===== Authentication Errors → 401 =====
	case errors.Is(err, service.ErrInvalidCredentials):
		return model.NewUnauthorizedError(err.Error())

	// ===== Authorization Errors → 403 =====
	case errors.Is(err, service.ErrNotProjectOwner):
		return model.NewForbiddenError(err.Error())

	// ===== Not Found Errors → 404 =====
	case errors.Is(err, service.ErrUserNotFound):
		return model.NewNotFoundError("user")
	case errors.Is(err, service.ErrChallengeNotFound):
		return model.NewNotFoundError("challenge")
	case errors.Is(err, service.ErrProjectNotFound):
		return model.NewNotFoundError("project")

	// ===== Conflict Errors → 409 =====
	case errors.Is(err, service.ErrEmailAlreadyExists),
		errors.Is(err, service.ErrUsernameTaken),
		errors.Is(err, service.ErrAlreadyJoined),
		errors.Is(err, service.ErrAlreadyCheckedInToday):
		return model.NewConflictError(err.Error())

	// ===== Validation Errors → 422 =====
	case errors.Is(err, service.ErrInvalidEmail),
		errors.Is(err, service.ErrPasswordRequired),
		errors.Is(err, service.ErrPasswordTooShort),
		errors.Is(err, service.ErrPasswordTooLong):
		return model.NewValidationError([]model.FieldError{{Field: "credentials", Message: err.Error()}})

	case errors.Is(err, service.ErrUsernameRequired),
		errors.Is(err, service.ErrUsernameTooLong):
		return model.NewValidationError([]model.FieldError{{Field: "username", Message: err.Error()}})

	case errors.Is(err, service.ErrChallengeTitleRequired),
		errors.Is(err, service.ErrChallengeTitleTooLong),
		errors.Is(err, service.ErrChallengeDescTooLong),
		errors.Is(err, service.ErrChallengeDurationInvalid),
		errors.Is(err, service.ErrTooManyChallengeTags):
		return model.NewValidationError([]model.FieldError{{Field: "challenge", Message: err.Error()}})

	case errors.Is(err, service.ErrCheckInChallengeRequired),
		errors.Is(err, service.ErrCheckInContentTooLong),
		errors.Is(err, service.ErrCheckInMoodTooLong),
		errors.Is(err, service.ErrTooManyCheckInImages):
		return model.NewValidationError([]model.FieldError{{Field: "checkin", Message: err.Error()}})

	case errors.Is(err, service.ErrProjectTitleRequired),
		errors.Is(err, service.ErrProjectTitleTooLong),
		errors.Is(err, service.ErrProjectDescTooLong),
		errors.Is(err, service.ErrProjectChallengeRequired),
		errors.Is(err, service.ErrProjectChallengeDangling):
		return model.NewValidationError([]model.FieldError{{Field: "project", Message: err.Error()}})

	// ===== Storage Errors → 503 =====
	case errors.Is(err, database.ErrConnection),
		errors.Is(err, database.ErrQuery):
		return model.NewStorageError("storage unavailable")

	// ===== Default → 500 =====
	default:
		return model.NewInternalError("")
	}
}
