package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/daypact/api/internal/database"
	"github.com/daypact/api/internal/model"
)

// UserRepository handles user data access
type UserRepository struct {
	db database.Database
}

// NewUserRepository creates a new user repository
func NewUserRepository(db database.Database) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	query := `
		CREATE user CONTENT {
			username: $username,
			email: $email,
			hash: IF $hash IS NOT NULL THEN $hash ELSE NONE END,
			created_on: time::now(),
			updated_on: time::now()
		}
	`

	vars := map[string]interface{}{
		"username": user.Username,
		"email":    user.Email,
		"hash":     ptrOrNil(user.Hash),
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		if isUniqueConstraintError(err) {
			return fmt.Errorf("%w: email or username already exists", database.ErrDuplicate)
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

	user.ID = getRecordID(data, "id")
	user.CreatedOn = getTime(data, "created_on")
	user.UpdatedOn = getTime(data, "updated_on")
	return nil
}

// GetByID retrieves a user by ID. Returns (nil, nil) when absent.
func (r *UserRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
	query := `SELECT * FROM type::record($id)`
	vars := map[string]interface{}{"id": id}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return parseUser(result)
}

// GetByEmail retrieves a user by email. Returns (nil, nil) when absent.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `SELECT * FROM user WHERE email = $email LIMIT 1`
	vars := map[string]interface{}{"email": email}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return parseUser(result)
}

// GetByUsername retrieves a user by username. Returns (nil, nil) when absent.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	query := `SELECT * FROM user WHERE username = $username LIMIT 1`
	vars := map[string]interface{}{"username": username}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return parseUser(result)
}

// TouchLogin records the login timestamp
func (r *UserRepository) TouchLogin(ctx context.Context, userID string) error {
	query := `UPDATE type::record($id) SET login_on = time::now(), updated_on = time::now()`
	return r.db.Execute(ctx, query, map[string]interface{}{"id": userID})
}

func parseUser(result interface{}) (*model.User, error) {
	if result == nil {
		return nil, nil
	}
	data, err := recordRow(result)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		ID:        getRecordID(data, "id"),
		Username:  getString(data, "username"),
		Email:     getString(data, "email"),
		Hash:      getStringPtr(data, "hash"),
		CreatedOn: getTime(data, "created_on"),
		UpdatedOn: getTime(data, "updated_on"),
	}
	if t := getTime(data, "login_on"); !t.IsZero() {
		user.LoginOn = &t
	}
	return user, nil
}
