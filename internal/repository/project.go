package repository

import (
	"context"
	"errors"
	"time"

	"github.com/daypact/api/internal/database"
	"github.com/daypact/api/internal/model"
)

// ProjectRepository handles project data access
type ProjectRepository struct {
	db database.Database
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db database.Database) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create creates a new project
func (r *ProjectRepository) Create(ctx context.Context, project *model.Project) error {
	query := `
		CREATE project CONTENT {
			title: $title,
			description: IF $description IS NOT NULL THEN $description ELSE NONE END,
			owner: type::record($owner),
			challenge: type::record($challenge),
			tech_stack: $tech_stack,
			repo_link: IF $repo_link IS NOT NULL THEN $repo_link ELSE NONE END,
			screenshots: $screenshots,
			created_on: time::now(),
			updated_on: time::now()
		}
	`

	vars := map[string]interface{}{
		"title":       project.Title,
		"description": nilIfEmpty(project.Description),
		"owner":       project.Owner,
		"challenge":   project.Challenge,
		"tech_stack":  emptyIfNil(project.TechStack),
		"repo_link":   nilIfEmpty(project.RepoLink),
		"screenshots": emptyIfNil(project.Screenshots),
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

	project.ID = getRecordID(data, "id")
	project.TechStack = emptyIfNil(project.TechStack)
	project.Screenshots = emptyIfNil(project.Screenshots)
	project.CreatedOn = getTime(data, "created_on")
	project.UpdatedOn = getTime(data, "updated_on")
	return nil
}

// GetByID retrieves a project by ID. Returns (nil, nil) when absent.
func (r *ProjectRepository) GetByID(ctx context.Context, id string) (*model.Project, error) {
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
	return parseProject(data), nil
}

// ListAll retrieves all projects with owner and challenge references
// resolved to display fields.
func (r *ProjectRepository) ListAll(ctx context.Context) ([]*model.ProjectSummary, error) {
	query := `
		SELECT *, owner.username AS owner_username, challenge.title AS challenge_title
		FROM project
	`

	result, err := r.db.Query(ctx, query, nil)
	if err != nil {
		return nil, err
	}

	return parseProjectSummaries(result)
}

// ListByOwner retrieves the projects owned by a user, with the challenge
// reference resolved to its title.
func (r *ProjectRepository) ListByOwner(ctx context.Context, ownerID string) ([]*model.ProjectSummary, error) {
	query := `
		SELECT *, owner.username AS owner_username, challenge.title AS challenge_title
		FROM project
		WHERE owner = type::record($owner)
	`
	vars := map[string]interface{}{"owner": ownerID}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	return parseProjectSummaries(result)
}

// UpdateFields patches the given fields if and only if the caller owns the
// project, as a single conditional update. Returns (nil, nil) when the
// ownership condition failed. Callers pass only mutable field keys; owner and
// challenge are never part of updates.
func (r *ProjectRepository) UpdateFields(ctx context.Context, id, ownerID string, updates map[string]interface{}) (*model.Project, error) {
	updates["updated_on"] = time.Now().UTC()

	query := `
		UPDATE type::record($id)
		MERGE $updates
		WHERE owner = type::record($owner)
		RETURN AFTER
	`
	vars := map[string]interface{}{
		"id":      id,
		"owner":   ownerID,
		"updates": updates,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	rows := unwrapResult(result)
	if len(rows) == 0 {
		return nil, nil
	}
	data, err := recordRow(rows[0])
	if err != nil {
		return nil, err
	}
	return parseProject(data), nil
}

func parseProjectSummaries(result []interface{}) ([]*model.ProjectSummary, error) {
	rows := unwrapResult(result)
	out := make([]*model.ProjectSummary, 0, len(rows))
	for _, row := range rows {
		data, err := recordRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, &model.ProjectSummary{
			Project:        *parseProject(data),
			OwnerUsername:  getString(data, "owner_username"),
			ChallengeTitle: getString(data, "challenge_title"),
		})
	}
	return out, nil
}

func parseProject(data map[string]interface{}) *model.Project {
	return &model.Project{
		ID:          getRecordID(data, "id"),
		Title:       getString(data, "title"),
		Description: getString(data, "description"),
		Owner:       getRecordID(data, "owner"),
		Challenge:   getRecordID(data, "challenge"),
		TechStack:   getStringSlice(data, "tech_stack"),
		RepoLink:    getString(data, "repo_link"),
		Screenshots: getStringSlice(data, "screenshots"),
		CreatedOn:   getTime(data, "created_on"),
		UpdatedOn:   getTime(data, "updated_on"),
	}
}
