package service

import (
	"context"
	"strings"

	"github.com/daypact/api/internal/model"
)

// ProjectRepository defines the interface for project storage
type ProjectRepository interface {
	Create(ctx context.Context, project *model.Project) error
	GetByID(ctx context.Context, id string) (*model.Project, error)
	ListAll(ctx context.Context) ([]*model.ProjectSummary, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*model.ProjectSummary, error)
	UpdateFields(ctx context.Context, id, ownerID string, updates map[string]interface{}) (*model.Project, error)
}

// ProjectService handles project registry operations. Ownership and the
// challenge binding are fixed at creation; updates may touch descriptive
// fields only, and only when the caller owns the record.
type ProjectService struct {
	repo          ProjectRepository
	challengeRepo ChallengeRepositoryForCheckIn
}

// ProjectServiceConfig holds configuration for the project service
type ProjectServiceConfig struct {
	ProjectRepo   ProjectRepository
	ChallengeRepo ChallengeRepositoryForCheckIn
}

// NewProjectService creates a new project service
func NewProjectService(cfg ProjectServiceConfig) *ProjectService {
	return &ProjectService{
		repo:          cfg.ProjectRepo,
		challengeRepo: cfg.ChallengeRepo,
	}
}

// CreateProject registers a project under a challenge, owned by the caller.
func (s *ProjectService) CreateProject(ctx context.Context, ownerID string, req model.CreateProjectRequest) (*model.Project, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, ErrProjectTitleRequired
	}
	if len(title) > model.MaxProjectTitleLength {
		return nil, ErrProjectTitleTooLong
	}
	if len(req.Description) > model.MaxProjectDescLength {
		return nil, ErrProjectDescTooLong
	}
	if strings.TrimSpace(req.ChallengeID) == "" {
		return nil, ErrProjectChallengeRequired
	}

	challenge, err := s.challengeRepo.GetByID(ctx, req.ChallengeID)
	if err != nil {
		return nil, err
	}
	if challenge == nil {
		return nil, ErrProjectChallengeDangling
	}

	project := &model.Project{
		Title:       title,
		Description: strings.TrimSpace(req.Description),
		Owner:       ownerID,
		Challenge:   req.ChallengeID,
		TechStack:   req.TechStack,
		RepoLink:    strings.TrimSpace(req.RepoLink),
		Screenshots: req.Screenshots,
	}

	if err := s.repo.Create(ctx, project); err != nil {
		return nil, err
	}

	return project, nil
}

// ListProjects returns all projects, newest first.
func (s *ProjectService) ListProjects(ctx context.Context) ([]*model.ProjectSummary, error) {
	return s.repo.ListAll(ctx)
}

// ListMyProjects returns the caller's projects, newest first.
func (s *ProjectService) ListMyProjects(ctx context.Context, ownerID string) ([]*model.ProjectSummary, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

// GetProject returns a project by ID.
func (s *ProjectService) GetProject(ctx context.Context, id string) (*model.Project, error) {
	project, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, ErrProjectNotFound
	}
	return project, nil
}

// UpdateProject applies a partial update to a project the caller owns.
// Only descriptive fields are writable; owner and challenge values in the
// request body are ignored. Returns ErrNotProjectOwner when the record
// exists but belongs to someone else.
func (s *ProjectService) UpdateProject(ctx context.Context, id, callerID string, req model.UpdateProjectRequest) (*model.Project, error) {
	updates := make(map[string]interface{})

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, ErrProjectTitleRequired
		}
		if len(title) > model.MaxProjectTitleLength {
			return nil, ErrProjectTitleTooLong
		}
		updates["title"] = title
	}
	if req.Description != nil {
		if len(*req.Description) > model.MaxProjectDescLength {
			return nil, ErrProjectDescTooLong
		}
		updates["description"] = strings.TrimSpace(*req.Description)
	}
	if req.TechStack != nil {
		updates["tech_stack"] = *req.TechStack
	}
	if req.RepoLink != nil {
		updates["repo_link"] = strings.TrimSpace(*req.RepoLink)
	}
	if req.Screenshots != nil {
		updates["screenshots"] = *req.Screenshots
	}

	if len(updates) == 0 {
		// Nothing writable was supplied. Still enforce ownership so the
		// caller gets a consistent answer.
		project, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if project == nil {
			return nil, ErrProjectNotFound
		}
		if project.Owner != callerID {
			return nil, ErrNotProjectOwner
		}
		return project, nil
	}

	updated, err := s.repo.UpdateFields(ctx, id, callerID, updates)
	if err != nil {
		return nil, err
	}
	if updated != nil {
		return updated, nil
	}

	// The conditional update matched nothing. Distinguish a missing record
	// from one owned by someone else.
	project, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, ErrProjectNotFound
	}
	return nil, ErrNotProjectOwner
}
