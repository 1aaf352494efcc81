package handler

import (
	"net/http"

	"github.com/daypact/api/internal/middleware"
	"github.com/daypact/api/internal/model"
	"github.com/daypact/api/internal/service"
)

// ProjectHandler handles project HTTP requests
type ProjectHandler struct {
	svc *service.ProjectService
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(svc *service.ProjectService) *ProjectHandler {
	return &ProjectHandler{svc: svc}
}

// Create handles POST /v1/projects - register a project
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	var req model.CreateProjectRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	project, err := h.svc.CreateProject(ctx, userID, req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusCreated, project, map[string]string{
		"self": "/v1/projects/" + project.ID,
	})
}

// List handles GET /v1/projects - list all projects
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	projects, err := h.svc.ListProjects(r.Context())
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, projects, nil)
}

// ListMine handles GET /v1/projects/me - list the caller's projects
func (h *ProjectHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	projects, err := h.svc.ListMyProjects(ctx, userID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, projects, nil)
}

// Get handles GET /v1/projects/{projectId} - get project details
func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	projectID := r.PathValue("projectId")
	if projectID == "" {
		WriteError(w, model.NewBadRequestError("project ID required"))
		return
	}

	project, err := h.svc.GetProject(r.Context(), projectID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, project, nil)
}

// Update handles PATCH /v1/projects/{projectId} - update a project the
// caller owns
func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	projectID := r.PathValue("projectId")
	if projectID == "" {
		WriteError(w, model.NewBadRequestError("project ID required"))
		return
	}

	var req model.UpdateProjectRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	project, err := h.svc.UpdateProject(ctx, projectID, userID, req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, project, nil)
}
