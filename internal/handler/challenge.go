package handler

import (
	"net/http"

	"github.com/daypact/api/internal/middleware"
	"github.com/daypact/api/internal/model"
	"github.com/daypact/api/internal/service"
)

// ChallengeHandler handles challenge HTTP requests
type ChallengeHandler struct {
	svc *service.ChallengeService
}

// NewChallengeHandler creates a new challenge handler
func NewChallengeHandler(svc *service.ChallengeService) *ChallengeHandler {
	return &ChallengeHandler{svc: svc}
}

// Create handles POST /v1/challenges - create a new challenge
func (h *ChallengeHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	var req model.CreateChallengeRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	challenge, err := h.svc.CreateChallenge(ctx, userID, req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusCreated, challenge, map[string]string{
		"self": "/v1/challenges/" + challenge.ID,
	})
}

// List handles GET /v1/challenges - list all challenges, newest first
func (h *ChallengeHandler) List(w http.ResponseWriter, r *http.Request) {
	challenges, err := h.svc.ListChallenges(r.Context())
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, challenges, nil)
}

// Get handles GET /v1/challenges/{challengeId} - get challenge details
func (h *ChallengeHandler) Get(w http.ResponseWriter, r *http.Request) {
	challengeID := r.PathValue("challengeId")
	if challengeID == "" {
		WriteError(w, model.NewBadRequestError("challenge ID required"))
		return
	}

	challenge, err := h.svc.GetChallenge(r.Context(), challengeID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, challenge, nil)
}

// Join handles POST /v1/challenges/{challengeId}/join - join a challenge
func (h *ChallengeHandler) Join(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	challengeID := r.PathValue("challengeId")
	if challengeID == "" {
		WriteError(w, model.NewBadRequestError("challenge ID required"))
		return
	}

	if err := h.svc.JoinChallenge(ctx, challengeID, userID); err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteNoContent(w)
}
