package handler

import (
	"net/http"

	"github.com/daypact/api/internal/middleware"
	"github.com/daypact/api/internal/model"
	"github.com/daypact/api/internal/service"
)

// CheckInHandler handles check-in HTTP requests
type CheckInHandler struct {
	svc *service.CheckInService
}

// NewCheckInHandler creates a new check-in handler
func NewCheckInHandler(svc *service.CheckInService) *CheckInHandler {
	return &CheckInHandler{svc: svc}
}

// Create handles POST /v1/checkins - log a daily check-in
func (h *CheckInHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	var req model.CreateCheckInRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	checkIn, err := h.svc.CreateCheckIn(ctx, userID, req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusCreated, checkIn, map[string]string{
		"challenge": "/v1/challenges/" + checkIn.Challenge,
	})
}

// ListMine handles GET /v1/checkins/me - list the caller's check-ins
func (h *CheckInHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	checkIns, err := h.svc.ListMyCheckIns(ctx, userID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, checkIns, nil)
}

// ListByChallenge handles GET /v1/checkins/challenge/{challengeId} - list a
// challenge's check-ins
func (h *CheckInHandler) ListByChallenge(w http.ResponseWriter, r *http.Request) {
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

	checkIns, err := h.svc.ListChallengeCheckIns(ctx, challengeID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, checkIns, nil)
}
