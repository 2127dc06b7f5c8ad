package advancehandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"fleethr/internal/domain/advance"
	"fleethr/internal/transport/http/api"
	"fleethr/internal/transport/http/middleware"
	"fleethr/internal/transport/http/shared"
)

type Handler struct {
	Advance *advance.Service
}

func NewHandler(advanceSvc *advance.Service) *Handler {
	return &Handler{Advance: advanceSvc}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/advances", func(r chi.Router) {
		r.Post("/", h.handleCreate)
		r.Get("/", h.handleListMine)
		r.Post("/{requestID}/approve", middleware.RequireAdmin(h.handleApprove))
		r.Post("/{requestID}/reject", middleware.RequireAdmin(h.handleReject))
	})
}

type createPayload struct {
	Amount float64 `json:"amount"`
	Reason string  `json:"reason"`
}

type createResponse struct {
	ID string `json:"id"`
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", reqID)
		return
	}

	var payload createPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid request body", reqID)
		return
	}

	id, err := h.Advance.Create(r.Context(), user.UserID, payload.Amount, payload.Reason)
	if err != nil {
		if errors.Is(err, advance.ErrInvalidAmount) {
			api.Fail(w, http.StatusBadRequest, "bad_request", "amount must be positive", reqID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "internal", "failed to create request", reqID)
		return
	}
	api.Created(w, createResponse{ID: id}, reqID)
}

func (h *Handler) handleListMine(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", reqID)
		return
	}
	page := shared.ParsePagination(r, 20, 100)

	list, err := h.Advance.ListForEmployee(r.Context(), user.UserID, page.Limit, page.Offset)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "internal", "failed to list requests", reqID)
		return
	}
	api.Success(w, list, reqID)
}

func (h *Handler) handleApprove(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	if err := h.Advance.Approve(r.Context(), chi.URLParam(r, "requestID")); err != nil {
		h.failDecision(w, err, reqID)
		return
	}
	api.Success(w, map[string]string{"status": advance.StatusApproved}, reqID)
}

func (h *Handler) handleReject(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	if err := h.Advance.Reject(r.Context(), chi.URLParam(r, "requestID")); err != nil {
		h.failDecision(w, err, reqID)
		return
	}
	api.Success(w, map[string]string{"status": advance.StatusRejected}, reqID)
}

func (h *Handler) failDecision(w http.ResponseWriter, err error, reqID string) {
	switch {
	case errors.Is(err, advance.ErrRequestNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", "advance request not found", reqID)
	case errors.Is(err, advance.ErrAlreadyDecided):
		api.Fail(w, http.StatusConflict, "conflict", "request already decided", reqID)
	default:
		api.Fail(w, http.StatusInternalServerError, "internal", "advance operation failed", reqID)
	}
}
