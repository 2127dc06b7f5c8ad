package identityhandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"fleethr/internal/domain/identity"
	"fleethr/internal/transport/http/api"
	"fleethr/internal/transport/http/middleware"
	"fleethr/internal/transport/http/shared"
)

type Handler struct {
	Identity *identity.Service
}

func NewHandler(identitySvc *identity.Service) *Handler {
	return &Handler{Identity: identitySvc}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/me", h.handleMe)
	r.Route("/employees", func(r chi.Router) {
		r.Get("/pending", middleware.RequireAdmin(h.handleListPending))
		r.Post("/{employeeID}/approve", middleware.RequireAdmin(h.handleApprove))
		r.Post("/{employeeID}/reject", middleware.RequireAdmin(h.handleReject))
		r.Patch("/{employeeID}/status", middleware.RequireAdmin(h.handleUpdateStatus))
		r.Patch("/{employeeID}/baseline", middleware.RequireAdmin(h.handleUpdateBaseline))
	})
}

func (h *Handler) handleMe(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", reqID)
		return
	}

	emp, err := h.Identity.Store().FindByID(r.Context(), user.UserID)
	if err != nil {
		h.failLookup(w, err, reqID)
		return
	}
	api.Success(w, emp, reqID)
}

func (h *Handler) handleListPending(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	page := shared.ParsePagination(r, 50, 200)

	pending, err := h.Identity.Store().ListPending(r.Context(), page.Limit, page.Offset)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "internal", "failed to list joining requests", reqID)
		return
	}
	api.Success(w, pending, reqID)
}

func (h *Handler) handleApprove(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	if err := h.Identity.Store().Approve(r.Context(), chi.URLParam(r, "employeeID")); err != nil {
		h.failLookup(w, err, reqID)
		return
	}
	api.Success(w, map[string]string{"status": "approved"}, reqID)
}

func (h *Handler) handleReject(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	if err := h.Identity.Store().Reject(r.Context(), chi.URLParam(r, "employeeID")); err != nil {
		h.failLookup(w, err, reqID)
		return
	}
	api.Success(w, map[string]string{"status": "rejected"}, reqID)
}

type statusPayload struct {
	Status string `json:"status"`
}

func (h *Handler) handleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	var payload statusPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid request body", reqID)
		return
	}
	switch payload.Status {
	case identity.StatusActive, identity.StatusInactive, identity.StatusSuspended:
	default:
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid status", reqID)
		return
	}

	if err := h.Identity.Store().UpdateStatus(r.Context(), chi.URLParam(r, "employeeID"), payload.Status); err != nil {
		h.failLookup(w, err, reqID)
		return
	}
	api.Success(w, map[string]string{"status": payload.Status}, reqID)
}

type baselinePayload struct {
	BaseRate   float64 `json:"baseRate"`
	Conveyance float64 `json:"conveyance"`
}

func (h *Handler) handleUpdateBaseline(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	var payload baselinePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid request body", reqID)
		return
	}
	if payload.BaseRate < 0 || payload.Conveyance < 0 {
		api.Fail(w, http.StatusBadRequest, "bad_request", "rates must not be negative", reqID)
		return
	}

	if err := h.Identity.Store().UpdateBaseline(r.Context(), chi.URLParam(r, "employeeID"), payload.BaseRate, payload.Conveyance); err != nil {
		h.failLookup(w, err, reqID)
		return
	}
	api.Success(w, map[string]string{"status": "updated"}, reqID)
}

func (h *Handler) failLookup(w http.ResponseWriter, err error, reqID string) {
	if errors.Is(err, identity.ErrEmployeeNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "employee not found", reqID)
		return
	}
	api.Fail(w, http.StatusInternalServerError, "internal", "employee operation failed", reqID)
}
