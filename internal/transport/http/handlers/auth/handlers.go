package authhandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"fleethr/internal/domain/auth"
	"fleethr/internal/domain/identity"
	"fleethr/internal/transport/http/api"
	"fleethr/internal/transport/http/middleware"
)

type Handler struct {
	Identity  *identity.Service
	JWTSecret string
	TokenTTL  time.Duration
}

func NewHandler(identitySvc *identity.Service, jwtSecret string) *Handler {
	return &Handler{Identity: identitySvc, JWTSecret: jwtSecret, TokenTTL: 24 * time.Hour}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.handleLogin)
		r.Post("/register", h.handleRegister)
		r.Post("/otp/request", h.handleOTPRequest)
		r.Post("/otp/verify", h.handleOTPVerify)
	})
}

type loginPayload struct {
	Mobile   string `json:"mobile"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token    string            `json:"token"`
	Employee identity.Employee `json:"employee"`
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	var payload loginPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid request body", reqID)
		return
	}
	if payload.Mobile == "" || payload.Password == "" {
		api.Fail(w, http.StatusBadRequest, "bad_request", "mobile and password are required", reqID)
		return
	}

	emp, err := h.Identity.Login(r.Context(), payload.Mobile, payload.Password)
	if err != nil {
		h.failLogin(w, err, reqID)
		return
	}
	h.issueToken(w, emp, reqID)
}

type registerResponse struct {
	ID string `json:"id"`
}

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	var payload identity.JoiningRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid request body", reqID)
		return
	}
	if payload.FHRID == "" || payload.Mobile == "" || payload.Password == "" {
		api.Fail(w, http.StatusBadRequest, "bad_request", "fhrId, mobile and password are required", reqID)
		return
	}

	id, err := h.Identity.Register(r.Context(), payload)
	if err != nil {
		switch {
		case errors.Is(err, identity.ErrMobileTaken), errors.Is(err, identity.ErrFHRIDTaken):
			api.Fail(w, http.StatusConflict, "conflict", err.Error(), reqID)
		default:
			api.Fail(w, http.StatusInternalServerError, "internal", "failed to register", reqID)
		}
		return
	}
	api.Created(w, registerResponse{ID: id}, reqID)
}

type otpRequestPayload struct {
	Mobile string `json:"mobile"`
}

func (h *Handler) handleOTPRequest(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	var payload otpRequestPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Mobile == "" {
		api.Fail(w, http.StatusBadRequest, "bad_request", "mobile is required", reqID)
		return
	}

	if _, err := h.Identity.RequestOTP(r.Context(), payload.Mobile); err != nil {
		// Unknown numbers get the same response as known ones so the
		// endpoint cannot be used to probe for registered mobiles.
		if !errors.Is(err, identity.ErrEmployeeNotFound) && !errors.Is(err, identity.ErrLoginNotAllowed) {
			api.Fail(w, http.StatusInternalServerError, "internal", "failed to issue code", reqID)
			return
		}
	}
	api.Success(w, map[string]string{"status": "sent"}, reqID)
}

type otpVerifyPayload struct {
	Mobile string `json:"mobile"`
	Code   string `json:"code"`
}

func (h *Handler) handleOTPVerify(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	var payload otpVerifyPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Mobile == "" || payload.Code == "" {
		api.Fail(w, http.StatusBadRequest, "bad_request", "mobile and code are required", reqID)
		return
	}

	emp, err := h.Identity.VerifyOTP(r.Context(), payload.Mobile, payload.Code)
	if err != nil {
		h.failLogin(w, err, reqID)
		return
	}
	h.issueToken(w, emp, reqID)
}

func (h *Handler) issueToken(w http.ResponseWriter, emp identity.Employee, reqID string) {
	token, err := auth.GenerateToken(h.JWTSecret, auth.Claims{
		UserID: emp.ID,
		FHRID:  emp.FHRID,
		Role:   emp.Role,
	}, h.TokenTTL)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "internal", "failed to issue token", reqID)
		return
	}
	api.Success(w, tokenResponse{Token: token, Employee: emp}, reqID)
}

func (h *Handler) failLogin(w http.ResponseWriter, err error, reqID string) {
	switch {
	case errors.Is(err, identity.ErrBadCredentials), errors.Is(err, identity.ErrOTPInvalid),
		errors.Is(err, identity.ErrEmployeeNotFound):
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "invalid credentials", reqID)
	case errors.Is(err, identity.ErrLoginNotAllowed):
		api.Fail(w, http.StatusForbidden, "forbidden", "account is not active", reqID)
	default:
		api.Fail(w, http.StatusInternalServerError, "internal", "login failed", reqID)
	}
}
