package reportshandler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"fleethr/internal/domain/identity"
	"fleethr/internal/domain/reports"
	"fleethr/internal/domain/sheet"
	"fleethr/internal/transport/http/api"
	"fleethr/internal/transport/http/middleware"
	"fleethr/internal/transport/http/shared"
)

type Handler struct {
	Reports        *reports.Service
	MaxUploadBytes int64
}

func NewHandler(reportsSvc *reports.Service, maxUploadBytes int64) *Handler {
	return &Handler{Reports: reportsSvc, MaxUploadBytes: maxUploadBytes}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/reports", func(r chi.Router) {
		r.Post("/upload", middleware.RequireAdmin(h.handleUpload))
		r.Get("/", h.handleListMine)
	})
}

func (h *Handler) handleUpload(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	reportDate, err := shared.ParseDate(r.URL.Query().Get("date"))
	if err != nil || reportDate.IsZero() {
		api.Fail(w, http.StatusBadRequest, "bad_request", "date query parameter is required (YYYY-MM-DD)", reqID)
		return
	}

	rows, err := shared.ReadSheetUpload(r, h.MaxUploadBytes)
	if err != nil {
		h.failUpload(w, err, reqID)
		return
	}

	summary := h.Reports.IngestSheet(r.Context(), rows, reportDate)
	api.Success(w, summary, reqID)
}

func (h *Handler) handleListMine(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", reqID)
		return
	}

	month, year, err := shared.ParsePeriod(r)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", err.Error(), reqID)
		return
	}

	list, err := h.Reports.ListForEmployee(r.Context(), user.FHRID, month, year)
	if err != nil {
		if errors.Is(err, identity.ErrEmployeeNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "employee not found", reqID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "internal", "failed to list reports", reqID)
		return
	}
	api.Success(w, list, reqID)
}

func (h *Handler) failUpload(w http.ResponseWriter, err error, reqID string) {
	switch {
	case errors.Is(err, shared.ErrMissingFile):
		api.Fail(w, http.StatusBadRequest, "bad_request", "multipart file field is required", reqID)
	case errors.Is(err, sheet.ErrEmptyWorkbook):
		api.Fail(w, http.StatusBadRequest, "bad_request", "workbook has no data rows", reqID)
	default:
		api.Fail(w, http.StatusBadRequest, "bad_request", "could not parse upload", reqID)
	}
}
