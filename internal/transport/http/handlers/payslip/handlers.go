package paysliphandler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"fleethr/internal/domain/identity"
	"fleethr/internal/domain/payslip"
	"fleethr/internal/domain/sheet"
	"fleethr/internal/transport/http/api"
	"fleethr/internal/transport/http/middleware"
	"fleethr/internal/transport/http/shared"
)

type Handler struct {
	Payslip        *payslip.Service
	MaxUploadBytes int64
}

func NewHandler(payslipSvc *payslip.Service, maxUploadBytes int64) *Handler {
	return &Handler{Payslip: payslipSvc, MaxUploadBytes: maxUploadBytes}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/payslips", func(r chi.Router) {
		r.Post("/upload", middleware.RequireAdmin(h.handleUpload))
		r.Get("/", h.handleListMine)
		r.Get("/download", h.handleDownload)
	})
}

func (h *Handler) handleUpload(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	month, year, err := shared.ParsePeriod(r)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", err.Error(), reqID)
		return
	}

	rows, err := shared.ReadSheetUpload(r, h.MaxUploadBytes)
	if err != nil {
		switch {
		case errors.Is(err, shared.ErrMissingFile):
			api.Fail(w, http.StatusBadRequest, "bad_request", "multipart file field is required", reqID)
		case errors.Is(err, sheet.ErrEmptyWorkbook):
			api.Fail(w, http.StatusBadRequest, "bad_request", "workbook has no data rows", reqID)
		default:
			api.Fail(w, http.StatusBadRequest, "bad_request", "could not parse upload", reqID)
		}
		return
	}

	summary, err := h.Payslip.IngestSheet(r.Context(), rows, month, year)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", err.Error(), reqID)
		return
	}
	api.Success(w, summary, reqID)
}

func (h *Handler) handleListMine(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", reqID)
		return
	}
	page := shared.ParsePagination(r, 12, 100)

	list, err := h.Payslip.List(r.Context(), user.FHRID, page.Limit, page.Offset)
	if err != nil {
		h.failPayslip(w, err, reqID)
		return
	}
	api.Success(w, list, reqID)
}

func (h *Handler) handleDownload(w http.ResponseWriter, r *http.Request) {
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

	slip, err := h.Payslip.Get(r.Context(), user.FHRID, month, year)
	if err != nil {
		h.failPayslip(w, err, reqID)
		return
	}
	if slip.PDFPath == "" {
		api.Fail(w, http.StatusNotFound, "not_found", "payslip document not available", reqID)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	http.ServeFile(w, r, slip.PDFPath)
}

func (h *Handler) failPayslip(w http.ResponseWriter, err error, reqID string) {
	switch {
	case errors.Is(err, identity.ErrEmployeeNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", "employee not found", reqID)
	case errors.Is(err, payslip.ErrPayslipNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", "payslip not found", reqID)
	default:
		api.Fail(w, http.StatusInternalServerError, "internal", "payslip operation failed", reqID)
	}
}
