package payouthandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"fleethr/internal/domain/identity"
	"fleethr/internal/domain/payout"
	"fleethr/internal/domain/sheet"
	"fleethr/internal/transport/http/api"
	"fleethr/internal/transport/http/middleware"
	"fleethr/internal/transport/http/shared"
)

type Handler struct {
	Payout         *payout.Service
	MaxUploadBytes int64
}

func NewHandler(payoutSvc *payout.Service, maxUploadBytes int64) *Handler {
	return &Handler{Payout: payoutSvc, MaxUploadBytes: maxUploadBytes}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/payouts", func(r chi.Router) {
		r.Post("/upload", middleware.RequireAdmin(h.handleUpload))
		r.Post("/{fhrID}/compute", middleware.RequireAdmin(h.handleCompute))
		r.Get("/{fhrID}/report", middleware.RequireAdmin(h.handleGet))
		r.Put("/{fhrID}/structure", middleware.RequireAdmin(h.handleUpsertStructure))
		r.Patch("/reports/{reportID}/status", middleware.RequireAdmin(h.handleUpdateStatus))
		r.Patch("/reports/{reportID}/remark", middleware.RequireAdmin(h.handleUpdateRemark))
		r.Get("/", h.handleListMine)
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
		h.failUpload(w, err, reqID)
		return
	}

	summary, err := h.Payout.IngestSheet(r.Context(), rows, month, year)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", err.Error(), reqID)
		return
	}
	api.Success(w, summary, reqID)
}

func (h *Handler) handleCompute(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	month, year, err := shared.ParsePeriod(r)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", err.Error(), reqID)
		return
	}

	report, err := h.Payout.Compute(r.Context(), chi.URLParam(r, "fhrID"), month, year)
	if err != nil {
		h.failPayout(w, err, reqID)
		return
	}
	api.Success(w, report, reqID)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	month, year, err := shared.ParsePeriod(r)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", err.Error(), reqID)
		return
	}

	report, err := h.Payout.Get(r.Context(), chi.URLParam(r, "fhrID"), month, year)
	if err != nil {
		h.failPayout(w, err, reqID)
		return
	}
	api.Success(w, report, reqID)
}

func (h *Handler) handleListMine(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", reqID)
		return
	}
	page := shared.ParsePagination(r, 12, 100)

	list, err := h.Payout.List(r.Context(), user.FHRID, page.Limit, page.Offset)
	if err != nil {
		h.failPayout(w, err, reqID)
		return
	}
	api.Success(w, list, reqID)
}

type structurePayload struct {
	BaseRate        float64 `json:"baseRate"`
	Conveyance      float64 `json:"conveyance"`
	OtherAllowances float64 `json:"otherAllowances"`
	IncentiveRate   float64 `json:"incentiveRate"`
	TDSRate         float64 `json:"tdsRate"`
}

func (h *Handler) handleUpsertStructure(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	var payload structurePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid request body", reqID)
		return
	}
	if payload.BaseRate < 0 || payload.TDSRate < 0 || payload.TDSRate > 100 {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid salary structure values", reqID)
		return
	}

	emp, err := h.Payout.ResolveEmployee(r.Context(), chi.URLParam(r, "fhrID"))
	if err != nil {
		h.failPayout(w, err, reqID)
		return
	}

	err = h.Payout.UpsertSalaryStructure(r.Context(), payout.SalaryStructure{
		EmployeeID:      emp.ID,
		BaseRate:        payload.BaseRate,
		Conveyance:      payload.Conveyance,
		OtherAllowances: payload.OtherAllowances,
		IncentiveRate:   payload.IncentiveRate,
		TDSRate:         payload.TDSRate,
	})
	if err != nil {
		h.failPayout(w, err, reqID)
		return
	}
	api.Success(w, map[string]string{"status": "updated"}, reqID)
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

	if err := h.Payout.UpdateStatus(r.Context(), chi.URLParam(r, "reportID"), payload.Status); err != nil {
		h.failPayout(w, err, reqID)
		return
	}
	api.Success(w, map[string]string{"status": payload.Status}, reqID)
}

type remarkPayload struct {
	Remark string `json:"remark"`
}

func (h *Handler) handleUpdateRemark(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	var payload remarkPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid request body", reqID)
		return
	}

	if err := h.Payout.UpdateRemark(r.Context(), chi.URLParam(r, "reportID"), payload.Remark); err != nil {
		h.failPayout(w, err, reqID)
		return
	}
	api.Success(w, map[string]string{"status": "updated"}, reqID)
}

func (h *Handler) failPayout(w http.ResponseWriter, err error, reqID string) {
	switch {
	case errors.Is(err, identity.ErrEmployeeNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", "employee not found", reqID)
	case errors.Is(err, payout.ErrReportNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", "payout report not found", reqID)
	case errors.Is(err, payout.ErrInvalidPeriod):
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid period", reqID)
	case errors.Is(err, payout.ErrInvalidTransition):
		api.Fail(w, http.StatusConflict, "conflict", "invalid status transition", reqID)
	default:
		api.Fail(w, http.StatusInternalServerError, "internal", "payout operation failed", reqID)
	}
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
