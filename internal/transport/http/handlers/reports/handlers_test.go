package reportshandler

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/xuri/excelize/v2"

	"fleethr/internal/domain/auth"
	"fleethr/internal/domain/identity"
	"fleethr/internal/domain/reports"
	"fleethr/internal/transport/http/middleware"
)

type fakeDirectory struct {
	employees map[string]identity.Employee
}

func (f *fakeDirectory) FindByFHRID(_ context.Context, fhrID string) (identity.Employee, error) {
	emp, ok := f.employees[fhrID]
	if !ok {
		return identity.Employee{}, identity.ErrEmployeeNotFound
	}
	return emp, nil
}

type fakeStore struct {
	upserts []reports.DailyReport
}

func (f *fakeStore) UpsertReport(_ context.Context, report reports.DailyReport) error {
	f.upserts = append(f.upserts, report)
	return nil
}

func (f *fakeStore) ListReports(_ context.Context, _ string, _, _ time.Time) ([]reports.DailyReport, error) {
	return f.upserts, nil
}

type noopNotifier struct{}

func (noopNotifier) Notify(_ context.Context, _, _, _ string) error { return nil }

func uploadRequest(t *testing.T, target string) *http.Request {
	t.Helper()

	file := excelize.NewFile()
	defer file.Close()
	sheetName := file.GetSheetName(0)
	header := []any{"CasperFHRID", "DEL", "OFD"}
	row1 := []any{"FHR1", 10, 2}
	row2 := []any{"FHR404", 5, 1}
	if err := file.SetSheetRow(sheetName, "A1", &header); err != nil {
		t.Fatalf("sheet row: %v", err)
	}
	if err := file.SetSheetRow(sheetName, "A2", &row1); err != nil {
		t.Fatalf("sheet row: %v", err)
	}
	if err := file.SetSheetRow(sheetName, "A3", &row2); err != nil {
		t.Fatalf("sheet row: %v", err)
	}
	workbook, err := file.WriteToBuffer()
	if err != nil {
		t.Fatalf("workbook: %v", err)
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", "daily.xlsx")
	if err != nil {
		t.Fatalf("form file: %v", err)
	}
	if _, err := part.Write(workbook.Bytes()); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, target, &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func adminRouter(t *testing.T, handler *Handler) (chi.Router, string) {
	t.Helper()

	secret := "test-secret"
	token, err := auth.GenerateToken(secret, auth.Claims{UserID: "admin", Role: auth.RoleAdmin}, time.Hour)
	if err != nil {
		t.Fatalf("token: %v", err)
	}

	router := chi.NewRouter()
	router.Use(middleware.Auth(secret))
	handler.RegisterRoutes(router)
	return router, token
}

func TestHandleUploadSummary(t *testing.T) {
	directory := &fakeDirectory{employees: map[string]identity.Employee{
		"FHR1": {ID: "e1", FHRID: "FHR1"},
	}}
	store := &fakeStore{}
	svc := reports.NewService(directory, store, noopNotifier{})
	router, token := adminRouter(t, NewHandler(svc, 1<<20))

	req := uploadRequest(t, "/reports/upload?date=2025-01-15")
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var envelope struct {
		Success bool `json:"success"`
		Data    struct {
			Total              int      `json:"total"`
			Success            int      `json:"success"`
			Failed             int      `json:"failed"`
			SkippedIdentifiers []string `json:"skippedIdentifiers"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if !envelope.Success {
		t.Fatal("expected success envelope")
	}
	if envelope.Data.Total != 2 || envelope.Data.Success != 1 || envelope.Data.Failed != 1 {
		t.Fatalf("summary = %+v", envelope.Data)
	}
	if len(envelope.Data.SkippedIdentifiers) != 1 || envelope.Data.SkippedIdentifiers[0] != "FHR404" {
		t.Fatalf("skipped = %v", envelope.Data.SkippedIdentifiers)
	}
	if len(store.upserts) != 1 {
		t.Fatalf("expected 1 upsert, got %d", len(store.upserts))
	}
}

func TestHandleUploadRequiresDate(t *testing.T) {
	svc := reports.NewService(&fakeDirectory{}, &fakeStore{}, noopNotifier{})
	router, token := adminRouter(t, NewHandler(svc, 1<<20))

	req := uploadRequest(t, "/reports/upload")
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestHandleUploadRequiresAdmin(t *testing.T) {
	svc := reports.NewService(&fakeDirectory{}, &fakeStore{}, noopNotifier{})
	router, _ := adminRouter(t, NewHandler(svc, 1<<20))

	token, err := auth.GenerateToken("test-secret", auth.Claims{UserID: "u1", Role: auth.RoleEmployee}, time.Hour)
	if err != nil {
		t.Fatalf("token: %v", err)
	}

	req := uploadRequest(t, "/reports/upload?date=2025-01-15")
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
}
