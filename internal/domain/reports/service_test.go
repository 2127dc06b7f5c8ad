package reports

import (
	"context"
	"errors"
	"testing"
	"time"

	"fleethr/internal/domain/identity"
	"fleethr/internal/domain/sheet"
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
	upserts   []DailyReport
	upsertErr error
}

func (f *fakeStore) UpsertReport(_ context.Context, report DailyReport) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.upserts = append(f.upserts, report)
	return nil
}

func (f *fakeStore) ListReports(_ context.Context, _ string, _, _ time.Time) ([]DailyReport, error) {
	return f.upserts, nil
}

type fakeNotifier struct {
	calls int
	err   error
}

func (f *fakeNotifier) Notify(_ context.Context, _, _, _ string) error {
	f.calls++
	return f.err
}

func TestIngestSheetPartialFailure(t *testing.T) {
	directory := &fakeDirectory{employees: map[string]identity.Employee{
		"FHR1": {ID: "e1", FHRID: "FHR1"},
		"FHR2": {ID: "e2", FHRID: "FHR2"},
		"FHR4": {ID: "e4", FHRID: "FHR4"},
		"FHR5": {ID: "e5", FHRID: "FHR5"},
	}}
	store := &fakeStore{}
	notifier := &fakeNotifier{}
	svc := NewService(directory, store, notifier)

	rows := []sheet.Row{
		{"CasperFHRID": "FHR1", "DEL": "10", "OFD": "2"},
		{"CasperFHRID": "FHR2", "DEL": "5"},
		{"CasperFHRID": "FHR3", "DEL": "7"},
		{"CasperFHRID": "FHR4", "PICK": "3"},
		{"CasperFHRID": "FHR5"},
	}

	summary := svc.IngestSheet(context.Background(), rows, time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC))

	if summary.Total != 5 || summary.Success != 4 || summary.Failed != 1 {
		t.Fatalf("summary = %+v", summary)
	}
	if len(summary.SkippedIdentifiers) != 1 || summary.SkippedIdentifiers[0] != "FHR3" {
		t.Fatalf("skipped = %v", summary.SkippedIdentifiers)
	}
	if len(store.upserts) != 4 {
		t.Fatalf("expected 4 upserts, got %d", len(store.upserts))
	}
	if notifier.calls != 4 {
		t.Fatalf("expected 4 notifications, got %d", notifier.calls)
	}
}

func TestIngestSheetNotifierFailureKeepsSuccess(t *testing.T) {
	directory := &fakeDirectory{employees: map[string]identity.Employee{
		"FHR1": {ID: "e1", FHRID: "FHR1"},
	}}
	store := &fakeStore{}
	notifier := &fakeNotifier{err: errors.New("push down")}
	svc := NewService(directory, store, notifier)

	rows := []sheet.Row{{"FHRID": "FHR1", "DEL": "4"}}
	summary := svc.IngestSheet(context.Background(), rows, time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC))

	if summary.Success != 1 || summary.Failed != 0 {
		t.Fatalf("notification failure must not fail the row: %+v", summary)
	}
	if len(store.upserts) != 1 {
		t.Fatalf("expected report persisted, got %d", len(store.upserts))
	}
}

func TestIngestSheetUpsertFailureIsolated(t *testing.T) {
	directory := &fakeDirectory{employees: map[string]identity.Employee{
		"FHR1": {ID: "e1", FHRID: "FHR1"},
	}}
	store := &fakeStore{upsertErr: errors.New("db down")}
	notifier := &fakeNotifier{}
	svc := NewService(directory, store, notifier)

	rows := []sheet.Row{{"FHRID": "FHR1", "DEL": "4"}}
	summary := svc.IngestSheet(context.Background(), rows, time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC))

	if summary.Failed != 1 || summary.Success != 0 {
		t.Fatalf("summary = %+v", summary)
	}
	if notifier.calls != 0 {
		t.Fatalf("failed row must not notify, got %d calls", notifier.calls)
	}
}

func TestIngestSheetMissingIdentifier(t *testing.T) {
	svc := NewService(&fakeDirectory{}, &fakeStore{}, &fakeNotifier{})

	rows := []sheet.Row{{"DEL": "4"}}
	summary := svc.IngestSheet(context.Background(), rows, time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC))

	if summary.Failed != 1 {
		t.Fatalf("summary = %+v", summary)
	}
	if len(summary.SkippedIdentifiers) != 0 {
		t.Fatalf("blank identifier must not be listed, got %v", summary.SkippedIdentifiers)
	}
}
