package reports

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"fleethr/internal/domain/identity"
	"fleethr/internal/domain/notifications"
	"fleethr/internal/domain/sheet"
)

// Directory resolves FHR IDs against the identity store.
type Directory interface {
	FindByFHRID(ctx context.Context, fhrID string) (identity.Employee, error)
}

type Notifier interface {
	Notify(ctx context.Context, employeeID, title, message string) error
}

type Service struct {
	directory Directory
	store     StoreAPI
	notifier  Notifier
}

func NewService(directory Directory, store StoreAPI, notifier Notifier) *Service {
	return &Service{directory: directory, store: store, notifier: notifier}
}

// IngestSheet processes daily performance rows for one calendar date. Rows
// are handled strictly in order so that a duplicate identity within the
// upload resolves last-write-wins. A row failure never aborts the batch.
func (s *Service) IngestSheet(ctx context.Context, rows []sheet.Row, reportDate time.Time) sheet.Summary {
	var summary sheet.Summary
	for _, row := range rows {
		fhrID := sheet.TextField(row, "CasperFHRID", "FHRID", "fhrid")
		if fhrID == "" {
			summary.RecordFailure("")
			continue
		}

		emp, err := s.directory.FindByFHRID(ctx, fhrID)
		if err != nil {
			if !errors.Is(err, identity.ErrEmployeeNotFound) {
				slog.Warn("daily report identity lookup failed", "fhrId", fhrID, "err", err)
			}
			summary.RecordFailure(fhrID)
			continue
		}

		report := DailyReport{
			EmployeeID: emp.ID,
			ReportDate: reportDate,
			Delivered:  int(sheet.NumberField(row, "DEL", "Delivered")),
			Picked:     int(sheet.NumberField(row, "PICK", "Picked")),
			OFD:        int(sheet.NumberField(row, "OFD")),
			OFP:        int(sheet.NumberField(row, "OFP")),
			HubName:    sheet.TextField(row, "HubName", "Hub Name", "Hub"),
		}
		if err := s.store.UpsertReport(ctx, report); err != nil {
			slog.Warn("daily report upsert failed", "fhrId", fhrID, "err", err)
			summary.RecordFailure(fhrID)
			continue
		}
		summary.RecordSuccess()

		message := fmt.Sprintf("Your performance report for %s is available: %d delivered, %d out for delivery.",
			reportDate.Format("02 Jan 2006"), report.Delivered, report.OFD)
		if err := s.notifier.Notify(ctx, emp.ID, notifications.TitleDailyReport, message); err != nil {
			slog.Warn("daily report notification failed", "employeeId", emp.ID, "err", err)
		}
	}
	return summary
}

// ListForEmployee returns an employee's reports for one calendar month.
func (s *Service) ListForEmployee(ctx context.Context, fhrID string, month, year int) ([]DailyReport, error) {
	emp, err := s.directory.FindByFHRID(ctx, fhrID)
	if err != nil {
		return nil, err
	}
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0).Add(-time.Second)
	return s.store.ListReports(ctx, emp.ID, start, end)
}
