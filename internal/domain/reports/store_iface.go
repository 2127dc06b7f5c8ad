package reports

import (
	"context"
	"time"
)

type StoreAPI interface {
	UpsertReport(ctx context.Context, report DailyReport) error
	ListReports(ctx context.Context, employeeID string, from, to time.Time) ([]DailyReport, error)
}
