package payout

import (
	"context"
	"time"
)

type StoreAPI interface {
	AggregateReports(ctx context.Context, employeeID string, start, end time.Time) (ReportAggregate, error)
	SalaryStructure(ctx context.Context, employeeID string) (SalaryStructure, bool, error)
	UpsertSalaryStructure(ctx context.Context, structure SalaryStructure) error
	UpsertReport(ctx context.Context, report Report) error
	GetReport(ctx context.Context, employeeID string, month, year int) (Report, error)
	GetReportByID(ctx context.Context, reportID string) (Report, error)
	ListReports(ctx context.Context, employeeID string, limit, offset int) ([]Report, error)
	UpdateStatus(ctx context.Context, reportID, status string) error
	UpdateRemark(ctx context.Context, reportID, remark string) error
}
