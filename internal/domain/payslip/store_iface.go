package payslip

import "context"

type StoreAPI interface {
	UpsertPayslip(ctx context.Context, slip Payslip) error
	GetPayslip(ctx context.Context, employeeID string, month, year int) (Payslip, error)
	ListPayslips(ctx context.Context, employeeID string, limit, offset int) ([]Payslip, error)
}
