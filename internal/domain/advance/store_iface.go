package advance

import (
	"context"
	"time"
)

type StoreAPI interface {
	CreateRequest(ctx context.Context, employeeID string, amount float64, reason string) (string, error)
	GetRequest(ctx context.Context, requestID string) (Request, error)
	Approve(ctx context.Context, requestID string) error
	Reject(ctx context.Context, requestID string) error
	ListForEmployee(ctx context.Context, employeeID string, limit, offset int) ([]Request, error)
	SumApprovedBetween(ctx context.Context, employeeID string, start, end time.Time) (float64, error)
}
