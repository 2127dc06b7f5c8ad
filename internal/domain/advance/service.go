package advance

import (
	"context"
	"fmt"
	"log/slog"

	"fleethr/internal/domain/notifications"
)

type Notifier interface {
	Notify(ctx context.Context, employeeID, title, message string) error
}

type Service struct {
	store    StoreAPI
	notifier Notifier
}

func NewService(store StoreAPI, notifier Notifier) *Service {
	return &Service{store: store, notifier: notifier}
}

func (s *Service) Create(ctx context.Context, employeeID string, amount float64, reason string) (string, error) {
	if amount <= 0 {
		return "", ErrInvalidAmount
	}
	return s.store.CreateRequest(ctx, employeeID, amount, reason)
}

func (s *Service) Approve(ctx context.Context, requestID string) error {
	req, err := s.store.GetRequest(ctx, requestID)
	if err != nil {
		return err
	}
	if err := s.store.Approve(ctx, requestID); err != nil {
		return err
	}
	s.notifyDecision(ctx, req, notifications.TitleAdvanceApproved,
		fmt.Sprintf("Your advance request of %.2f has been approved.", req.Amount))
	return nil
}

func (s *Service) Reject(ctx context.Context, requestID string) error {
	req, err := s.store.GetRequest(ctx, requestID)
	if err != nil {
		return err
	}
	if err := s.store.Reject(ctx, requestID); err != nil {
		return err
	}
	s.notifyDecision(ctx, req, notifications.TitleAdvanceRejected,
		fmt.Sprintf("Your advance request of %.2f has been rejected.", req.Amount))
	return nil
}

func (s *Service) ListForEmployee(ctx context.Context, employeeID string, limit, offset int) ([]Request, error) {
	return s.store.ListForEmployee(ctx, employeeID, limit, offset)
}

func (s *Service) notifyDecision(ctx context.Context, req Request, title, message string) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Notify(ctx, req.EmployeeID, title, message); err != nil {
		slog.Warn("advance decision notification failed", "requestId", req.ID, "err", err)
	}
}
