package notifications

import (
	"context"
	"log/slog"
)

// Pusher delivers a real-time signal alongside the persisted notification.
// The default is a no-op; a websocket or FCM transport can be plugged in.
type Pusher interface {
	Push(ctx context.Context, employeeID, title, message string) error
}

type Service struct {
	store  StoreAPI
	Pusher Pusher
}

func New(store StoreAPI) *Service {
	return &Service{store: store}
}

// Notify persists a notification for the employee. Push delivery is best
// effort: a push failure is logged, never returned.
func (s *Service) Notify(ctx context.Context, employeeID, title, message string) error {
	if err := s.store.CreateNotification(ctx, employeeID, title, message); err != nil {
		return err
	}
	if s.Pusher == nil {
		return nil
	}
	if err := s.Pusher.Push(ctx, employeeID, title, message); err != nil {
		slog.Warn("notification push failed", "employeeId", employeeID, "err", err)
	}
	return nil
}

func (s *Service) List(ctx context.Context, employeeID string, limit, offset int) ([]Notification, error) {
	return s.store.ListNotifications(ctx, employeeID, limit, offset)
}

func (s *Service) CountUnread(ctx context.Context, employeeID string) (int, error) {
	return s.store.CountUnread(ctx, employeeID)
}

func (s *Service) MarkRead(ctx context.Context, employeeID, notificationID string) error {
	return s.store.MarkRead(ctx, employeeID, notificationID)
}
