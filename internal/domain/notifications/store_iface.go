package notifications

import "context"

type StoreAPI interface {
	CreateNotification(ctx context.Context, employeeID, title, message string) error
	ListNotifications(ctx context.Context, employeeID string, limit, offset int) ([]Notification, error)
	CountUnread(ctx context.Context, employeeID string) (int, error)
	MarkRead(ctx context.Context, employeeID, notificationID string) error
}
