package queries

import (
	"context"
	"log/slog"

	"crewdesk/contexts/workforce-ops/notification-service/domain/entities"
	"crewdesk/contexts/workforce-ops/notification-service/ports"
)

// ListNotificationsQuery filters hub reads.
type ListNotificationsQuery struct {
	UnreadOnly bool
}

// ListNotificationsUseCase reads the hub newest-first. Pure, no side effects.
type ListNotificationsUseCase struct {
	Repository ports.Repository
	Logger     *slog.Logger
}

func (u ListNotificationsUseCase) Execute(ctx context.Context, query ListNotificationsQuery) ([]entities.Notification, error) {
	return u.Repository.ListNotifications(ctx, ports.NotificationFilter{
		UnreadOnly: query.UnreadOnly,
	})
}

// UnreadCountUseCase derives the badge count from the collection on every
// call; there is no stored counter to drift.
type UnreadCountUseCase struct {
	Repository ports.Repository
	Logger     *slog.Logger
}

func (u UnreadCountUseCase) Execute(ctx context.Context) (int, error) {
	return u.Repository.UnreadCount(ctx)
}
