package commands

import (
	"context"
	"log/slog"

	application "crewdesk/contexts/workforce-ops/notification-service/application"
	"crewdesk/contexts/workforce-ops/notification-service/ports"
)

type ClearNotificationCommand struct {
	NotificationID string
}

// ClearNotificationUseCase removes one entry. Unlike mark-read, clearing an
// unknown id is reported as not found.
type ClearNotificationUseCase struct {
	Repository ports.Repository
	Logger     *slog.Logger
}

func (uc ClearNotificationUseCase) Execute(ctx context.Context, cmd ClearNotificationCommand) error {
	return uc.Repository.DeleteNotification(ctx, cmd.NotificationID)
}

// ClearAllUseCase empties the notification collection. Announcements are
// unaffected.
type ClearAllUseCase struct {
	Repository ports.Repository
	Logger     *slog.Logger
}

func (uc ClearAllUseCase) Execute(ctx context.Context) error {
	logger := application.ResolveLogger(uc.Logger)
	if err := uc.Repository.DeleteAllNotifications(ctx); err != nil {
		return err
	}
	logger.Debug("cleared all notifications",
		"event", "notification_clear_all",
		"module", "workforce-ops/notification-service",
		"layer", "application",
	)
	return nil
}
