package commands

import (
	"context"
	"log/slog"

	application "crewdesk/contexts/workforce-ops/notification-service/application"
	"crewdesk/contexts/workforce-ops/notification-service/ports"
)

type MarkReadCommand struct {
	NotificationID string
}

// MarkReadUseCase flips one entry to read. Unknown ids are a logged no-op,
// not an error: read-state mutation is idempotent.
type MarkReadUseCase struct {
	Repository ports.Repository
	Logger     *slog.Logger
}

func (uc MarkReadUseCase) Execute(ctx context.Context, cmd MarkReadCommand) error {
	logger := application.ResolveLogger(uc.Logger)
	flipped, err := uc.Repository.MarkRead(ctx, cmd.NotificationID)
	if err != nil {
		return err
	}
	if !flipped {
		logger.Debug("mark read was a no-op",
			"event", "notification_mark_read_noop",
			"module", "workforce-ops/notification-service",
			"layer", "application",
			"notification_id", cmd.NotificationID,
		)
	}
	return nil
}

// MarkAllReadUseCase flips every unread entry. Calling it twice leaves the
// unread count at zero both times.
type MarkAllReadUseCase struct {
	Repository ports.Repository
	Logger     *slog.Logger
}

func (uc MarkAllReadUseCase) Execute(ctx context.Context) (int, error) {
	logger := application.ResolveLogger(uc.Logger)
	flipped, err := uc.Repository.MarkAllRead(ctx)
	if err != nil {
		return 0, err
	}
	if flipped > 0 {
		logger.Debug("marked all notifications read",
			"event", "notification_mark_all_read",
			"module", "workforce-ops/notification-service",
			"layer", "application",
			"count", flipped,
		)
	}
	return flipped, nil
}
