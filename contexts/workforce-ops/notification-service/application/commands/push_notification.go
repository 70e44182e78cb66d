package commands

import (
	"context"
	"log/slog"
	"strings"

	application "crewdesk/contexts/workforce-ops/notification-service/application"
	"crewdesk/contexts/workforce-ops/notification-service/domain/entities"
	domainerrors "crewdesk/contexts/workforce-ops/notification-service/domain/errors"
	"crewdesk/contexts/workforce-ops/notification-service/ports"
)

type PushNotificationCommand struct {
	Kind            entities.NotificationKind
	Title           string
	Message         string
	ActionReference string
	Metadata        map[string]any
}

// PushNotificationUseCase creates a new unread hub entry, prepended so reads
// come back most-recent-first.
type PushNotificationUseCase struct {
	Repository ports.Repository
	Clock      ports.Clock
	IDGen      ports.IDGenerator
	Logger     *slog.Logger
}

func (uc PushNotificationUseCase) Execute(ctx context.Context, cmd PushNotificationCommand) (entities.Notification, error) {
	logger := application.ResolveLogger(uc.Logger)
	if _, ok := entities.ParseNotificationKind(string(cmd.Kind)); !ok {
		return entities.Notification{}, domainerrors.ErrUnknownNotificationKind
	}

	notificationID, err := uc.IDGen.NewID(ctx)
	if err != nil {
		return entities.Notification{}, err
	}
	notification := entities.Notification{
		NotificationID:  notificationID,
		Kind:            cmd.Kind,
		Title:           strings.TrimSpace(cmd.Title),
		Message:         strings.TrimSpace(cmd.Message),
		CreatedAt:       uc.Clock.Now().UTC(),
		Read:            false,
		ActionReference: strings.TrimSpace(cmd.ActionReference),
		Metadata:        cmd.Metadata,
	}
	if !notification.ValidateCreate() {
		return entities.Notification{}, domainerrors.ErrInvalidNotificationInput
	}
	if err := uc.Repository.InsertNotification(ctx, notification); err != nil {
		return entities.Notification{}, err
	}

	logger.Debug("notification pushed",
		"event", "notification_pushed",
		"module", "workforce-ops/notification-service",
		"layer", "application",
		"notification_id", notification.NotificationID,
		"kind", string(notification.Kind),
	)
	return notification, nil
}
