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

type SendAnnouncementCommand struct {
	Title       string
	Message     string
	AuthorID    string
	AuthorName  string
	TargetRoles []string
}

// SendAnnouncementUseCase creates an announcement and its companion
// broadcast notification in one repository operation. The caller sees a
// single logical write: both records exist afterwards or neither does.
type SendAnnouncementUseCase struct {
	Repository ports.Repository
	Clock      ports.Clock
	IDGen      ports.IDGenerator
	Logger     *slog.Logger
}

func (uc SendAnnouncementUseCase) Execute(ctx context.Context, cmd SendAnnouncementCommand) (entities.Announcement, error) {
	logger := application.ResolveLogger(uc.Logger)
	announcementID, err := uc.IDGen.NewID(ctx)
	if err != nil {
		return entities.Announcement{}, err
	}
	notificationID, err := uc.IDGen.NewID(ctx)
	if err != nil {
		return entities.Announcement{}, err
	}

	now := uc.Clock.Now().UTC()
	announcement := entities.Announcement{
		AnnouncementID: announcementID,
		Title:          strings.TrimSpace(cmd.Title),
		Message:        strings.TrimSpace(cmd.Message),
		CreatedAt:      now,
		AuthorID:       strings.TrimSpace(cmd.AuthorID),
		AuthorName:     strings.TrimSpace(cmd.AuthorName),
		TargetRoles:    normalizeRoles(cmd.TargetRoles),
	}
	if !announcement.ValidateCreate() {
		return entities.Announcement{}, domainerrors.ErrInvalidAnnouncementInput
	}

	notification := entities.Notification{
		NotificationID:  notificationID,
		Kind:            entities.KindAnnouncement,
		Title:           announcement.Title,
		Message:         announcement.Message,
		CreatedAt:       now,
		Read:            false,
		ActionReference: announcement.AnnouncementID,
		Metadata: map[string]any{
			"announcement_id": announcement.AnnouncementID,
			"author_id":       announcement.AuthorID,
		},
	}
	if err := uc.Repository.InsertAnnouncement(ctx, announcement, notification); err != nil {
		return entities.Announcement{}, err
	}

	logger.Info("announcement sent",
		"event", "announcement_sent",
		"module", "workforce-ops/notification-service",
		"layer", "application",
		"announcement_id", announcement.AnnouncementID,
		"author_id", announcement.AuthorID,
		"broadcast", len(announcement.TargetRoles) == 0,
	)
	return announcement, nil
}

func normalizeRoles(roles []string) []string {
	normalized := make([]string, 0, len(roles))
	for _, role := range roles {
		role = strings.TrimSpace(role)
		if role != "" {
			normalized = append(normalized, role)
		}
	}
	return normalized
}
