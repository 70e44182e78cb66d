package queries

import (
	"context"
	"log/slog"
	"strings"

	"crewdesk/contexts/workforce-ops/notification-service/domain/entities"
	"crewdesk/contexts/workforce-ops/notification-service/ports"
)

// ListAnnouncementsQuery optionally narrows to announcements visible to one
// role; broadcast announcements always match.
type ListAnnouncementsQuery struct {
	Role string
}

type ListAnnouncementsUseCase struct {
	Repository ports.Repository
	Logger     *slog.Logger
}

func (u ListAnnouncementsUseCase) Execute(ctx context.Context, query ListAnnouncementsQuery) ([]entities.Announcement, error) {
	return u.Repository.ListAnnouncements(ctx, ports.AnnouncementFilter{
		Role: strings.TrimSpace(query.Role),
	})
}
