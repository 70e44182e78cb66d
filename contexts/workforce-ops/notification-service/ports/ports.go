package ports

import (
	"context"
	"time"

	"crewdesk/contexts/workforce-ops/notification-service/domain/entities"
)

// Clock abstracts current time for deterministic tests.
type Clock interface {
	Now() time.Time
}

// IDGenerator abstracts UUID generation for hub entries.
type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

// NotificationFilter narrows notification list queries.
type NotificationFilter struct {
	UnreadOnly bool
}

// AnnouncementFilter narrows announcement list queries. An empty Role means
// no role filter; broadcast announcements match every role.
type AnnouncementFilter struct {
	Role string
}

// Repository is the hub's storage boundary. Reads return newest-first value
// copies. MarkRead reports whether an entry was flipped so callers can log
// the idempotent no-op case. InsertAnnouncement persists the announcement
// and its companion broadcast notification as one operation: both commit or
// neither does.
type Repository interface {
	InsertNotification(ctx context.Context, notification entities.Notification) error
	ListNotifications(ctx context.Context, filter NotificationFilter) ([]entities.Notification, error)
	MarkRead(ctx context.Context, notificationID string) (bool, error)
	MarkAllRead(ctx context.Context) (int, error)
	DeleteNotification(ctx context.Context, notificationID string) error
	DeleteAllNotifications(ctx context.Context) error
	UnreadCount(ctx context.Context) (int, error)
	InsertAnnouncement(ctx context.Context, announcement entities.Announcement, notification entities.Notification) error
	ListAnnouncements(ctx context.Context, filter AnnouncementFilter) ([]entities.Announcement, error)
}
