package memory

import (
	"context"
	"sync"
	"time"

	"crewdesk/contexts/workforce-ops/notification-service/domain/entities"
	domainerrors "crewdesk/contexts/workforce-ops/notification-service/domain/errors"
	"crewdesk/contexts/workforce-ops/notification-service/ports"

	"github.com/google/uuid"
)

// Store is the in-memory hub adapter. Collections are kept newest-first;
// every read hands out value copies so a reader never observes an entry
// mid-mutation.
type Store struct {
	mu            sync.RWMutex
	notifications []entities.Notification
	announcements []entities.Announcement
}

func NewStore() *Store {
	return &Store{
		notifications: make([]entities.Notification, 0),
		announcements: make([]entities.Announcement, 0),
	}
}

func (s *Store) InsertNotification(_ context.Context, notification entities.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.notifications = append([]entities.Notification{cloneNotification(notification)}, s.notifications...)
	return nil
}

func (s *Store) ListNotifications(_ context.Context, filter ports.NotificationFilter) ([]entities.Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.Notification, 0, len(s.notifications))
	for _, notification := range s.notifications {
		if filter.UnreadOnly && notification.Read {
			continue
		}
		items = append(items, cloneNotification(notification))
	}
	return items, nil
}

func (s *Store) MarkRead(_ context.Context, notificationID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, notification := range s.notifications {
		if notification.NotificationID != notificationID {
			continue
		}
		if notification.Read {
			return false, nil
		}
		updated := cloneNotification(notification)
		updated.Read = true
		s.notifications[i] = updated
		return true, nil
	}
	return false, nil
}

func (s *Store) MarkAllRead(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	flipped := 0
	for i, notification := range s.notifications {
		if notification.Read {
			continue
		}
		updated := cloneNotification(notification)
		updated.Read = true
		s.notifications[i] = updated
		flipped++
	}
	return flipped, nil
}

func (s *Store) DeleteNotification(_ context.Context, notificationID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, notification := range s.notifications {
		if notification.NotificationID == notificationID {
			s.notifications = append(s.notifications[:i:i], s.notifications[i+1:]...)
			return nil
		}
	}
	return domainerrors.ErrNotificationNotFound
}

func (s *Store) DeleteAllNotifications(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.notifications = make([]entities.Notification, 0)
	return nil
}

func (s *Store) UnreadCount(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, notification := range s.notifications {
		if !notification.Read {
			count++
		}
	}
	return count, nil
}

// InsertAnnouncement commits the announcement and its companion notification
// under one lock acquisition, so no reader can see one without the other.
func (s *Store) InsertAnnouncement(_ context.Context, announcement entities.Announcement, notification entities.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.announcements = append([]entities.Announcement{cloneAnnouncement(announcement)}, s.announcements...)
	s.notifications = append([]entities.Notification{cloneNotification(notification)}, s.notifications...)
	return nil
}

func (s *Store) ListAnnouncements(_ context.Context, filter ports.AnnouncementFilter) ([]entities.Announcement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.Announcement, 0, len(s.announcements))
	for _, announcement := range s.announcements {
		if filter.Role != "" && !announcement.VisibleTo(filter.Role) {
			continue
		}
		items = append(items, cloneAnnouncement(announcement))
	}
	return items, nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}

func cloneNotification(notification entities.Notification) entities.Notification {
	cloned := notification
	if notification.Metadata != nil {
		metadata := make(map[string]any, len(notification.Metadata))
		for key, value := range notification.Metadata {
			metadata[key] = value
		}
		cloned.Metadata = metadata
	}
	return cloned
}

func cloneAnnouncement(announcement entities.Announcement) entities.Announcement {
	cloned := announcement
	cloned.TargetRoles = append([]string(nil), announcement.TargetRoles...)
	return cloned
}
