package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"crewdesk/contexts/workforce-ops/notification-service/domain/entities"
	domainerrors "crewdesk/contexts/workforce-ops/notification-service/domain/errors"
	"crewdesk/contexts/workforce-ops/notification-service/ports"
)

func seedNotification(t *testing.T, store *Store, id string, createdAt time.Time) {
	t.Helper()
	err := store.InsertNotification(context.Background(), entities.Notification{
		NotificationID: id,
		Kind:           entities.KindSystem,
		Title:          "Title " + id,
		Message:        "Message " + id,
		CreatedAt:      createdAt,
	})
	if err != nil {
		t.Fatalf("seed %s failed: %v", id, err)
	}
}

func TestListNotificationsIsNewestFirst(t *testing.T) {
	store := NewStore()
	base := time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC)
	seedNotification(t, store, "n-1", base)
	seedNotification(t, store, "n-2", base.Add(time.Minute))
	seedNotification(t, store, "n-3", base.Add(2*time.Minute))

	items, err := store.ListNotifications(context.Background(), ports.NotificationFilter{})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 notifications, got %d", len(items))
	}
	if items[0].NotificationID != "n-3" || items[2].NotificationID != "n-1" {
		t.Fatalf("expected newest-first order, got %#v", items)
	}
}

func TestMarkReadReportsNoOpForUnknownAndAlreadyRead(t *testing.T) {
	store := NewStore()
	seedNotification(t, store, "n-1", time.Now().UTC())

	if flipped, err := store.MarkRead(context.Background(), "ghost"); err != nil || flipped {
		t.Fatalf("expected silent no-op for unknown id, flipped=%v err=%v", flipped, err)
	}
	if flipped, err := store.MarkRead(context.Background(), "n-1"); err != nil || !flipped {
		t.Fatalf("expected first mark to flip, flipped=%v err=%v", flipped, err)
	}
	if flipped, err := store.MarkRead(context.Background(), "n-1"); err != nil || flipped {
		t.Fatalf("expected second mark to be a no-op, flipped=%v err=%v", flipped, err)
	}
}

func TestUnreadCountTracksReadFlips(t *testing.T) {
	store := NewStore()
	now := time.Now().UTC()
	seedNotification(t, store, "n-1", now)
	seedNotification(t, store, "n-2", now)

	count, err := store.UnreadCount(context.Background())
	if err != nil || count != 2 {
		t.Fatalf("expected 2 unread, got %d err=%v", count, err)
	}

	flipped, err := store.MarkAllRead(context.Background())
	if err != nil || flipped != 2 {
		t.Fatalf("expected 2 flipped, got %d err=%v", flipped, err)
	}
	count, err = store.UnreadCount(context.Background())
	if err != nil || count != 0 {
		t.Fatalf("expected 0 unread after mark-all, got %d err=%v", count, err)
	}
}

func TestDeleteNotificationUnknownIDFails(t *testing.T) {
	store := NewStore()

	err := store.DeleteNotification(context.Background(), "ghost")
	if !errors.Is(err, domainerrors.ErrNotificationNotFound) {
		t.Fatalf("expected ErrNotificationNotFound, got %v", err)
	}
}

func TestInsertAnnouncementWritesBothRecords(t *testing.T) {
	store := NewStore()
	now := time.Now().UTC()

	err := store.InsertAnnouncement(context.Background(),
		entities.Announcement{
			AnnouncementID: "a-1",
			Title:          "Town hall",
			Message:        "Friday at 3pm",
			CreatedAt:      now,
			AuthorID:       "mgr-1",
		},
		entities.Notification{
			NotificationID: "n-1",
			Kind:           entities.KindAnnouncement,
			Title:          "Town hall",
			Message:        "Friday at 3pm",
			CreatedAt:      now,
		},
	)
	if err != nil {
		t.Fatalf("insert announcement failed: %v", err)
	}

	announcements, err := store.ListAnnouncements(context.Background(), ports.AnnouncementFilter{})
	if err != nil || len(announcements) != 1 {
		t.Fatalf("expected 1 announcement, got %#v err=%v", announcements, err)
	}
	notifications, err := store.ListNotifications(context.Background(), ports.NotificationFilter{})
	if err != nil || len(notifications) != 1 {
		t.Fatalf("expected 1 notification, got %#v err=%v", notifications, err)
	}
	if notifications[0].Kind != entities.KindAnnouncement {
		t.Fatalf("expected announcement kind, got %q", notifications[0].Kind)
	}
}

func TestListAnnouncementsFiltersByTargetRole(t *testing.T) {
	store := NewStore()
	now := time.Now().UTC()

	broadcast := entities.Announcement{AnnouncementID: "a-1", Title: "All hands", Message: "Monday", CreatedAt: now, AuthorID: "mgr-1"}
	scoped := entities.Announcement{AnnouncementID: "a-2", Title: "Managers", Message: "Numbers", CreatedAt: now, AuthorID: "mgr-1", TargetRoles: []string{"manager"}}
	for i, announcement := range []entities.Announcement{broadcast, scoped} {
		err := store.InsertAnnouncement(context.Background(), announcement, entities.Notification{
			NotificationID: announcement.AnnouncementID + "-n",
			Kind:           entities.KindAnnouncement,
			Title:          announcement.Title,
			Message:        announcement.Message,
			CreatedAt:      now.Add(time.Duration(i) * time.Second),
		})
		if err != nil {
			t.Fatalf("insert failed: %v", err)
		}
	}

	employeeView, err := store.ListAnnouncements(context.Background(), ports.AnnouncementFilter{Role: "employee"})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(employeeView) != 1 || employeeView[0].AnnouncementID != "a-1" {
		t.Fatalf("expected broadcast only for employee, got %#v", employeeView)
	}

	managerView, err := store.ListAnnouncements(context.Background(), ports.AnnouncementFilter{Role: "manager"})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(managerView) != 2 {
		t.Fatalf("expected both announcements for manager, got %#v", managerView)
	}
}

func TestListNotificationsHandsOutMetadataCopies(t *testing.T) {
	store := NewStore()
	err := store.InsertNotification(context.Background(), entities.Notification{
		NotificationID: "n-1",
		Kind:           entities.KindSystem,
		Title:          "Title",
		Message:        "Message",
		CreatedAt:      time.Now().UTC(),
		Metadata:       map[string]any{"request_id": "req-1"},
	})
	if err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	first, err := store.ListNotifications(context.Background(), ports.NotificationFilter{})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	first[0].Metadata["request_id"] = "tampered"

	second, err := store.ListNotifications(context.Background(), ports.NotificationFilter{})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if second[0].Metadata["request_id"] != "req-1" {
		t.Fatal("expected stored metadata isolated from caller mutation")
	}
}
