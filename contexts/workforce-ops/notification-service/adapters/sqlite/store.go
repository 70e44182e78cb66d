package sqliteadapter

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"crewdesk/contexts/workforce-ops/notification-service/domain/entities"
	domainerrors "crewdesk/contexts/workforce-ops/notification-service/domain/errors"
	"crewdesk/contexts/workforce-ops/notification-service/ports"
)

// Store implements the hub repository on a local SQLite database, for
// single-node deployments that want notifications to survive restarts.
type Store struct {
	db *sqlx.DB
}

// NewStore opens (or creates) the database at dbPath, enables WAL mode, and
// applies the schema.
func NewStore(dbPath string) (*Store, error) {
	db, err := sqlx.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}
	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return s, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
CREATE TABLE IF NOT EXISTS notifications (
	notification_id  TEXT PRIMARY KEY,
	kind             TEXT NOT NULL,
	title            TEXT NOT NULL,
	message          TEXT NOT NULL,
	created_at       TIMESTAMP NOT NULL,
	read             INTEGER NOT NULL DEFAULT 0,
	action_reference TEXT NOT NULL DEFAULT '',
	metadata         TEXT NOT NULL DEFAULT '{}'
);
CREATE INDEX IF NOT EXISTS idx_notifications_created_at ON notifications(created_at DESC);

CREATE TABLE IF NOT EXISTS announcements (
	announcement_id TEXT PRIMARY KEY,
	title           TEXT NOT NULL,
	message         TEXT NOT NULL,
	created_at      TIMESTAMP NOT NULL,
	author_id       TEXT NOT NULL,
	author_name     TEXT NOT NULL DEFAULT '',
	target_roles    TEXT NOT NULL DEFAULT '[]'
);
CREATE INDEX IF NOT EXISTS idx_announcements_created_at ON announcements(created_at DESC);
`
	_, err := s.db.Exec(schema)
	return err
}

func (s *Store) InsertNotification(ctx context.Context, notification entities.Notification) error {
	return s.insertNotificationTx(ctx, s.db, notification)
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (s *Store) insertNotificationTx(ctx context.Context, tx execer, notification entities.Notification) error {
	metadata := notification.Metadata
	if metadata == nil {
		metadata = map[string]any{}
	}
	metadataRaw, err := json.Marshal(metadata)
	if err != nil {
		return fmt.Errorf("encoding metadata: %w", err)
	}
	_, err = tx.ExecContext(ctx, `
INSERT INTO notifications (notification_id, kind, title, message, created_at, read, action_reference, metadata)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		notification.NotificationID,
		string(notification.Kind),
		notification.Title,
		notification.Message,
		notification.CreatedAt.UTC(),
		boolToInt(notification.Read),
		notification.ActionReference,
		string(metadataRaw),
	)
	if err != nil {
		return fmt.Errorf("inserting notification: %w", err)
	}
	return nil
}

func (s *Store) ListNotifications(ctx context.Context, filter ports.NotificationFilter) ([]entities.Notification, error) {
	query := `
SELECT notification_id, kind, title, message, created_at, read, action_reference, metadata
FROM notifications`
	if filter.UnreadOnly {
		query += " WHERE read = 0"
	}
	query += " ORDER BY created_at DESC, notification_id"

	rows, err := s.db.QueryxContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing notifications: %w", err)
	}
	defer rows.Close()

	items := make([]entities.Notification, 0)
	for rows.Next() {
		notification, err := scanNotification(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, notification)
	}
	return items, rows.Err()
}

func (s *Store) MarkRead(ctx context.Context, notificationID string) (bool, error) {
	result, err := s.db.ExecContext(ctx,
		"UPDATE notifications SET read = 1 WHERE notification_id = ? AND read = 0",
		notificationID,
	)
	if err != nil {
		return false, fmt.Errorf("marking notification read: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (s *Store) MarkAllRead(ctx context.Context) (int, error) {
	result, err := s.db.ExecContext(ctx, "UPDATE notifications SET read = 1 WHERE read = 0")
	if err != nil {
		return 0, fmt.Errorf("marking all notifications read: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(affected), nil
}

func (s *Store) DeleteNotification(ctx context.Context, notificationID string) error {
	result, err := s.db.ExecContext(ctx,
		"DELETE FROM notifications WHERE notification_id = ?",
		notificationID,
	)
	if err != nil {
		return fmt.Errorf("deleting notification: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domainerrors.ErrNotificationNotFound
	}
	return nil
}

func (s *Store) DeleteAllNotifications(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM notifications"); err != nil {
		return fmt.Errorf("deleting notifications: %w", err)
	}
	return nil
}

func (s *Store) UnreadCount(ctx context.Context) (int, error) {
	var count int
	if err := s.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM notifications WHERE read = 0"); err != nil {
		return 0, fmt.Errorf("counting unread notifications: %w", err)
	}
	return count, nil
}

// InsertAnnouncement writes both records inside one transaction.
func (s *Store) InsertAnnouncement(ctx context.Context, announcement entities.Announcement, notification entities.Notification) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning announcement tx: %w", err)
	}
	defer tx.Rollback()

	rolesRaw, err := json.Marshal(announcement.TargetRoles)
	if err != nil {
		return fmt.Errorf("encoding target roles: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `
INSERT INTO announcements (announcement_id, title, message, created_at, author_id, author_name, target_roles)
VALUES (?, ?, ?, ?, ?, ?, ?)`,
		announcement.AnnouncementID,
		announcement.Title,
		announcement.Message,
		announcement.CreatedAt.UTC(),
		announcement.AuthorID,
		announcement.AuthorName,
		string(rolesRaw),
	); err != nil {
		return fmt.Errorf("inserting announcement: %w", err)
	}
	if err := s.insertNotificationTx(ctx, tx, notification); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *Store) ListAnnouncements(ctx context.Context, filter ports.AnnouncementFilter) ([]entities.Announcement, error) {
	rows, err := s.db.QueryxContext(ctx, `
SELECT announcement_id, title, message, created_at, author_id, author_name, target_roles
FROM announcements
ORDER BY created_at DESC, announcement_id`)
	if err != nil {
		return nil, fmt.Errorf("listing announcements: %w", err)
	}
	defer rows.Close()

	items := make([]entities.Announcement, 0)
	for rows.Next() {
		var (
			announcement entities.Announcement
			createdAt    time.Time
			rolesRaw     string
		)
		if err := rows.Scan(
			&announcement.AnnouncementID,
			&announcement.Title,
			&announcement.Message,
			&createdAt,
			&announcement.AuthorID,
			&announcement.AuthorName,
			&rolesRaw,
		); err != nil {
			return nil, fmt.Errorf("scanning announcement: %w", err)
		}
		announcement.CreatedAt = createdAt.UTC()
		if err := json.Unmarshal([]byte(rolesRaw), &announcement.TargetRoles); err != nil {
			return nil, fmt.Errorf("decoding target roles: %w", err)
		}
		if filter.Role != "" && !announcement.VisibleTo(filter.Role) {
			continue
		}
		items = append(items, announcement)
	}
	return items, rows.Err()
}

func scanNotification(rows *sqlx.Rows) (entities.Notification, error) {
	var (
		notification entities.Notification
		kind         string
		createdAt    time.Time
		read         int
		metadataRaw  string
	)
	if err := rows.Scan(
		&notification.NotificationID,
		&kind,
		&notification.Title,
		&notification.Message,
		&createdAt,
		&read,
		&notification.ActionReference,
		&metadataRaw,
	); err != nil {
		return entities.Notification{}, fmt.Errorf("scanning notification: %w", err)
	}
	notification.Kind = entities.NotificationKind(kind)
	notification.CreatedAt = createdAt.UTC()
	notification.Read = read != 0
	if metadataRaw != "" && metadataRaw != "{}" {
		metadata := map[string]any{}
		if err := json.Unmarshal([]byte(metadataRaw), &metadata); err != nil {
			return entities.Notification{}, fmt.Errorf("decoding metadata: %w", err)
		}
		notification.Metadata = metadata
	}
	return notification, nil
}

func boolToInt(value bool) int {
	if value {
		return 1
	}
	return 0
}
