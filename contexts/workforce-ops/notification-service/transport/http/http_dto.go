package httptransport

import "time"

type PushNotificationRequest struct {
	Kind            string         `json:"kind"`
	Title           string         `json:"title"`
	Message         string         `json:"message"`
	ActionReference string         `json:"action_reference,omitempty"`
	Metadata        map[string]any `json:"metadata,omitempty"`
}

type NotificationDTO struct {
	NotificationID  string         `json:"notification_id"`
	Kind            string         `json:"kind"`
	Title           string         `json:"title"`
	Message         string         `json:"message"`
	CreatedAt       time.Time      `json:"created_at"`
	Read            bool           `json:"read"`
	ActionReference string         `json:"action_reference,omitempty"`
	Metadata        map[string]any `json:"metadata,omitempty"`
}

type ListNotificationsResponse struct {
	Notifications []NotificationDTO `json:"notifications"`
	UnreadCount   int               `json:"unread_count"`
}

type UnreadCountResponse struct {
	UnreadCount int `json:"unread_count"`
}

type MarkAllReadResponse struct {
	Marked int `json:"marked"`
}

type SendAnnouncementRequest struct {
	Title       string   `json:"title"`
	Message     string   `json:"message"`
	TargetRoles []string `json:"target_roles,omitempty"`
}

type AnnouncementDTO struct {
	AnnouncementID string    `json:"announcement_id"`
	Title          string    `json:"title"`
	Message        string    `json:"message"`
	CreatedAt      time.Time `json:"created_at"`
	AuthorID       string    `json:"author_id"`
	AuthorName     string    `json:"author_name,omitempty"`
	TargetRoles    []string  `json:"target_roles"`
}

type ListAnnouncementsResponse struct {
	Announcements []AnnouncementDTO `json:"announcements"`
}

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
