package entities

import (
	"strings"
	"time"
)

// NotificationKind is the closed set of hub entry kinds.
type NotificationKind string

const (
	KindVerificationRequest   NotificationKind = "verification_request"
	KindVerificationAccepted  NotificationKind = "verification_accepted"
	KindVerificationRejected  NotificationKind = "verification_rejected"
	KindVerificationSubmitted NotificationKind = "verification_submitted"
	KindVerificationResponse  NotificationKind = "verification_response"
	KindVerificationExpired   NotificationKind = "verification_expired"
	KindAnnouncement          NotificationKind = "announcement"
	KindSystem                NotificationKind = "system"
)

// ParseNotificationKind validates a raw kind string.
func ParseNotificationKind(raw string) (NotificationKind, bool) {
	switch NotificationKind(strings.TrimSpace(raw)) {
	case KindVerificationRequest:
		return KindVerificationRequest, true
	case KindVerificationAccepted:
		return KindVerificationAccepted, true
	case KindVerificationRejected:
		return KindVerificationRejected, true
	case KindVerificationSubmitted:
		return KindVerificationSubmitted, true
	case KindVerificationResponse:
		return KindVerificationResponse, true
	case KindVerificationExpired:
		return KindVerificationExpired, true
	case KindAnnouncement:
		return KindAnnouncement, true
	case KindSystem:
		return KindSystem, true
	default:
		return "", false
	}
}

// Notification is one hub entry. CreatedAt is immutable; only the read flag
// is ever mutated, via mark-read operations.
type Notification struct {
	NotificationID  string
	Kind            NotificationKind
	Title           string
	Message         string
	CreatedAt       time.Time
	Read            bool
	ActionReference string
	Metadata        map[string]any
}

func (n Notification) ValidateCreate() bool {
	return strings.TrimSpace(n.Title) != "" && strings.TrimSpace(n.Message) != ""
}
