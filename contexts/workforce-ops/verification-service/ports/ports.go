package ports

import (
	"context"
	"time"

	"crewdesk/contexts/workforce-ops/verification-service/domain/entities"
)

// Clock abstracts current time for deterministic tests.
type Clock interface {
	Now() time.Time
}

// IDGenerator abstracts UUID generation for new requests.
type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

// RequestFilter narrows list queries. Zero values mean "no constraint".
type RequestFilter struct {
	EmployeeID string
	ManagerID  string
	Status     entities.RequestStatus
}

// Repository is the write/read boundary for registry state. UpdateRequest is
// a guarded whole-entity replacement: the update applies only while the
// stored status is one of fromStatuses, otherwise ErrInvalidTransition, so a
// transition can never be applied twice or out of order.
type Repository interface {
	CreateRequest(ctx context.Context, request entities.VerificationRequest) error
	GetRequest(ctx context.Context, requestID string) (entities.VerificationRequest, error)
	UpdateRequest(ctx context.Context, request entities.VerificationRequest, fromStatuses []entities.RequestStatus) error
	ListRequests(ctx context.Context, filter RequestFilter) ([]entities.VerificationRequest, error)
	ListOverdueRequests(ctx context.Context, now time.Time) ([]entities.VerificationRequest, error)
}

// NotificationDraft is the registry's view of a hub entry. Recipient routing
// is out of scope for the core; metadata carries the correlation ids the UI
// needs.
type NotificationDraft struct {
	Kind            string
	Title           string
	Message         string
	ActionReference string
	Metadata        map[string]any
}

// NotificationSink surfaces lifecycle events to the notification hub. Calls
// are synchronous; the registry commits its transition before pushing.
type NotificationSink interface {
	Push(ctx context.Context, draft NotificationDraft) error
}
