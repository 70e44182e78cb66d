package entities

import (
	"strings"
	"time"
)

// RequestKind classifies what the employee is asked to prove.
type RequestKind string

const (
	RequestKindIdentity   RequestKind = "identity"
	RequestKindLocation   RequestKind = "location"
	RequestKindAttendance RequestKind = "attendance"
	RequestKindCustom     RequestKind = "custom"
)

// ParseRequestKind validates a raw kind string.
func ParseRequestKind(raw string) (RequestKind, bool) {
	switch RequestKind(strings.TrimSpace(raw)) {
	case RequestKindIdentity:
		return RequestKindIdentity, true
	case RequestKindLocation:
		return RequestKindLocation, true
	case RequestKindAttendance:
		return RequestKindAttendance, true
	case RequestKindCustom:
		return RequestKindCustom, true
	default:
		return "", false
	}
}

// RequestStatus is the request lifecycle state.
type RequestStatus string

const (
	RequestStatusPending   RequestStatus = "pending"
	RequestStatusAccepted  RequestStatus = "accepted"
	RequestStatusRejected  RequestStatus = "rejected"
	RequestStatusCompleted RequestStatus = "completed"
	RequestStatusExpired   RequestStatus = "expired"
)

// Terminal reports whether no further transition is permitted.
func (s RequestStatus) Terminal() bool {
	switch s {
	case RequestStatusCompleted, RequestStatusRejected, RequestStatusExpired:
		return true
	default:
		return false
	}
}

// MediaKind tags the opaque proof payload.
type MediaKind string

const (
	MediaKindImage MediaKind = "image"
	MediaKindVideo MediaKind = "video"
)

// ParseMediaKind validates a raw media kind string.
func ParseMediaKind(raw string) (MediaKind, bool) {
	switch MediaKind(strings.TrimSpace(raw)) {
	case MediaKindImage:
		return MediaKindImage, true
	case MediaKindVideo:
		return MediaKindVideo, true
	default:
		return "", false
	}
}

// ResponseDecision is the manager's verdict on submitted proof.
type ResponseDecision string

const (
	ResponseDecisionApproved ResponseDecision = "approved"
	ResponseDecisionRejected ResponseDecision = "rejected"
)

// SubmittedProof records the employee's captured media by opaque reference.
// Set at most once, while transitioning into completed. Payload bytes are
// never inspected by this module.
type SubmittedProof struct {
	MediaKind   MediaKind
	Reference   string
	SubmittedAt time.Time
}

// ManagerResponse annotates completed proof with the manager's verdict. It is
// a secondary layer on top of the lifecycle: recording it never changes the
// request status.
type ManagerResponse struct {
	Decision    ResponseDecision
	Comment     string
	RespondedAt time.Time
}

// VerificationRequest is the central registry entity. RequestID and
// RequestedAt are immutable after creation; the collection is append/update
// only, terminal states are recorded, never removed.
type VerificationRequest struct {
	RequestID       string
	EmployeeID      string
	EmployeeName    string
	EmployeeContact string
	ManagerID       string
	ManagerName     string
	Kind            RequestKind
	Title           string
	Description     string
	RequestedAt     time.Time
	Deadline        *time.Time
	Status          RequestStatus
	Proof           *SubmittedProof
	Response        *ManagerResponse
}

func (r VerificationRequest) ValidateCreate() bool {
	return strings.TrimSpace(r.EmployeeID) != "" &&
		strings.TrimSpace(r.ManagerID) != "" &&
		strings.TrimSpace(r.Title) != ""
}

// CanSubmit reports whether proof submission is allowed from the current
// state. Acceptance is optional: a request completes by direct submission
// from pending just as it does after an explicit accept.
func (r VerificationRequest) CanSubmit() bool {
	return r.Status == RequestStatusPending || r.Status == RequestStatusAccepted
}

// Overdue reports whether the deadline has passed for a still-open request.
func (r VerificationRequest) Overdue(now time.Time) bool {
	if r.Deadline == nil || r.Status.Terminal() {
		return false
	}
	return r.Deadline.Before(now)
}
