package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"crewdesk/contexts/workforce-ops/verification-service/domain/entities"
	domainerrors "crewdesk/contexts/workforce-ops/verification-service/domain/errors"
	"crewdesk/contexts/workforce-ops/verification-service/ports"
)

func seedRequest(t *testing.T, store *Store, id string, status entities.RequestStatus, deadline *time.Time) entities.VerificationRequest {
	t.Helper()
	request := entities.VerificationRequest{
		RequestID:   id,
		EmployeeID:  "emp-1",
		ManagerID:   "mgr-1",
		Kind:        entities.RequestKindIdentity,
		Title:       "Verify badge photo",
		RequestedAt: time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC),
		Deadline:    deadline,
		Status:      status,
	}
	if err := store.CreateRequest(context.Background(), request); err != nil {
		t.Fatalf("seed %s failed: %v", id, err)
	}
	return request
}

func TestUpdateRequestGuardsOnStoredStatus(t *testing.T) {
	store := NewStore()
	request := seedRequest(t, store, "req-1", entities.RequestStatusCompleted, nil)

	request.Status = entities.RequestStatusAccepted
	err := store.UpdateRequest(context.Background(), request, []entities.RequestStatus{entities.RequestStatusPending})
	if !errors.Is(err, domainerrors.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}

	stored, err := store.GetRequest(context.Background(), "req-1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if stored.Status != entities.RequestStatusCompleted {
		t.Fatalf("expected stored status untouched, got %q", stored.Status)
	}
}

func TestUpdateRequestUnknownIDReturnsNotFound(t *testing.T) {
	store := NewStore()

	err := store.UpdateRequest(context.Background(), entities.VerificationRequest{RequestID: "ghost"},
		[]entities.RequestStatus{entities.RequestStatusPending})
	if !errors.Is(err, domainerrors.ErrRequestNotFound) {
		t.Fatalf("expected ErrRequestNotFound, got %v", err)
	}
}

func TestUpdateRequestPreservesRequestedAt(t *testing.T) {
	store := NewStore()
	request := seedRequest(t, store, "req-1", entities.RequestStatusPending, nil)
	original := request.RequestedAt

	request.Status = entities.RequestStatusAccepted
	request.RequestedAt = original.Add(48 * time.Hour)
	if err := store.UpdateRequest(context.Background(), request, []entities.RequestStatus{entities.RequestStatusPending}); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	stored, err := store.GetRequest(context.Background(), "req-1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if !stored.RequestedAt.Equal(original) {
		t.Fatalf("expected RequestedAt preserved, got %v", stored.RequestedAt)
	}
}

func TestGetRequestHandsOutDeepCopies(t *testing.T) {
	store := NewStore()
	deadline := time.Date(2026, time.March, 10, 17, 0, 0, 0, time.UTC)
	seedRequest(t, store, "req-1", entities.RequestStatusPending, &deadline)

	first, err := store.GetRequest(context.Background(), "req-1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	*first.Deadline = first.Deadline.Add(72 * time.Hour)
	first.Proof = &entities.SubmittedProof{MediaKind: entities.MediaKindImage, Reference: "tampered"}

	second, err := store.GetRequest(context.Background(), "req-1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if !second.Deadline.Equal(deadline) {
		t.Fatalf("expected stored deadline isolated from caller, got %v", second.Deadline)
	}
	if second.Proof != nil {
		t.Fatal("expected stored proof isolated from caller")
	}
}

func TestListRequestsFilters(t *testing.T) {
	store := NewStore()
	seedRequest(t, store, "req-1", entities.RequestStatusPending, nil)
	other := entities.VerificationRequest{
		RequestID:   "req-2",
		EmployeeID:  "emp-2",
		ManagerID:   "mgr-1",
		Kind:        entities.RequestKindAttendance,
		Title:       "Confirm site attendance",
		RequestedAt: time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC),
		Status:      entities.RequestStatusCompleted,
	}
	if err := store.CreateRequest(context.Background(), other); err != nil {
		t.Fatalf("seed req-2 failed: %v", err)
	}

	byEmployee, err := store.ListRequests(context.Background(), ports.RequestFilter{EmployeeID: "emp-2"})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(byEmployee) != 1 || byEmployee[0].RequestID != "req-2" {
		t.Fatalf("expected only req-2, got %#v", byEmployee)
	}

	pending, err := store.ListRequests(context.Background(), ports.RequestFilter{Status: entities.RequestStatusPending})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(pending) != 1 || pending[0].RequestID != "req-1" {
		t.Fatalf("expected only req-1 pending, got %#v", pending)
	}

	all, err := store.ListRequests(context.Background(), ports.RequestFilter{})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(all) != 2 || !all[0].RequestedAt.After(all[1].RequestedAt) {
		t.Fatalf("expected newest-first ordering, got %#v", all)
	}
}

func TestListOverdueRequestsSkipsTerminalAndUndated(t *testing.T) {
	store := NewStore()
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	seedRequest(t, store, "overdue-open", entities.RequestStatusPending, &past)
	seedRequest(t, store, "overdue-accepted", entities.RequestStatusAccepted, &past)
	seedRequest(t, store, "overdue-completed", entities.RequestStatusCompleted, &past)
	seedRequest(t, store, "not-due", entities.RequestStatusPending, &future)
	seedRequest(t, store, "no-deadline", entities.RequestStatusPending, nil)

	overdue, err := store.ListOverdueRequests(context.Background(), now)
	if err != nil {
		t.Fatalf("list overdue failed: %v", err)
	}
	if len(overdue) != 2 {
		t.Fatalf("expected 2 overdue requests, got %#v", overdue)
	}
	for _, request := range overdue {
		if request.RequestID != "overdue-open" && request.RequestID != "overdue-accepted" {
			t.Fatalf("unexpected overdue request %q", request.RequestID)
		}
	}
}

func TestCreateRequestRejectsDuplicateID(t *testing.T) {
	store := NewStore()
	seedRequest(t, store, "req-1", entities.RequestStatusPending, nil)

	err := store.CreateRequest(context.Background(), entities.VerificationRequest{
		RequestID:  "req-1",
		EmployeeID: "emp-9",
		ManagerID:  "mgr-9",
		Title:      "Duplicate",
		Status:     entities.RequestStatusPending,
	})
	if !errors.Is(err, domainerrors.ErrInvalidRequestInput) {
		t.Fatalf("expected ErrInvalidRequestInput, got %v", err)
	}
}
