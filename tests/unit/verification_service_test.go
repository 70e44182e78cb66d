package unit

import (
	"context"
	"testing"
	"time"

	notificationhub "crewdesk/contexts/workforce-ops/notification-service"
	notificationcommands "crewdesk/contexts/workforce-ops/notification-service/application/commands"
	notificationentities "crewdesk/contexts/workforce-ops/notification-service/domain/entities"
	verification "crewdesk/contexts/workforce-ops/verification-service"
	verificationports "crewdesk/contexts/workforce-ops/verification-service/ports"
	verificationhttp "crewdesk/contexts/workforce-ops/verification-service/transport/http"
)

type hubSink struct {
	push notificationcommands.PushNotificationUseCase
}

func (s hubSink) Push(ctx context.Context, draft verificationports.NotificationDraft) error {
	kind, ok := notificationentities.ParseNotificationKind(draft.Kind)
	if !ok {
		kind = notificationentities.KindSystem
	}
	_, err := s.push.Execute(ctx, notificationcommands.PushNotificationCommand{
		Kind:            kind,
		Title:           draft.Title,
		Message:         draft.Message,
		ActionReference: draft.ActionReference,
		Metadata:        draft.Metadata,
	})
	return err
}

func newWiredModules() (verification.Module, notificationhub.Module) {
	hub := notificationhub.NewInMemoryModule(nil)
	registry := verification.NewInMemoryModule(nil, hubSink{push: hub.Push})
	return registry, hub
}

func createRequest(t *testing.T, registry verification.Module, deadline *time.Time) verificationhttp.VerificationRequestDTO {
	t.Helper()
	created, err := registry.Handler.CreateRequestHandler(context.Background(), verificationhttp.CreateRequestRequest{
		EmployeeID:   "emp-1",
		EmployeeName: "Dana",
		ManagerID:    "mgr-1",
		ManagerName:  "Sam",
		Kind:         "identity",
		Title:        "Verify badge photo",
		Deadline:     deadline,
	})
	if err != nil {
		t.Fatalf("create request failed: %v", err)
	}
	return created
}

func TestVerificationSubmitThenRespondKeepsStatusCompleted(t *testing.T) {
	registry, _ := newWiredModules()
	created := createRequest(t, registry, nil)

	submitted, err := registry.Handler.SubmitProofHandler(context.Background(), created.RequestID, verificationhttp.SubmitProofRequest{
		MediaKind: "image",
		Reference: "uploads/proof-1.png",
	})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if submitted.Status != "completed" {
		t.Fatalf("expected completed, got %q", submitted.Status)
	}

	responded, err := registry.Handler.RespondHandler(context.Background(), created.RequestID, verificationhttp.RespondRequest{
		Approved: false,
		Comment:  "photo is blurry",
	})
	if err != nil {
		t.Fatalf("respond failed: %v", err)
	}
	if responded.Status != "completed" {
		t.Fatalf("expected rejection verdict to keep completed status, got %q", responded.Status)
	}
	if responded.Response == nil || responded.Response.Decision != "rejected" {
		t.Fatalf("expected rejected verdict, got %#v", responded.Response)
	}
}

func TestVerificationAcceptAfterCompletionFails(t *testing.T) {
	registry, _ := newWiredModules()
	created := createRequest(t, registry, nil)

	if _, err := registry.Handler.SubmitProofHandler(context.Background(), created.RequestID, verificationhttp.SubmitProofRequest{
		MediaKind: "image",
		Reference: "uploads/proof-1.png",
	}); err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	if _, err := registry.Handler.AcceptRequestHandler(context.Background(), created.RequestID); err == nil {
		t.Fatal("expected accept after completion to fail")
	}
}

func TestVerificationLifecycleFansOutHubNotifications(t *testing.T) {
	registry, hub := newWiredModules()
	created := createRequest(t, registry, nil)

	if _, err := registry.Handler.SubmitProofHandler(context.Background(), created.RequestID, verificationhttp.SubmitProofRequest{
		MediaKind: "image",
		Reference: "uploads/proof-1.png",
	}); err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if _, err := registry.Handler.RespondHandler(context.Background(), created.RequestID, verificationhttp.RespondRequest{Approved: true}); err != nil {
		t.Fatalf("respond failed: %v", err)
	}

	list, err := hub.Handler.ListNotificationsHandler(context.Background(), false)
	if err != nil {
		t.Fatalf("list notifications failed: %v", err)
	}
	if len(list.Notifications) != 3 {
		t.Fatalf("expected create/submit/respond notifications, got %d", len(list.Notifications))
	}
	// Newest first: the response verdict leads.
	if list.Notifications[0].Kind != "verification_response" {
		t.Fatalf("expected verification_response first, got %q", list.Notifications[0].Kind)
	}
	if list.Notifications[2].Kind != "verification_request" {
		t.Fatalf("expected verification_request last, got %q", list.Notifications[2].Kind)
	}
	for _, notification := range list.Notifications {
		if notification.ActionReference != created.RequestID {
			t.Fatalf("expected action reference %q, got %q", created.RequestID, notification.ActionReference)
		}
	}
}

func TestVerificationExpireOverdueSweep(t *testing.T) {
	registry, hub := newWiredModules()

	past := time.Now().UTC().Add(-time.Hour)
	created := createRequest(t, registry, &past)

	result, err := registry.Handler.ExpireOverdueHandler(context.Background())
	if err != nil {
		t.Fatalf("expire sweep failed: %v", err)
	}
	if result.Expired != 1 {
		t.Fatalf("expected 1 expired, got %d", result.Expired)
	}

	stored, err := registry.Handler.GetRequestHandler(context.Background(), created.RequestID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if stored.Status != "expired" {
		t.Fatalf("expected expired, got %q", stored.Status)
	}

	// Expired is terminal: submitting proof afterwards must fail.
	if _, err := registry.Handler.SubmitProofHandler(context.Background(), created.RequestID, verificationhttp.SubmitProofRequest{
		MediaKind: "image",
		Reference: "uploads/too-late.png",
	}); err == nil {
		t.Fatal("expected submit after expiry to fail")
	}

	list, err := hub.Handler.ListNotificationsHandler(context.Background(), false)
	if err != nil {
		t.Fatalf("list notifications failed: %v", err)
	}
	if list.Notifications[0].Kind != "verification_expired" {
		t.Fatalf("expected verification_expired first, got %q", list.Notifications[0].Kind)
	}
}

func TestVerificationListScopesByParticipant(t *testing.T) {
	registry, _ := newWiredModules()
	createRequest(t, registry, nil)

	other, err := registry.Handler.CreateRequestHandler(context.Background(), verificationhttp.CreateRequestRequest{
		EmployeeID:   "emp-2",
		EmployeeName: "Robin",
		ManagerID:    "mgr-2",
		ManagerName:  "Alex",
		Kind:         "attendance",
		Title:        "Confirm site attendance",
	})
	if err != nil {
		t.Fatalf("create request failed: %v", err)
	}

	mine, err := registry.Handler.ListRequestsHandler(context.Background(), "emp-2", "", false)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(mine.Requests) != 1 || mine.Requests[0].RequestID != other.RequestID {
		t.Fatalf("expected only emp-2 requests, got %#v", mine.Requests)
	}
}
