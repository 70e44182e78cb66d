package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	accesscontrol "crewdesk/contexts/identity-access/access-control-service"
	notificationhub "crewdesk/contexts/workforce-ops/notification-service"
	notificationcommands "crewdesk/contexts/workforce-ops/notification-service/application/commands"
	notificationentities "crewdesk/contexts/workforce-ops/notification-service/domain/entities"
	verification "crewdesk/contexts/workforce-ops/verification-service"
	verificationports "crewdesk/contexts/workforce-ops/verification-service/ports"
)

type hubTestSink struct {
	push notificationcommands.PushNotificationUseCase
}

func (s hubTestSink) Push(ctx context.Context, draft verificationports.NotificationDraft) error {
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

func newTestServer() *Server {
	hub := notificationhub.NewInMemoryModule(slog.Default())
	return New(
		accesscontrol.NewInMemoryModule(slog.Default()),
		verification.NewInMemoryModule(slog.Default(), hubTestSink{push: hub.Push}),
		hub,
		slog.Default(),
		":0",
	)
}

func TestEvaluateAccessWithoutIdentityYieldsSignIn(t *testing.T) {
	server := newTestServer()
	body := []byte(`{"required":["dashboard.view"]}`)
	req := httptest.NewRequest(http.MethodPost, "/access/evaluate", bytes.NewReader(body))

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	var payload map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &payload); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}
	if payload["outcome"] != "sign_in" {
		t.Fatalf("expected sign_in outcome, got %#v", payload["outcome"])
	}
	if payload["redirect_to"] != "/login" {
		t.Fatalf("expected /login redirect, got %#v", payload["redirect_to"])
	}
}

func TestEvaluateAccessDeniedListsMissingPermissions(t *testing.T) {
	server := newTestServer()
	body := []byte(`{"required":["payroll.view","dashboard.view"],"require_all":true}`)
	req := httptest.NewRequest(http.MethodPost, "/access/evaluate", bytes.NewReader(body))
	req.Header.Set("X-User-Id", "user-1")
	req.Header.Set("X-User-Role", "employee")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	var payload map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &payload); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}
	if payload["outcome"] != "denied" {
		t.Fatalf("expected denied outcome, got %#v", payload["outcome"])
	}
	missing, ok := payload["missing"].([]any)
	if !ok || len(missing) != 1 || missing[0] != "payroll.view" {
		t.Fatalf("expected payroll.view missing, got %#v", payload["missing"])
	}
}

func TestEvaluateAccessRejectsUnknownPermission(t *testing.T) {
	server := newTestServer()
	body := []byte(`{"required":["payroll.superpowers"]}`)
	req := httptest.NewRequest(http.MethodPost, "/access/evaluate", bytes.NewReader(body))
	req.Header.Set("X-User-Id", "user-1")
	req.Header.Set("X-User-Role", "admin")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestRoleCatalogRequiresIdentity(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/access/roles", nil)

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestRoleCatalogRequiresRoleManage(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/access/roles", nil)
	req.Header.Set("X-User-Id", "user-1")
	req.Header.Set("X-User-Role", "employee")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d body=%s", rr.Code, rr.Body.String())
	}
	var payload map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &payload); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}
	if payload["role"] != "employee" {
		t.Fatalf("expected employee role in denial, got %#v", payload["role"])
	}
	reason, _ := payload["reason"].(string)
	if !strings.Contains(reason, "administrator") {
		t.Fatalf("expected escalation hint in reason, got %q", reason)
	}
}

func TestRoleCatalogRejectsUnknownRole(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/access/roles", nil)
	req.Header.Set("X-User-Id", "user-1")
	req.Header.Set("X-User-Role", "warlord")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestRoleCatalogReturnsAllRoles(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/access/roles", nil)
	req.Header.Set("X-User-Id", "admin-1")
	req.Header.Set("X-User-Role", "admin")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	var payload map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &payload); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}
	roles, ok := payload["roles"].([]any)
	if !ok || len(roles) != 4 {
		t.Fatalf("expected 4 roles, got %#v", payload["roles"])
	}
}
