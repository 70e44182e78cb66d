package unit

import (
	"context"
	"errors"
	"testing"

	accesscontrol "crewdesk/contexts/identity-access/access-control-service"
	accesserrors "crewdesk/contexts/identity-access/access-control-service/domain/errors"
	accesshttp "crewdesk/contexts/identity-access/access-control-service/transport/http"
)

func TestAccessControlGrantedForHeldPermission(t *testing.T) {
	module := accesscontrol.NewInMemoryModule(nil)

	session, err := module.Handler.ResolveSessionHandler(context.Background(), "user-1", "Dana", "employee")
	if err != nil {
		t.Fatalf("resolve session failed: %v", err)
	}
	decision, err := module.Handler.EvaluateAccessHandler(context.Background(), session, accesshttp.EvaluateAccessRequest{
		Required: []string{"dashboard.view"},
	})
	if err != nil {
		t.Fatalf("evaluate failed: %v", err)
	}
	if decision.Outcome != "granted" {
		t.Fatalf("expected granted, got %q", decision.Outcome)
	}
	if decision.RedirectTo != "" {
		t.Fatalf("expected no redirect for granted, got %q", decision.RedirectTo)
	}
}

func TestAccessControlSignedOutSessionRedirectsToLogin(t *testing.T) {
	module := accesscontrol.NewInMemoryModule(nil)

	session, err := module.Handler.ResolveSessionHandler(context.Background(), "", "", "")
	if err != nil {
		t.Fatalf("resolve session failed: %v", err)
	}
	decision, err := module.Handler.EvaluateAccessHandler(context.Background(), session, accesshttp.EvaluateAccessRequest{
		Required: []string{"dashboard.view"},
	})
	if err != nil {
		t.Fatalf("evaluate failed: %v", err)
	}
	if decision.Outcome != "sign_in" || decision.RedirectTo != "/login" {
		t.Fatalf("expected sign_in with /login redirect, got %#v", decision)
	}
}

func TestAccessControlDeniedRedirectsToAccessDenied(t *testing.T) {
	module := accesscontrol.NewInMemoryModule(nil)

	session, err := module.Handler.ResolveSessionHandler(context.Background(), "user-1", "Dana", "employee")
	if err != nil {
		t.Fatalf("resolve session failed: %v", err)
	}
	decision, err := module.Handler.EvaluateAccessHandler(context.Background(), session, accesshttp.EvaluateAccessRequest{
		Required: []string{"payroll.view"},
	})
	if err != nil {
		t.Fatalf("evaluate failed: %v", err)
	}
	if decision.Outcome != "denied" || decision.RedirectTo != "/access-denied" {
		t.Fatalf("expected denied with /access-denied redirect, got %#v", decision)
	}
	if decision.Role != "employee" {
		t.Fatalf("expected actor role surfaced on denial, got %q", decision.Role)
	}
}

func TestAccessControlUnknownRoleRejected(t *testing.T) {
	module := accesscontrol.NewInMemoryModule(nil)

	_, err := module.Handler.ResolveSessionHandler(context.Background(), "user-1", "Dana", "warlord")
	if !errors.Is(err, accesserrors.ErrUnknownRole) {
		t.Fatalf("expected ErrUnknownRole, got %v", err)
	}
}

func TestAccessControlRequireAllStricterThanAnyOf(t *testing.T) {
	module := accesscontrol.NewInMemoryModule(nil)

	session, err := module.Handler.ResolveSessionHandler(context.Background(), "user-1", "Dana", "employee")
	if err != nil {
		t.Fatalf("resolve session failed: %v", err)
	}

	anyOf, err := module.Handler.EvaluateAccessHandler(context.Background(), session, accesshttp.EvaluateAccessRequest{
		Required: []string{"payroll.view", "dashboard.view"},
	})
	if err != nil {
		t.Fatalf("evaluate failed: %v", err)
	}
	if anyOf.Outcome != "granted" {
		t.Fatalf("expected any-of granted, got %q", anyOf.Outcome)
	}

	all, err := module.Handler.EvaluateAccessHandler(context.Background(), session, accesshttp.EvaluateAccessRequest{
		Required:   []string{"payroll.view", "dashboard.view"},
		RequireAll: true,
	})
	if err != nil {
		t.Fatalf("evaluate failed: %v", err)
	}
	if all.Outcome != "denied" {
		t.Fatalf("expected require-all denied, got %q", all.Outcome)
	}
}

func TestAccessControlRoleCatalogCoversEveryRole(t *testing.T) {
	module := accesscontrol.NewInMemoryModule(nil)

	catalog, err := module.Handler.ListRoleCatalogHandler(context.Background())
	if err != nil {
		t.Fatalf("catalog failed: %v", err)
	}
	if len(catalog.Roles) != 4 {
		t.Fatalf("expected 4 roles, got %d", len(catalog.Roles))
	}
	for _, entry := range catalog.Roles {
		if len(entry.Permissions) == 0 {
			t.Fatalf("expected permissions for role %q", entry.Role)
		}
	}
}
