package queries

import (
	"context"
	"testing"
	"time"

	"crewdesk/contexts/identity-access/access-control-service/domain/entities"
	"crewdesk/contexts/identity-access/access-control-service/domain/valueobjects"
)

type fixedClock struct {
	at time.Time
}

func (c fixedClock) Now() time.Time {
	return c.at
}

func employeeSession() entities.Session {
	return entities.Session{
		Identity: &entities.Identity{
			UserID: "user-1",
			Role:   entities.RoleEmployee,
			Permissions: []valueobjects.Permission{
				valueobjects.PermissionDashboardView,
				valueobjects.PermissionVerificationSubmit,
			},
		},
	}
}

func TestEvaluateAccessLoadingSessionStaysPending(t *testing.T) {
	uc := EvaluateAccessUseCase{Clock: fixedClock{at: time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC)}}

	decision, err := uc.Execute(context.Background(), EvaluateAccessQuery{
		Session:  entities.Session{Loading: true},
		Required: []valueobjects.Permission{valueobjects.PermissionDashboardView},
	})
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if decision.Outcome != entities.OutcomePending {
		t.Fatalf("expected pending, got %q", decision.Outcome)
	}
}

func TestEvaluateAccessMissingIdentityRoutesToSignIn(t *testing.T) {
	uc := EvaluateAccessUseCase{}

	decision, err := uc.Execute(context.Background(), EvaluateAccessQuery{
		Session:  entities.Session{},
		Required: []valueobjects.Permission{valueobjects.PermissionDashboardView},
	})
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if decision.Outcome != entities.OutcomeSignIn {
		t.Fatalf("expected sign_in, got %q", decision.Outcome)
	}
}

func TestEvaluateAccessAnyOfGrantsOnSingleHeldPermission(t *testing.T) {
	uc := EvaluateAccessUseCase{}

	decision, err := uc.Execute(context.Background(), EvaluateAccessQuery{
		Session: employeeSession(),
		Required: []valueobjects.Permission{
			valueobjects.PermissionPayrollView,
			valueobjects.PermissionDashboardView,
		},
	})
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if decision.Outcome != entities.OutcomeGranted {
		t.Fatalf("expected granted, got %q", decision.Outcome)
	}
}

func TestEvaluateAccessRequireAllDeniesOnOneMissing(t *testing.T) {
	uc := EvaluateAccessUseCase{}

	decision, err := uc.Execute(context.Background(), EvaluateAccessQuery{
		Session: employeeSession(),
		Required: []valueobjects.Permission{
			valueobjects.PermissionPayrollView,
			valueobjects.PermissionDashboardView,
		},
		RequireAll: true,
	})
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if decision.Outcome != entities.OutcomeDenied {
		t.Fatalf("expected denied, got %q", decision.Outcome)
	}
	if len(decision.Missing) != 1 || decision.Missing[0] != valueobjects.PermissionPayrollView {
		t.Fatalf("expected payroll.view missing, got %#v", decision.Missing)
	}
	if decision.Role != entities.RoleEmployee {
		t.Fatalf("expected employee role on denial, got %q", decision.Role)
	}
}

func TestEvaluateAccessEmptyRequirementSemantics(t *testing.T) {
	uc := EvaluateAccessUseCase{}

	anyOf, err := uc.Execute(context.Background(), EvaluateAccessQuery{
		Session: employeeSession(),
	})
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if anyOf.Outcome != entities.OutcomeGranted {
		t.Fatalf("expected empty any-of to grant, got %q", anyOf.Outcome)
	}

	// Require-all never passes on vacuous truth.
	all, err := uc.Execute(context.Background(), EvaluateAccessQuery{
		Session:    employeeSession(),
		RequireAll: true,
	})
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if all.Outcome != entities.OutcomeDenied {
		t.Fatalf("expected empty require-all to deny, got %q", all.Outcome)
	}
}

func TestEvaluateAccessIsDeterministic(t *testing.T) {
	uc := EvaluateAccessUseCase{Clock: fixedClock{at: time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC)}}
	query := EvaluateAccessQuery{
		Session:  employeeSession(),
		Required: []valueobjects.Permission{valueobjects.PermissionDashboardView},
	}

	first, err := uc.Execute(context.Background(), query)
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	second, err := uc.Execute(context.Background(), query)
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if first.Outcome != second.Outcome || !first.CheckedAt.Equal(second.CheckedAt) {
		t.Fatalf("expected identical decisions, got %#v vs %#v", first, second)
	}
}
