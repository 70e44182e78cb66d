package queries

import (
	"context"
	"log/slog"
	"time"

	application "crewdesk/contexts/identity-access/access-control-service/application"
	"crewdesk/contexts/identity-access/access-control-service/domain/entities"
	"crewdesk/contexts/identity-access/access-control-service/domain/services"
	"crewdesk/contexts/identity-access/access-control-service/domain/valueobjects"
	"crewdesk/contexts/identity-access/access-control-service/ports"
)

// EvaluateAccessQuery is the request model for one guard evaluation.
type EvaluateAccessQuery struct {
	Session    entities.Session
	Required   []valueobjects.Permission
	RequireAll bool
}

// EvaluateAccessUseCase decides whether a protected region may render for the
// current session. Evaluation is pure and repeatable: the same session and
// requirement set always produce the same decision.
type EvaluateAccessUseCase struct {
	Clock  ports.Clock
	Logger *slog.Logger
}

// Execute applies the guard contract: loading sessions stay pending, missing
// identities route to sign-in, and permission evaluation fails closed. An
// empty requirement list is granted under any-of semantics and denied under
// require-all, so the stricter mode never passes on vacuous truth.
func (u EvaluateAccessUseCase) Execute(_ context.Context, query EvaluateAccessQuery) (entities.AccessDecision, error) {
	logger := application.ResolveLogger(u.Logger)
	now := u.now()

	if query.Session.Loading {
		return entities.AccessDecision{
			Outcome:   entities.OutcomePending,
			Reason:    "session_not_resolved",
			CheckedAt: now,
		}, nil
	}
	if query.Session.Identity == nil {
		return entities.AccessDecision{
			Outcome:   entities.OutcomeSignIn,
			Reason:    "no_authenticated_identity",
			CheckedAt: now,
		}, nil
	}

	identity := *query.Session.Identity
	missing := make([]valueobjects.Permission, 0, len(query.Required))
	held := 0
	for _, required := range query.Required {
		if services.HasPermission(identity.Permissions, required) {
			held++
		} else {
			missing = append(missing, required)
		}
	}

	var allowed bool
	if query.RequireAll {
		allowed = len(query.Required) > 0 && len(missing) == 0
	} else {
		allowed = len(query.Required) == 0 || held > 0
	}

	if !allowed {
		logger.Warn("access denied",
			"event", "access_guard_denied",
			"module", "identity-access/access-control-service",
			"layer", "application",
			"user_id", identity.UserID,
			"role", identity.Role.String(),
			"require_all", query.RequireAll,
			"missing_count", len(missing),
		)
		return entities.AccessDecision{
			Outcome:   entities.OutcomeDenied,
			Role:      identity.Role,
			Missing:   missing,
			Reason:    "permission_missing",
			CheckedAt: now,
		}, nil
	}

	logger.Debug("access granted",
		"event", "access_guard_granted",
		"module", "identity-access/access-control-service",
		"layer", "application",
		"user_id", identity.UserID,
		"role", identity.Role.String(),
		"require_all", query.RequireAll,
	)
	return entities.AccessDecision{
		Outcome:   entities.OutcomeGranted,
		Role:      identity.Role,
		Reason:    "permission_granted",
		CheckedAt: now,
	}, nil
}

func (u EvaluateAccessUseCase) now() time.Time {
	if u.Clock != nil {
		return u.Clock.Now().UTC()
	}
	return time.Now().UTC()
}
