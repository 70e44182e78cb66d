package httpadapter

import (
	"context"
	"log/slog"

	application "crewdesk/contexts/identity-access/access-control-service/application"
	"crewdesk/contexts/identity-access/access-control-service/application/queries"
	"crewdesk/contexts/identity-access/access-control-service/domain/entities"
	domainerrors "crewdesk/contexts/identity-access/access-control-service/domain/errors"
	"crewdesk/contexts/identity-access/access-control-service/domain/valueobjects"
	httptransport "crewdesk/contexts/identity-access/access-control-service/transport/http"
)

// Handler maps HTTP DTOs to application queries.
type Handler struct {
	EvaluateAccess     queries.EvaluateAccessUseCase
	ResolvePermissions queries.ResolvePermissionsUseCase
	ListRoleCatalog    queries.ListRoleCatalogUseCase
	Logger             *slog.Logger
}

// ResolveSessionHandler builds a session from authenticated principal data.
// Missing user id or role yields a signed-out session rather than an error,
// because an absent identity is a guard outcome, not a failure.
func (h Handler) ResolveSessionHandler(ctx context.Context, userID string, displayName string, rawRole string) (entities.Session, error) {
	if userID == "" || rawRole == "" {
		return entities.Session{}, nil
	}
	role, ok := entities.ParseRole(rawRole)
	if !ok {
		return entities.Session{}, domainerrors.ErrUnknownRole
	}
	permissions, err := h.ResolvePermissions.Execute(ctx, queries.ResolvePermissionsQuery{Role: role})
	if err != nil {
		return entities.Session{}, err
	}
	return entities.Session{
		Identity: &entities.Identity{
			UserID:      userID,
			DisplayName: displayName,
			Role:        role,
			Permissions: permissions,
		},
	}, nil
}

// EvaluateAccessHandler evaluates guard requirements for one session.
func (h Handler) EvaluateAccessHandler(
	ctx context.Context,
	session entities.Session,
	request httptransport.EvaluateAccessRequest,
) (httptransport.EvaluateAccessResponse, error) {
	logger := application.ResolveLogger(h.Logger)

	required := make([]valueobjects.Permission, 0, len(request.Required))
	for _, raw := range request.Required {
		permission, ok := valueobjects.ParsePermission(raw)
		if !ok {
			logger.Warn("rejecting unknown permission string",
				"event", "access_http_unknown_permission",
				"module", "identity-access/access-control-service",
				"layer", "transport",
				"permission", raw,
			)
			return httptransport.EvaluateAccessResponse{}, domainerrors.ErrUnknownPermission
		}
		required = append(required, permission)
	}

	decision, err := h.EvaluateAccess.Execute(ctx, queries.EvaluateAccessQuery{
		Session:    session,
		Required:   required,
		RequireAll: request.RequireAll,
	})
	if err != nil {
		return httptransport.EvaluateAccessResponse{}, err
	}

	missing := make([]string, 0, len(decision.Missing))
	for _, p := range decision.Missing {
		missing = append(missing, p.String())
	}
	response := httptransport.EvaluateAccessResponse{
		Outcome:   string(decision.Outcome),
		Role:      decision.Role.String(),
		Missing:   missing,
		Reason:    decision.Reason,
		CheckedAt: decision.CheckedAt,
	}
	switch decision.Outcome {
	case entities.OutcomeSignIn:
		response.RedirectTo = "/login"
	case entities.OutcomeDenied:
		response.RedirectTo = "/access-denied"
	}
	return response, nil
}

// ListRoleCatalogHandler returns the role → permission mapping.
func (h Handler) ListRoleCatalogHandler(ctx context.Context) (httptransport.ListRoleCatalogResponse, error) {
	entries, err := h.ListRoleCatalog.Execute(ctx)
	if err != nil {
		return httptransport.ListRoleCatalogResponse{}, err
	}
	items := make([]httptransport.RoleCatalogEntryDTO, 0, len(entries))
	for _, entry := range entries {
		permissions := make([]string, 0, len(entry.Permissions))
		for _, p := range entry.Permissions {
			permissions = append(permissions, p.String())
		}
		items = append(items, httptransport.RoleCatalogEntryDTO{
			Role:        entry.Role.String(),
			Permissions: permissions,
		})
	}
	return httptransport.ListRoleCatalogResponse{Roles: items}, nil
}
