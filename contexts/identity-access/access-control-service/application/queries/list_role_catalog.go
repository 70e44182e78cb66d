package queries

import (
	"context"
	"log/slog"

	"crewdesk/contexts/identity-access/access-control-service/domain/entities"
	"crewdesk/contexts/identity-access/access-control-service/domain/valueobjects"
	"crewdesk/contexts/identity-access/access-control-service/ports"
)

// RoleCatalogEntry pairs a role with its full permission set.
type RoleCatalogEntry struct {
	Role        entities.Role
	Permissions []valueobjects.Permission
}

// ListRoleCatalogUseCase returns the static role → permission mapping, used
// by admin surfaces and by tests asserting the permission model.
type ListRoleCatalogUseCase struct {
	Catalog ports.RoleCatalog
	Logger  *slog.Logger
}

func (u ListRoleCatalogUseCase) Execute(ctx context.Context) ([]RoleCatalogEntry, error) {
	roles, err := u.Catalog.ListRoles(ctx)
	if err != nil {
		return nil, err
	}
	entries := make([]RoleCatalogEntry, 0, len(roles))
	for _, role := range roles {
		permissions, err := u.Catalog.ListRolePermissions(ctx, role)
		if err != nil {
			return nil, err
		}
		entries = append(entries, RoleCatalogEntry{
			Role:        role,
			Permissions: permissions,
		})
	}
	return entries, nil
}
