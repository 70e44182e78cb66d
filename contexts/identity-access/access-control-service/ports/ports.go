package ports

import (
	"context"
	"time"

	"crewdesk/contexts/identity-access/access-control-service/domain/entities"
	"crewdesk/contexts/identity-access/access-control-service/domain/valueobjects"
)

// Clock abstracts current time for deterministic tests.
type Clock interface {
	Now() time.Time
}

// RoleCatalog is the read boundary for the static role → permission mapping.
type RoleCatalog interface {
	ListRolePermissions(ctx context.Context, role entities.Role) ([]valueobjects.Permission, error)
	ListRoles(ctx context.Context) ([]entities.Role, error)
}

// PermissionCache stores resolved permission sets with TTL semantics.
type PermissionCache interface {
	Get(ctx context.Context, role entities.Role, now time.Time) ([]valueobjects.Permission, bool, error)
	Set(ctx context.Context, role entities.Role, permissions []valueobjects.Permission, expiresAt time.Time) error
	Invalidate(ctx context.Context, role entities.Role) error
}
