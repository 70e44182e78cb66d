package queries

import (
	"context"
	"log/slog"
	"time"

	application "crewdesk/contexts/identity-access/access-control-service/application"
	"crewdesk/contexts/identity-access/access-control-service/domain/entities"
	"crewdesk/contexts/identity-access/access-control-service/domain/valueobjects"
	"crewdesk/contexts/identity-access/access-control-service/ports"
)

// ResolvePermissionsQuery resolves the effective permission set for a role.
type ResolvePermissionsQuery struct {
	Role entities.Role
}

// ResolvePermissionsUseCase is the cache-first lookup used when building a
// session from an authenticated role.
type ResolvePermissionsUseCase struct {
	Catalog  ports.RoleCatalog
	Cache    ports.PermissionCache
	Clock    ports.Clock
	CacheTTL time.Duration
	Logger   *slog.Logger
}

func (u ResolvePermissionsUseCase) Execute(ctx context.Context, query ResolvePermissionsQuery) ([]valueobjects.Permission, error) {
	logger := application.ResolveLogger(u.Logger)
	now := u.now()

	if u.Cache != nil {
		items, hit, err := u.Cache.Get(ctx, query.Role, now)
		if err == nil && hit {
			return items, nil
		}
		if err != nil {
			logger.Warn("permission cache read failed, falling back to catalog",
				"event", "permission_cache_read_failed",
				"module", "identity-access/access-control-service",
				"layer", "application",
				"role", query.Role.String(),
				"error", err.Error(),
			)
		}
	}

	permissions, err := u.Catalog.ListRolePermissions(ctx, query.Role)
	if err != nil {
		return nil, err
	}
	if u.Cache != nil {
		_ = u.Cache.Set(ctx, query.Role, permissions, now.Add(u.cacheTTL()))
	}
	return permissions, nil
}

func (u ResolvePermissionsUseCase) cacheTTL() time.Duration {
	if u.CacheTTL <= 0 {
		return 5 * time.Minute
	}
	return u.CacheTTL
}

func (u ResolvePermissionsUseCase) now() time.Time {
	if u.Clock != nil {
		return u.Clock.Now().UTC()
	}
	return time.Now().UTC()
}
