package accesscontrol

import (
	"log/slog"
	"time"

	httpadapter "crewdesk/contexts/identity-access/access-control-service/adapters/http"
	"crewdesk/contexts/identity-access/access-control-service/adapters/memory"
	"crewdesk/contexts/identity-access/access-control-service/application/queries"
	"crewdesk/contexts/identity-access/access-control-service/ports"
)

// Module is the access-control composition root exposed to runtime wiring.
type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

// Dependencies captures all runtime ports/config required by NewModule.
type Dependencies struct {
	Catalog            ports.RoleCatalog
	PermissionCache    ports.PermissionCache
	Clock              ports.Clock
	PermissionCacheTTL time.Duration
	Logger             *slog.Logger
}

// NewModule wires guard use-cases and transport handler using explicit ports.
func NewModule(deps Dependencies) Module {
	evaluate := queries.EvaluateAccessUseCase{
		Clock:  deps.Clock,
		Logger: deps.Logger,
	}
	resolve := queries.ResolvePermissionsUseCase{
		Catalog:  deps.Catalog,
		Cache:    deps.PermissionCache,
		Clock:    deps.Clock,
		CacheTTL: deps.PermissionCacheTTL,
		Logger:   deps.Logger,
	}
	catalog := queries.ListRoleCatalogUseCase{
		Catalog: deps.Catalog,
		Logger:  deps.Logger,
	}

	return Module{
		Handler: httpadapter.Handler{
			EvaluateAccess:     evaluate,
			ResolvePermissions: resolve,
			ListRoleCatalog:    catalog,
			Logger:             deps.Logger,
		},
	}
}

// NewInMemoryModule builds a development/testing module with in-memory adapters.
func NewInMemoryModule(logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Catalog:            store,
		PermissionCache:    store,
		Clock:              store,
		PermissionCacheTTL: 5 * time.Minute,
		Logger:             logger,
	})
	module.Store = store
	return module
}
