package verification

import (
	"log/slog"

	httpadapter "crewdesk/contexts/workforce-ops/verification-service/adapters/http"
	"crewdesk/contexts/workforce-ops/verification-service/adapters/memory"
	"crewdesk/contexts/workforce-ops/verification-service/application/commands"
	"crewdesk/contexts/workforce-ops/verification-service/application/queries"
	"crewdesk/contexts/workforce-ops/verification-service/ports"
)

// Module is the verification-service composition root exposed to runtime wiring.
type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

// Dependencies captures all runtime ports/config required by NewModule.
type Dependencies struct {
	Repository    ports.Repository
	Clock         ports.Clock
	IDGenerator   ports.IDGenerator
	Notifications ports.NotificationSink
	Logger        *slog.Logger
}

// NewModule wires registry use-cases and transport handler using explicit ports.
func NewModule(deps Dependencies) Module {
	create := commands.CreateRequestUseCase{
		Repository:    deps.Repository,
		Clock:         deps.Clock,
		IDGen:         deps.IDGenerator,
		Notifications: deps.Notifications,
		Logger:        deps.Logger,
	}
	accept := commands.AcceptRequestUseCase{
		Repository:    deps.Repository,
		Clock:         deps.Clock,
		Notifications: deps.Notifications,
		Logger:        deps.Logger,
	}
	reject := commands.RejectRequestUseCase{
		Repository:    deps.Repository,
		Clock:         deps.Clock,
		Notifications: deps.Notifications,
		Logger:        deps.Logger,
	}
	submit := commands.SubmitProofUseCase{
		Repository:    deps.Repository,
		Clock:         deps.Clock,
		Notifications: deps.Notifications,
		Logger:        deps.Logger,
	}
	respond := commands.RespondToSubmissionUseCase{
		Repository:    deps.Repository,
		Clock:         deps.Clock,
		Notifications: deps.Notifications,
		Logger:        deps.Logger,
	}
	expire := commands.ExpireOverdueUseCase{
		Repository:    deps.Repository,
		Clock:         deps.Clock,
		Notifications: deps.Notifications,
		Logger:        deps.Logger,
	}
	list := queries.ListRequestsUseCase{
		Repository: deps.Repository,
		Logger:     deps.Logger,
	}
	get := queries.GetRequestUseCase{
		Repository: deps.Repository,
		Logger:     deps.Logger,
	}

	return Module{
		Handler: httpadapter.Handler{
			CreateRequest: create,
			AcceptRequest: accept,
			RejectRequest: reject,
			SubmitProof:   submit,
			Respond:       respond,
			ExpireOverdue: expire,
			ListRequests:  list,
			GetRequest:    get,
			Logger:        deps.Logger,
		},
	}
}

// NewInMemoryModule builds a development/testing module with in-memory
// adapters. The sink may be nil when lifecycle notifications are not under
// test.
func NewInMemoryModule(logger *slog.Logger, notifications ports.NotificationSink) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Repository:    store,
		Clock:         store,
		IDGenerator:   store,
		Notifications: notifications,
		Logger:        logger,
	})
	module.Store = store
	return module
}
