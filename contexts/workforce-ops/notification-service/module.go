package notificationhub

import (
	"log/slog"

	httpadapter "crewdesk/contexts/workforce-ops/notification-service/adapters/http"
	"crewdesk/contexts/workforce-ops/notification-service/adapters/memory"
	"crewdesk/contexts/workforce-ops/notification-service/application/commands"
	"crewdesk/contexts/workforce-ops/notification-service/application/queries"
	"crewdesk/contexts/workforce-ops/notification-service/ports"
)

// Module is the notification-hub composition root exposed to runtime wiring.
type Module struct {
	Handler httpadapter.Handler
	Push    commands.PushNotificationUseCase
	Store   *memory.Store
}

// Dependencies captures all runtime ports/config required by NewModule.
type Dependencies struct {
	Repository  ports.Repository
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

// NewModule wires hub use-cases and transport handler using explicit ports.
func NewModule(deps Dependencies) Module {
	push := commands.PushNotificationUseCase{
		Repository: deps.Repository,
		Clock:      deps.Clock,
		IDGen:      deps.IDGenerator,
		Logger:     deps.Logger,
	}
	markRead := commands.MarkReadUseCase{
		Repository: deps.Repository,
		Logger:     deps.Logger,
	}
	markAllRead := commands.MarkAllReadUseCase{
		Repository: deps.Repository,
		Logger:     deps.Logger,
	}
	clearOne := commands.ClearNotificationUseCase{
		Repository: deps.Repository,
		Logger:     deps.Logger,
	}
	clearAll := commands.ClearAllUseCase{
		Repository: deps.Repository,
		Logger:     deps.Logger,
	}
	sendAnnouncement := commands.SendAnnouncementUseCase{
		Repository: deps.Repository,
		Clock:      deps.Clock,
		IDGen:      deps.IDGenerator,
		Logger:     deps.Logger,
	}
	listNotifications := queries.ListNotificationsUseCase{
		Repository: deps.Repository,
		Logger:     deps.Logger,
	}
	unreadCount := queries.UnreadCountUseCase{
		Repository: deps.Repository,
		Logger:     deps.Logger,
	}
	listAnnouncements := queries.ListAnnouncementsUseCase{
		Repository: deps.Repository,
		Logger:     deps.Logger,
	}

	return Module{
		Handler: httpadapter.Handler{
			PushNotification:  push,
			MarkRead:          markRead,
			MarkAllRead:       markAllRead,
			ClearNotification: clearOne,
			ClearAll:          clearAll,
			SendAnnouncement:  sendAnnouncement,
			ListNotifications: listNotifications,
			UnreadCount:       unreadCount,
			ListAnnouncements: listAnnouncements,
			Logger:            deps.Logger,
		},
		Push: push,
	}
}

// NewInMemoryModule builds a development/testing module with in-memory adapters.
func NewInMemoryModule(logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Repository:  store,
		Clock:       store,
		IDGenerator: store,
		Logger:      logger,
	})
	module.Store = store
	return module
}
