package commands

import (
	"context"
	"log/slog"

	"crewdesk/contexts/workforce-ops/verification-service/ports"
)

// pushNotification surfaces a lifecycle event to the hub after the transition
// has committed. A failed push is logged and swallowed: the transition is
// already applied and must not be rolled back for a side-channel failure.
func pushNotification(ctx context.Context, sink ports.NotificationSink, logger *slog.Logger, draft ports.NotificationDraft) {
	if sink == nil {
		return
	}
	if err := sink.Push(ctx, draft); err != nil {
		logger.Error("notification push failed",
			"event", "verification_notification_push_failed",
			"module", "workforce-ops/verification-service",
			"layer", "application",
			"kind", draft.Kind,
			"action_reference", draft.ActionReference,
			"error", err.Error(),
		)
	}
}
