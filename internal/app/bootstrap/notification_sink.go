package bootstrap

import (
	"context"

	notificationcommands "crewdesk/contexts/workforce-ops/notification-service/application/commands"
	notificationentities "crewdesk/contexts/workforce-ops/notification-service/domain/entities"
	verificationports "crewdesk/contexts/workforce-ops/verification-service/ports"
)

// hubSink bridges registry lifecycle events into the notification hub. It
// lives at the composition root so neither context imports the other's
// adapters.
type hubSink struct {
	push notificationcommands.PushNotificationUseCase
}

var _ verificationports.NotificationSink = hubSink{}

func (s hubSink) Push(ctx context.Context, draft verificationports.NotificationDraft) error {
	kind, ok := notificationentities.ParseNotificationKind(draft.Kind)
	if !ok {
		kind = notificationentities.KindSystem
	}
	_, err := s.push.Execute(ctx, notificationcommands.PushNotificationCommand{
		Kind:            kind,
		Title:           draft.Title,
		Message:         draft.Message,
		ActionReference: draft.ActionReference,
		Metadata:        draft.Metadata,
	})
	return err
}
