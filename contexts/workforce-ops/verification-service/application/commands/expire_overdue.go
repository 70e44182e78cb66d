package commands

import (
	"context"
	"log/slog"

	application "crewdesk/contexts/workforce-ops/verification-service/application"
	"crewdesk/contexts/workforce-ops/verification-service/domain/entities"
	"crewdesk/contexts/workforce-ops/verification-service/ports"
)

// ExpireOverdueUseCase is the caller-driven deadline check: every open
// request whose deadline has passed moves to the terminal expired state.
// The registry keeps no internal timer; the worker binary invokes this
// sweep on an interval.
type ExpireOverdueUseCase struct {
	Repository    ports.Repository
	Clock         ports.Clock
	Notifications ports.NotificationSink
	Logger        *slog.Logger
}

// Execute returns the number of requests it expired. Requests that race to a
// terminal state between listing and update are skipped, not failed.
func (uc ExpireOverdueUseCase) Execute(ctx context.Context) (int, error) {
	logger := application.ResolveLogger(uc.Logger)
	now := uc.Clock.Now().UTC()

	overdue, err := uc.Repository.ListOverdueRequests(ctx, now)
	if err != nil {
		return 0, err
	}

	fromStatuses := []entities.RequestStatus{entities.RequestStatusPending, entities.RequestStatusAccepted}
	expired := 0
	for _, request := range overdue {
		request.Status = entities.RequestStatusExpired
		if err := uc.Repository.UpdateRequest(ctx, request, fromStatuses); err != nil {
			logger.Warn("skipping overdue request",
				"event", "verification_expire_skipped",
				"module", "workforce-ops/verification-service",
				"layer", "application",
				"request_id", request.RequestID,
				"error", err.Error(),
			)
			continue
		}
		expired++

		pushNotification(ctx, uc.Notifications, logger, ports.NotificationDraft{
			Kind:            "verification_expired",
			Title:           "Verification request expired",
			Message:         "The deadline passed for: " + request.Title,
			ActionReference: request.RequestID,
			Metadata: map[string]any{
				"request_id":  request.RequestID,
				"employee_id": request.EmployeeID,
			},
		})
	}

	if expired > 0 {
		logger.Info("overdue verification requests expired",
			"event", "verification_requests_expired",
			"module", "workforce-ops/verification-service",
			"layer", "application",
			"count", expired,
		)
	}
	return expired, nil
}
