package commands

import (
	"context"
	"log/slog"

	application "crewdesk/contexts/workforce-ops/verification-service/application"
	"crewdesk/contexts/workforce-ops/verification-service/domain/entities"
	domainerrors "crewdesk/contexts/workforce-ops/verification-service/domain/errors"
	"crewdesk/contexts/workforce-ops/verification-service/ports"
)

type RejectRequestCommand struct {
	RequestID string
}

// RejectRequestUseCase moves a pending request to the terminal rejected
// state. Rejected requests are kept, never removed.
type RejectRequestUseCase struct {
	Repository    ports.Repository
	Clock         ports.Clock
	Notifications ports.NotificationSink
	Logger        *slog.Logger
}

func (uc RejectRequestUseCase) Execute(ctx context.Context, cmd RejectRequestCommand) (entities.VerificationRequest, error) {
	logger := application.ResolveLogger(uc.Logger)
	request, err := uc.Repository.GetRequest(ctx, cmd.RequestID)
	if err != nil {
		return entities.VerificationRequest{}, err
	}
	if request.Status != entities.RequestStatusPending {
		return entities.VerificationRequest{}, domainerrors.ErrInvalidTransition
	}

	request.Status = entities.RequestStatusRejected
	if err := uc.Repository.UpdateRequest(ctx, request, []entities.RequestStatus{entities.RequestStatusPending}); err != nil {
		return entities.VerificationRequest{}, err
	}

	logger.Info("verification request rejected",
		"event", "verification_request_rejected",
		"module", "workforce-ops/verification-service",
		"layer", "application",
		"request_id", request.RequestID,
		"employee_id", request.EmployeeID,
	)

	pushNotification(ctx, uc.Notifications, logger, ports.NotificationDraft{
		Kind:            "verification_rejected",
		Title:           "Verification request rejected",
		Message:         "The request was rejected: " + request.Title,
		ActionReference: request.RequestID,
		Metadata: map[string]any{
			"request_id":  request.RequestID,
			"employee_id": request.EmployeeID,
		},
	})
	return request, nil
}
