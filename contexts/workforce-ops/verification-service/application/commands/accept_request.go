package commands

import (
	"context"
	"log/slog"

	application "crewdesk/contexts/workforce-ops/verification-service/application"
	"crewdesk/contexts/workforce-ops/verification-service/domain/entities"
	domainerrors "crewdesk/contexts/workforce-ops/verification-service/domain/errors"
	"crewdesk/contexts/workforce-ops/verification-service/ports"
)

type AcceptRequestCommand struct {
	RequestID string
}

// AcceptRequestUseCase records manager-side acknowledgment before work
// begins. Acceptance is optional in the lifecycle: submission is valid
// straight from pending as well.
type AcceptRequestUseCase struct {
	Repository    ports.Repository
	Clock         ports.Clock
	Notifications ports.NotificationSink
	Logger        *slog.Logger
}

func (uc AcceptRequestUseCase) Execute(ctx context.Context, cmd AcceptRequestCommand) (entities.VerificationRequest, error) {
	logger := application.ResolveLogger(uc.Logger)
	request, err := uc.Repository.GetRequest(ctx, cmd.RequestID)
	if err != nil {
		return entities.VerificationRequest{}, err
	}
	if request.Status != entities.RequestStatusPending {
		return entities.VerificationRequest{}, domainerrors.ErrInvalidTransition
	}

	request.Status = entities.RequestStatusAccepted
	if err := uc.Repository.UpdateRequest(ctx, request, []entities.RequestStatus{entities.RequestStatusPending}); err != nil {
		return entities.VerificationRequest{}, err
	}

	logger.Info("verification request accepted",
		"event", "verification_request_accepted",
		"module", "workforce-ops/verification-service",
		"layer", "application",
		"request_id", request.RequestID,
		"employee_id", request.EmployeeID,
	)

	pushNotification(ctx, uc.Notifications, logger, ports.NotificationDraft{
		Kind:            "verification_accepted",
		Title:           "Verification request accepted",
		Message:         request.ManagerName + " accepted the request: " + request.Title,
		ActionReference: request.RequestID,
		Metadata: map[string]any{
			"request_id":  request.RequestID,
			"employee_id": request.EmployeeID,
		},
	})
	return request, nil
}
