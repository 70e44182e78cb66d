package commands

import (
	"context"
	"log/slog"
	"strings"

	application "crewdesk/contexts/workforce-ops/verification-service/application"
	"crewdesk/contexts/workforce-ops/verification-service/domain/entities"
	domainerrors "crewdesk/contexts/workforce-ops/verification-service/domain/errors"
	"crewdesk/contexts/workforce-ops/verification-service/ports"
)

type SubmitProofCommand struct {
	RequestID string
	MediaKind entities.MediaKind
	Reference string
}

// SubmitProofUseCase records the employee's captured media and completes the
// request. Valid from pending or accepted; proof is set exactly once, only
// on this transition.
type SubmitProofUseCase struct {
	Repository    ports.Repository
	Clock         ports.Clock
	Notifications ports.NotificationSink
	Logger        *slog.Logger
}

func (uc SubmitProofUseCase) Execute(ctx context.Context, cmd SubmitProofCommand) (entities.VerificationRequest, error) {
	logger := application.ResolveLogger(uc.Logger)
	if _, ok := entities.ParseMediaKind(string(cmd.MediaKind)); !ok {
		return entities.VerificationRequest{}, domainerrors.ErrInvalidMediaKind
	}
	reference := strings.TrimSpace(cmd.Reference)
	if reference == "" {
		return entities.VerificationRequest{}, domainerrors.ErrInvalidRequestInput
	}

	request, err := uc.Repository.GetRequest(ctx, cmd.RequestID)
	if err != nil {
		return entities.VerificationRequest{}, err
	}
	if !request.CanSubmit() {
		return entities.VerificationRequest{}, domainerrors.ErrInvalidTransition
	}

	fromStatuses := []entities.RequestStatus{entities.RequestStatusPending, entities.RequestStatusAccepted}
	now := uc.Clock.Now().UTC()
	request.Proof = &entities.SubmittedProof{
		MediaKind:   cmd.MediaKind,
		Reference:   reference,
		SubmittedAt: now,
	}
	request.Status = entities.RequestStatusCompleted
	if err := uc.Repository.UpdateRequest(ctx, request, fromStatuses); err != nil {
		return entities.VerificationRequest{}, err
	}

	logger.Info("verification proof submitted",
		"event", "verification_proof_submitted",
		"module", "workforce-ops/verification-service",
		"layer", "application",
		"request_id", request.RequestID,
		"employee_id", request.EmployeeID,
		"media_kind", string(cmd.MediaKind),
	)

	pushNotification(ctx, uc.Notifications, logger, ports.NotificationDraft{
		Kind:            "verification_submitted",
		Title:           "Verification proof submitted",
		Message:         request.EmployeeName + " submitted proof for: " + request.Title,
		ActionReference: request.RequestID,
		Metadata: map[string]any{
			"request_id": request.RequestID,
			"manager_id": request.ManagerID,
			"media_kind": string(cmd.MediaKind),
		},
	})
	return request, nil
}
