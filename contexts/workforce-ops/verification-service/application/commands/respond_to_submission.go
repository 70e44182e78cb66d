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

type RespondToSubmissionCommand struct {
	RequestID string
	Approved  bool
	Comment   string
}

// RespondToSubmissionUseCase annotates submitted proof with the manager's
// verdict. Requires proof to be present; a second response is rejected, not
// overwritten. Status stays completed in both verdicts.
type RespondToSubmissionUseCase struct {
	Repository    ports.Repository
	Clock         ports.Clock
	Notifications ports.NotificationSink
	Logger        *slog.Logger
}

func (uc RespondToSubmissionUseCase) Execute(ctx context.Context, cmd RespondToSubmissionCommand) (entities.VerificationRequest, error) {
	logger := application.ResolveLogger(uc.Logger)
	request, err := uc.Repository.GetRequest(ctx, cmd.RequestID)
	if err != nil {
		return entities.VerificationRequest{}, err
	}
	if request.Proof == nil {
		return entities.VerificationRequest{}, domainerrors.ErrProofRequired
	}
	if request.Response != nil {
		return entities.VerificationRequest{}, domainerrors.ErrAlreadyResponded
	}

	decision := entities.ResponseDecisionRejected
	if cmd.Approved {
		decision = entities.ResponseDecisionApproved
	}
	request.Response = &entities.ManagerResponse{
		Decision:    decision,
		Comment:     strings.TrimSpace(cmd.Comment),
		RespondedAt: uc.Clock.Now().UTC(),
	}
	if err := uc.Repository.UpdateRequest(ctx, request, []entities.RequestStatus{entities.RequestStatusCompleted}); err != nil {
		return entities.VerificationRequest{}, err
	}

	logger.Info("verification submission responded",
		"event", "verification_submission_responded",
		"module", "workforce-ops/verification-service",
		"layer", "application",
		"request_id", request.RequestID,
		"decision", string(decision),
	)

	pushNotification(ctx, uc.Notifications, logger, ports.NotificationDraft{
		Kind:            "verification_response",
		Title:           "Verification reviewed",
		Message:         "Your submission for " + request.Title + " was " + string(decision),
		ActionReference: request.RequestID,
		Metadata: map[string]any{
			"request_id":  request.RequestID,
			"employee_id": request.EmployeeID,
			"decision":    string(decision),
		},
	})
	return request, nil
}
