package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	application "crewdesk/contexts/workforce-ops/verification-service/application"
	"crewdesk/contexts/workforce-ops/verification-service/domain/entities"
	domainerrors "crewdesk/contexts/workforce-ops/verification-service/domain/errors"
	"crewdesk/contexts/workforce-ops/verification-service/ports"
)

type CreateRequestCommand struct {
	EmployeeID      string
	EmployeeName    string
	EmployeeContact string
	ManagerID       string
	ManagerName     string
	Kind            entities.RequestKind
	Title           string
	Description     string
	Deadline        *time.Time
}

// CreateRequestUseCase opens a new pending verification request. Identity
// validity is the caller's responsibility; the registry does not cross-check
// against an employee directory.
type CreateRequestUseCase struct {
	Repository    ports.Repository
	Clock         ports.Clock
	IDGen         ports.IDGenerator
	Notifications ports.NotificationSink
	Logger        *slog.Logger
}

func (uc CreateRequestUseCase) Execute(ctx context.Context, cmd CreateRequestCommand) (entities.VerificationRequest, error) {
	logger := application.ResolveLogger(uc.Logger)
	requestID, err := uc.IDGen.NewID(ctx)
	if err != nil {
		return entities.VerificationRequest{}, err
	}
	now := uc.Clock.Now().UTC()
	request := entities.VerificationRequest{
		RequestID:       requestID,
		EmployeeID:      strings.TrimSpace(cmd.EmployeeID),
		EmployeeName:    strings.TrimSpace(cmd.EmployeeName),
		EmployeeContact: strings.TrimSpace(cmd.EmployeeContact),
		ManagerID:       strings.TrimSpace(cmd.ManagerID),
		ManagerName:     strings.TrimSpace(cmd.ManagerName),
		Kind:            cmd.Kind,
		Title:           strings.TrimSpace(cmd.Title),
		Description:     strings.TrimSpace(cmd.Description),
		RequestedAt:     now,
		Deadline:        normalizeDeadline(cmd.Deadline),
		Status:          entities.RequestStatusPending,
	}
	if !request.ValidateCreate() {
		return entities.VerificationRequest{}, domainerrors.ErrInvalidRequestInput
	}
	if _, ok := entities.ParseRequestKind(string(request.Kind)); !ok {
		return entities.VerificationRequest{}, domainerrors.ErrInvalidRequestInput
	}
	if err := uc.Repository.CreateRequest(ctx, request); err != nil {
		return entities.VerificationRequest{}, err
	}

	logger.Info("verification request created",
		"event", "verification_request_created",
		"module", "workforce-ops/verification-service",
		"layer", "application",
		"request_id", request.RequestID,
		"employee_id", request.EmployeeID,
		"manager_id", request.ManagerID,
		"kind", string(request.Kind),
	)

	pushNotification(ctx, uc.Notifications, logger, ports.NotificationDraft{
		Kind:            "verification_request",
		Title:           "New verification request",
		Message:         request.ManagerName + " asked " + request.EmployeeName + " to verify: " + request.Title,
		ActionReference: request.RequestID,
		Metadata: map[string]any{
			"request_id":  request.RequestID,
			"employee_id": request.EmployeeID,
			"manager_id":  request.ManagerID,
			"kind":        string(request.Kind),
		},
	})
	return request, nil
}

func normalizeDeadline(deadline *time.Time) *time.Time {
	if deadline == nil {
		return nil
	}
	value := deadline.UTC()
	return &value
}
