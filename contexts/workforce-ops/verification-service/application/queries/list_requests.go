package queries

import (
	"context"
	"log/slog"
	"strings"

	"crewdesk/contexts/workforce-ops/verification-service/domain/entities"
	"crewdesk/contexts/workforce-ops/verification-service/ports"
)

// ListRequestsQuery filters the registry. ActionableOnly narrows to the
// employee's pending requests ("actionable now").
type ListRequestsQuery struct {
	EmployeeID     string
	ManagerID      string
	ActionableOnly bool
}

// ListRequestsUseCase is a pure read: newest-first, no side effects.
type ListRequestsUseCase struct {
	Repository ports.Repository
	Logger     *slog.Logger
}

func (u ListRequestsUseCase) Execute(ctx context.Context, query ListRequestsQuery) ([]entities.VerificationRequest, error) {
	filter := ports.RequestFilter{
		EmployeeID: strings.TrimSpace(query.EmployeeID),
		ManagerID:  strings.TrimSpace(query.ManagerID),
	}
	if query.ActionableOnly {
		filter.Status = entities.RequestStatusPending
	}
	return u.Repository.ListRequests(ctx, filter)
}

// GetRequestUseCase fetches one request by id.
type GetRequestUseCase struct {
	Repository ports.Repository
	Logger     *slog.Logger
}

func (u GetRequestUseCase) Execute(ctx context.Context, requestID string) (entities.VerificationRequest, error) {
	return u.Repository.GetRequest(ctx, requestID)
}
