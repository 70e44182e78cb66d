package httpadapter

import (
	"context"
	"log/slog"

	application "crewdesk/contexts/workforce-ops/verification-service/application"
	"crewdesk/contexts/workforce-ops/verification-service/application/commands"
	"crewdesk/contexts/workforce-ops/verification-service/application/queries"
	"crewdesk/contexts/workforce-ops/verification-service/domain/entities"
	domainerrors "crewdesk/contexts/workforce-ops/verification-service/domain/errors"
	httptransport "crewdesk/contexts/workforce-ops/verification-service/transport/http"
)

// Handler maps HTTP DTOs to application commands/queries.
type Handler struct {
	CreateRequest commands.CreateRequestUseCase
	AcceptRequest commands.AcceptRequestUseCase
	RejectRequest commands.RejectRequestUseCase
	SubmitProof   commands.SubmitProofUseCase
	Respond       commands.RespondToSubmissionUseCase
	ExpireOverdue commands.ExpireOverdueUseCase
	ListRequests  queries.ListRequestsUseCase
	GetRequest    queries.GetRequestUseCase
	Logger        *slog.Logger
}

func (h Handler) CreateRequestHandler(ctx context.Context, request httptransport.CreateRequestRequest) (httptransport.VerificationRequestDTO, error) {
	logger := application.ResolveLogger(h.Logger)
	kind, ok := entities.ParseRequestKind(request.Kind)
	if !ok {
		logger.Warn("rejecting unknown request kind",
			"event", "verification_http_unknown_kind",
			"module", "workforce-ops/verification-service",
			"layer", "transport",
			"kind", request.Kind,
		)
		return httptransport.VerificationRequestDTO{}, domainerrors.ErrInvalidRequestInput
	}

	created, err := h.CreateRequest.Execute(ctx, commands.CreateRequestCommand{
		EmployeeID:      request.EmployeeID,
		EmployeeName:    request.EmployeeName,
		EmployeeContact: request.EmployeeContact,
		ManagerID:       request.ManagerID,
		ManagerName:     request.ManagerName,
		Kind:            kind,
		Title:           request.Title,
		Description:     request.Description,
		Deadline:        request.Deadline,
	})
	if err != nil {
		return httptransport.VerificationRequestDTO{}, err
	}
	return requestToDTO(created), nil
}

func (h Handler) AcceptRequestHandler(ctx context.Context, requestID string) (httptransport.VerificationRequestDTO, error) {
	updated, err := h.AcceptRequest.Execute(ctx, commands.AcceptRequestCommand{RequestID: requestID})
	if err != nil {
		return httptransport.VerificationRequestDTO{}, err
	}
	return requestToDTO(updated), nil
}

func (h Handler) RejectRequestHandler(ctx context.Context, requestID string) (httptransport.VerificationRequestDTO, error) {
	updated, err := h.RejectRequest.Execute(ctx, commands.RejectRequestCommand{RequestID: requestID})
	if err != nil {
		return httptransport.VerificationRequestDTO{}, err
	}
	return requestToDTO(updated), nil
}

func (h Handler) SubmitProofHandler(ctx context.Context, requestID string, request httptransport.SubmitProofRequest) (httptransport.VerificationRequestDTO, error) {
	mediaKind, ok := entities.ParseMediaKind(request.MediaKind)
	if !ok {
		return httptransport.VerificationRequestDTO{}, domainerrors.ErrInvalidMediaKind
	}
	updated, err := h.SubmitProof.Execute(ctx, commands.SubmitProofCommand{
		RequestID: requestID,
		MediaKind: mediaKind,
		Reference: request.Reference,
	})
	if err != nil {
		return httptransport.VerificationRequestDTO{}, err
	}
	return requestToDTO(updated), nil
}

func (h Handler) RespondHandler(ctx context.Context, requestID string, request httptransport.RespondRequest) (httptransport.VerificationRequestDTO, error) {
	updated, err := h.Respond.Execute(ctx, commands.RespondToSubmissionCommand{
		RequestID: requestID,
		Approved:  request.Approved,
		Comment:   request.Comment,
	})
	if err != nil {
		return httptransport.VerificationRequestDTO{}, err
	}
	return requestToDTO(updated), nil
}

func (h Handler) ExpireOverdueHandler(ctx context.Context) (httptransport.ExpireOverdueResponse, error) {
	expired, err := h.ExpireOverdue.Execute(ctx)
	if err != nil {
		return httptransport.ExpireOverdueResponse{}, err
	}
	return httptransport.ExpireOverdueResponse{Expired: expired}, nil
}

func (h Handler) ListRequestsHandler(ctx context.Context, employeeID string, managerID string, actionableOnly bool) (httptransport.ListRequestsResponse, error) {
	requests, err := h.ListRequests.Execute(ctx, queries.ListRequestsQuery{
		EmployeeID:     employeeID,
		ManagerID:      managerID,
		ActionableOnly: actionableOnly,
	})
	if err != nil {
		return httptransport.ListRequestsResponse{}, err
	}
	items := make([]httptransport.VerificationRequestDTO, 0, len(requests))
	for _, request := range requests {
		items = append(items, requestToDTO(request))
	}
	return httptransport.ListRequestsResponse{Requests: items}, nil
}

func (h Handler) GetRequestHandler(ctx context.Context, requestID string) (httptransport.VerificationRequestDTO, error) {
	request, err := h.GetRequest.Execute(ctx, requestID)
	if err != nil {
		return httptransport.VerificationRequestDTO{}, err
	}
	return requestToDTO(request), nil
}

func requestToDTO(item entities.VerificationRequest) httptransport.VerificationRequestDTO {
	dto := httptransport.VerificationRequestDTO{
		RequestID:       item.RequestID,
		EmployeeID:      item.EmployeeID,
		EmployeeName:    item.EmployeeName,
		EmployeeContact: item.EmployeeContact,
		ManagerID:       item.ManagerID,
		ManagerName:     item.ManagerName,
		Kind:            string(item.Kind),
		Title:           item.Title,
		Description:     item.Description,
		RequestedAt:     item.RequestedAt,
		Deadline:        item.Deadline,
		Status:          string(item.Status),
	}
	if item.Proof != nil {
		dto.Proof = &httptransport.SubmittedProofDTO{
			MediaKind:   string(item.Proof.MediaKind),
			Reference:   item.Proof.Reference,
			SubmittedAt: item.Proof.SubmittedAt,
		}
	}
	if item.Response != nil {
		dto.Response = &httptransport.ManagerResponseDTO{
			Decision:    string(item.Response.Decision),
			Comment:     item.Response.Comment,
			RespondedAt: item.Response.RespondedAt,
		}
	}
	return dto
}
