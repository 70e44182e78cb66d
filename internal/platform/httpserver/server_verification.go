package httpserver

import (
	"errors"
	"net/http"

	verificationerrors "crewdesk/contexts/workforce-ops/verification-service/domain/errors"
	verificationhttp "crewdesk/contexts/workforce-ops/verification-service/transport/http"
)

func writeVerificationError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, verificationhttp.ErrorResponse{Code: code, Message: message})
}

func writeVerificationDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, verificationerrors.ErrRequestNotFound):
		writeVerificationError(w, http.StatusNotFound, "request_not_found", err.Error())
	case errors.Is(err, verificationerrors.ErrInvalidTransition):
		writeVerificationError(w, http.StatusConflict, "invalid_transition", err.Error())
	case errors.Is(err, verificationerrors.ErrAlreadyResponded):
		writeVerificationError(w, http.StatusConflict, "already_responded", err.Error())
	case errors.Is(err, verificationerrors.ErrProofRequired):
		writeVerificationError(w, http.StatusConflict, "proof_required", err.Error())
	case errors.Is(err, verificationerrors.ErrInvalidRequestInput),
		errors.Is(err, verificationerrors.ErrInvalidMediaKind):
		writeVerificationError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		writeVerificationError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func (s *Server) handleCreateVerification(w http.ResponseWriter, r *http.Request) {
	var req verificationhttp.CreateRequestRequest
	if err := decodeJSON(w, r, &req, writeVerificationError); err != nil {
		return
	}
	resp, err := s.verification.Handler.CreateRequestHandler(r.Context(), req)
	if err != nil {
		writeVerificationDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleListVerifications(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	resp, err := s.verification.Handler.ListRequestsHandler(
		r.Context(),
		query.Get("employee_id"),
		query.Get("manager_id"),
		query.Get("actionable_only") == "true",
	)
	if err != nil {
		writeVerificationDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetVerification(w http.ResponseWriter, r *http.Request) {
	resp, err := s.verification.Handler.GetRequestHandler(r.Context(), r.PathValue("request_id"))
	if err != nil {
		writeVerificationDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAcceptVerification(w http.ResponseWriter, r *http.Request) {
	resp, err := s.verification.Handler.AcceptRequestHandler(r.Context(), r.PathValue("request_id"))
	if err != nil {
		writeVerificationDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRejectVerification(w http.ResponseWriter, r *http.Request) {
	resp, err := s.verification.Handler.RejectRequestHandler(r.Context(), r.PathValue("request_id"))
	if err != nil {
		writeVerificationDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSubmitVerificationProof(w http.ResponseWriter, r *http.Request) {
	var req verificationhttp.SubmitProofRequest
	if err := decodeJSON(w, r, &req, writeVerificationError); err != nil {
		return
	}
	resp, err := s.verification.Handler.SubmitProofHandler(r.Context(), r.PathValue("request_id"), req)
	if err != nil {
		writeVerificationDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRespondToVerification(w http.ResponseWriter, r *http.Request) {
	var req verificationhttp.RespondRequest
	if err := decodeJSON(w, r, &req, writeVerificationError); err != nil {
		return
	}
	resp, err := s.verification.Handler.RespondHandler(r.Context(), r.PathValue("request_id"), req)
	if err != nil {
		writeVerificationDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleExpireOverdueVerifications(w http.ResponseWriter, r *http.Request) {
	resp, err := s.verification.Handler.ExpireOverdueHandler(r.Context())
	if err != nil {
		writeVerificationDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
