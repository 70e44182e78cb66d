package httpserver

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	accesserrors "crewdesk/contexts/identity-access/access-control-service/domain/errors"
	"crewdesk/contexts/identity-access/access-control-service/domain/valueobjects"
	accesshttp "crewdesk/contexts/identity-access/access-control-service/transport/http"
)

func writeAccessError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, accesshttp.ErrorResponse{Code: code, Message: message})
}

func writeAccessDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, accesserrors.ErrUnknownRole):
		writeAccessError(w, http.StatusUnauthorized, "unknown_role", err.Error())
	case errors.Is(err, accesserrors.ErrUnknownPermission):
		writeAccessError(w, http.StatusBadRequest, "unknown_permission", err.Error())
	case errors.Is(err, accesserrors.ErrInvalidUserID):
		writeAccessError(w, http.StatusBadRequest, "invalid_user_id", err.Error())
	default:
		writeAccessError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

// guard wraps a handler with a permission check against the caller's
// session. Requirements are any-of; routes that need several capabilities
// register one guarded handler per capability path instead.
//
// Outcome mapping: pending -> 503, sign_in -> 401, denied -> 403,
// granted -> next handler.
func (s *Server) guard(next http.HandlerFunc, required ...valueobjects.Permission) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, err := s.accessControl.Handler.ResolveSessionHandler(
			r.Context(),
			strings.TrimSpace(r.Header.Get("X-User-Id")),
			strings.TrimSpace(r.Header.Get("X-User-Name")),
			strings.TrimSpace(r.Header.Get("X-User-Role")),
		)
		if err != nil {
			writeAccessDomainError(w, err)
			return
		}

		requiredRaw := make([]string, 0, len(required))
		for _, permission := range required {
			requiredRaw = append(requiredRaw, permission.String())
		}
		decision, err := s.accessControl.Handler.EvaluateAccessHandler(
			r.Context(),
			session,
			accesshttp.EvaluateAccessRequest{Required: requiredRaw},
		)
		if err != nil {
			writeAccessDomainError(w, err)
			return
		}

		switch decision.Outcome {
		case "granted":
			next(w, r)
		case "pending":
			writeAccessError(w, http.StatusServiceUnavailable, "session_loading", "session is still loading, retry shortly")
		case "sign_in":
			writeJSON(w, http.StatusUnauthorized, decision)
		case "denied":
			decision.Reason = fmt.Sprintf(
				"role %s lacks access; ask an administrator if you believe this is a mistake",
				decision.Role,
			)
			writeJSON(w, http.StatusForbidden, decision)
		default:
			writeAccessError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		}
	}
}

func (s *Server) handleEvaluateAccess(w http.ResponseWriter, r *http.Request) {
	var req accesshttp.EvaluateAccessRequest
	if err := decodeJSON(w, r, &req, writeAccessError); err != nil {
		return
	}

	session, err := s.accessControl.Handler.ResolveSessionHandler(
		r.Context(),
		strings.TrimSpace(r.Header.Get("X-User-Id")),
		strings.TrimSpace(r.Header.Get("X-User-Name")),
		strings.TrimSpace(r.Header.Get("X-User-Role")),
	)
	if err != nil {
		writeAccessDomainError(w, err)
		return
	}

	resp, err := s.accessControl.Handler.EvaluateAccessHandler(r.Context(), session, req)
	if err != nil {
		writeAccessDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListRoleCatalog(w http.ResponseWriter, r *http.Request) {
	resp, err := s.accessControl.Handler.ListRoleCatalogHandler(r.Context())
	if err != nil {
		writeAccessDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
