package httpserver

import (
	"errors"
	"net/http"
	"strings"

	notificationerrors "crewdesk/contexts/workforce-ops/notification-service/domain/errors"
	notificationhttp "crewdesk/contexts/workforce-ops/notification-service/transport/http"
)

func writeNotificationError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, notificationhttp.ErrorResponse{Code: code, Message: message})
}

func writeNotificationDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, notificationerrors.ErrNotificationNotFound):
		writeNotificationError(w, http.StatusNotFound, "notification_not_found", err.Error())
	case errors.Is(err, notificationerrors.ErrInvalidNotificationInput),
		errors.Is(err, notificationerrors.ErrInvalidAnnouncementInput),
		errors.Is(err, notificationerrors.ErrUnknownNotificationKind):
		writeNotificationError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		writeNotificationError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func (s *Server) handleListNotifications(w http.ResponseWriter, r *http.Request) {
	resp, err := s.notifications.Handler.ListNotificationsHandler(
		r.Context(),
		r.URL.Query().Get("unread_only") == "true",
	)
	if err != nil {
		writeNotificationDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUnreadCount(w http.ResponseWriter, r *http.Request) {
	resp, err := s.notifications.Handler.UnreadCountHandler(r.Context())
	if err != nil {
		writeNotificationDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleMarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	if err := s.notifications.Handler.MarkReadHandler(r.Context(), r.PathValue("notification_id")); err != nil {
		writeNotificationDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleMarkAllNotificationsRead(w http.ResponseWriter, r *http.Request) {
	resp, err := s.notifications.Handler.MarkAllReadHandler(r.Context())
	if err != nil {
		writeNotificationDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleClearNotification(w http.ResponseWriter, r *http.Request) {
	if err := s.notifications.Handler.ClearNotificationHandler(r.Context(), r.PathValue("notification_id")); err != nil {
		writeNotificationDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleClearAllNotifications(w http.ResponseWriter, r *http.Request) {
	if err := s.notifications.Handler.ClearAllHandler(r.Context()); err != nil {
		writeNotificationDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSendAnnouncement(w http.ResponseWriter, r *http.Request) {
	var req notificationhttp.SendAnnouncementRequest
	if err := decodeJSON(w, r, &req, writeNotificationError); err != nil {
		return
	}
	resp, err := s.notifications.Handler.SendAnnouncementHandler(
		r.Context(),
		strings.TrimSpace(r.Header.Get("X-User-Id")),
		strings.TrimSpace(r.Header.Get("X-User-Name")),
		req,
	)
	if err != nil {
		writeNotificationDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleListAnnouncements(w http.ResponseWriter, r *http.Request) {
	resp, err := s.notifications.Handler.ListAnnouncementsHandler(
		r.Context(),
		strings.TrimSpace(r.Header.Get("X-User-Role")),
	)
	if err != nil {
		writeNotificationDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
