package httpserver

import (
	"encoding/json"
	"log/slog"
	"net/http"

	accesscontrol "crewdesk/contexts/identity-access/access-control-service"
	"crewdesk/contexts/identity-access/access-control-service/domain/valueobjects"
	notificationhub "crewdesk/contexts/workforce-ops/notification-service"
	verification "crewdesk/contexts/workforce-ops/verification-service"

	httpSwagger "github.com/swaggo/http-swagger"
	_ "crewdesk/internal/platform/httpserver/docs"
)

type Server struct {
	mux           *http.ServeMux
	logger        *slog.Logger
	addr          string
	accessControl accesscontrol.Module
	verification  verification.Module
	notifications notificationhub.Module
}

func New(
	accessControlModule accesscontrol.Module,
	verificationModule verification.Module,
	notificationModule notificationhub.Module,
	logger *slog.Logger,
	addr string,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:           http.NewServeMux(),
		logger:        logger,
		addr:          addr,
		accessControl: accessControlModule,
		verification:  verificationModule,
		notifications: notificationModule,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.mux)
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.mux.HandleFunc("POST /access/evaluate", s.handleEvaluateAccess)
	s.mux.HandleFunc("GET /access/roles", s.guard(s.handleListRoleCatalog, valueobjects.PermissionRoleManage))

	s.mux.HandleFunc("POST /verifications", s.guard(s.handleCreateVerification, valueobjects.PermissionVerificationCreate))
	s.mux.HandleFunc("GET /verifications", s.guard(s.handleListVerifications, valueobjects.PermissionVerificationView))
	s.mux.HandleFunc("GET /verifications/{request_id}", s.guard(s.handleGetVerification, valueobjects.PermissionVerificationView))
	s.mux.HandleFunc("POST /verifications/{request_id}/accept", s.guard(s.handleAcceptVerification, valueobjects.PermissionVerificationReview))
	s.mux.HandleFunc("POST /verifications/{request_id}/reject", s.guard(s.handleRejectVerification, valueobjects.PermissionVerificationReview))
	s.mux.HandleFunc("POST /verifications/{request_id}/submit", s.guard(s.handleSubmitVerificationProof, valueobjects.PermissionVerificationSubmit))
	s.mux.HandleFunc("POST /verifications/{request_id}/respond", s.guard(s.handleRespondToVerification, valueobjects.PermissionVerificationReview))
	s.mux.HandleFunc("POST /verifications/expire-overdue", s.guard(s.handleExpireOverdueVerifications, valueobjects.PermissionVerificationReview))

	s.mux.HandleFunc("GET /notifications", s.guard(s.handleListNotifications, valueobjects.PermissionNotificationView))
	s.mux.HandleFunc("GET /notifications/unread-count", s.guard(s.handleUnreadCount, valueobjects.PermissionNotificationView))
	s.mux.HandleFunc("POST /notifications/{notification_id}/read", s.guard(s.handleMarkNotificationRead, valueobjects.PermissionNotificationView))
	s.mux.HandleFunc("POST /notifications/read-all", s.guard(s.handleMarkAllNotificationsRead, valueobjects.PermissionNotificationView))
	s.mux.HandleFunc("DELETE /notifications/{notification_id}", s.guard(s.handleClearNotification, valueobjects.PermissionNotificationView))
	s.mux.HandleFunc("DELETE /notifications", s.guard(s.handleClearAllNotifications, valueobjects.PermissionNotificationView))

	s.mux.HandleFunc("POST /announcements", s.guard(s.handleSendAnnouncement, valueobjects.PermissionAnnouncementSend))
	s.mux.HandleFunc("GET /announcements", s.guard(s.handleListAnnouncements, valueobjects.PermissionNotificationView))
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dest any, writeError func(http.ResponseWriter, int, string, string)) error {
	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return err
	}
	return nil
}
