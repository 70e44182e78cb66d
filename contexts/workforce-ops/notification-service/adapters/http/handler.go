package httpadapter

import (
	"context"
	"log/slog"

	"crewdesk/contexts/workforce-ops/notification-service/application/commands"
	"crewdesk/contexts/workforce-ops/notification-service/application/queries"
	"crewdesk/contexts/workforce-ops/notification-service/domain/entities"
	domainerrors "crewdesk/contexts/workforce-ops/notification-service/domain/errors"
	httptransport "crewdesk/contexts/workforce-ops/notification-service/transport/http"
)

// Handler maps HTTP DTOs to application commands/queries.
type Handler struct {
	PushNotification  commands.PushNotificationUseCase
	MarkRead          commands.MarkReadUseCase
	MarkAllRead       commands.MarkAllReadUseCase
	ClearNotification commands.ClearNotificationUseCase
	ClearAll          commands.ClearAllUseCase
	SendAnnouncement  commands.SendAnnouncementUseCase
	ListNotifications queries.ListNotificationsUseCase
	UnreadCount       queries.UnreadCountUseCase
	ListAnnouncements queries.ListAnnouncementsUseCase
	Logger            *slog.Logger
}

func (h Handler) PushNotificationHandler(ctx context.Context, request httptransport.PushNotificationRequest) (httptransport.NotificationDTO, error) {
	kind, ok := entities.ParseNotificationKind(request.Kind)
	if !ok {
		return httptransport.NotificationDTO{}, domainerrors.ErrUnknownNotificationKind
	}
	notification, err := h.PushNotification.Execute(ctx, commands.PushNotificationCommand{
		Kind:            kind,
		Title:           request.Title,
		Message:         request.Message,
		ActionReference: request.ActionReference,
		Metadata:        request.Metadata,
	})
	if err != nil {
		return httptransport.NotificationDTO{}, err
	}
	return notificationToDTO(notification), nil
}

func (h Handler) ListNotificationsHandler(ctx context.Context, unreadOnly bool) (httptransport.ListNotificationsResponse, error) {
	notifications, err := h.ListNotifications.Execute(ctx, queries.ListNotificationsQuery{UnreadOnly: unreadOnly})
	if err != nil {
		return httptransport.ListNotificationsResponse{}, err
	}
	unread, err := h.UnreadCount.Execute(ctx)
	if err != nil {
		return httptransport.ListNotificationsResponse{}, err
	}
	items := make([]httptransport.NotificationDTO, 0, len(notifications))
	for _, notification := range notifications {
		items = append(items, notificationToDTO(notification))
	}
	return httptransport.ListNotificationsResponse{
		Notifications: items,
		UnreadCount:   unread,
	}, nil
}

func (h Handler) UnreadCountHandler(ctx context.Context) (httptransport.UnreadCountResponse, error) {
	unread, err := h.UnreadCount.Execute(ctx)
	if err != nil {
		return httptransport.UnreadCountResponse{}, err
	}
	return httptransport.UnreadCountResponse{UnreadCount: unread}, nil
}

func (h Handler) MarkReadHandler(ctx context.Context, notificationID string) error {
	return h.MarkRead.Execute(ctx, commands.MarkReadCommand{NotificationID: notificationID})
}

func (h Handler) MarkAllReadHandler(ctx context.Context) (httptransport.MarkAllReadResponse, error) {
	marked, err := h.MarkAllRead.Execute(ctx)
	if err != nil {
		return httptransport.MarkAllReadResponse{}, err
	}
	return httptransport.MarkAllReadResponse{Marked: marked}, nil
}

func (h Handler) ClearNotificationHandler(ctx context.Context, notificationID string) error {
	return h.ClearNotification.Execute(ctx, commands.ClearNotificationCommand{NotificationID: notificationID})
}

func (h Handler) ClearAllHandler(ctx context.Context) error {
	return h.ClearAll.Execute(ctx)
}

func (h Handler) SendAnnouncementHandler(
	ctx context.Context,
	authorID string,
	authorName string,
	request httptransport.SendAnnouncementRequest,
) (httptransport.AnnouncementDTO, error) {
	announcement, err := h.SendAnnouncement.Execute(ctx, commands.SendAnnouncementCommand{
		Title:       request.Title,
		Message:     request.Message,
		AuthorID:    authorID,
		AuthorName:  authorName,
		TargetRoles: request.TargetRoles,
	})
	if err != nil {
		return httptransport.AnnouncementDTO{}, err
	}
	return announcementToDTO(announcement), nil
}

func (h Handler) ListAnnouncementsHandler(ctx context.Context, role string) (httptransport.ListAnnouncementsResponse, error) {
	announcements, err := h.ListAnnouncements.Execute(ctx, queries.ListAnnouncementsQuery{Role: role})
	if err != nil {
		return httptransport.ListAnnouncementsResponse{}, err
	}
	items := make([]httptransport.AnnouncementDTO, 0, len(announcements))
	for _, announcement := range announcements {
		items = append(items, announcementToDTO(announcement))
	}
	return httptransport.ListAnnouncementsResponse{Announcements: items}, nil
}

func notificationToDTO(item entities.Notification) httptransport.NotificationDTO {
	return httptransport.NotificationDTO{
		NotificationID:  item.NotificationID,
		Kind:            string(item.Kind),
		Title:           item.Title,
		Message:         item.Message,
		CreatedAt:       item.CreatedAt,
		Read:            item.Read,
		ActionReference: item.ActionReference,
		Metadata:        item.Metadata,
	}
}

func announcementToDTO(item entities.Announcement) httptransport.AnnouncementDTO {
	return httptransport.AnnouncementDTO{
		AnnouncementID: item.AnnouncementID,
		Title:          item.Title,
		Message:        item.Message,
		CreatedAt:      item.CreatedAt,
		AuthorID:       item.AuthorID,
		AuthorName:     item.AuthorName,
		TargetRoles:    item.TargetRoles,
	}
}
