package errors

import "errors"

var (
	ErrNotificationNotFound     = errors.New("notification not found")
	ErrInvalidNotificationInput = errors.New("invalid notification input")
	ErrInvalidAnnouncementInput = errors.New("invalid announcement input")
	ErrUnknownNotificationKind  = errors.New("unknown notification kind")
)
