package errors

import "errors"

var (
	ErrUnknownRole       = errors.New("unknown role")
	ErrUnknownPermission = errors.New("unknown permission")
	ErrInvalidUserID     = errors.New("invalid user id")
)
