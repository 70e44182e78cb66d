package errors

import "errors"

var (
	ErrRequestNotFound     = errors.New("verification request not found")
	ErrInvalidTransition   = errors.New("invalid verification request transition")
	ErrInvalidRequestInput = errors.New("invalid verification request input")
	ErrInvalidMediaKind    = errors.New("invalid media kind")
	ErrProofRequired       = errors.New("submitted proof is required before responding")
	ErrAlreadyResponded    = errors.New("verification request already responded")
)
