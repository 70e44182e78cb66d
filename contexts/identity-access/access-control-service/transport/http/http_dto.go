package httptransport

import "time"

// EvaluateAccessRequest is the request body for one guard evaluation.
type EvaluateAccessRequest struct {
	Required   []string `json:"required"`
	RequireAll bool     `json:"require_all,omitempty"`
}

// EvaluateAccessResponse describes the guard's navigational verdict.
type EvaluateAccessResponse struct {
	Outcome    string    `json:"outcome"`
	Role       string    `json:"role,omitempty"`
	Missing    []string  `json:"missing,omitempty"`
	Reason     string    `json:"reason"`
	RedirectTo string    `json:"redirect_to,omitempty"`
	CheckedAt  time.Time `json:"checked_at"`
}

// RoleCatalogEntryDTO pairs a role with its permission set.
type RoleCatalogEntryDTO struct {
	Role        string   `json:"role"`
	Permissions []string `json:"permissions"`
}

type ListRoleCatalogResponse struct {
	Roles []RoleCatalogEntryDTO `json:"roles"`
}

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
