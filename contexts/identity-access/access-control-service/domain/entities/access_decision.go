package entities

import (
	"time"

	"crewdesk/contexts/identity-access/access-control-service/domain/valueobjects"
)

// AccessOutcome is the guard's navigational verdict for a protected region.
type AccessOutcome string

const (
	// OutcomePending means the session provider has not resolved yet; no
	// decision is made and no redirect may be issued.
	OutcomePending AccessOutcome = "pending"
	// OutcomeSignIn means no authenticated identity exists.
	OutcomeSignIn AccessOutcome = "sign_in"
	// OutcomeDenied means the identity lacks the required permissions.
	OutcomeDenied AccessOutcome = "denied"
	// OutcomeGranted means the protected region may render.
	OutcomeGranted AccessOutcome = "granted"
)

// AccessDecision is returned by guard evaluation. A later evaluation with a
// newer session supersedes any earlier pending decision; stale redirects are
// abandoned by the caller, never queued.
type AccessDecision struct {
	Outcome   AccessOutcome             `json:"outcome"`
	Role      Role                      `json:"role,omitempty"`
	Missing   []valueobjects.Permission `json:"missing,omitempty"`
	Reason    string                    `json:"reason"`
	CheckedAt time.Time                 `json:"checked_at"`
}
