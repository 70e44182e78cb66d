package entities

import (
	"strings"
	"time"
)

// Announcement is created once and never mutated. An empty target-role set
// means broadcast: visible to all roles.
type Announcement struct {
	AnnouncementID string
	Title          string
	Message        string
	CreatedAt      time.Time
	AuthorID       string
	AuthorName     string
	TargetRoles    []string
}

func (a Announcement) ValidateCreate() bool {
	return strings.TrimSpace(a.Title) != "" &&
		strings.TrimSpace(a.Message) != "" &&
		strings.TrimSpace(a.AuthorID) != ""
}

// VisibleTo reports whether the announcement targets the given role.
func (a Announcement) VisibleTo(role string) bool {
	if len(a.TargetRoles) == 0 {
		return true
	}
	for _, target := range a.TargetRoles {
		if target == role {
			return true
		}
	}
	return false
}
