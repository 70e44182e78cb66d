package services

import "crewdesk/contexts/identity-access/access-control-service/domain/valueobjects"

// HasPermission reports whether the granted set contains the required
// permission. Fails closed: an empty or unknown required permission is never
// granted, and an empty granted set denies everything.
func HasPermission(granted []valueobjects.Permission, required valueobjects.Permission) bool {
	if !required.IsValid() {
		return false
	}
	for _, p := range granted {
		if p == required {
			return true
		}
	}
	return false
}
