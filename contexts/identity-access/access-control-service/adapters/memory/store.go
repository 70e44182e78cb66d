package memory

import (
	"context"
	"sync"
	"time"

	"crewdesk/contexts/identity-access/access-control-service/domain/entities"
	domainerrors "crewdesk/contexts/identity-access/access-control-service/domain/errors"
	"crewdesk/contexts/identity-access/access-control-service/domain/valueobjects"
)

// Store is an in-memory adapter implementing the role catalog, permission
// cache, and clock ports. It is intended for tests and local development
// wiring; the role mapping is the authoritative seed for both.
type Store struct {
	mu sync.RWMutex

	roles map[entities.Role][]valueobjects.Permission
	cache map[entities.Role]cacheEntry
}

type cacheEntry struct {
	Permissions []valueobjects.Permission
	ExpiresAt   time.Time
}

// NewStore builds the static role → permission mapping.
func NewStore() *Store {
	roles := map[entities.Role][]valueobjects.Permission{
		entities.RoleEmployee: {
			valueobjects.PermissionDashboardView,
			valueobjects.PermissionAttendanceView,
			valueobjects.PermissionVerificationView,
			valueobjects.PermissionVerificationSubmit,
			valueobjects.PermissionNotificationView,
		},
		entities.RoleManager: {
			valueobjects.PermissionDashboardView,
			valueobjects.PermissionEmployeeView,
			valueobjects.PermissionAttendanceView,
			valueobjects.PermissionVerificationView,
			valueobjects.PermissionVerificationCreate,
			valueobjects.PermissionVerificationReview,
			valueobjects.PermissionNotificationView,
			valueobjects.PermissionAnnouncementSend,
		},
		entities.RoleHRManager: {
			valueobjects.PermissionDashboardView,
			valueobjects.PermissionEmployeeView,
			valueobjects.PermissionEmployeeEdit,
			valueobjects.PermissionPayrollView,
			valueobjects.PermissionPayrollEdit,
			valueobjects.PermissionAttendanceView,
			valueobjects.PermissionVerificationView,
			valueobjects.PermissionVerificationCreate,
			valueobjects.PermissionVerificationReview,
			valueobjects.PermissionNotificationView,
			valueobjects.PermissionAnnouncementSend,
		},
		entities.RoleAdmin: {
			valueobjects.PermissionDashboardView,
			valueobjects.PermissionEmployeeView,
			valueobjects.PermissionEmployeeEdit,
			valueobjects.PermissionPayrollView,
			valueobjects.PermissionPayrollEdit,
			valueobjects.PermissionAttendanceView,
			valueobjects.PermissionVerificationView,
			valueobjects.PermissionVerificationCreate,
			valueobjects.PermissionVerificationReview,
			valueobjects.PermissionVerificationSubmit,
			valueobjects.PermissionNotificationView,
			valueobjects.PermissionAnnouncementSend,
			valueobjects.PermissionRoleManage,
		},
	}
	return &Store{
		roles: roles,
		cache: make(map[entities.Role]cacheEntry),
	}
}

// ListRolePermissions returns a copy of the permission set for one role.
func (s *Store) ListRolePermissions(_ context.Context, role entities.Role) ([]valueobjects.Permission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	permissions, ok := s.roles[role]
	if !ok {
		return nil, domainerrors.ErrUnknownRole
	}
	return append([]valueobjects.Permission(nil), permissions...), nil
}

// ListRoles returns the closed role enumeration in a stable order.
func (s *Store) ListRoles(_ context.Context) ([]entities.Role, error) {
	return []entities.Role{
		entities.RoleAdmin,
		entities.RoleHRManager,
		entities.RoleManager,
		entities.RoleEmployee,
	}, nil
}

func (s *Store) Get(_ context.Context, role entities.Role, now time.Time) ([]valueobjects.Permission, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.cache[role]
	if !ok {
		return nil, false, nil
	}
	if !entry.ExpiresAt.After(now) {
		delete(s.cache, role)
		return nil, false, nil
	}
	return append([]valueobjects.Permission(nil), entry.Permissions...), true, nil
}

func (s *Store) Set(_ context.Context, role entities.Role, permissions []valueobjects.Permission, expiresAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cache[role] = cacheEntry{
		Permissions: append([]valueobjects.Permission(nil), permissions...),
		ExpiresAt:   expiresAt.UTC(),
	}
	return nil
}

func (s *Store) Invalidate(_ context.Context, role entities.Role) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.cache, role)
	return nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}
