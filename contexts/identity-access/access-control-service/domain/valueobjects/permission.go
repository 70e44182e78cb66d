package valueobjects

import "strings"

// Permission is an opaque string capability. Possession is checked against a
// required set; the model does not interpret hierarchy or wildcards.
type Permission string

const (
	PermissionEmployeeView       Permission = "employee.view"
	PermissionEmployeeEdit       Permission = "employee.edit"
	PermissionPayrollView        Permission = "payroll.view"
	PermissionPayrollEdit        Permission = "payroll.edit"
	PermissionAttendanceView     Permission = "attendance.view"
	PermissionDashboardView      Permission = "dashboard.view"
	PermissionVerificationView   Permission = "verification.view"
	PermissionVerificationCreate Permission = "verification.create"
	PermissionVerificationReview Permission = "verification.review"
	PermissionVerificationSubmit Permission = "verification.submit"
	PermissionNotificationView   Permission = "notification.view"
	PermissionAnnouncementSend   Permission = "announcement.send"
	PermissionRoleManage         Permission = "role.manage"
)

var permissionCatalog = map[Permission]struct{}{
	PermissionEmployeeView:       {},
	PermissionEmployeeEdit:       {},
	PermissionPayrollView:        {},
	PermissionPayrollEdit:        {},
	PermissionAttendanceView:     {},
	PermissionDashboardView:      {},
	PermissionVerificationView:   {},
	PermissionVerificationCreate: {},
	PermissionVerificationReview: {},
	PermissionVerificationSubmit: {},
	PermissionNotificationView:   {},
	PermissionAnnouncementSend:   {},
	PermissionRoleManage:         {},
}

// ParsePermission validates a raw permission string against the catalog.
// Unknown strings are rejected at the boundary instead of silently failing
// every later check.
func ParsePermission(raw string) (Permission, bool) {
	candidate := Permission(strings.TrimSpace(raw))
	if _, ok := permissionCatalog[candidate]; !ok {
		return "", false
	}
	return candidate, true
}

// IsValid reports whether the permission belongs to the registered catalog.
func (p Permission) IsValid() bool {
	_, ok := permissionCatalog[p]
	return ok
}

func (p Permission) String() string {
	return string(p)
}
