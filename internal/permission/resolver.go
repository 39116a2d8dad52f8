package permission

import (
	"strings"

	"github.com/apptime/portal-server/internal/routing"
	"github.com/apptime/portal-server/internal/session"
)

// CanAccess decides whether a caller with the given role and grant set may
// see or use the given navigation target.
//
// Administrators are not subject to the grant check and may access every
// target. Customers always keep access to their home target so they never
// end up without any navigable destination; every other target requires its
// permission key to be present in the active grant set. Every other role,
// including an absent one, is denied everywhere.
//
// A nil grant set is treated as empty. The function is pure and performs no
// I/O; it may be called once per navigation item per render.
func CanAccess(role session.Role, grants []Grant, target routing.Target) bool {
	switch role {
	case session.RoleAdmin:
		return true
	case session.RoleCustomer:
		if target.Href == routing.RouteCustomerHome {
			return true
		}
		key := target.RequiredPermission
		if key == "" {
			key = deriveKey(target.Href)
		}
		if key == "" {
			return false
		}
		_, ok := ActiveNames(grants)[key]
		return ok
	default:
		return false
	}
}

// Filter returns the subset of targets the caller may access, preserving order
func Filter(role session.Role, grants []Grant, targets []routing.Target) []routing.Target {
	allowed := make([]routing.Target, 0, len(targets))
	for _, target := range targets {
		if CanAccess(role, grants, target) {
			allowed = append(allowed, target)
		}
	}
	return allowed
}

// deriveKey extracts the fallback permission key out of a target's href (its last path segment)
func deriveKey(href string) string {
	trimmed := strings.Trim(href, "/")
	if trimmed == "" {
		return ""
	}
	segments := strings.Split(trimmed, "/")
	return segments[len(segments)-1]
}
