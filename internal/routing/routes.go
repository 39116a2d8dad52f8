package routing

import (
	"github.com/apptime/portal-server/internal/session"
)

// Route paths served by the portal frontend
const (
	RoutePublicHome     = "/"
	RouteAdminHome      = "/admin/home"
	RouteCustomerHome   = "/customer/home"
	RouteAdminSignIn    = "/admin/sign-in"
	RouteCustomerSignIn = "/customer/sign-in"
)

// Target describes a navigation item or guarded action that is evaluated
// against a caller's role and grant set.
// If RequiredPermission is empty, the permission key is derived from the
// last path segment of Href.
type Target struct {
	Href               string `json:"href"`
	RequiredPermission string `json:"required_permission,omitempty"`
}

// LandingRouteFor computes the canonical landing route for a role.
// It is total and never fails: unrecognized roles land on the public home
// route, as a forged or legacy role value must never pick a privileged
// destination.
func LandingRouteFor(role session.Role) string {
	switch role {
	case session.RoleAdmin:
		return RouteAdminHome
	case session.RoleCustomer:
		return RouteCustomerHome
	default:
		return RoutePublicHome
	}
}

// SignOutRouteFor computes the route a caller is sent to after signing out.
// Like LandingRouteFor it is total: known roles are sent to their sign-in
// page, everyone else to the public root.
func SignOutRouteFor(role session.Role) string {
	switch role {
	case session.RoleAdmin:
		return RouteAdminSignIn
	case session.RoleCustomer:
		return RouteCustomerSignIn
	default:
		return RoutePublicHome
	}
}
