package routing

import (
	"testing"

	"github.com/apptime/portal-server/internal/session"
	"github.com/stretchr/testify/assert"
)

func TestLandingRouteForIsTotal(t *testing.T) {
	tests := []struct {
		role     session.Role
		expected string
	}{
		{session.RoleAdmin, RouteAdminHome},
		{session.RoleCustomer, RouteCustomerHome},
		{session.RoleUnknown, RoutePublicHome},
		{session.Role("SUPERADMIN"), RoutePublicHome},
		{session.Role("customer"), RoutePublicHome},
	}
	for _, test := range tests {
		assert.Equal(t, test.expected, LandingRouteFor(test.role), "role %q", test.role)
	}
}

func TestSignOutRouteForIsTotal(t *testing.T) {
	tests := []struct {
		role     session.Role
		expected string
	}{
		{session.RoleAdmin, RouteAdminSignIn},
		{session.RoleCustomer, RouteCustomerSignIn},
		{session.RoleUnknown, RoutePublicHome},
		{session.Role("SUPERADMIN"), RoutePublicHome},
	}
	for _, test := range tests {
		assert.Equal(t, test.expected, SignOutRouteFor(test.role), "role %q", test.role)
	}
}
