package session

// Role represents the portal role carried inside a verified session token.
// It is a closed enumeration; every value outside the known set collapses
// into RoleUnknown so that downstream decisions operate on a finite domain.
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleCustomer Role = "CUSTOMER"
	RoleUnknown  Role = ""
)

// ParseRole maps a raw role claim onto the closed role set.
// Unrecognized or empty values map to RoleUnknown instead of failing; a
// forged or legacy role string must never select a privileged branch.
func ParseRole(raw string) Role {
	switch raw {
	case string(RoleAdmin):
		return RoleAdmin
	case string(RoleCustomer):
		return RoleCustomer
	default:
		return RoleUnknown
	}
}
