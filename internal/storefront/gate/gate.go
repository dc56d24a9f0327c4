// Package gate decides which administrative actions a session may take.
package gate

import (
	"errors"

	"storefront-app/internal/domain/access"
	"storefront-app/internal/domain/users"
)

var (
	ErrLoginRequired = errors.New("login required")
	ErrForbidden     = errors.New("permission denied")
)

// Check returns nil when u may perform capability. A nil u means no session.
func Check(u *users.User, capability access.Capability) error {
	if u == nil {
		return ErrLoginRequired
	}
	if !access.HasPermission(*u, capability) {
		return ErrForbidden
	}
	return nil
}

// Allowed lists the capabilities u holds, in display order. Nil for no session.
func Allowed(u *users.User) []access.Capability {
	if u == nil {
		return nil
	}
	var out []access.Capability
	for _, c := range access.All() {
		if access.HasPermission(*u, c) {
			out = append(out, c)
		}
	}
	return out
}
