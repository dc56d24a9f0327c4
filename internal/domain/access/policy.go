package access

import "storefront-app/internal/domain/users"

// HasPermission is true for admins, otherwise only if c was granted to u.
func HasPermission(u users.User, c Capability) bool {
	if u.Role == users.RoleAdmin {
		return true
	}
	for _, p := range u.Permissions {
		if p == string(c) {
			return true
		}
	}
	return false
}
