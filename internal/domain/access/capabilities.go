package access

import "storefront-app/internal/domain/users"

var all = []Capability{ManageSite, ManageProducts, ManageCategories, ManageOrders, ManageUsers}

// All returns every capability, in a stable order.
func All() []Capability {
	return append([]Capability(nil), all...)
}

// AllNames is All as plain strings, the shape stored on users.
func AllNames() []string {
	out := make([]string, len(all))
	for i, c := range all {
		out[i] = string(c)
	}
	return out
}

func IsKnown(name string) bool {
	for _, c := range all {
		if string(c) == name {
			return true
		}
	}
	return false
}

// CapabilitiesFor lists what the user can do. Admins get everything regardless
// of what is stored on the account.
func CapabilitiesFor(u users.User) []string {
	if u.Role == users.RoleAdmin {
		return AllNames()
	}
	out := []string{}
	for _, c := range all {
		if HasPermission(u, c) {
			out = append(out, string(c))
		}
	}
	return out
}
