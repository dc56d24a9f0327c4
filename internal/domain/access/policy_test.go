package access

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"storefront-app/internal/domain/users"
)

func TestHasPermission(t *testing.T) {
	admin := users.User{Role: users.RoleAdmin}
	staff := users.User{Role: users.RoleStaff, Permissions: []string{"manage_orders", "not_a_capability"}}
	bare := users.User{Role: users.RoleStaff}

	for _, c := range All() {
		assert.True(t, HasPermission(admin, c), c)
	}
	assert.True(t, HasPermission(staff, ManageOrders))
	assert.False(t, HasPermission(staff, ManageProducts))
	assert.False(t, HasPermission(bare, ManageOrders))
}

func TestCapabilitiesFor(t *testing.T) {
	assert.Equal(t, AllNames(), CapabilitiesFor(users.User{Role: users.RoleAdmin}))
	assert.Equal(t, []string{"manage_site", "manage_orders"},
		CapabilitiesFor(users.User{Role: users.RoleStaff, Permissions: []string{"manage_orders", "manage_site", "bogus"}}))
	assert.Equal(t, []string{}, CapabilitiesFor(users.User{Role: users.RoleStaff}))
}

func TestIsKnown(t *testing.T) {
	assert.True(t, IsKnown("manage_users"))
	assert.False(t, IsKnown("root"))
}
