package gate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"storefront-app/internal/domain/access"
	"storefront-app/internal/domain/users"
)

func TestCheck(t *testing.T) {
	staff := &users.User{Role: users.RoleStaff, Permissions: []string{"manage_products"}}

	tests := []struct {
		name string
		user *users.User
		cap  access.Capability
		want error
	}{
		{"no session", nil, access.ManageSite, ErrLoginRequired},
		{"admin", &users.User{Role: users.RoleAdmin}, access.ManageUsers, nil},
		{"granted", staff, access.ManageProducts, nil},
		{"not granted", staff, access.ManageOrders, ErrForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Check(tt.user, tt.cap))
		})
	}
}

func TestAllowed(t *testing.T) {
	assert.Nil(t, Allowed(nil))
	assert.Equal(t, access.All(), Allowed(&users.User{Role: users.RoleAdmin}))
	assert.Equal(t, []access.Capability{access.ManageOrders},
		Allowed(&users.User{Role: users.RoleStaff, Permissions: []string{"manage_orders"}}))
}
