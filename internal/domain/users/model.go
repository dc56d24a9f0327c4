package users

import (
	"time"

	"github.com/lib/pq"
)

const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

type User struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Username    string         `gorm:"not null;uniqueIndex:idx_users_username" json:"username"`
	Password    string         `gorm:"not null" json:"-"`
	Role        string         `gorm:"type:varchar(20);not null;default:'staff'" json:"role"`
	Permissions pq.StringArray `gorm:"type:text[]" json:"permissions"`

	// IsDefault marks the bootstrap admin, which cannot be deleted.
	IsDefault bool `gorm:"not null;default:false" json:"isDefault"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func IsValidRole(role string) bool {
	return role == RoleAdmin || role == RoleStaff
}
