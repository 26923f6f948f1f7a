package entity

type UserRole string

const (
	RoleAdmin           UserRole = "admin"
	RolePropertyManager UserRole = "property_manager"
	RoleTenant          UserRole = "tenant"
)

// IsStaff reports whether the role may manage properties, tenants and payments.
func (r UserRole) IsStaff() bool {
	return r == RoleAdmin || r == RolePropertyManager
}

type User struct {
	Base
	Email        string   `db:"email"`
	PasswordHash string   `db:"password"`
	FullName     *string  `db:"full_name"`
	Phone        *string  `db:"phone"`
	AvatarURL    *string  `db:"avatar_url"`
	Role         UserRole `db:"role"`
	IsActive     bool     `db:"is_active"`
}
