package models

// UserRole defines allowed roles in the system
type UserRole string

const (
	RoleAdmin    UserRole = "Admin"
	RoleCustomer UserRole = "Customer"
	RoleChef     UserRole = "Chef"
)

// ValidRole reports whether the role is one of the recognized roles.
func ValidRole(role UserRole) bool {
	switch role {
	case RoleAdmin, RoleCustomer, RoleChef:
		return true
	}
	return false
}

type User struct {
	Username     string
	Email        string
	Phone        string
	PasswordHash string
	Role         UserRole
}
