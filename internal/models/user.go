package models

type UserRole string

const (
	RoleCustomer UserRole = "CUSTOMER"
	RoleAdmin    UserRole = "ADMIN"
)

// AdminStatus is the approval state of a staff account. New admins start
// PENDING; only the owner moves them to ACCEPTED or REJECTED, and a
// decided account is not reversible.
type AdminStatus string

const (
	AdminStatusPending  AdminStatus = "PENDING"
	AdminStatusAccepted AdminStatus = "ACCEPTED"
	AdminStatusRejected AdminStatus = "REJECTED"
)

type User struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Password string      `json:"-"` // bcrypt hash, never serialized
	Phone    string      `json:"phone,omitempty"`
	Location string      `json:"location,omitempty"`
	Role     UserRole    `json:"role"`
	Status   AdminStatus `json:"status,omitempty"` // admins only
}

// Profile is the delivery contact data required to place an order.
type Profile struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
}

// Complete reports whether every field needed for delivery is present.
func (p Profile) Complete() bool {
	return p.Name != "" && p.Phone != "" && p.Location != ""
}
