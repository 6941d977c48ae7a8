// Package entity contains the core business objects of the project.
package entity

// Role represents the type of account in the system. The values match the
// role names used across the product (routes, stored records, mails).
type Role string

const (
	// RoleCustomer indicates a regular customer account.
	RoleCustomer Role = "cliente"
	// RoleMerchant indicates a merchant (store) account.
	RoleMerchant Role = "comercio"
	// RoleCourier indicates a delivery courier account.
	RoleCourier Role = "delivery"
	// RoleAdmin indicates an administrator account.
	RoleAdmin Role = "administrador"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleMerchant, RoleCourier, RoleAdmin:
		return true
	default:
		return false
	}
}

// HomePath returns the landing route for the role after login.
func (r Role) HomePath() string {
	switch r {
	case RoleCustomer:
		return "/cliente/home"
	case RoleMerchant:
		return "/comercio/home"
	case RoleCourier:
		return "/delivery/home"
	case RoleAdmin:
		return "/admin/dashboard"
	default:
		return "/auth/login"
	}
}
