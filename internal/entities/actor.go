package entities

import "errors"

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleShop     Role = "shop"
	RoleCustomer Role = "customer"
	// RoleSystem is used by internal callers such as the payment consumer.
	RoleSystem Role = "system"
)

var ErrForbidden = errors.New("actor is not allowed to perform this action")

// Actor is the authenticated identity behind a request. Authentication
// itself is owned by the gateway; the service only receives the result.
type Actor struct {
	UserID string
	Role   Role
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin || a.Role == RoleSystem
}
