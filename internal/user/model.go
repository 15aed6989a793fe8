package user

type Role string

const (
	RoleBuyer   Role = "BUYER"
	RoleCashier Role = "CASHIER"
	RoleAdmin   Role = "ADMIN"
)

// Roles in menu order.
var Roles = []Role{RoleBuyer, RoleCashier, RoleAdmin}

func (r Role) Valid() bool {
	switch r {
	case RoleBuyer, RoleCashier, RoleAdmin:
		return true
	}
	return false
}

func (r Role) DisplayName() string {
	switch r {
	case RoleBuyer:
		return "Buyer/Chef"
	case RoleCashier:
		return "Cashier"
	case RoleAdmin:
		return "Admin"
	}
	return "Unknown"
}

const (
	MinNameLen     = 4
	MaxNameLen     = 20
	MinPasswordLen = 6
	MaxPasswordLen = 50
)

// User is one account record. Exactly one role per user.
type User struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	HashedPassword string `json:"hashed_password"`
	Role           Role   `json:"role"`
}

func (u *User) RecordID() int { return u.ID }
