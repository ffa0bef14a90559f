package model

// Role is the closed set of departments the authorization policy understands.
// Departments outside the set map to RoleOther: such an employee can
// authenticate but passes no privileged gate.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleWaiter Role = "waiter"
	RoleChef   Role = "chef"
	RoleOther  Role = "other"
)

// RoleOf maps a free-form department string to its policy role.
func RoleOf(department string) Role {
	switch department {
	case "admin":
		return RoleAdmin
	case "waiter":
		return RoleWaiter
	case "chef":
		return RoleChef
	default:
		return RoleOther
	}
}
