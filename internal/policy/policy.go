// Package policy is the central authorization decision point: it maps
// (actor, action, target) to allow or a typed denial. Handlers establish
// identity before this runs; a missing or invalid bearer token is rejected
// by the JWT middleware and never reaches the policy.
package policy

import (
	"comanda/internal/apierror"
	"comanda/internal/model"
)

// Action enumerates every authorization-gated operation.
type Action int

const (
	CreateEmployee Action = iota
	DeleteEmployee
	CreateItem
	UpdateItem
	DeleteItem
	CreateOrder
	UpdateOrder
	DeleteOrder
	CompleteOrder
)

// OrderTarget carries the order attributes the policy reads. Nil for actions
// that have no resource context.
type OrderTarget struct {
	ServedBy  string
	Completed bool
}

// roleGates maps each action to its required role and the user-facing denial.
var roleGates = map[Action]struct {
	role model.Role
	deny string
}{
	CreateEmployee: {model.RoleAdmin, "Only admins can create accounts"},
	DeleteEmployee: {model.RoleAdmin, "Only admins can delete accounts"},
	CreateItem:     {model.RoleAdmin, "Only admins can create items"},
	UpdateItem:     {model.RoleAdmin, "Only admins can update items"},
	DeleteItem:     {model.RoleAdmin, "Only admins can delete items"},
	CreateOrder:    {model.RoleWaiter, "Only waiters can create orders"},
	UpdateOrder:    {model.RoleWaiter, "Only waiters can update orders"},
	DeleteOrder:    {model.RoleWaiter, "Only waiters can delete orders"},
	CompleteOrder:  {model.RoleChef, "Only chefs can complete orders"},
}

// Authorize evaluates role, then state, then ownership, in that order:
// a completed order denies deletion with Conflict before ownership is even
// considered, so any waiter gets the same answer. An actor whose identity
// could not be resolved (nil) fails the role gate like any wrong-role actor.
func Authorize(actor *model.Employee, action Action, target *OrderTarget) *apierror.Error {
	gate, ok := roleGates[action]
	if !ok {
		return apierror.New(apierror.Forbidden, "Unknown action")
	}
	if actor == nil || actor.Role() != gate.role {
		return apierror.New(apierror.Forbidden, gate.deny)
	}

	switch action {
	case UpdateOrder:
		if target != nil && target.ServedBy != actor.ID.Hex() {
			return apierror.New(apierror.Forbidden, "You can't update orders that you didn't create")
		}
	case DeleteOrder:
		if target != nil {
			if target.Completed {
				return apierror.New(apierror.Conflict, "You can't delete completed orders")
			}
			if target.ServedBy != actor.ID.Hex() {
				return apierror.New(apierror.Forbidden, "You can't delete orders that you didn't create")
			}
		}
	}
	return nil
}
