package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Employee stores staff accounts with role-based access.
// Username, email and phone are each globally unique, enforced by unique
// indexes on the employees collection.
type Employee struct {
	ID           primitive.ObjectID `bson:"_id"`
	Username     string             `bson:"userName"`
	Email        string             `bson:"email"`
	Phone        string             `bson:"phone"`
	PasswordHash string             `bson:"password"`
	Salt         string             `bson:"salt"`
	// Department is stored verbatim; only admin/waiter/chef carry policy
	// meaning (see Role).
	Department string `bson:"department"`
}

// Role returns the policy role derived from the department tag.
func (e *Employee) Role() Role { return RoleOf(e.Department) }
