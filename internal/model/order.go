package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Order holds item snapshots copied in at creation time: later menu edits
// never retroactively change past orders. Total always equals the sum of the
// snapshotted prices at the time of last write and is never caller-settable.
type Order struct {
	ID    primitive.ObjectID `bson:"_id"`
	Items []Item             `bson:"items"`
	Total float64            `bson:"total"`
	// ServedBy is a lookup key, not an owning link: deleting the employee
	// leaves historical orders untouched.
	ServedBy  primitive.ObjectID `bson:"servedby"`
	Completed bool               `bson:"completed"`
}
