package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Item is a menu entry. Names are not unique.
type Item struct {
	ID          primitive.ObjectID `bson:"_id" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description" json:"description"`
	Price       float64            `bson:"price" json:"price"`
	Image       string             `bson:"image" json:"image"`
}
