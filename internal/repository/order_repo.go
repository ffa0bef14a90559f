package repository

import (
	"context"
	"errors"

	"comanda/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// OrderRepository is the persistence contract for orders.
type OrderRepository interface {
	List(ctx context.Context) ([]model.Order, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Order, error)
	Insert(ctx context.Context, o *model.Order) (bool, error)
	Update(ctx context.Context, o *model.Order) (bool, error)
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
}

type orderRepo struct{ coll *mongo.Collection }

func NewOrderRepository(db *mongo.Database) OrderRepository {
	return &orderRepo{coll: db.Collection("orders")}
}

func (r *orderRepo) List(ctx context.Context) ([]model.Order, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var orders []model.Order
	if err := cur.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Order, error) {
	var o model.Order
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&o)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *orderRepo) Insert(ctx context.Context, o *model.Order) (bool, error) {
	_, err := r.coll.InsertOne(ctx, o)
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *orderRepo) Update(ctx context.Context, o *model.Order) (bool, error) {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": o.ID}, o)
	if err != nil {
		return false, err
	}
	return res.MatchedCount == 1, nil
}

func (r *orderRepo) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount == 1, nil
}
