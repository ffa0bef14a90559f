package repository

import (
	"context"
	"errors"

	"comanda/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ItemRepository is the persistence contract for menu items.
type ItemRepository interface {
	List(ctx context.Context) ([]model.Item, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Item, error)
	Insert(ctx context.Context, i *model.Item) (bool, error)
	Update(ctx context.Context, i *model.Item) (bool, error)
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
}

type itemRepo struct{ coll *mongo.Collection }

func NewItemRepository(db *mongo.Database) ItemRepository {
	return &itemRepo{coll: db.Collection("items")}
}

func (r *itemRepo) List(ctx context.Context) ([]model.Item, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var items []model.Item
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *itemRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Item, error) {
	var i model.Item
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&i)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &i, nil
}

func (r *itemRepo) Insert(ctx context.Context, i *model.Item) (bool, error) {
	_, err := r.coll.InsertOne(ctx, i)
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *itemRepo) Update(ctx context.Context, i *model.Item) (bool, error) {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": i.ID}, i)
	if err != nil {
		return false, err
	}
	return res.MatchedCount == 1, nil
}

func (r *itemRepo) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount == 1, nil
}
