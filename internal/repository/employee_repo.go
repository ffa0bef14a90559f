package repository

import (
	"context"
	"errors"

	"comanda/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// EmployeeRepository is the persistence contract for staff accounts.
// Lookups return (nil, nil) on a clean miss; business rules live in the
// services, not here.
type EmployeeRepository interface {
	List(ctx context.Context) ([]model.Employee, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Employee, error)
	FindByEmail(ctx context.Context, email string) (*model.Employee, error)
	FindByUsername(ctx context.Context, username string) (*model.Employee, error)
	FindByPhone(ctx context.Context, phone string) (*model.Employee, error)
	// Insert reports (false, nil) when the storage-level unique indexes
	// reject the write — the second line of defense behind the service's
	// check-then-insert, which is race-prone on its own.
	Insert(ctx context.Context, e *model.Employee) (bool, error)
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
}

type employeeRepo struct{ coll *mongo.Collection }

func NewEmployeeRepository(db *mongo.Database) EmployeeRepository {
	return &employeeRepo{coll: db.Collection("employees")}
}

func (r *employeeRepo) List(ctx context.Context) ([]model.Employee, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var employees []model.Employee
	if err := cur.All(ctx, &employees); err != nil {
		return nil, err
	}
	return employees, nil
}

func (r *employeeRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Employee, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *employeeRepo) FindByEmail(ctx context.Context, email string) (*model.Employee, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *employeeRepo) FindByUsername(ctx context.Context, username string) (*model.Employee, error) {
	return r.findOne(ctx, bson.M{"userName": username})
}

func (r *employeeRepo) FindByPhone(ctx context.Context, phone string) (*model.Employee, error) {
	return r.findOne(ctx, bson.M{"phone": phone})
}

func (r *employeeRepo) findOne(ctx context.Context, filter bson.M) (*model.Employee, error) {
	var e model.Employee
	err := r.coll.FindOne(ctx, filter).Decode(&e)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *employeeRepo) Insert(ctx context.Context, e *model.Employee) (bool, error) {
	_, err := r.coll.InsertOne(ctx, e)
	if mongo.IsDuplicateKeyError(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *employeeRepo) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount == 1, nil
}
