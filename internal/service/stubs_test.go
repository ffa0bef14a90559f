package service

import (
	"context"

	"comanda/internal/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ── In-memory repository stubs ────────────────────────────────────────────────

type stubEmployeeRepo struct {
	employees map[string]*model.Employee // keyed by hex id
}

func newStubEmployeeRepo() *stubEmployeeRepo {
	return &stubEmployeeRepo{employees: make(map[string]*model.Employee)}
}

func (r *stubEmployeeRepo) seed(username, email, phone, department string) *model.Employee {
	e := &model.Employee{
		ID:         primitive.NewObjectID(),
		Username:   username,
		Email:      email,
		Phone:      phone,
		Department: department,
	}
	r.employees[e.ID.Hex()] = e
	return e
}

// failingEmployeeRepo simulates a storage outage during actor lookups while
// keeping the rest of the stub intact.
type failingEmployeeRepo struct {
	*stubEmployeeRepo
	findErr error
}

func (r *failingEmployeeRepo) FindByID(context.Context, primitive.ObjectID) (*model.Employee, error) {
	return nil, r.findErr
}

func (r *stubEmployeeRepo) List(_ context.Context) ([]model.Employee, error) {
	out := make([]model.Employee, 0, len(r.employees))
	for _, e := range r.employees {
		out = append(out, *e)
	}
	return out, nil
}

func (r *stubEmployeeRepo) FindByID(_ context.Context, id primitive.ObjectID) (*model.Employee, error) {
	return r.employees[id.Hex()], nil
}

func (r *stubEmployeeRepo) FindByEmail(_ context.Context, email string) (*model.Employee, error) {
	for _, e := range r.employees {
		if e.Email == email {
			return e, nil
		}
	}
	return nil, nil
}

func (r *stubEmployeeRepo) FindByUsername(_ context.Context, username string) (*model.Employee, error) {
	for _, e := range r.employees {
		if e.Username == username {
			return e, nil
		}
	}
	return nil, nil
}

func (r *stubEmployeeRepo) FindByPhone(_ context.Context, phone string) (*model.Employee, error) {
	for _, e := range r.employees {
		if e.Phone == phone {
			return e, nil
		}
	}
	return nil, nil
}

func (r *stubEmployeeRepo) Insert(_ context.Context, e *model.Employee) (bool, error) {
	// Mimic the unique indexes on the collection.
	for _, existing := range r.employees {
		if existing.Username == e.Username || existing.Email == e.Email || existing.Phone == e.Phone {
			return false, nil
		}
	}
	r.employees[e.ID.Hex()] = e
	return true, nil
}

func (r *stubEmployeeRepo) Delete(_ context.Context, id primitive.ObjectID) (bool, error) {
	if _, ok := r.employees[id.Hex()]; !ok {
		return false, nil
	}
	delete(r.employees, id.Hex())
	return true, nil
}

type stubItemRepo struct {
	items map[string]*model.Item
}

func newStubItemRepo() *stubItemRepo {
	return &stubItemRepo{items: make(map[string]*model.Item)}
}

func (r *stubItemRepo) List(_ context.Context) ([]model.Item, error) {
	out := make([]model.Item, 0, len(r.items))
	for _, i := range r.items {
		out = append(out, *i)
	}
	return out, nil
}

func (r *stubItemRepo) FindByID(_ context.Context, id primitive.ObjectID) (*model.Item, error) {
	return r.items[id.Hex()], nil
}

func (r *stubItemRepo) Insert(_ context.Context, i *model.Item) (bool, error) {
	r.items[i.ID.Hex()] = i
	return true, nil
}

func (r *stubItemRepo) Update(_ context.Context, i *model.Item) (bool, error) {
	if _, ok := r.items[i.ID.Hex()]; !ok {
		return false, nil
	}
	r.items[i.ID.Hex()] = i
	return true, nil
}

func (r *stubItemRepo) Delete(_ context.Context, id primitive.ObjectID) (bool, error) {
	if _, ok := r.items[id.Hex()]; !ok {
		return false, nil
	}
	delete(r.items, id.Hex())
	return true, nil
}

type stubOrderRepo struct {
	orders map[string]*model.Order
}

func newStubOrderRepo() *stubOrderRepo {
	return &stubOrderRepo{orders: make(map[string]*model.Order)}
}

func (r *stubOrderRepo) List(_ context.Context) ([]model.Order, error) {
	out := make([]model.Order, 0, len(r.orders))
	for _, o := range r.orders {
		out = append(out, *o)
	}
	return out, nil
}

func (r *stubOrderRepo) FindByID(_ context.Context, id primitive.ObjectID) (*model.Order, error) {
	if o, ok := r.orders[id.Hex()]; ok {
		cp := *o
		return &cp, nil
	}
	return nil, nil
}

func (r *stubOrderRepo) Insert(_ context.Context, o *model.Order) (bool, error) {
	cp := *o
	r.orders[o.ID.Hex()] = &cp
	return true, nil
}

func (r *stubOrderRepo) Update(_ context.Context, o *model.Order) (bool, error) {
	if _, ok := r.orders[o.ID.Hex()]; !ok {
		return false, nil
	}
	cp := *o
	r.orders[o.ID.Hex()] = &cp
	return true, nil
}

func (r *stubOrderRepo) Delete(_ context.Context, id primitive.ObjectID) (bool, error) {
	if _, ok := r.orders[id.Hex()]; !ok {
		return false, nil
	}
	delete(r.orders, id.Hex())
	return true, nil
}
