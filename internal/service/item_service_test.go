package service

import (
	"context"
	"testing"

	"comanda/internal/apierror"
	"comanda/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newItemFixture() (ItemService, *stubItemRepo, *stubEmployeeRepo) {
	items := newStubItemRepo()
	employees := newStubEmployeeRepo()
	return NewItemService(items, employees, nil), items, employees
}

func burgerRequest() dto.CreateItemRequest {
	return dto.CreateItemRequest{
		Name:        "Burger",
		Description: "Beef, cheddar, pickles",
		Price:       9.5,
		Image:       "https://img.example.com/burger.png",
	}
}

func TestCreateItemAdminOnly(t *testing.T) {
	svc, _, employees := newItemFixture()
	admin := employees.seed("boss", "boss@example.com", "555-0100", "admin")
	waiter := employees.seed("w", "w@example.com", "555-0101", "waiter")

	_, err := svc.Create(context.Background(), waiter.ID.Hex(), burgerRequest())
	assert.Equal(t, apierror.Forbidden, kindOf(t, err))

	resp, err := svc.Create(context.Background(), admin.ID.Hex(), burgerRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "Burger", resp.Name)
	assert.Equal(t, 9.5, resp.Price)
}

// The system this replaces only rejected an item when every field was blank
// at once, silently accepting partially-invalid input. The contract here is
// the corrected one: any missing field or negative price is rejected.
func TestCreateItemRejectsPartiallyBlankInput(t *testing.T) {
	svc, _, employees := newItemFixture()
	admin := employees.seed("boss", "boss@example.com", "555-0100", "admin")

	mutations := []func(*dto.CreateItemRequest){
		func(r *dto.CreateItemRequest) { r.Name = "" },
		func(r *dto.CreateItemRequest) { r.Description = "" },
		func(r *dto.CreateItemRequest) { r.Image = "" },
		func(r *dto.CreateItemRequest) { r.Price = -0.01 },
	}
	for _, mutate := range mutations {
		req := burgerRequest()
		mutate(&req)
		_, err := svc.Create(context.Background(), admin.ID.Hex(), req)
		assert.Equal(t, apierror.InvalidInput, kindOf(t, err))
	}

	// A free item is fine; only negative prices are invalid.
	free := burgerRequest()
	free.Price = 0
	_, err := svc.Create(context.Background(), admin.ID.Hex(), free)
	assert.NoError(t, err)
}

func TestGetItem(t *testing.T) {
	svc, _, employees := newItemFixture()
	admin := employees.seed("boss", "boss@example.com", "555-0100", "admin")
	created, err := svc.Create(context.Background(), admin.ID.Hex(), burgerRequest())
	require.NoError(t, err)

	_, err = svc.Get(context.Background(), "not-hex")
	assert.Equal(t, apierror.InvalidInput, kindOf(t, err))

	_, err = svc.Get(context.Background(), primitive.NewObjectID().Hex())
	assert.Equal(t, apierror.NotFound, kindOf(t, err))

	got, err := svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestUpdateItem(t *testing.T) {
	svc, _, employees := newItemFixture()
	admin := employees.seed("boss", "boss@example.com", "555-0100", "admin")
	created, err := svc.Create(context.Background(), admin.ID.Hex(), burgerRequest())
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), admin.ID.Hex(), primitive.NewObjectID().Hex(), dto.UpdateItemRequest(burgerRequest()))
	assert.Equal(t, apierror.NotFound, kindOf(t, err))

	update := dto.UpdateItemRequest{Name: "Double Burger", Description: "Twice the beef", Price: 12.0, Image: "https://img.example.com/double.png"}
	resp, err := svc.Update(context.Background(), admin.ID.Hex(), created.ID, update)
	require.NoError(t, err)
	assert.Equal(t, created.ID, resp.ID)
	assert.Equal(t, "Double Burger", resp.Name)
	assert.Equal(t, 12.0, resp.Price)
}

func TestDeleteItemEchoesSnapshot(t *testing.T) {
	svc, items, employees := newItemFixture()
	admin := employees.seed("boss", "boss@example.com", "555-0100", "admin")
	created, err := svc.Create(context.Background(), admin.ID.Hex(), burgerRequest())
	require.NoError(t, err)

	resp, err := svc.Delete(context.Background(), admin.ID.Hex(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, resp)
	assert.Empty(t, items.items)

	_, err = svc.Delete(context.Background(), admin.ID.Hex(), created.ID)
	assert.Equal(t, apierror.NotFound, kindOf(t, err))
}
