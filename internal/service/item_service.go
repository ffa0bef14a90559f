package service

import (
	"context"
	"encoding/json"
	"time"

	"comanda/internal/apierror"
	"comanda/internal/dto"
	"comanda/internal/model"
	"comanda/internal/policy"
	"comanda/internal/repository"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	menuCacheTTL     = 4 * time.Hour
	menuListCacheKey = "menu:items"
	menuItemCacheKey = "menu:item:"
)

// ItemService covers the menu: public reads (cached) and admin-only writes.
type ItemService interface {
	List(ctx context.Context) ([]dto.ItemResponse, error)
	Get(ctx context.Context, id string) (*dto.ItemResponse, error)
	Create(ctx context.Context, actorID string, req dto.CreateItemRequest) (*dto.ItemResponse, error)
	Update(ctx context.Context, actorID, id string, req dto.UpdateItemRequest) (*dto.ItemResponse, error)
	Delete(ctx context.Context, actorID, id string) (*dto.ItemResponse, error)
}

type itemService struct {
	repo      repository.ItemRepository
	employees repository.EmployeeRepository
	rdb       *redis.Client
}

// NewItemService wires the menu service. rdb may be nil (unit tests); the
// cache is best-effort and never fails a request.
func NewItemService(repo repository.ItemRepository, employees repository.EmployeeRepository, rdb *redis.Client) ItemService {
	return &itemService{repo: repo, employees: employees, rdb: rdb}
}

func mapItem(i *model.Item) *dto.ItemResponse {
	return &dto.ItemResponse{
		ID:          i.ID.Hex(),
		Name:        i.Name,
		Description: i.Description,
		Price:       i.Price,
		Image:       i.Image,
	}
}

// validateItem is the corrected contract: reject when any required field is
// missing or the price is negative. The system this replaces only rejected
// when every field was blank at once, accepting most partially-invalid input.
func validateItem(name, description string, price float64, image string) *apierror.Error {
	if name == "" || description == "" || image == "" || price < 0 {
		return apierror.New(apierror.InvalidInput,
			"The name, description and image can't be blank and the price can't be negative")
	}
	return nil
}

func (s *itemService) List(ctx context.Context) ([]dto.ItemResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, menuListCacheKey).Bytes(); err == nil {
			var resp []dto.ItemResponse
			if json.Unmarshal(cached, &resp) == nil {
				return resp, nil
			}
		}
	}

	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ItemResponse, 0, len(items))
	for i := range items {
		resp = append(resp, *mapItem(&items[i]))
	}

	if s.rdb != nil {
		if b, err := json.Marshal(resp); err == nil {
			_ = s.rdb.Set(ctx, menuListCacheKey, b, menuCacheTTL).Err()
		}
	}
	return resp, nil
}

func (s *itemService) Get(ctx context.Context, id string) (*dto.ItemResponse, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apierror.New(apierror.InvalidInput, "The id is not valid")
	}

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, menuItemCacheKey+id).Bytes(); err == nil {
			var resp dto.ItemResponse
			if json.Unmarshal(cached, &resp) == nil {
				return &resp, nil
			}
		}
	}

	item, err := s.repo.FindByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apierror.New(apierror.NotFound, "The item with id "+id+" doesn't exist")
	}
	resp := mapItem(item)

	if s.rdb != nil {
		if b, err := json.Marshal(resp); err == nil {
			_ = s.rdb.Set(ctx, menuItemCacheKey+id, b, menuCacheTTL).Err()
		}
	}
	return resp, nil
}

func (s *itemService) Create(ctx context.Context, actorID string, req dto.CreateItemRequest) (*dto.ItemResponse, error) {
	actor, err := resolveActor(ctx, s.employees, actorID)
	if err != nil {
		return nil, err
	}
	if denied := policy.Authorize(actor, policy.CreateItem, nil); denied != nil {
		return nil, denied
	}
	if err := validateItem(req.Name, req.Description, req.Price, req.Image); err != nil {
		return nil, err
	}

	item := &model.Item{
		ID:          primitive.NewObjectID(),
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
	}
	ok, err := s.repo.Insert(ctx, item)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apierror.New(apierror.Storage, "Internal server error")
	}
	s.invalidate(ctx, item.ID.Hex())
	return mapItem(item), nil
}

func (s *itemService) Update(ctx context.Context, actorID, id string, req dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	actor, err := resolveActor(ctx, s.employees, actorID)
	if err != nil {
		return nil, err
	}
	if denied := policy.Authorize(actor, policy.UpdateItem, nil); denied != nil {
		return nil, denied
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apierror.New(apierror.InvalidInput, "The id is not valid")
	}

	existing, err := s.repo.FindByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apierror.New(apierror.NotFound, "The item doesn't exist")
	}
	if err := validateItem(req.Name, req.Description, req.Price, req.Image); err != nil {
		return nil, err
	}

	item := &model.Item{
		ID:          oid,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
	}
	ok, err := s.repo.Update(ctx, item)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apierror.New(apierror.Storage, "Internal server error")
	}
	s.invalidate(ctx, id)
	return mapItem(item), nil
}

func (s *itemService) Delete(ctx context.Context, actorID, id string) (*dto.ItemResponse, error) {
	actor, err := resolveActor(ctx, s.employees, actorID)
	if err != nil {
		return nil, err
	}
	if denied := policy.Authorize(actor, policy.DeleteItem, nil); denied != nil {
		return nil, denied
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apierror.New(apierror.InvalidInput, "The id is not valid")
	}

	existing, err := s.repo.FindByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apierror.New(apierror.NotFound, "The item doesn't exist")
	}

	ok, err := s.repo.Delete(ctx, oid)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apierror.New(apierror.Storage, "Internal server error")
	}
	s.invalidate(ctx, id)
	// Echo the pre-deletion snapshot.
	return mapItem(existing), nil
}

// invalidate drops the cached menu entries touched by a write. Best effort.
func (s *itemService) invalidate(ctx context.Context, id string) {
	if s.rdb == nil {
		return
	}
	_ = s.rdb.Del(ctx, menuListCacheKey, menuItemCacheKey+id).Err()
}
