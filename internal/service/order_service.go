package service

import (
	"context"
	"fmt"

	"comanda/internal/apierror"
	"comanda/internal/dto"
	"comanda/internal/model"
	"comanda/internal/policy"
	"comanda/internal/repository"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderService covers the order lifecycle: waiter-owned creation and edits,
// chef-toggled completion, public reads.
type OrderService interface {
	List(ctx context.Context) ([]dto.OrderResponse, error)
	Get(ctx context.Context, id string) (*dto.OrderResponse, error)
	WhoServed(ctx context.Context, id string) (*dto.EmployeeResponse, error)
	Create(ctx context.Context, actorID string, req dto.CreateOrderRequest) (*dto.OrderResponse, error)
	Update(ctx context.Context, actorID, id string, req dto.UpdateOrderRequest) (*dto.OrderResponse, error)
	Delete(ctx context.Context, actorID, id string) (*dto.OrderResponse, error)
	Complete(ctx context.Context, actorID, id string) (*dto.OrderResponse, error)
}

type orderService struct {
	repo      repository.OrderRepository
	employees repository.EmployeeRepository
}

func NewOrderService(repo repository.OrderRepository, employees repository.EmployeeRepository) OrderService {
	return &orderService{repo: repo, employees: employees}
}

func mapOrder(o *model.Order) *dto.OrderResponse {
	items := make([]dto.ItemResponse, 0, len(o.Items))
	for i := range o.Items {
		items = append(items, *mapItem(&o.Items[i]))
	}
	return &dto.OrderResponse{
		ID:        o.ID.Hex(),
		Items:     items,
		Total:     o.Total,
		Completed: o.Completed,
	}
}

// snapshotItems copies the submitted payloads into order-owned item
// snapshots. Payload ids that are not well-formed get a fresh id; the
// snapshot is decoupled from the catalog either way.
func snapshotItems(payloads []dto.OrderItemPayload) []model.Item {
	items := make([]model.Item, 0, len(payloads))
	for _, p := range payloads {
		id, err := primitive.ObjectIDFromHex(p.ID)
		if err != nil {
			id = primitive.NewObjectID()
		}
		items = append(items, model.Item{
			ID:          id,
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price,
			Image:       p.Image,
		})
	}
	return items
}

// sumPrices derives the order total from its snapshots. Summed through
// decimal so repeated float additions don't drift.
func sumPrices(items []model.Item) float64 {
	total := decimal.Zero
	for i := range items {
		total = total.Add(decimal.NewFromFloat(items[i].Price))
	}
	f, _ := total.Float64()
	return f
}

func (s *orderService) List(ctx context.Context) ([]dto.OrderResponse, error) {
	orders, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		resp = append(resp, *mapOrder(&orders[i]))
	}
	return resp, nil
}

func (s *orderService) Get(ctx context.Context, id string) (*dto.OrderResponse, error) {
	order, err := s.findOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	return mapOrder(order), nil
}

func (s *orderService) WhoServed(ctx context.Context, id string) (*dto.EmployeeResponse, error) {
	order, err := s.findOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	// ServedBy may dangle: deleting an employee leaves their historical
	// orders untouched.
	employee, err := s.employees.FindByID(ctx, order.ServedBy)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, apierror.New(apierror.NotFound,
			fmt.Sprintf("The employee with id %s doesn't exist", order.ServedBy.Hex()))
	}
	return mapEmployee(employee), nil
}

func (s *orderService) Create(ctx context.Context, actorID string, req dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	actor, err := resolveActor(ctx, s.employees, actorID)
	if err != nil {
		return nil, err
	}
	if denied := policy.Authorize(actor, policy.CreateOrder, nil); denied != nil {
		return nil, denied
	}
	if len(req.Items) == 0 {
		return nil, apierror.New(apierror.Conflict, "The items can't be empty")
	}

	items := snapshotItems(req.Items)
	order := &model.Order{
		ID:       primitive.NewObjectID(),
		Items:    items,
		Total:    sumPrices(items),
		ServedBy: actor.ID,
	}
	ok, err := s.repo.Insert(ctx, order)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apierror.New(apierror.Storage, "Internal server error")
	}
	return mapOrder(order), nil
}

func (s *orderService) Update(ctx context.Context, actorID, id string, req dto.UpdateOrderRequest) (*dto.OrderResponse, error) {
	actor, err := resolveActor(ctx, s.employees, actorID)
	if err != nil {
		return nil, err
	}
	original, err := s.authorizeOrder(ctx, actor, policy.UpdateOrder, id)
	if err != nil {
		return nil, err
	}
	if len(req.Items) == 0 {
		return nil, apierror.New(apierror.Conflict, "The items can't be empty")
	}

	items := snapshotItems(req.Items)
	// An update always un-completes the order: changed contents mean
	// pending work for the kitchen again.
	order := &model.Order{
		ID:        original.ID,
		Items:     items,
		Total:     sumPrices(items),
		ServedBy:  original.ServedBy,
		Completed: false,
	}
	ok, err := s.repo.Update(ctx, order)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apierror.New(apierror.Storage, "Internal server error")
	}
	return mapOrder(order), nil
}

func (s *orderService) Delete(ctx context.Context, actorID, id string) (*dto.OrderResponse, error) {
	actor, err := resolveActor(ctx, s.employees, actorID)
	if err != nil {
		return nil, err
	}
	original, err := s.authorizeOrder(ctx, actor, policy.DeleteOrder, id)
	if err != nil {
		return nil, err
	}

	ok, err := s.repo.Delete(ctx, original.ID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apierror.New(apierror.Storage, "Internal server error")
	}
	return mapOrder(original), nil
}

func (s *orderService) Complete(ctx context.Context, actorID, id string) (*dto.OrderResponse, error) {
	actor, err := resolveActor(ctx, s.employees, actorID)
	if err != nil {
		return nil, err
	}
	if denied := policy.Authorize(actor, policy.CompleteOrder, nil); denied != nil {
		return nil, denied
	}
	order, err := s.findOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	// A toggle, not a set: completing twice returns the order to incomplete.
	order.Completed = !order.Completed
	ok, err := s.repo.Update(ctx, order)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apierror.New(apierror.Storage, "Internal server error")
	}
	return mapOrder(order), nil
}

// findOrder validates id well-formedness before querying, so malformed ids
// surface as a client error distinct from not-found.
func (s *orderService) findOrder(ctx context.Context, id string) (*model.Order, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apierror.New(apierror.InvalidInput, "The id is not valid")
	}
	order, err := s.repo.FindByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apierror.New(apierror.NotFound, fmt.Sprintf("The order with id %s doesn't exist", id))
	}
	return order, nil
}

// authorizeOrder runs the role gate, loads the order, then re-runs the policy
// with the order as target for the state and ownership checks.
func (s *orderService) authorizeOrder(ctx context.Context, actor *model.Employee, action policy.Action, id string) (*model.Order, error) {
	if denied := policy.Authorize(actor, action, nil); denied != nil {
		return nil, denied
	}
	order, err := s.findOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	target := &policy.OrderTarget{ServedBy: order.ServedBy.Hex(), Completed: order.Completed}
	if denied := policy.Authorize(actor, action, target); denied != nil {
		return nil, denied
	}
	return order, nil
}
