package dto

// OrderItemPayload is the item snapshot a waiter submits with an order. The
// fields are copied into the order verbatim; the catalog is not consulted, so
// later menu edits never rewrite past orders.
type OrderItemPayload struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
}

type CreateOrderRequest struct {
	Items []OrderItemPayload `json:"items"`
}

type UpdateOrderRequest struct {
	Items []OrderItemPayload `json:"items"`
}

// OrderResponse echoes the snapshotted items and the derived total. Total is
// computed server-side on every write and is never taken from the caller.
type OrderResponse struct {
	ID        string         `json:"id"`
	Items     []ItemResponse `json:"items"`
	Total     float64        `json:"total"`
	Completed bool           `json:"completed"`
}
