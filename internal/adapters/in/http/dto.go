package http

import (
	"time"

	"tawsil/internal/core/application/usecases/queries"
)

// Error is the JSON error body every failing endpoint returns.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Item is one order line item on the wire.
type Item struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// OrderRequest is the payload for creating or editing an order.
type OrderRequest struct {
	CustomerName  string    `json:"customerName"`
	Location      string    `json:"location"`
	MapLink       string    `json:"mapLink"`
	DeliveryTime  time.Time `json:"deliveryTime"`
	ReceiverName  string    `json:"receiverName"`
	ReceiverPhone string    `json:"receiverPhone"`
	Note          string    `json:"note,omitempty"`
	Items         []Item    `json:"items,omitempty"`
}

// UpdateOrderRequest is the payload for PUT /orders/:id. A courier sends a
// status and optionally a note; a manager sends replacement details. The
// presence of the status or courierNote field selects the transition path.
type UpdateOrderRequest struct {
	Status      *string `json:"status,omitempty"`
	CourierNote *string `json:"courierNote,omitempty"`

	OrderRequest
}

// Order is the JSON shape of an order in every listing and single read.
type Order struct {
	ID             string     `json:"id"`
	UserEmail      string     `json:"userEmail"`
	CustomerName   string     `json:"customerName"`
	Location       string     `json:"location"`
	MapLink        string     `json:"mapLink"`
	DeliveryTime   time.Time  `json:"deliveryTime"`
	ReceiverName   string     `json:"receiverName"`
	ReceiverPhone  string     `json:"receiverPhone"`
	Note           string     `json:"note,omitempty"`
	Items          []Item     `json:"items,omitempty"`
	Status         string     `json:"status"`
	DeliveryPerson *string    `json:"deliveryPerson,omitempty"`
	StartedAt      *time.Time `json:"startedAt,omitempty"`
	EndedAt        *time.Time `json:"endedAt,omitempty"`
	CourierNote    string     `json:"courierNote,omitempty"`
	IsDeleted      bool       `json:"isDeleted,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
}

// OrderPage is the paged listing envelope.
type OrderPage struct {
	Orders  []Order `json:"orders"`
	Total   int64   `json:"total"`
	HasMore bool    `json:"hasMore"`
}

// User is the JSON shape of a user directory entry.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name,omitempty"`
	Image     string    `json:"image,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// SetRoleRequest is the payload for the one-shot role self-assignment.
type SetRoleRequest struct {
	Role string `json:"role"`
}

// AssignRoleRequest is the payload for an admin changing a user's role.
type AssignRoleRequest struct {
	Role string `json:"role"`
}

// LocationRequest is the payload for creating or editing a destination template.
type LocationRequest struct {
	Name    string `json:"name"`
	MapLink string `json:"mapLink"`
}

// Location is the JSON shape of a destination template.
type Location struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	MapLink   string    `json:"mapLink"`
	CreatedAt time.Time `json:"createdAt"`
}

func orderFromResponse(resp queries.OrderResponse) Order {
	items := make([]Item, 0, len(resp.Items))
	for _, item := range resp.Items {
		items = append(items, Item{Name: item.Name, Quantity: item.Quantity})
	}

	return Order{
		ID:             resp.ID.String(),
		UserEmail:      resp.UserEmail,
		CustomerName:   resp.CustomerName,
		Location:       resp.Location,
		MapLink:        resp.MapLink,
		DeliveryTime:   resp.DeliveryTime,
		ReceiverName:   resp.ReceiverName,
		ReceiverPhone:  resp.ReceiverPhone,
		Note:           resp.Note,
		Items:          items,
		Status:         resp.Status,
		DeliveryPerson: resp.DeliveryPerson,
		StartedAt:      resp.StartedAt,
		EndedAt:        resp.EndedAt,
		CourierNote:    resp.CourierNote,
		IsDeleted:      resp.IsDeleted,
		CreatedAt:      resp.CreatedAt,
	}
}

func ordersFromResponses(resps []queries.OrderResponse) []Order {
	orders := make([]Order, 0, len(resps))
	for _, resp := range resps {
		orders = append(orders, orderFromResponse(resp))
	}
	return orders
}
