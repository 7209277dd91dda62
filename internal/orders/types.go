package orders

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order statuses
const (
	StatusNew     = "new"
	StatusCooking = "cooking"
	StatusDone    = "done"
)

// RecentLimit caps the order listing.
const RecentLimit = 50

// Order is an immutable snapshot of a checkout. Line items carry their own
// copy of the dish name and price at the time of ordering.
type Order struct {
	ID         primitive.ObjectID `json:"id" bson:"_id"`
	Items      []LineItem         `json:"items" bson:"items"`
	TotalPrice float64            `json:"totalPrice" bson:"totalPrice"`
	Note       string             `json:"note" bson:"note,omitempty"`
	Status     string             `json:"status" bson:"status,omitempty"`
	CreatedAt  time.Time          `json:"createdAt" bson:"createdAt"`
}

type LineItem struct {
	MenuItemID string  `json:"menuItemId" bson:"menuItemId"`
	Name       string  `json:"name" bson:"name"`
	Price      float64 `json:"price" bson:"price"`
	Quantity   int     `json:"quantity" bson:"quantity"`
	Subtotal   float64 `json:"subtotal" bson:"subtotal"`
	CategoryID string  `json:"categoryId" bson:"categoryId"`
}

// CartLine is one client-submitted cart entry before normalisation.
// Quantity stays a float so fractional input can be detected and dropped.
type CartLine struct {
	MenuItemID string
	Quantity   float64
}

// PlacedEvent is published after an order has been persisted.
type PlacedEvent struct {
	OrderID    string    `json:"orderId"`
	TotalPrice float64   `json:"totalPrice"`
	ItemCount  int       `json:"itemCount"`
	CreatedAt  time.Time `json:"createdAt"`
	RequestID  string    `json:"requestId,omitempty"`
}

// withDefaults fills fields that older documents may lack.
func (o Order) withDefaults() Order {
	if o.Status == "" {
		o.Status = StatusNew
	}
	if o.Items == nil {
		o.Items = []LineItem{}
	}
	return o
}
