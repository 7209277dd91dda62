package main

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/calmliming/menuflow/internal/orders"
)

// OrderGetter loads a persisted order; implemented by *orders.Store.
type OrderGetter interface {
	Get(ctx context.Context, id primitive.ObjectID) (*orders.Order, error)
}

// TicketSender delivers a kitchen ticket; implemented by *notify.KitchenNotifier.
type TicketSender interface {
	SendTicket(ctx context.Context, o orders.Order) (int, error)
}
