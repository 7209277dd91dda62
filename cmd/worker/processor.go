package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/aws/aws-lambda-go/events"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/calmliming/menuflow/internal/logging"
	"github.com/calmliming/menuflow/internal/orders"
)

// Processor turns order.placed messages into kitchen tickets. Orders are
// read, never written.
type Processor struct {
	orders  OrderGetter
	tickets TicketSender
}

// NewProcessor creates a new worker processor with its dependencies injected.
func NewProcessor(store OrderGetter, tickets TicketSender) *Processor {
	return &Processor{orders: store, tickets: tickets}
}

// Handle receives an SQS batch event and processes each message.
// The first failure fails the batch so Lambda retries it and eventually
// moves it to the DLQ.
func (p *Processor) Handle(ctx context.Context, ev events.SQSEvent) error {
	slog.InfoContext(ctx, "received sqs batch", "records", len(ev.Records))
	for _, rec := range ev.Records {
		if err := p.processMessage(ctx, rec); err != nil {
			slog.ErrorContext(ctx, "worker error", "message_id", rec.MessageId, "error", err)
			return err
		}
	}
	return nil
}

func (p *Processor) processMessage(ctx context.Context, rec events.SQSMessage) error {
	var msg orders.PlacedEvent
	if err := json.Unmarshal([]byte(rec.Body), &msg); err != nil {
		return fmt.Errorf("invalid message body: %w", err)
	}
	if msg.RequestID != "" {
		ctx = logging.WithRequestID(ctx, msg.RequestID)
	}

	id, err := primitive.ObjectIDFromHex(msg.OrderID)
	if err != nil {
		return fmt.Errorf("invalid order id %q: %w", msg.OrderID, err)
	}

	order, err := p.orders.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to fetch order %s: %w", msg.OrderID, err)
	}

	messageID, err := p.tickets.SendTicket(ctx, *order)
	if err != nil {
		return err
	}

	slog.InfoContext(ctx, "kitchen ticket sent",
		"order_id", msg.OrderID,
		"items", len(order.Items),
		"telegram_message_id", messageID,
	)
	return nil
}
