package orders

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/calmliming/menuflow/internal/apperr"
	"github.com/calmliming/menuflow/internal/logging"
	"github.com/calmliming/menuflow/internal/menu"
)

// MenuResolver looks up dishes that can currently be ordered.
type MenuResolver interface {
	ActiveByIDs(ctx context.Context, ids []primitive.ObjectID) ([]menu.Item, error)
}

// Repository persists and reads orders.
type Repository interface {
	Insert(ctx context.Context, o Order) error
	Get(ctx context.Context, id primitive.ObjectID) (*Order, error)
	ListRecent(ctx context.Context, limit int64) ([]Order, error)
}

// Observer is told about every persisted order. Failures are logged and
// never affect the checkout.
type Observer interface {
	OrderPlaced(ctx context.Context, ev PlacedEvent) error
}

// Service implements order intake.
type Service struct {
	menu      MenuResolver
	repo      Repository
	observers []Observer
	nowFunc   func() time.Time
}

func NewService(resolver MenuResolver, repo Repository, observers ...Observer) *Service {
	return &Service{
		menu:      resolver,
		repo:      repo,
		observers: observers,
		nowFunc:   time.Now,
	}
}

// Place validates the cart against the live menu, prices it server-side and
// stores the order. The whole order is rejected if any dish is missing or
// inactive.
func (s *Service) Place(ctx context.Context, lines []CartLine, note string) (*Order, error) {
	if len(lines) == 0 {
		return nil, apperr.Validation("select at least one dish")
	}

	cart := Aggregate(lines)
	if cart.Len() == 0 {
		return nil, apperr.Validation("invalid dish parameters")
	}

	dishes, err := s.menu.ActiveByIDs(ctx, cart.IDs)
	if err != nil {
		return nil, apperr.Internal("resolve dishes", err)
	}
	if len(dishes) != cart.Len() {
		return nil, apperr.Validation("cart contains missing or unavailable dishes")
	}

	byID := make(map[string]menu.Item, len(dishes))
	for _, d := range dishes {
		byID[d.ID] = d
	}

	items := make([]LineItem, 0, cart.Len())
	var total float64
	for _, id := range cart.IDs {
		d, ok := byID[id.Hex()]
		if !ok {
			return nil, apperr.Validation("cart contains missing or unavailable dishes")
		}
		qty := cart.Quantities[id]
		subtotal := d.Price * float64(qty)
		total += subtotal
		items = append(items, LineItem{
			MenuItemID: d.ID,
			Name:       d.Name,
			Price:      d.Price,
			Quantity:   qty,
			Subtotal:   subtotal,
			CategoryID: d.CategoryID,
		})
	}

	order := Order{
		ID:         primitive.NewObjectID(),
		Items:      items,
		TotalPrice: total,
		Note:       strings.TrimSpace(note),
		Status:     StatusNew,
		CreatedAt:  s.nowFunc().UTC(),
	}
	if err := s.repo.Insert(ctx, order); err != nil {
		return nil, apperr.Internal("save order", err)
	}

	s.notify(ctx, order)
	return &order, nil
}

// Recent returns the newest orders.
func (s *Service) Recent(ctx context.Context) ([]Order, error) {
	list, err := s.repo.ListRecent(ctx, RecentLimit)
	if err != nil {
		return nil, apperr.Internal("list orders", err)
	}
	return list, nil
}

// Get returns one order.
func (s *Service) Get(ctx context.Context, id primitive.ObjectID) (*Order, error) {
	o, err := s.repo.Get(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil, apperr.NotFound("order not found")
	}
	if err != nil {
		return nil, apperr.Internal("get order", err)
	}
	return o, nil
}

func (s *Service) notify(ctx context.Context, o Order) {
	if len(s.observers) == 0 {
		return
	}
	ev := NewPlacedEvent(o, logging.RequestID(ctx))
	for _, obs := range s.observers {
		if err := obs.OrderPlaced(ctx, ev); err != nil {
			slog.WarnContext(ctx, "order observer failed", "order_id", ev.OrderID, "error", err)
		}
	}
}

// NewPlacedEvent summarises o for downstream consumers.
func NewPlacedEvent(o Order, requestID string) PlacedEvent {
	count := 0
	for _, it := range o.Items {
		count += it.Quantity
	}
	return PlacedEvent{
		OrderID:    o.ID.Hex(),
		TotalPrice: o.TotalPrice,
		ItemCount:  count,
		CreatedAt:  o.CreatedAt,
		RequestID:  requestID,
	}
}
