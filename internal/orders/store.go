package orders

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/calmliming/menuflow/internal/mongodb"
)

var ErrNotFound = errors.New("order not found")

// Store encapsulates operations on the orders collection.
type Store struct {
	coll *mongo.Collection
}

// NewStore creates a new orders Store.
func NewStore(db *mongo.Database) *Store {
	return &Store{coll: db.Collection(mongodb.Orders)}
}

// Insert persists a new order snapshot.
func (s *Store) Insert(ctx context.Context, o Order) error {
	if _, err := s.coll.InsertOne(ctx, o); err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// Get fetches an order by id. Returns ErrNotFound if it does not exist.
func (s *Store) Get(ctx context.Context, id primitive.ObjectID) (*Order, error) {
	var o Order
	err := s.coll.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&o)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find order: %w", err)
	}
	o = o.withDefaults()
	return &o, nil
}

// ListRecent returns up to limit orders, newest first.
func (s *Store) ListRecent(ctx context.Context, limit int64) ([]Order, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit)

	cur, err := s.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find orders: %w", err)
	}
	var list []Order
	if err := cur.All(ctx, &list); err != nil {
		return nil, fmt.Errorf("decode orders: %w", err)
	}

	out := make([]Order, 0, len(list))
	for _, o := range list {
		out = append(out, o.withDefaults())
	}
	return out, nil
}
