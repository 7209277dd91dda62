package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names.
const (
	MenuItems = "menuItems"
	Orders    = "orders"
	Posts     = "posts"
)

const connectTimeout = 10 * time.Second

// Client owns the process-wide MongoDB connection. Construct it once at
// startup with Connect and release it with Close on shutdown.
type Client struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect dials uri, verifies the connection with a ping, and binds dbName.
func Connect(ctx context.Context, uri, dbName string) (*Client, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	c, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := c.Ping(ctx, readpref.Primary()); err != nil {
		_ = c.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	return &Client{client: c, db: c.Database(dbName)}, nil
}

// Database returns the bound database handle.
func (c *Client) Database() *mongo.Database { return c.db }

// Ping checks the primary is reachable.
func (c *Client) Ping(ctx context.Context) error {
	return c.client.Ping(ctx, readpref.Primary())
}

// Close disconnects the client.
func (c *Client) Close(ctx context.Context) error {
	if err := c.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("disconnect mongo: %w", err)
	}
	return nil
}

// EnsureIndexes creates the indexes backing the list queries.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	specs := map[string][]mongo.IndexModel{
		MenuItems: {
			{Keys: bson.D{{Key: "categoryId", Value: 1}, {Key: "createdAt", Value: 1}}},
			{Keys: bson.D{{Key: "isActive", Value: 1}}},
		},
		Orders: {
			{Keys: bson.D{{Key: "createdAt", Value: -1}}},
		},
		Posts: {
			{Keys: bson.D{{Key: "createdAt", Value: -1}}},
		},
	}
	for coll, models := range specs {
		if _, err := db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("create indexes on %s: %w", coll, err)
		}
	}
	return nil
}
