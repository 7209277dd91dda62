package menu

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/calmliming/menuflow/internal/cache"
	"github.com/calmliming/menuflow/internal/catalog"
	"github.com/calmliming/menuflow/internal/mongodb"
)

var (
	ErrNotFound  = errors.New("menu item not found")
	ErrInvalidID = errors.New("invalid menu item id")
)

// Store encapsulates operations on the menuItems collection.
type Store struct {
	coll     *mongo.Collection
	cache    cache.Cache
	cacheTTL time.Duration
	nowFunc  func() time.Time
	seeded   atomic.Bool // set once per process; an emptied menu is not re-seeded until restart
}

// NewStore creates a menu Store. c may be nil to disable list caching.
func NewStore(db *mongo.Database, c cache.Cache, cacheTTL time.Duration) *Store {
	return &Store{
		coll:     db.Collection(mongodb.MenuItems),
		cache:    c,
		cacheTTL: cacheTTL,
		nowFunc:  time.Now,
	}
}

// EnsureSeeded inserts the initial menu the first time the collection is
// observed empty. Once a non-empty collection has been seen it does nothing.
func (s *Store) EnsureSeeded(ctx context.Context) error {
	if s.seeded.Load() {
		return nil
	}

	count, err := s.coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return fmt.Errorf("count menu items: %w", err)
	}
	if count > 0 {
		s.seeded.Store(true)
		return nil
	}

	now := s.nowFunc().UTC()
	dishes := catalog.SeedDishes()
	docs := make([]interface{}, 0, len(dishes))
	for _, d := range dishes {
		docs = append(docs, itemDoc{
			Name:       d.Name,
			Price:      d.Price,
			CategoryID: d.CategoryID,
			Img:        d.Img,
			Desc:       d.Desc,
			IsActive:   true,
			CreatedAt:  now,
			UpdatedAt:  now,
		})
	}
	if _, err := s.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("seed menu items: %w", err)
	}

	s.seeded.Store(true)
	s.invalidate(ctx)
	slog.InfoContext(ctx, "seeded menu items", "count", len(docs))
	return nil
}

// List returns dishes sorted by category then creation time. Inactive dishes
// are included only when includeInactive is set.
func (s *Store) List(ctx context.Context, includeInactive bool) ([]Item, error) {
	key := s.listKey(includeInactive)
	if items, ok := s.cachedList(ctx, key); ok {
		return items, nil
	}

	filter := bson.D{}
	if !includeInactive {
		filter = bson.D{{Key: "isActive", Value: true}}
	}
	opts := options.Find().SetSort(bson.D{{Key: "categoryId", Value: 1}, {Key: "createdAt", Value: 1}})

	items, err := s.find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	s.storeList(ctx, key, items)
	return items, nil
}

// Get fetches one dish by id.
func (s *Store) Get(ctx context.Context, id primitive.ObjectID) (*Item, error) {
	var doc itemDoc
	err := s.coll.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find menu item: %w", err)
	}
	item := doc.toItem()
	return &item, nil
}

// Create inserts a new dish with fresh timestamps.
func (s *Store) Create(ctx context.Context, in Input) (*Item, error) {
	now := s.nowFunc().UTC()
	doc := itemDoc{
		ID:         primitive.NewObjectID(),
		Name:       in.Name,
		Price:      in.Price,
		CategoryID: in.CategoryID,
		Img:        in.Img,
		Desc:       in.Desc,
		IsActive:   in.IsActive,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if _, err := s.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert menu item: %w", err)
	}

	s.invalidate(ctx)
	item := doc.toItem()
	return &item, nil
}

// Update applies the supplied fields and refreshes updatedAt.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, p Patch) (*Item, error) {
	set := bson.D{}
	if p.Name != nil {
		set = append(set, bson.E{Key: "name", Value: *p.Name})
	}
	if p.Price != nil {
		set = append(set, bson.E{Key: "price", Value: *p.Price})
	}
	if p.CategoryID != nil {
		set = append(set, bson.E{Key: "categoryId", Value: *p.CategoryID})
	}
	if p.Img != nil {
		set = append(set, bson.E{Key: "img", Value: *p.Img})
	}
	if p.Desc != nil {
		set = append(set, bson.E{Key: "desc", Value: *p.Desc})
	}
	if p.IsActive != nil {
		set = append(set, bson.E{Key: "isActive", Value: *p.IsActive})
	}
	set = append(set, bson.E{Key: "updatedAt", Value: s.nowFunc().UTC()})

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc itemDoc
	err := s.coll.FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: id}}, bson.D{{Key: "$set", Value: set}}, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update menu item: %w", err)
	}

	s.invalidate(ctx)
	item := doc.toItem()
	return &item, nil
}

// Delete removes a dish by its hex ObjectID, falling back to records whose
// _id was stored as a plain string.
func (s *Store) Delete(ctx context.Context, rawID string) error {
	id := strings.TrimSpace(rawID)
	if id == "" {
		return ErrInvalidID
	}

	var deleted int64
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		res, err := s.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
		if err != nil {
			return fmt.Errorf("delete menu item: %w", err)
		}
		deleted = res.DeletedCount
	}

	if deleted == 0 {
		ok, err := s.deleteLegacyStringID(ctx, id)
		if err != nil {
			return err
		}
		if !ok {
			return ErrNotFound
		}
	}

	s.invalidate(ctx)
	return nil
}

// ActiveByIDs returns the currently active dishes among ids. Missing or
// inactive ids are simply absent from the result.
func (s *Store) ActiveByIDs(ctx context.Context, ids []primitive.ObjectID) ([]Item, error) {
	if len(ids) == 0 {
		return []Item{}, nil
	}
	filter := bson.D{
		{Key: "_id", Value: bson.D{{Key: "$in", Value: ids}}},
		{Key: "isActive", Value: true},
	}
	return s.find(ctx, filter, options.Find())
}

func (s *Store) find(ctx context.Context, filter bson.D, opts *options.FindOptions) ([]Item, error) {
	cur, err := s.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find menu items: %w", err)
	}
	var docs []itemDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode menu items: %w", err)
	}

	items := make([]Item, 0, len(docs))
	for _, d := range docs {
		items = append(items, d.toItem())
	}
	return items, nil
}

func (s *Store) listKey(includeInactive bool) string {
	if s.cache == nil {
		return ""
	}
	if includeInactive {
		return s.cache.Key("menu", "list", "all")
	}
	return s.cache.Key("menu", "list", "active")
}

func (s *Store) cachedList(ctx context.Context, key string) ([]Item, bool) {
	if s.cache == nil {
		return nil, false
	}
	raw, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		slog.WarnContext(ctx, "menu cache read failed", "key", key, "error", err)
		return nil, false
	}
	if !ok {
		return nil, false
	}
	var items []Item
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		slog.WarnContext(ctx, "menu cache entry corrupt", "key", key, "error", err)
		return nil, false
	}
	return items, true
}

func (s *Store) storeList(ctx context.Context, key string, items []Item) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, string(raw), s.cacheTTL); err != nil {
		slog.WarnContext(ctx, "menu cache write failed", "key", key, "error", err)
	}
}

func (s *Store) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, s.listKey(false), s.listKey(true)); err != nil {
		slog.WarnContext(ctx, "menu cache invalidation failed", "error", err)
	}
}
