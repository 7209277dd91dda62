package posts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/calmliming/menuflow/internal/mongodb"
)

var ErrNotFound = errors.New("post not found")

// Post is a blog entry.
type Post struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id"`
	Title     string             `json:"title" bson:"title"`
	Content   string             `json:"content" bson:"content"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}

// Store encapsulates operations on the posts collection.
type Store struct {
	coll    *mongo.Collection
	nowFunc func() time.Time
}

func NewStore(db *mongo.Database) *Store {
	return &Store{
		coll:    db.Collection(mongodb.Posts),
		nowFunc: time.Now,
	}
}

// List returns every post, newest first.
func (s *Store) List(ctx context.Context) ([]Post, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := s.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find posts: %w", err)
	}
	list := []Post{}
	if err := cur.All(ctx, &list); err != nil {
		return nil, fmt.Errorf("decode posts: %w", err)
	}
	return list, nil
}

func (s *Store) Get(ctx context.Context, id primitive.ObjectID) (*Post, error) {
	var p Post
	err := s.coll.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find post: %w", err)
	}
	return &p, nil
}

func (s *Store) Create(ctx context.Context, title, content string) (*Post, error) {
	p := Post{
		ID:        primitive.NewObjectID(),
		Title:     title,
		Content:   content,
		CreatedAt: s.nowFunc().UTC(),
	}
	if _, err := s.coll.InsertOne(ctx, p); err != nil {
		return nil, fmt.Errorf("insert post: %w", err)
	}
	return &p, nil
}

// Update replaces title and content. Submitting unchanged content succeeds.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, title, content string) (*Post, error) {
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "title", Value: title},
		{Key: "content", Value: content},
	}}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var p Post
	err := s.coll.FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: id}}, update, opts).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update post: %w", err)
	}
	return &p, nil
}

func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
