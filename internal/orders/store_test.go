package orders

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

const ordersNS = "myBlog.orders"

func TestStore_Insert(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("success", func(mt *mtest.T) {
		s := NewStore(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		err := s.Insert(context.Background(), Order{
			ID:         primitive.NewObjectID(),
			Items:      []LineItem{{MenuItemID: primitive.NewObjectID().Hex(), Name: "a", Price: 1, Quantity: 1, Subtotal: 1}},
			TotalPrice: 1,
			Status:     StatusNew,
			CreatedAt:  time.Now(),
		})
		if err != nil {
			mt.Fatalf("unexpected error: %v", err)
		}
	})

	mt.Run("failure is wrapped", func(mt *mtest.T) {
		s := NewStore(mt.DB)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 91, Message: "shutting down", Name: "ShutdownInProgress"}))

		if err := s.Insert(context.Background(), Order{ID: primitive.NewObjectID()}); err == nil {
			mt.Fatal("expected error")
		}
	})
}

func TestStore_ListRecent_FillsDefaults(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("legacy documents without note and status", func(mt *mtest.T) {
		s := NewStore(mt.DB)
		newer := primitive.NewObjectID()
		older := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ordersNS, mtest.FirstBatch,
			bson.D{
				{Key: "_id", Value: newer},
				{Key: "items", Value: bson.A{}},
				{Key: "totalPrice", Value: 38.0},
				{Key: "note", Value: "no cilantro"},
				{Key: "status", Value: StatusCooking},
				{Key: "createdAt", Value: time.Date(2026, 10, 2, 0, 0, 0, 0, time.UTC)},
			},
			bson.D{
				{Key: "_id", Value: older},
				{Key: "totalPrice", Value: 12.0},
				{Key: "createdAt", Value: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)},
			},
		))

		list, err := s.ListRecent(context.Background(), RecentLimit)
		if err != nil {
			mt.Fatalf("unexpected error: %v", err)
		}
		if len(list) != 2 {
			mt.Fatalf("expected 2 orders, got %d", len(list))
		}
		if list[0].ID != newer || list[0].Status != StatusCooking || list[0].Note != "no cilantro" {
			mt.Fatalf("unexpected first order %+v", list[0])
		}
		if list[1].Status != StatusNew || list[1].Note != "" || list[1].Items == nil {
			mt.Fatalf("expected defaults on legacy order, got %+v", list[1])
		}
	})
}

func TestStore_Get(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("not found", func(mt *mtest.T) {
		s := NewStore(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ordersNS, mtest.FirstBatch))

		if _, err := s.Get(context.Background(), primitive.NewObjectID()); !errors.Is(err, ErrNotFound) {
			mt.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	mt.Run("found", func(mt *mtest.T) {
		s := NewStore(mt.DB)
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ordersNS, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: id},
			{Key: "items", Value: bson.A{bson.D{
				{Key: "menuItemId", Value: "abc"},
				{Key: "name", Value: "糖油粑粑"},
				{Key: "price", Value: 12.0},
				{Key: "quantity", Value: int32(2)},
				{Key: "subtotal", Value: 24.0},
				{Key: "categoryId", Value: "snack"},
			}}},
			{Key: "totalPrice", Value: 24.0},
			{Key: "status", Value: StatusNew},
			{Key: "createdAt", Value: time.Now().UTC()},
		}))

		o, err := s.Get(context.Background(), id)
		if err != nil {
			mt.Fatalf("unexpected error: %v", err)
		}
		if len(o.Items) != 1 || o.Items[0].Quantity != 2 || o.TotalPrice != 24 {
			mt.Fatalf("unexpected order %+v", o)
		}
	})
}
