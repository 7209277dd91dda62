package menu

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Item is a dish as returned by the API.
type Item struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Price      float64   `json:"price"`
	CategoryID string    `json:"categoryId"`
	Img        string    `json:"img"`
	Desc       string    `json:"desc"`
	IsActive   bool      `json:"isActive"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Input is a validated create request.
type Input struct {
	Name       string
	Price      float64
	CategoryID string
	Img        string
	Desc       string
	IsActive   bool
}

// Patch is a validated partial update; nil fields are left untouched.
type Patch struct {
	Name       *string
	Price      *float64
	CategoryID *string
	Img        *string
	Desc       *string
	IsActive   *bool
}

// itemDoc is the menuItems document. _id is an ObjectID for every record
// written by this service; older imports stored it as a plain string.
type itemDoc struct {
	ID         interface{} `bson:"_id,omitempty"`
	Name       string      `bson:"name"`
	Price      float64     `bson:"price"`
	CategoryID string      `bson:"categoryId"`
	Img        string      `bson:"img"`
	Desc       string      `bson:"desc"`
	IsActive   bool        `bson:"isActive"`
	CreatedAt  time.Time   `bson:"createdAt"`
	UpdatedAt  time.Time   `bson:"updatedAt"`
}

func (d itemDoc) toItem() Item {
	return Item{
		ID:         idString(d.ID),
		Name:       d.Name,
		Price:      d.Price,
		CategoryID: d.CategoryID,
		Img:        d.Img,
		Desc:       d.Desc,
		IsActive:   d.IsActive,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}

func idString(id interface{}) string {
	switch v := id.(type) {
	case primitive.ObjectID:
		return v.Hex()
	case string:
		return v
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}
