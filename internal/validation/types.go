package validation

import (
	"strings"

	"github.com/calmliming/menuflow/internal/menu"
	"github.com/calmliming/menuflow/internal/orders"
)

// CreateMenuItemRequest is the payload for POST /menu.
type CreateMenuItemRequest struct {
	Name       *string  `json:"name" validate:"required,notblank"`
	Price      *float64 `json:"price" validate:"required,gte=0"`
	CategoryID *string  `json:"categoryId" validate:"required,category"`
	Img        *string  `json:"img" validate:"required,notblank"`
	Desc       *string  `json:"desc" validate:"required,notblank"`
	IsActive   *bool    `json:"isActive,omitempty"` // defaults to true
}

// Input converts a validated request into a store input.
func (r CreateMenuItemRequest) Input() menu.Input {
	in := menu.Input{
		Name:       strings.TrimSpace(*r.Name),
		Price:      *r.Price,
		CategoryID: *r.CategoryID,
		Img:        strings.TrimSpace(*r.Img),
		Desc:       strings.TrimSpace(*r.Desc),
		IsActive:   true,
	}
	if r.IsActive != nil {
		in.IsActive = *r.IsActive
	}
	return in
}

// UpdateMenuItemRequest is the payload for PUT /menu/:id. Absent fields are
// left untouched; present ones follow the create rules.
type UpdateMenuItemRequest struct {
	Name       *string  `json:"name,omitempty" validate:"omitempty,notblank"`
	Price      *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	CategoryID *string  `json:"categoryId,omitempty" validate:"omitempty,category"`
	Img        *string  `json:"img,omitempty" validate:"omitempty,notblank"`
	Desc       *string  `json:"desc,omitempty" validate:"omitempty,notblank"`
	IsActive   *bool    `json:"isActive,omitempty"`
}

func (r UpdateMenuItemRequest) Patch() menu.Patch {
	return menu.Patch{
		Name:       trimmed(r.Name),
		Price:      r.Price,
		CategoryID: r.CategoryID,
		Img:        trimmed(r.Img),
		Desc:       trimmed(r.Desc),
		IsActive:   r.IsActive,
	}
}

// CartLineRequest keeps both fields loosely typed: malformed lines are
// dropped during cart normalisation rather than failing the request.
type CartLineRequest struct {
	MenuItemID interface{} `json:"menuItemId"`
	Quantity   interface{} `json:"quantity"`
}

// CreateOrderRequest is the payload for POST /orders.
type CreateOrderRequest struct {
	Items []CartLineRequest `json:"items" validate:"required,min=1"`
	Note  interface{}       `json:"note,omitempty"` // non-string notes are ignored
}

// NoteText returns the trimmed note, or "" when it is absent or not a string.
func (r CreateOrderRequest) NoteText() string {
	s, _ := r.Note.(string)
	return strings.TrimSpace(s)
}

// CartLines converts the request lines. Non-string ids and non-numeric
// quantities become zero values, which the cart rejects.
func (r CreateOrderRequest) CartLines() []orders.CartLine {
	lines := make([]orders.CartLine, 0, len(r.Items))
	for _, it := range r.Items {
		var line orders.CartLine
		if id, ok := it.MenuItemID.(string); ok {
			line.MenuItemID = id
		}
		if q, ok := it.Quantity.(float64); ok {
			line.Quantity = q
		}
		lines = append(lines, line)
	}
	return lines
}

// PostRequest is the payload for POST /posts and PUT /posts/:id.
type PostRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}
