package validation

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/calmliming/menuflow/internal/apperr"
)

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }

func validDish() CreateMenuItemRequest {
	return CreateMenuItemRequest{
		Name:       strPtr("辣椒炒肉"),
		Price:      floatPtr(38),
		CategoryID: strPtr("stirfry"),
		Img:        strPtr("/uploads/pork.jpg"),
		Desc:       strPtr("香辣下饭"),
	}
}

func TestCreateMenuItemRequest_Valid(t *testing.T) {
	v := New()

	req := validDish()
	if err := v.Struct(req); err != nil {
		t.Fatalf("expected valid, got error: %v", err)
	}
	if in := req.Input(); !in.IsActive {
		t.Fatal("isActive must default to true")
	}
}

func TestCreateMenuItemRequest_Price(t *testing.T) {
	v := New()

	req := validDish()
	req.Price = floatPtr(0)
	if err := v.Struct(req); err != nil {
		t.Fatalf("price 0 must be accepted, got %v", err)
	}

	req.Price = floatPtr(-1)
	if err := v.Struct(req); err == nil {
		t.Fatal("expected validation error for negative price, got nil")
	}

	req.Price = nil
	if err := v.Struct(req); err == nil {
		t.Fatal("expected validation error for missing price, got nil")
	}
}

func TestCreateMenuItemRequest_InvalidFields(t *testing.T) {
	v := New()

	cases := map[string]func(r *CreateMenuItemRequest){
		"blank name":       func(r *CreateMenuItemRequest) { r.Name = strPtr("   ") },
		"missing img":      func(r *CreateMenuItemRequest) { r.Img = nil },
		"empty desc":       func(r *CreateMenuItemRequest) { r.Desc = strPtr("") },
		"unknown category": func(r *CreateMenuItemRequest) { r.CategoryID = strPtr("dessert") },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			req := validDish()
			mutate(&req)
			if err := v.Struct(req); err == nil {
				t.Fatal("expected validation error, got nil")
			}
		})
	}
}

func TestUpdateMenuItemRequest_Partial(t *testing.T) {
	v := New()

	if err := v.Struct(UpdateMenuItemRequest{}); err != nil {
		t.Fatalf("empty patch must be valid, got %v", err)
	}
	if err := v.Struct(UpdateMenuItemRequest{Price: floatPtr(0)}); err != nil {
		t.Fatalf("zero price patch must be valid, got %v", err)
	}
	if err := v.Struct(UpdateMenuItemRequest{Price: floatPtr(-0.5)}); err == nil {
		t.Fatal("expected validation error for negative price")
	}
	if err := v.Struct(UpdateMenuItemRequest{Name: strPtr("")}); err == nil {
		t.Fatal("expected validation error for blank name")
	}

	p := UpdateMenuItemRequest{Name: strPtr("  new  ")}.Patch()
	if p.Name == nil || *p.Name != "new" || p.Price != nil {
		t.Fatalf("unexpected patch %+v", p)
	}
}

func TestCreateOrderRequest_CartLines(t *testing.T) {
	v := New()

	if err := v.Struct(CreateOrderRequest{}); err == nil {
		t.Fatal("expected validation error for missing items")
	}
	if err := v.Struct(CreateOrderRequest{Items: []CartLineRequest{}}); err == nil {
		t.Fatal("expected validation error for empty items")
	}

	req := CreateOrderRequest{Items: []CartLineRequest{
		{MenuItemID: "64b7f0c2a1b2c3d4e5f60718", Quantity: float64(2)},
		{MenuItemID: 42, Quantity: "3"},
	}}
	if err := v.Struct(req); err != nil {
		t.Fatalf("expected valid, got %v", err)
	}
	lines := req.CartLines()
	if len(lines) != 2 || lines[0].Quantity != 2 || lines[1].MenuItemID != "" || lines[1].Quantity != 0 {
		t.Fatalf("unexpected lines %+v", lines)
	}
}

func TestObjectID(t *testing.T) {
	v := New()

	id := primitive.NewObjectID()
	got, err := ObjectID(v, id.Hex())
	if err != nil || got != id {
		t.Fatalf("expected %s, got %s (%v)", id.Hex(), got.Hex(), err)
	}
	for _, raw := range []string{"", "abc", "zzzzzzzzzzzzzzzzzzzzzzzz"} {
		if _, err := ObjectID(v, raw); apperr.KindOf(err) != apperr.KindValidation {
			t.Fatalf("ObjectID(%q): expected validation error, got %v", raw, err)
		}
	}
}

func TestBindAndValidate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	v := New()

	bind := func(body string) error {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/posts", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")
		var req PostRequest
		return BindAndValidate(c, &req, v)
	}

	if err := bind(`{"title":"t","content":"c"}`); err != nil {
		t.Fatalf("expected valid, got %v", err)
	}

	err := bind(`{"title":"t"}`)
	var ae *apperr.Error
	if !errors.As(err, &ae) || ae.Kind != apperr.KindValidation || ae.Fields["content"] == "" {
		t.Fatalf("expected field error for content, got %#v", err)
	}

	err = bind(`{not json`)
	if !errors.As(err, &ae) || ae.Kind != apperr.KindValidation {
		t.Fatalf("expected validation error for bad json, got %v", err)
	}
	if ae.Fields["body"] != "must be a valid JSON object" {
		t.Fatalf("expected body field error, got %v", ae.Fields)
	}
}

func TestCreateOrderRequest_NoteText(t *testing.T) {
	cases := map[string]struct {
		note interface{}
		want string
	}{
		"absent":     {nil, ""},
		"string":     {"  少辣  ", "少辣"},
		"number":     {float64(123), ""},
		"object":     {map[string]interface{}{"a": 1}, ""},
		"blank only": {"   ", ""},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if got := (CreateOrderRequest{Note: tc.note}).NoteText(); got != tc.want {
				t.Fatalf("NoteText() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestBindAndValidate_WrongTypeHidesDecoderDetails(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/posts", strings.NewReader(`{"title":123,"content":"c"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	var req PostRequest
	err := BindAndValidate(c, &req, New())

	var ae *apperr.Error
	if !errors.As(err, &ae) || ae.Kind != apperr.KindValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	if ae.Fields["title"] != "has the wrong type" {
		t.Fatalf("expected title field error, got %v", ae.Fields)
	}
	for _, msg := range ae.Fields {
		if strings.Contains(msg, "Go struct") || strings.Contains(msg, "PostRequest") {
			t.Fatalf("decoder details leaked: %q", msg)
		}
	}
}
