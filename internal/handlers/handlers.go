package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/calmliming/menuflow/internal/menu"
	"github.com/calmliming/menuflow/internal/orders"
	"github.com/calmliming/menuflow/internal/posts"
	"github.com/calmliming/menuflow/internal/uploads"
	"github.com/calmliming/menuflow/internal/validation"
)

// MenuStore is implemented by *menu.Store.
type MenuStore interface {
	EnsureSeeded(ctx context.Context) error
	List(ctx context.Context, includeInactive bool) ([]menu.Item, error)
	Get(ctx context.Context, id primitive.ObjectID) (*menu.Item, error)
	Create(ctx context.Context, in menu.Input) (*menu.Item, error)
	Update(ctx context.Context, id primitive.ObjectID, p menu.Patch) (*menu.Item, error)
	Delete(ctx context.Context, rawID string) error
}

// OrderService is implemented by *orders.Service.
type OrderService interface {
	Place(ctx context.Context, lines []orders.CartLine, note string) (*orders.Order, error)
	Recent(ctx context.Context) ([]orders.Order, error)
	Get(ctx context.Context, id primitive.ObjectID) (*orders.Order, error)
}

// PostStore is implemented by *posts.Store.
type PostStore interface {
	List(ctx context.Context) ([]posts.Post, error)
	Get(ctx context.Context, id primitive.ObjectID) (*posts.Post, error)
	Create(ctx context.Context, title, content string) (*posts.Post, error)
	Update(ctx context.Context, id primitive.ObjectID, title, content string) (*posts.Post, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// Pinger reports database reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HandlerConfig groups dependencies for the API routes.
type HandlerConfig struct {
	Menu    MenuStore
	Orders  OrderService
	Posts   PostStore
	Uploads *uploads.Saver
	DB      Pinger
}

// RegisterRoutes registers every API route on r. Uploaded files are served
// back from the saver's directory under its URL prefix.
func RegisterRoutes(r *gin.Engine, cfg HandlerConfig) {
	v := validation.New()

	r.GET("/health", healthHandler(cfg.DB))
	r.GET("/categories", listCategories)

	registerMenuRoutes(r, cfg.Menu, v)
	registerOrdersRoutes(r, cfg.Orders, v)
	registerPostsRoutes(r, cfg.Posts, v)

	if cfg.Uploads != nil {
		r.POST("/upload", uploadHandler(cfg.Uploads))
		r.Static(cfg.Uploads.URLPrefix, cfg.Uploads.Dir)
	}
}

func healthHandler(db Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.Ping(c.Request.Context()); err != nil {
			respond(c, http.StatusServiceUnavailable, gin.H{"status": "unavailable"}, "database unreachable")
			return
		}
		respond(c, http.StatusOK, gin.H{"status": "ok"}, "ok")
	}
}

// pathID parses the :id path parameter as an ObjectID.
func pathID(c *gin.Context, v *validatorv10.Validate) (primitive.ObjectID, error) {
	return validation.ObjectID(v, c.Param("id"))
}
