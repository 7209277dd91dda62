package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"

	"github.com/calmliming/menuflow/internal/apperr"
	"github.com/calmliming/menuflow/internal/catalog"
	"github.com/calmliming/menuflow/internal/menu"
	"github.com/calmliming/menuflow/internal/validation"
)

func listCategories(c *gin.Context) {
	respond(c, http.StatusOK, catalog.Categories(), "ok")
}

func registerMenuRoutes(r *gin.Engine, store MenuStore, v *validatorv10.Validate) {
	r.GET("/menu", func(c *gin.Context) {
		ctx := c.Request.Context()
		if err := store.EnsureSeeded(ctx); err != nil {
			fail(c, apperr.Internal("seed menu", err))
			return
		}

		includeInactive := c.Query("includeInactive") == "1" || c.Query("includeInactive") == "true"
		items, err := store.List(ctx, includeInactive)
		if err != nil {
			fail(c, menuErr(err))
			return
		}
		respond(c, http.StatusOK, items, "ok")
	})

	r.POST("/menu", func(c *gin.Context) {
		var req validation.CreateMenuItemRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			fail(c, err)
			return
		}
		item, err := store.Create(c.Request.Context(), req.Input())
		if err != nil {
			fail(c, menuErr(err))
			return
		}
		respond(c, http.StatusCreated, item, "created")
	})

	r.GET("/menu/:id", func(c *gin.Context) {
		id, err := pathID(c, v)
		if err != nil {
			fail(c, err)
			return
		}
		item, err := store.Get(c.Request.Context(), id)
		if err != nil {
			fail(c, menuErr(err))
			return
		}
		respond(c, http.StatusOK, item, "ok")
	})

	r.PUT("/menu/:id", func(c *gin.Context) {
		id, err := pathID(c, v)
		if err != nil {
			fail(c, err)
			return
		}
		var req validation.UpdateMenuItemRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			fail(c, err)
			return
		}
		item, err := store.Update(c.Request.Context(), id, req.Patch())
		if err != nil {
			fail(c, menuErr(err))
			return
		}
		respond(c, http.StatusOK, item, "updated")
	})

	// DELETE accepts legacy string ids as well, so the raw param goes to the store.
	r.DELETE("/menu/:id", func(c *gin.Context) {
		if err := store.Delete(c.Request.Context(), c.Param("id")); err != nil {
			fail(c, menuErr(err))
			return
		}
		respond(c, http.StatusOK, nil, "deleted")
	})
}

func menuErr(err error) error {
	switch {
	case errors.Is(err, menu.ErrNotFound):
		return apperr.NotFound("menu item not found")
	case errors.Is(err, menu.ErrInvalidID):
		return apperr.Validation("malformed id")
	default:
		return apperr.Internal("menu store", err)
	}
}
