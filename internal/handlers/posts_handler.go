package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"

	"github.com/calmliming/menuflow/internal/apperr"
	"github.com/calmliming/menuflow/internal/posts"
	"github.com/calmliming/menuflow/internal/validation"
)

func registerPostsRoutes(r *gin.Engine, store PostStore, v *validatorv10.Validate) {
	r.GET("/posts", func(c *gin.Context) {
		list, err := store.List(c.Request.Context())
		if err != nil {
			fail(c, postErr(err))
			return
		}
		respond(c, http.StatusOK, list, "ok")
	})

	r.POST("/posts", func(c *gin.Context) {
		var req validation.PostRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			fail(c, err)
			return
		}
		p, err := store.Create(c.Request.Context(), req.Title, req.Content)
		if err != nil {
			fail(c, postErr(err))
			return
		}
		respond(c, http.StatusCreated, p, "created")
	})

	r.GET("/posts/:id", func(c *gin.Context) {
		id, err := pathID(c, v)
		if err != nil {
			fail(c, err)
			return
		}
		p, err := store.Get(c.Request.Context(), id)
		if err != nil {
			fail(c, postErr(err))
			return
		}
		respond(c, http.StatusOK, p, "ok")
	})

	r.PUT("/posts/:id", func(c *gin.Context) {
		id, err := pathID(c, v)
		if err != nil {
			fail(c, err)
			return
		}
		var req validation.PostRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			fail(c, err)
			return
		}
		p, err := store.Update(c.Request.Context(), id, req.Title, req.Content)
		if err != nil {
			fail(c, postErr(err))
			return
		}
		respond(c, http.StatusOK, p, "updated")
	})

	r.DELETE("/posts/:id", func(c *gin.Context) {
		id, err := pathID(c, v)
		if err != nil {
			fail(c, err)
			return
		}
		if err := store.Delete(c.Request.Context(), id); err != nil {
			fail(c, postErr(err))
			return
		}
		respond(c, http.StatusOK, nil, "deleted")
	})
}

func postErr(err error) error {
	if errors.Is(err, posts.ErrNotFound) {
		return apperr.NotFound("post not found")
	}
	return apperr.Internal("post store", err)
}
