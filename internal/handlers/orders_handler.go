package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"

	"github.com/calmliming/menuflow/internal/validation"
)

// registerOrdersRoutes registers routes for the order API. The service
// already returns typed errors, so they are passed to fail as-is.
func registerOrdersRoutes(r *gin.Engine, svc OrderService, v *validatorv10.Validate) {
	r.GET("/orders", func(c *gin.Context) {
		list, err := svc.Recent(c.Request.Context())
		if err != nil {
			fail(c, err)
			return
		}
		respond(c, http.StatusOK, list, "ok")
	})

	r.POST("/orders", func(c *gin.Context) {
		var req validation.CreateOrderRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			fail(c, err)
			return
		}

		order, err := svc.Place(c.Request.Context(), req.CartLines(), req.NoteText())
		if err != nil {
			fail(c, err)
			return
		}

		c.Header("Location", fmt.Sprintf("/orders/%s", order.ID.Hex()))
		respond(c, http.StatusCreated, order, "order placed")
	})

	r.GET("/orders/:id", func(c *gin.Context) {
		id, err := pathID(c, v)
		if err != nil {
			fail(c, err)
			return
		}
		order, err := svc.Get(c.Request.Context(), id)
		if err != nil {
			fail(c, err)
			return
		}
		respond(c, http.StatusOK, order, "ok")
	})
}
