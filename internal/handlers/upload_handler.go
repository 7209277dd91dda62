package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/calmliming/menuflow/internal/apperr"
	"github.com/calmliming/menuflow/internal/uploads"
)

// multipartOverhead leaves room for boundaries and headers around the file.
const multipartOverhead = 64 << 10

func uploadHandler(saver *uploads.Saver) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, uploads.MaxSize+multipartOverhead)

		fh, err := c.FormFile("file")
		if err != nil {
			var tooLarge *http.MaxBytesError
			switch {
			case errors.As(err, &tooLarge):
				fail(c, apperr.Validation("image must not exceed 2MB"))
			default:
				fail(c, apperr.Validation("select an image file"))
			}
			return
		}

		url, err := saver.Save(fh)
		if err != nil {
			fail(c, err)
			return
		}
		respond(c, http.StatusOK, gin.H{"url": url}, "uploaded")
	}
}
