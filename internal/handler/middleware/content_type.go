package middleware

import (
	"net/http"

	"github.com/ngocduc1504/reservierung-dionysos/internal/handler/httperr"
	"github.com/ngocduc1504/reservierung-dionysos/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

var errUnsupportedMediaType = errs.New("unsupported media type")

// RequireJSON rejects request bodies that are not application/json.
func RequireJSON() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.ContentType() != gin.MIMEJSON {
			httperr.AbortWithError(c, http.StatusUnsupportedMediaType, errUnsupportedMediaType, "Content-Type must be application/json", nil)
			return
		}
		c.Next()
	}
}
