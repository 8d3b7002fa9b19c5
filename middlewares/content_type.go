package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/alireza-dehghan-nayeri/PWP-Supra/mason"
)

// RequireJSON rejects body-carrying requests whose content type is not JSON
// with 415 before any handler runs.
func RequireJSON() gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodPost, http.MethodPut:
			ct := c.ContentType()
			if !strings.EqualFold(ct, "application/json") {
				c.Header("Content-Type", mason.ContentType)
				c.AbortWithStatusJSON(http.StatusUnsupportedMediaType,
					mason.NewError("request content type must be application/json"))
				return
			}
		}
		c.Next()
	}
}
