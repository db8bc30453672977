package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"eldercare-mis/pkg/response"
)

// RequireJSON rejects write requests whose body is not declared as JSON
func RequireJSON() gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodPost, http.MethodPut, http.MethodPatch:
			if !isJSON(c.ContentType()) {
				response.BadRequest(c, "Request must be JSON", nil)
				c.Abort()
				return
			}
		}
		c.Next()
	}
}

func isJSON(mime string) bool {
	return mime == "application/json" ||
		(strings.HasPrefix(mime, "application/") && strings.HasSuffix(mime, "+json"))
}
