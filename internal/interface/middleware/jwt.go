package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/disastercare/relief-hub/pkg/helpers"
	"github.com/disastercare/relief-hub/pkg/response"
)

const CtxEmailKey = "userEmail"

// JWTAuth reads the Authorization bearer token, validates it, and injects
// the subject email into context.
func JWTAuth(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		if header == "" || token == header {
			response.AbortFail(c, http.StatusUnauthorized, "missing bearer token", nil)
			return
		}
		claims, err := jwt.Parse(token)
		if err != nil {
			response.AbortFail(c, http.StatusUnauthorized, "invalid token", err.Error())
			return
		}
		c.Set(CtxEmailKey, claims.Email)
		c.Next()
	}
}
