package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/robinboard/api/internal/models"
	"github.com/robinboard/api/internal/service"
	appErrors "github.com/robinboard/api/pkg/errors"
	"github.com/robinboard/api/pkg/response"
)

// ContextUserKey is the gin context key storing session claims.
const ContextUserKey = "currentUser"

// RequireAdmin protects routes by requiring a valid admin session cookie.
func RequireAdmin(authService *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(authService.CookieName())
		if err != nil || token == "" {
			response.Error(c, appErrors.Clone(appErrors.ErrUnauthorized, "Yetkisiz erişim"))
			c.Abort()
			return
		}

		claims, err := authService.ValidateToken(token)
		if err != nil || !claims.IsAdmin() {
			response.Error(c, appErrors.Clone(appErrors.ErrUnauthorized, "Yetkisiz erişim"))
			c.Abort()
			return
		}

		c.Set(ContextUserKey, claims)
		c.Next()
	}
}

// OptionalAdmin attaches claims when a valid session cookie is present
// but does not block.
func OptionalAdmin(authService *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(authService.CookieName())
		if err != nil || token == "" {
			c.Next()
			return
		}

		claims, err := authService.ValidateToken(token)
		if err != nil {
			c.Next()
			return
		}

		c.Set(ContextUserKey, claims)
		c.Next()
	}
}

// IsAdmin reports whether the request carries an admin session.
func IsAdmin(c *gin.Context) bool {
	value, ok := c.Get(ContextUserKey)
	if !ok {
		return false
	}
	claims, ok := value.(*models.SessionClaims)
	return ok && claims.IsAdmin()
}
