package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"travelcms/controllers"
	"travelcms/errors"
	"travelcms/models"
	"travelcms/response"
)

// AdminAuthenticator resolves a bearer token to an active admin
type AdminAuthenticator interface {
	Authenticate(ctx context.Context, token string) (*models.AdminUser, error)
}

// bearerToken reads the Authorization header, or ?token= for websocket upgrades
func bearerToken(c *gin.Context) string {
	if h := c.GetHeader("Authorization"); h != "" {
		return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	}
	return c.Query("token")
}

// AuthMiddleware rejects requests without a valid admin token
func AuthMiddleware(auth AdminAuthenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		admin, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			if appErr := errors.GetAppError(err); appErr != nil {
				response.ErrorWithStatus(c, controllers.StatusFor(err), appErr.Message)
			} else {
				response.Unauthorized(c)
			}
			c.Abort()
			return
		}

		c.Set(controllers.AdminKey, admin)
		c.Set("adminID", admin.ID)
		c.Next()
	}
}

// ErrorHandler answers errors attached with c.Error when no response was written
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err
		if appErr := errors.GetAppError(err); appErr != nil {
			response.ErrorWithStatus(c, controllers.StatusFor(err), appErr.Message)
			return
		}
		response.ServerError(c)
	}
}
