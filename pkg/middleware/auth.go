package middleware

import (
	"strings"

	"streamtube/pkg/jwt"
	"streamtube/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	UserIDKey         = "user_id"
	RoleKey           = "role"
	AccessTokenCookie = "accessToken"
)

// AuthMiddleware rejects the request unless a valid access token is
// presented via the Authorization header or the accessToken cookie.
func AuthMiddleware(jwtService *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			response.Abort(c, response.Unauthorized("Authorization token is required"))
			return
		}

		claims, err := jwtService.ValidateToken(token)
		if err != nil {
			response.Abort(c, response.Unauthorized("Invalid or expired token"))
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Set(RoleKey, claims.Role)
		c.Next()
	}
}

// OptionalAuthMiddleware attaches the principal when a valid token is
// presented but lets anonymous requests through. Handlers see an empty
// user_id for anonymous callers.
func OptionalAuthMiddleware(jwtService *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token != "" {
			if claims, err := jwtService.ValidateToken(token); err == nil {
				c.Set(UserIDKey, claims.UserID)
				c.Set(RoleKey, claims.Role)
			}
		}
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
		return ""
	}

	if cookie, err := c.Cookie(AccessTokenCookie); err == nil {
		return cookie
	}
	return ""
}
