package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"portfolio-api/internal/token"
	"portfolio-api/pkg/apperror"
	"portfolio-api/pkg/response"
)

// ClaimsKey is where RequireAuth stores the verified claims in the gin
// context.
const ClaimsKey = "auth_claims"

type AuthMiddleware struct {
	tokens *token.Service
}

func NewAuthMiddleware(tokens *token.Service) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// RequireAuth extracts and verifies the bearer token. On success the claims
// are attached to the context for downstream handlers.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""
		authHeader := c.GetHeader("Authorization")

		if authHeader != "" {
			parts := strings.Split(authHeader, " ")
			if len(parts) == 2 && parts[0] == "Bearer" {
				tokenString = parts[1]
			}
		}

		if tokenString == "" {
			response.AbortError(c, apperror.Unauthorized("Not authorized, no token"))
			return
		}

		claims, err := m.tokens.Parse(tokenString)
		if err != nil {
			response.AbortError(c, apperror.Unauthorized("Not authorized, token failed"))
			return
		}

		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

// RequireAdmin additionally checks the admin flag on the verified claims.
// Composable with RequireAuth on any route.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := GetClaims(c)
		if !ok {
			response.AbortError(c, apperror.Unauthorized("Not authorized, no token"))
			return
		}

		if !claims.IsAdmin {
			response.AbortError(c, apperror.Forbidden("Not authorized as an admin"))
			return
		}

		c.Next()
	}
}

// GetClaims retrieves the verified claims set by RequireAuth.
func GetClaims(c *gin.Context) (*token.Claims, bool) {
	value, exists := c.Get(ClaimsKey)
	if !exists {
		return nil, false
	}
	claims, ok := value.(*token.Claims)
	return claims, ok
}
