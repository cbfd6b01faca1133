package middleware

import (
	"net/http"
	"strings"

	"decentralhire-backend/config"
	"decentralhire-backend/internal/delivery/http/response"
	"decentralhire-backend/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware verifies the bearer token and stores the caller's identity
// address in the request context. The `sub` claim is the identity; claims
// are never trusted for anything but the transport-verified address itself.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Error(c, http.StatusUnauthorized, "Authorization header required", nil)
			c.Abort()
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenSignatureInvalid
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			response.Error(c, http.StatusUnauthorized, "Invalid token", nil)
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "Invalid claims", nil)
			c.Abort()
			return
		}

		identity, _ := claims["sub"].(string)
		if identity == "" {
			response.Error(c, http.StatusUnauthorized, "Token carries no identity", nil)
			c.Abort()
			return
		}

		c.Set(string(domain.KeyIdentity), identity)
		c.Next()
	}
}
