package middleware

import (
	"github.com/gin-gonic/gin"

	"go-apparel-api/internal/auth"
	autherrors "go-apparel-api/internal/auth/errors"
	"go-apparel-api/internal/pkg/response"
)

// AuthMiddleware blocks anonymous requests. Checkout and promo application
// sit behind it.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Get token
		tokenString := auth.TokenFromRequest(c)
		if tokenString == "" {
			errObj := autherrors.ErrAuthRequired
			response.Error(c, errObj.HTTPStatus, errObj.Code, errObj.Message, nil)
			c.Abort()
			return
		}

		// 2. Parse & Validate
		claims, err := auth.ParseToken(tokenString)
		if err != nil {
			if err == autherrors.ErrTokenExpired {
				auth.ClearToken(c)
			}
			response.FromError(c, err)
			c.Abort()
			return
		}

		// 3. Set validated values
		c.Set("user_id_validated", claims.UserID)
		c.Set("role", claims.Role)
		c.Set("auth_token", tokenString)

		c.Next()
	}
}

// AuthOptionalMiddleware extracts the user when a token is present but lets
// anonymous requests through. Browsing the wizard does not require login.
func AuthOptionalMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := auth.TokenFromRequest(c)
		if tokenString == "" {
			c.Next()
			return
		}

		claims, err := auth.ParseToken(tokenString)
		if err != nil {
			// Invalid token on an optional route is treated as anonymous.
			c.Next()
			return
		}

		c.Set("user_id_validated", claims.UserID)
		c.Set("role", claims.Role)
		c.Set("auth_token", tokenString)

		c.Next()
	}
}
