package auth

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	autherrors "go-apparel-api/internal/auth/errors"
)

// CookieName is the cookie the storefront stores its token in. Clients that
// keep the token in local storage instead send it as a bearer header.
const CookieName = "authToken"

// TokenFromRequest reads the auth token from the authToken cookie, falling
// back to the Authorization header. Empty string means anonymous.
func TokenFromRequest(c *gin.Context) string {
	if token, err := c.Cookie(CookieName); err == nil && token != "" {
		return token
	}

	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}

// ClearToken expires the auth cookie. Called when the backend reports 401 so
// the next request forces a re-login.
func ClearToken(c *gin.Context) {
	c.SetCookie(CookieName, "", -1, "/", "", false, true)
}

type Claims struct {
	UserID string
	Role   string
}

// ParseToken validates the JWT signature and extracts the user claims.
func ParseToken(tokenString string) (Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		if err != nil && (errors.Is(err, jwt.ErrTokenExpired) || strings.Contains(err.Error(), "expired")) {
			return Claims{}, autherrors.ErrTokenExpired
		}
		return Claims{}, autherrors.ErrInvalidToken
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, autherrors.ErrInvalidToken
	}

	userID, ok := mapClaims["user_id"].(string)
	if !ok || userID == "" {
		return Claims{}, autherrors.ErrInvalidToken
	}

	role, _ := mapClaims["role"].(string)

	return Claims{UserID: userID, Role: role}, nil
}
