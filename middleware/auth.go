package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/Madhav-Gupta-28/primecart-backend-go/models"
	"github.com/Madhav-Gupta-28/primecart-backend-go/utils"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TokenCookie is the cookie carrying the session JWT.
const TokenCookie = "jwt"

const userContextKey = "user"

// UserFinder loads the account a token belongs to.
type UserFinder interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
}

// Authenticate accepts a bearer token or the jwt cookie, loads the user and
// stores it on the echo context.
func Authenticate(users UserFinder, secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenString := tokenFromRequest(c)
			if tokenString == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Not authorized, no token"})
			}

			claims, err := utils.ValidateJWT(tokenString, secret)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Not authorized, token failed"})
			}

			userID, err := primitive.ObjectIDFromHex(claims.UserID)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid user ID"})
			}

			user, err := users.FindByID(c.Request().Context(), userID)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Not authorized, user not found"})
			}

			c.Set(userContextKey, user)
			return next(c)
		}
	}
}

// AdminOnly must run after Authenticate.
func AdminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := CurrentUser(c)
		if !ok || !user.IsAdmin {
			return c.JSON(http.StatusForbidden, map[string]string{"error": "Not authorized as an admin"})
		}
		return next(c)
	}
}

// CurrentUser returns the user stored by Authenticate.
func CurrentUser(c echo.Context) (*models.User, bool) {
	user, ok := c.Get(userContextKey).(*models.User)
	return user, ok && user != nil
}

// SetCurrentUser stores user on the context. Handlers tests use it to skip
// token handling.
func SetCurrentUser(c echo.Context, user *models.User) {
	c.Set(userContextKey, user)
}

func tokenFromRequest(c echo.Context) string {
	if authHeader := c.Request().Header.Get("Authorization"); authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
		return ""
	}
	if cookie, err := c.Cookie(TokenCookie); err == nil {
		return cookie.Value
	}
	return ""
}
