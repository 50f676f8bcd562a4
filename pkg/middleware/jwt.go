package middleware

import (
	"net/http"
	"strings"

	"KecPortal/internal/auth"

	"github.com/labstack/echo/v4"
)

// JWT validates the bearer token on protected routes and puts the
// parsed claims on the context under "user".
func JWT(key []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{"success": false, "error": "Missing Token"})
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			tokenString = strings.TrimSpace(tokenString)

			claims, err := auth.ValidateJWT(tokenString, key)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"success": false, "error": "Invalid Token"})
			}
			c.Set("user", claims)
			return next(c)
		}
	}
}
