package devstore

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// bearerAuth validates the HS256 dev token and stashes the owner sub in
// the request context. The production store sits behind the real identity
// provider; this only has to keep dev users apart.
func bearerAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := c.Request().Header.Get(echo.HeaderAuthorization)
			raw = strings.TrimSpace(strings.TrimPrefix(raw, "Bearer "))
			if raw == "" {
				return c.JSON(UnauthorizedError.Code(), UnauthorizedError)
			}

			token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return []byte(secret), nil
			})
			if err != nil || !token.Valid {
				return c.JSON(UnauthorizedError.Code(), UnauthorizedError)
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return c.JSON(UnauthorizedError.Code(), UnauthorizedError)
			}
			sub, _ := claims["sub"].(string)
			if sub == "" {
				return c.JSON(UnauthorizedError.Code(), UnauthorizedError)
			}

			c.Set("sub", sub)
			return next(c)
		}
	}
}

// MintToken signs a dev bearer token for the given sub. Used by the CLI in
// dev mode and by tests.
func MintToken(secret, sub string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub": sub,
		"exp": time.Now().Add(ttl).Unix(),
		"iat": time.Now().Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
