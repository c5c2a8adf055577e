package middleware

import (
	"github.com/golang-jwt/jwt/v4"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/openride/openride/internal/pkg/apperrors"
	"github.com/openride/openride/internal/pkg/models"
)

const claimsContextKey = "claims"

// JWTMiddleware validates bearer tokens and stores the parsed claims in
// the request context.
func JWTMiddleware(cfg models.JWTConfig) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(cfg.Secret),
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(models.UserClaims)
		},
		ContextKey: claimsContextKey,
	})
}

// CurrentUser extracts the authenticated user's claims from the context
func CurrentUser(c echo.Context) (*models.UserClaims, error) {
	token, ok := c.Get(claimsContextKey).(*jwt.Token)
	if !ok {
		return nil, apperrors.Forbidden("missing authentication")
	}
	claims, ok := token.Claims.(*models.UserClaims)
	if !ok {
		return nil, apperrors.Forbidden("invalid token claims")
	}
	return claims, nil
}
