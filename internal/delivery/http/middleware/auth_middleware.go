// Package middleware contains HTTP-layer middleware for the echo server.
package middleware

import (
	"strings"

	deliverycontext "chatline/internal/delivery/context"
	"chatline/internal/domain/entity"
	domainerrors "chatline/internal/domain/errors"
	"chatline/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware gates protected routes behind credential authentication.
// The full check, including the session registry lookup, is delegated to the
// account usecase so every surface authenticates identically.
type AuthMiddleware struct {
	accountUsecase usecase.AccountUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(accountUsecase usecase.AccountUsecase) *AuthMiddleware {
	return &AuthMiddleware{accountUsecase: accountUsecase}
}

// Authenticate validates the bearer credential and stores the resolved
// identity on the context. Every failure is the same 401.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		identity, err := m.accountUsecase.Authenticate(c.Request().Context(), BearerToken(c))
		if err != nil {
			return err
		}

		c.Set(string(deliverycontext.KeyIdentity), identity)

		return next(c)
	}
}

// BearerToken extracts the credential from the Authorization header.
// A missing header or a non-Bearer scheme yields an empty string, which the
// authenticator rejects.
func BearerToken(c echo.Context) string {
	authHeader := c.Request().Header.Get("Authorization")

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return ""
	}

	return tokenString
}

// IdentityFromContext returns the identity stored by Authenticate.
func IdentityFromContext(c echo.Context) (*entity.Identity, error) {
	identity, ok := c.Get(string(deliverycontext.KeyIdentity)).(*entity.Identity)
	if !ok || identity == nil {
		return nil, domainerrors.ErrUnauthenticated
	}

	return identity, nil
}
