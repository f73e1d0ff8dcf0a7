package middleware

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/01moynul/aguadelivery-golang/internal/apperror"
	"github.com/01moynul/aguadelivery-golang/internal/identity"
)

var (
	errTokenRequired = apperror.UnauthorizedError("Token de acesso requerido")
	errTokenInvalid  = apperror.ForbiddenError("Token inválido ou expirado")
)

// UserIDKey is the gin context key holding the authenticated user's id.
const UserIDKey = "userID"

// AuthMiddleware rejects requests without a valid bearer token and stores
// the token's user id under UserIDKey.
func AuthMiddleware(provider identity.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. --- Get Authorization Header ---
		tokenString := bearerToken(c.GetHeader("Authorization"))
		if tokenString == "" {
			RespondError(c, errTokenRequired)
			return
		}

		// 2. --- Validate Token ---
		userID, err := provider.Verify(c.Request.Context(), tokenString)
		if err != nil {
			if errors.Is(err, identity.ErrInvalidToken) {
				RespondError(c, errTokenInvalid)
				return
			}
			RespondError(c, fmt.Errorf("verify token: %w", err))
			return
		}

		// 3. --- Success ---
		c.Set(UserIDKey, userID)
		c.Next()
	}
}

// bearerToken returns the token of a "Bearer <token>" header value.
func bearerToken(header string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// UserID returns the id stored by AuthMiddleware.
func UserID(c *gin.Context) string {
	return c.GetString(UserIDKey)
}
