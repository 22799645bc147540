package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"vidly/internal/handler/httperr"
	"vidly/internal/pkg/errs"
	"vidly/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuthTokenHeader is the header the original clients send the token in.
const AuthTokenHeader = "x-auth-token"

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
	logger         *slog.Logger
}

const (
	ctxUserIDKey  = "user_id"
	ctxIsAdminKey = "is_admin"
)

var (
	errTokenMissing = errs.NewMarked("Access denied. No token provided.", errs.ErrUnauthorized)
	errTokenInvalid = errs.NewMarked("Invalid token.", errs.ErrUnauthorized)
	errAdminOnly    = errs.NewMarked("Access denied.", errs.ErrForbidden)
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
		logger:         logger,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errTokenMissing, errTokenMissing.Error(), nil)
			return
		}

		userID, isAdmin, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			m.logger.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, errs.Mark(err, errTokenInvalid), errTokenInvalid.Error(), nil)
			return
		}

		c.Set(ctxUserIDKey, userID)
		c.Set(ctxIsAdminKey, isAdmin)
		c.Next()
	}
}

// RequireAdmin must run after RequireAuth.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := GetUserID(c); !ok {
			httperr.AbortWithError(c, http.StatusUnauthorized, errTokenMissing, errTokenMissing.Error(), nil)
			return
		}
		if !IsAdmin(c) {
			httperr.AbortWithError(c, http.StatusForbidden, errAdminOnly, errAdminOnly.Error(), nil)
			return
		}
		c.Next()
	}
}

// extractToken prefers the x-auth-token header and falls back to a bearer token.
func extractToken(c *gin.Context) string {
	if token := strings.TrimSpace(c.GetHeader(AuthTokenHeader)); token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := userID.(uuid.UUID)
	return id, ok
}

func IsAdmin(c *gin.Context) bool {
	isAdmin, exists := c.Get(ctxIsAdminKey)
	if !exists {
		return false
	}
	admin, ok := isAdmin.(bool)
	return ok && admin
}
