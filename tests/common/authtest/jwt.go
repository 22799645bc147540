//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"vidly/internal/pkg/config"
	"vidly/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, isAdmin bool) string {
	t.Helper()
	duration, err := h.cfg.TokenDuration()
	require.NoError(t, err)
	service := jwt.NewService(h.cfg.PrivateKey, duration)
	token, err := service.GenerateToken(userID, "Test User", isAdmin)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, isAdmin bool) string {
	t.Helper()
	service := jwt.NewService(h.cfg.PrivateKey, 1*time.Millisecond)
	token, err := service.GenerateToken(userID, "Test User", isAdmin)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}
