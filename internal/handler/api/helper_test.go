//go:build unit

package api_test

import (
	"errors"
	"io"
	"log/slog"

	"vidly/internal/handler/httperr"
	"vidly/internal/handler/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	userToken  = "user-token"
	adminToken = "admin-token"
)

var (
	testUserID  = uuid.MustParse("7b6f1e2a-3c4d-4e5f-8a9b-0c1d2e3f4a5b")
	testAdminID = uuid.MustParse("1a2b3c4d-5e6f-4a7b-8c9d-0e1f2a3b4c5d")
)

// tokenTable resolves the two fixed tokens and rejects anything else.
type tokenTable struct{}

func (tokenTable) ValidateToken(token string) (uuid.UUID, bool, error) {
	switch token {
	case userToken:
		return testUserID, false, nil
	case adminToken:
		return testAdminID, true, nil
	default:
		return uuid.Nil, false, errors.New("invalid token")
	}
}

func newTestEngine() (*gin.Engine, *middleware.AuthMiddleware) {
	gin.SetMode(gin.TestMode)
	httperr.RegisterJSONFieldNames()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return gin.New(), middleware.NewAuthMiddleware(tokenTable{}, logger)
}
