//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"vidly/internal/handler/dto/request"
	"vidly/tests/common/dbtest"
	"vidly/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func LoginUser(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth",
		request.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	token := httptest.ExtractAuthToken(w)
	require.NotEmpty(t, token, "x-auth-token header is empty")

	return token
}

func CreateAndLogin(t *testing.T, db dbtest.DBLike, router *gin.Engine, email string, isAdmin bool) string {
	t.Helper()
	dbtest.CreateTestUser(t, db, email, isAdmin)
	return LoginUser(t, router, email, dbtest.TestUserPassword)
}
