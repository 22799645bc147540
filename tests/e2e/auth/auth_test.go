//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"vidly/internal/handler/dto/request"
	resdto "vidly/internal/handler/dto/response"
	"vidly/tests/common/authtest"
	"vidly/tests/common/builder"
	"vidly/tests/common/dbtest"
	"vidly/tests/common/httptest"
	"vidly/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	usersURL = "/api/users"
	authURL  = "/api/auth"
	meURL    = "/api/users/me"
)

type authSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
	dbtest.CreateTestUser(s.T(), s.DB, "existing@example.com", false)
}

func (s *authSuite) TestRegister() {
	s.Run("登録するとトークンがヘッダーで返る", func() {
		body := builder.NewAuthBuilder().WithEmail("new@example.com").BuildRegisterDTO()
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, usersURL, body, "")

		var user resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &user)
		s.Equal("new@example.com", user.Email)
		s.NotContains(w.Body.String(), "password")

		token := httptest.ExtractAuthToken(w)
		s.Require().NotEmpty(token)

		me := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, token)
		var current resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), me, http.StatusOK, &current)
		s.Equal(user.ID, current.ID)
	})

	s.Run("登録済みメールは大文字小文字を問わず拒否", func() {
		body := builder.NewAuthBuilder().WithEmail("Existing@Example.com").BuildRegisterDTO()
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, usersURL, body, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "User already registered.")
	})
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
	}{
		{name: "正常なログイン", email: "existing@example.com", password: dbtest.TestUserPassword, expectedStatus: http.StatusOK},
		{name: "存在しないユーザー", email: "nobody@example.com", password: dbtest.TestUserPassword, expectedStatus: http.StatusBadRequest},
		{name: "間違ったパスワード", email: "existing@example.com", password: "wrong-password", expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, authURL,
				request.LoginRequest{Email: tt.email, Password: tt.password}, "")
			if tt.expectedStatus != http.StatusOK {
				httptest.AssertErrorResponse(s.T(), w, tt.expectedStatus, "Invalid email or password.")
				return
			}

			var resp resdto.LoginResponse
			httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
			s.NotEmpty(resp.Token)
			s.Equal(resp.Token, httptest.ExtractAuthToken(w))
		})
	}
}

func (s *authSuite) TestProtectedRoutes() {
	s.Run("トークン無しは401", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Access denied. No token provided.")
	})

	s.Run("期限切れトークンは401", func() {
		userID := dbtest.CreateTestUser(s.T(), s.DB, "expired@example.com", false)
		token := authtest.NewJWTHelper(s.Config.JWT).CreateExpiredToken(s.T(), userID, false)
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, token)
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Invalid token.")
	})

	s.Run("管理者以外はジャンルを削除できない", func() {
		token := authtest.LoginUser(s.T(), s.Router, "existing@example.com", dbtest.TestUserPassword)
		genre := builder.NewGenreBuilder().BuildInfra()
		dbtest.InsertGenre(s.T(), s.DB, genre)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, "/api/genres/"+genre.ID.String(), nil, token)
		httptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "Access denied.")
	})

	s.Run("管理者はジャンルを削除できる", func() {
		token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "admin@example.com", true)
		genre := builder.NewGenreBuilder().BuildInfra()
		dbtest.InsertGenre(s.T(), s.DB, genre)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, "/api/genres/"+genre.ID.String(), nil, token)
		var deleted resdto.GenreResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &deleted)
		require.Equal(s.T(), genre.ID, deleted.ID)

		again := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/genres/"+genre.ID.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), again, http.StatusNotFound, "")
	})
}
