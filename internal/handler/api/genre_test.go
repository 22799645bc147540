//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"vidly/internal/handler/api"
	reqdto "vidly/internal/handler/dto/request"
	resdto "vidly/internal/handler/dto/response"
	"vidly/internal/usecase/queries"
	"vidly/internal/usecase/shared"
	"vidly/tests/common/builder"
	"vidly/tests/common/httptest"
	commandsmock "vidly/tests/mock/commands"
	queriesmock "vidly/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type GenreHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockGenreCommands
	mockQueries  *queriesmock.MockGenreQueries
}

func (s *GenreHandlerTestSuite) SetupTest() {
	engine, authMw := newTestEngine()
	s.router = engine

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockGenreCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockGenreQueries(s.mockCtrl)
	handler := api.NewGenreHandler(s.mockCommands, s.mockQueries)

	genres := s.router.Group("/api/genres")
	genres.GET("", handler.List)
	genres.GET("/:id", handler.Get)
	genres.POST("", authMw.RequireAuth(), handler.Create)
	genres.PUT("/:id", authMw.RequireAuth(), handler.Update)
	genres.DELETE("/:id", authMw.RequireAuth(), authMw.RequireAdmin(), handler.Delete)
}

func (s *GenreHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestGenreHandlerSuite(t *testing.T) {
	suite.Run(t, new(GenreHandlerTestSuite))
}

func (s *GenreHandlerTestSuite) TestList() {
	s.Run("success: returns every genre", func() {
		views := []*queries.GenreView{
			builder.NewGenreBuilder().WithName("Action").BuildView(),
			builder.NewGenreBuilder().WithName("Comedy").BuildView(),
		}
		s.mockQueries.EXPECT().List(gomock.Any()).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/genres", nil, "")

		var response []resdto.GenreResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		want := []resdto.GenreResponse{
			{ID: views[0].ID, Name: "Action"},
			{ID: views[1].ID, Name: "Comedy"},
		}
		if diff := cmp.Diff(want, response); diff != "" {
			s.T().Errorf("genres mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("error: 500 hides the cause", func() {
		s.mockQueries.EXPECT().List(gomock.Any()).Return(nil, errors.New("pool exhausted")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/genres", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Something failed.")
		s.NotContains(rec.Body.String(), "pool exhausted")
	})
}

func (s *GenreHandlerTestSuite) TestGet() {
	view := builder.NewGenreBuilder().BuildView()

	s.Run("success: returns the genre", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/genres/"+view.ID.String(), nil, "")

		var response resdto.GenreResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.ID, response.ID)
		s.Equal(view.Name, response.Name)
	})

	s.Run("error: 404 on a malformed id without touching the store", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/genres/1", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "The genre with the given ID was not found.")
	})

	s.Run("error: 404 on an unknown id", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(nil, shared.ErrGenreNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/genres/"+view.ID.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "The genre with the given ID was not found.")
	})
}

func (s *GenreHandlerTestSuite) TestCreate() {
	url := "/api/genres"
	created := builder.NewGenreBuilder().WithName("genre1").BuildDomain()

	s.Run("error: 401 without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqdto.GenreRequest{Name: "genre1"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access denied. No token provided.")
	})

	s.Run("success: returns the saved genre", func() {
		req := reqdto.GenreRequest{Name: "genre1"}
		s.mockCommands.EXPECT().Create(gomock.Any(), req).Return(created, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, req, userToken)

		var response resdto.GenreResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(created.ID(), response.ID)
		s.Equal("genre1", response.Name)
	})

	s.Run("error: 400 on name length", func() {
		testCases := []struct {
			name         string
			genreName    string
			expectInBody string
		}{
			{name: "4 chars", genreName: "abcd", expectInBody: `"name" must be at least 5`},
			{name: "51 chars", genreName: strings.Repeat("a", 51), expectInBody: `"name" must be at most 50`},
			{name: "empty", genreName: "", expectInBody: `"name" is required`},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqdto.GenreRequest{Name: tc.genreName}, userToken)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, tc.expectInBody)
			})
		}
	})
}

func (s *GenreHandlerTestSuite) TestUpdate() {
	updated := builder.NewGenreBuilder().WithName("updatedName").BuildDomain()
	url := "/api/genres/" + updated.ID().String()
	req := reqdto.GenreRequest{Name: "updatedName"}

	s.Run("success: returns the renamed genre", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), updated.ID(), req).Return(updated, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, req, userToken)

		var response resdto.GenreResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("updatedName", response.Name)
	})

	s.Run("error: 404 when the genre vanished", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), updated.ID(), req).Return(nil, shared.ErrGenreNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, req, userToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "The genre with the given ID was not found.")
	})

	s.Run("error: 404 on a malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/api/genres/xyz", req, userToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}

func (s *GenreHandlerTestSuite) TestDelete() {
	deleted := builder.NewGenreBuilder().BuildDomain()
	url := "/api/genres/" + deleted.ID().String()

	s.Run("error: 401 without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})

	s.Run("error: 403 for a non-admin", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, userToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Access denied.")
	})

	s.Run("success: admin removes the genre", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), deleted.ID()).Return(deleted, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, adminToken)

		var response resdto.GenreResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(deleted.ID(), response.ID)
	})

	s.Run("error: 404 for an unknown genre", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), deleted.ID()).Return(nil, shared.ErrGenreNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, adminToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "The genre with the given ID was not found.")
	})
}
