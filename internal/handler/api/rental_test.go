//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"vidly/internal/domain/movie"
	"vidly/internal/handler/api"
	reqdto "vidly/internal/handler/dto/request"
	resdto "vidly/internal/handler/dto/response"
	"vidly/internal/usecase/commands"
	"vidly/internal/usecase/queries"
	"vidly/internal/usecase/shared"
	"vidly/tests/common/builder"
	"vidly/tests/common/httptest"
	commandsmock "vidly/tests/mock/commands"
	queriesmock "vidly/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RentalHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockRentalCommands
	mockQueries  *queriesmock.MockRentalQueries
}

func (s *RentalHandlerTestSuite) SetupTest() {
	engine, authMw := newTestEngine()
	s.router = engine

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockRentalCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockRentalQueries(s.mockCtrl)
	handler := api.NewRentalHandler(s.mockCommands, s.mockQueries)

	rentals := s.router.Group("/api/rentals", authMw.RequireAuth())
	rentals.GET("", handler.List)
	rentals.GET("/:id", handler.Get)
	rentals.POST("", handler.Create)
}

func (s *RentalHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRentalHandlerSuite(t *testing.T) {
	suite.Run(t, new(RentalHandlerTestSuite))
}

func (s *RentalHandlerTestSuite) TestList() {
	s.Run("error: 401 without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/rentals", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})

	s.Run("success: returns the rentals in store order", func() {
		views := []*queries.RentalView{
			builder.NewRentalBuilder().BuildView(),
			builder.NewRentalBuilder().BuildView(),
		}
		s.mockQueries.EXPECT().List(gomock.Any()).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/rentals", nil, userToken)

		var response []resdto.RentalResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 2)
		s.Equal(views[0].ID, response[0].ID)
		s.Equal(views[1].ID, response[1].ID)
		s.Nil(response[0].RentalFee)
	})
}

func (s *RentalHandlerTestSuite) TestGet() {
	s.Run("error: 404 on a malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/rentals/42", nil, userToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "The rental with the given ID was not found.")
	})

	s.Run("error: 404 on an unknown id", func() {
		view := builder.NewRentalBuilder().BuildView()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(nil, shared.ErrRentalNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/rentals/"+view.ID.String(), nil, userToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "The rental with the given ID was not found.")
	})
}

func (s *RentalHandlerTestSuite) TestCreate() {
	url := "/api/rentals"
	opened := builder.NewRentalBuilder().BuildDomain()
	req := reqdto.RentalRequest{
		CustomerID: opened.Customer().ID.String(),
		MovieID:    opened.Movie().ID.String(),
	}

	s.Run("success: returns the open rental", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), req).Return(opened, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, req, userToken)

		var response resdto.RentalResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(opened.ID(), response.ID)
		s.Equal(opened.Customer().Name, response.Customer.Name)
		s.Equal(opened.Movie().Title, response.Movie.Title)
		s.Nil(response.DateReturned)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "unknown customer", commandsError: shared.ErrInvalidCustomer, expectedStatus: http.StatusBadRequest, expectedMsg: "Invalid customer."},
			{name: "unknown movie", commandsError: shared.ErrInvalidMovie, expectedStatus: http.StatusBadRequest, expectedMsg: "Invalid movie."},
			{name: "out of stock", commandsError: movie.ErrOutOfStock, expectedStatus: http.StatusBadRequest, expectedMsg: "Movie not in stock."},
			{name: "pair already open", commandsError: commands.ErrRentalAlreadyOpen, expectedStatus: http.StatusBadRequest, expectedMsg: "Rental already open"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), req).Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, req, userToken)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
