package api

import (
	"net/http"

	reqdto "vidly/internal/handler/dto/request"
	resdto "vidly/internal/handler/dto/response"
	"vidly/internal/handler/httperr"
	"vidly/internal/usecase/commands"
	"vidly/internal/usecase/queries"
	"vidly/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

type RentalHandler struct {
	cmds commands.RentalCommands
	q    queries.RentalQueries
}

func NewRentalHandler(cmds commands.RentalCommands, q queries.RentalQueries) *RentalHandler {
	return &RentalHandler{cmds: cmds, q: q}
}

// @Summary List rentals
// @Description Most recent first
// @Tags rentals
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} resdto.RentalResponse
// @Router /rentals [get]
func (h *RentalHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRentalViews(views))
}

// @Summary Get rental
// @Tags rentals
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Rental ID"
// @Success 200 {object} resdto.RentalResponse
// @Failure 404 {object} httperr.Response
// @Router /rentals/{id} [get]
func (h *RentalHandler) Get(c *gin.Context) {
	id, ok := pathID(c, shared.ErrRentalNotFound)
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRentalView(view))
}

// @Summary Issue rental
// @Description Hands out one copy of the movie to the customer
// @Tags rentals
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body reqdto.RentalRequest true "Customer and movie"
// @Success 200 {object} resdto.RentalResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /rentals [post]
func (h *RentalHandler) Create(c *gin.Context) {
	var req reqdto.RentalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBinding(c, err)
		return
	}
	rent, err := h.cmds.Create(c.Request.Context(), req)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRental(rent))
}
