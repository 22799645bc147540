package api

import (
	"net/http"

	reqdto "vidly/internal/handler/dto/request"
	resdto "vidly/internal/handler/dto/response"
	"vidly/internal/handler/httperr"
	"vidly/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type ReturnHandler struct {
	cmds commands.ReturnCommands
}

func NewReturnHandler(cmds commands.ReturnCommands) *ReturnHandler {
	return &ReturnHandler{cmds: cmds}
}

// @Summary Return rental
// @Description Closes the open rental of the customer and movie, charges the fee and restocks the movie
// @Tags returns
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body reqdto.RentalRequest true "Customer and movie"
// @Success 200 {object} resdto.RentalResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /returns [post]
func (h *ReturnHandler) Return(c *gin.Context) {
	var req reqdto.RentalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBinding(c, err)
		return
	}
	rent, err := h.cmds.Return(c.Request.Context(), req)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRental(rent))
}
