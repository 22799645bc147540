package api

import (
	"net/http"

	reqdto "vidly/internal/handler/dto/request"
	resdto "vidly/internal/handler/dto/response"
	"vidly/internal/handler/httperr"
	"vidly/internal/handler/middleware"
	"vidly/internal/pkg/errs"
	"vidly/internal/usecase/commands"
	"vidly/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var errNotAuthenticated = errs.NewMarked("Access denied. No token provided.", errs.ErrUnauthorized)

type UserHandler struct {
	cmds commands.UserCommands
	q    queries.UserQueries
}

func NewUserHandler(cmds commands.UserCommands, q queries.UserQueries) *UserHandler {
	return &UserHandler{cmds: cmds, q: q}
}

// @Summary Register user
// @Description The token of the new user is returned in the x-auth-token header
// @Tags users
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterUserRequest true "User"
// @Success 200 {object} resdto.UserResponse
// @Header 200 {string} x-auth-token "Auth token"
// @Failure 400 {object} httperr.Response
// @Router /users [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req reqdto.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBinding(c, err)
		return
	}
	result, err := h.cmds.Register(c.Request.Context(), req)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Header(middleware.AuthTokenHeader, result.Token)
	c.JSON(http.StatusOK, resdto.FromUser(result.User))
}

// @Summary Get current user
// @Tags users
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} resdto.UserResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /users/me [get]
func (h *UserHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.Abort(c, errNotAuthenticated)
		return
	}
	view, err := h.q.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromUserView(view))
}
