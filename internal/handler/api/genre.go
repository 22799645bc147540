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

type GenreHandler struct {
	cmds commands.GenreCommands
	q    queries.GenreQueries
}

func NewGenreHandler(cmds commands.GenreCommands, q queries.GenreQueries) *GenreHandler {
	return &GenreHandler{cmds: cmds, q: q}
}

// @Summary List genres
// @Tags genres
// @Produce json
// @Success 200 {array} resdto.GenreResponse
// @Router /genres [get]
func (h *GenreHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromGenreViews(views))
}

// @Summary Get genre
// @Tags genres
// @Produce json
// @Param id path string true "Genre ID"
// @Success 200 {object} resdto.GenreResponse
// @Failure 404 {object} httperr.Response
// @Router /genres/{id} [get]
func (h *GenreHandler) Get(c *gin.Context) {
	id, ok := pathID(c, shared.ErrGenreNotFound)
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromGenreView(view))
}

// @Summary Create genre
// @Tags genres
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body reqdto.GenreRequest true "Genre"
// @Success 200 {object} resdto.GenreResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /genres [post]
func (h *GenreHandler) Create(c *gin.Context) {
	var req reqdto.GenreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBinding(c, err)
		return
	}
	g, err := h.cmds.Create(c.Request.Context(), req)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromGenre(g))
}

// @Summary Update genre
// @Tags genres
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Genre ID"
// @Param request body reqdto.GenreRequest true "Genre"
// @Success 200 {object} resdto.GenreResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /genres/{id} [put]
func (h *GenreHandler) Update(c *gin.Context) {
	id, ok := pathID(c, shared.ErrGenreNotFound)
	if !ok {
		return
	}
	var req reqdto.GenreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBinding(c, err)
		return
	}
	g, err := h.cmds.Update(c.Request.Context(), id, req)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromGenre(g))
}

// @Summary Delete genre
// @Tags genres
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Genre ID"
// @Success 200 {object} resdto.GenreResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /genres/{id} [delete]
func (h *GenreHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, shared.ErrGenreNotFound)
	if !ok {
		return
	}
	g, err := h.cmds.Delete(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromGenre(g))
}
