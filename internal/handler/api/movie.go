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

type MovieHandler struct {
	cmds commands.MovieCommands
	q    queries.MovieQueries
}

func NewMovieHandler(cmds commands.MovieCommands, q queries.MovieQueries) *MovieHandler {
	return &MovieHandler{cmds: cmds, q: q}
}

// @Summary List movies
// @Tags movies
// @Produce json
// @Success 200 {array} resdto.MovieResponse
// @Router /movies [get]
func (h *MovieHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromMovieViews(views))
}

// @Summary Get movie
// @Tags movies
// @Produce json
// @Param id path string true "Movie ID"
// @Success 200 {object} resdto.MovieResponse
// @Failure 404 {object} httperr.Response
// @Router /movies/{id} [get]
func (h *MovieHandler) Get(c *gin.Context) {
	id, ok := pathID(c, shared.ErrMovieNotFound)
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromMovieView(view))
}

// @Summary Create movie
// @Tags movies
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body reqdto.MovieRequest true "Movie"
// @Success 200 {object} resdto.MovieResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /movies [post]
func (h *MovieHandler) Create(c *gin.Context) {
	var req reqdto.MovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBinding(c, err)
		return
	}
	m, err := h.cmds.Create(c.Request.Context(), req)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromMovie(m))
}

// @Summary Update movie
// @Tags movies
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Movie ID"
// @Param request body reqdto.MovieRequest true "Movie"
// @Success 200 {object} resdto.MovieResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /movies/{id} [put]
func (h *MovieHandler) Update(c *gin.Context) {
	id, ok := pathID(c, shared.ErrMovieNotFound)
	if !ok {
		return
	}
	var req reqdto.MovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBinding(c, err)
		return
	}
	m, err := h.cmds.Update(c.Request.Context(), id, req)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromMovie(m))
}

// @Summary Delete movie
// @Tags movies
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Movie ID"
// @Success 200 {object} resdto.MovieResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /movies/{id} [delete]
func (h *MovieHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, shared.ErrMovieNotFound)
	if !ok {
		return
	}
	m, err := h.cmds.Delete(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromMovie(m))
}
