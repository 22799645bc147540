package handler

import (
	"log/slog"
	"net/http"

	"vidly/internal/handler/api"
	"vidly/internal/handler/httperr"
	"vidly/internal/handler/middleware"
	"vidly/internal/pkg/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Genres    *api.GenreHandler
	Movies    *api.MovieHandler
	Customers *api.CustomerHandler
	Rentals   *api.RentalHandler
	Returns   *api.ReturnHandler
	Users     *api.UserHandler
	Auth      *api.AuthHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	httperr.RegisterJSONFieldNames()
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery(logger))
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS, logger))
	engine.Use(middleware.LoggingMiddleware(logger, cfg.Log))
	engine.Use(middleware.ErrorHandler(logger))
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireAuth := authMiddleware.RequireAuth()
	requireAdmin := []gin.HandlerFunc{requireAuth, authMiddleware.RequireAdmin()}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup.Group("/genres"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Genres.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Genres.Get},
			{Method: http.MethodPost, Path: "", Handler: h.Genres.Create, Mw: []gin.HandlerFunc{requireAuth}},
			{Method: http.MethodPut, Path: "/:id", Handler: h.Genres.Update, Mw: []gin.HandlerFunc{requireAuth}},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Genres.Delete, Mw: requireAdmin},
		})

		addRoutes(apiGroup.Group("/movies"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Movies.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Movies.Get},
			{Method: http.MethodPost, Path: "", Handler: h.Movies.Create, Mw: []gin.HandlerFunc{requireAuth}},
			{Method: http.MethodPut, Path: "/:id", Handler: h.Movies.Update, Mw: []gin.HandlerFunc{requireAuth}},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Movies.Delete, Mw: requireAdmin},
		})

		customers := apiGroup.Group("/customers")
		customers.Use(requireAuth)
		{
			addRoutes(customers, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Customers.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Customers.Get},
				{Method: http.MethodPost, Path: "", Handler: h.Customers.Create},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Customers.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Customers.Delete, Mw: []gin.HandlerFunc{authMiddleware.RequireAdmin()}},
			})
		}

		rentals := apiGroup.Group("/rentals")
		rentals.Use(requireAuth)
		{
			addRoutes(rentals, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Rentals.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Rentals.Get},
				{Method: http.MethodPost, Path: "", Handler: h.Rentals.Create},
			})
		}

		returns := apiGroup.Group("/returns")
		returns.Use(requireAuth)
		{
			addRoutes(returns, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Returns.Return},
			})
		}

		addRoutes(apiGroup.Group("/users"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.Users.Register},
			{Method: http.MethodGet, Path: "/me", Handler: h.Users.Me, Mw: []gin.HandlerFunc{requireAuth}},
		})

		addRoutes(apiGroup.Group("/auth"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.Auth.Login},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
