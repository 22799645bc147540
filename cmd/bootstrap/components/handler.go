package components

import (
	"vidly/internal/handler"
	"vidly/internal/handler/api"
	"vidly/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewGenreHandler,
		api.NewMovieHandler,
		api.NewCustomerHandler,
		api.NewRentalHandler,
		api.NewReturnHandler,
		api.NewUserHandler,
		api.NewAuthHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

type handlerParams struct {
	fx.In

	Genres    *api.GenreHandler
	Movies    *api.MovieHandler
	Customers *api.CustomerHandler
	Rentals   *api.RentalHandler
	Returns   *api.ReturnHandler
	Users     *api.UserHandler
	Auth      *api.AuthHandler
}

func newHandlers(p handlerParams) handler.Handlers {
	return handler.Handlers{
		Genres:    p.Genres,
		Movies:    p.Movies,
		Customers: p.Customers,
		Rentals:   p.Rentals,
		Returns:   p.Returns,
		Users:     p.Users,
		Auth:      p.Auth,
	}
}
