package bootstrap

import (
	"errors"

	"vidly/internal/pkg/config"
	"vidly/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config) (*jwt.Service, error) {
	if cfg.JWT.PrivateKey == "" {
		return nil, errors.New("JWT_PRIVATE_KEY is not defined")
	}

	duration, err := cfg.JWT.TokenDuration()
	if err != nil {
		return nil, err
	}

	return jwt.NewService(cfg.JWT.PrivateKey, duration), nil
}
