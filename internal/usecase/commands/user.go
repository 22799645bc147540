package commands

import (
	"context"

	"vidly/internal/domain/user"
	reqdto "vidly/internal/handler/dto/request"
	"vidly/internal/infra"
	"vidly/internal/pkg/clock"
	"vidly/internal/pkg/errs"
	"vidly/internal/pkg/jwt"
	"vidly/internal/pkg/password"
	"vidly/internal/usecase/shared"
)

var (
	ErrUserAlreadyRegistered = errs.NewMarked("User already registered.", errs.ErrInvalidInput)
	ErrTokenGeneration       = errs.NewMarked("token generation failed", errs.ErrInternal)
	ErrPasswordHashing       = errs.NewMarked("password hashing failed", errs.ErrInternal)
)

type RegisterResult struct {
	User  *user.User
	Token string
}

type UserCommands interface {
	Register(ctx context.Context, req reqdto.RegisterUserRequest) (*RegisterResult, error)
}

type userCommandsImpl struct {
	uow        shared.UnitOfWork
	jwtService *jwt.Service
	clock      clock.Clock
}

func NewUserCommands(uow shared.UnitOfWork, jwtService *jwt.Service, clk clock.Clock) UserCommands {
	return &userCommandsImpl{
		uow:        uow,
		jwtService: jwtService,
		clock:      clk,
	}
}

// Register never grants admin rights; admins are promoted in the store.
func (c *userCommandsImpl) Register(ctx context.Context, req reqdto.RegisterUserRequest) (*RegisterResult, error) {
	email, err := user.NewEmail(req.Email)
	if err != nil {
		return nil, err
	}
	pw, err := user.NewPassword(req.Password)
	if err != nil {
		return nil, err
	}
	hash, err := password.HashPassword(pw.Value())
	if err != nil {
		return nil, errs.Mark(err, ErrPasswordHashing)
	}
	u, err := user.NewUser(req.Name, email, hash, false, c.clock.Now())
	if err != nil {
		return nil, err
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Users().Create(ctx, u); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrUserAlreadyRegistered
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	token, err := c.jwtService.GenerateToken(u.ID(), u.Name(), u.IsAdmin())
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	return &RegisterResult{User: u, Token: token}, nil
}
