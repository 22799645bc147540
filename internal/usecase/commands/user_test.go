//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"vidly/internal/domain/auth"
	"vidly/internal/domain/user"
	reqdto "vidly/internal/handler/dto/request"
	"vidly/internal/infra"
	"vidly/internal/pkg/errs"
	"vidly/internal/pkg/jwt"
	"vidly/internal/pkg/password"
	"vidly/internal/usecase/commands"
	"vidly/tests/common/builder"
	queriesmock "vidly/tests/mock/queries"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestUserCommands_Register(t *testing.T) {
	ctx := context.Background()
	jwtService := jwt.NewService("test-secret", time.Hour)
	req := builder.NewAuthBuilder().BuildRegisterDTO()

	t.Run("stores a hashed password and issues a token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		m.users.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, u *user.User) error {
				assert.NotEqual(t, req.Password, u.PasswordHash())
				assert.NoError(t, password.ComparePassword(u.PasswordHash(), req.Password))
				assert.False(t, u.IsAdmin())
				return nil
			})

		result, err := commands.NewUserCommands(m.uow, jwtService, fixedClock()).Register(ctx, req)

		require.NoError(t, err)
		claims, err := jwtService.ValidateToken(result.Token)
		require.NoError(t, err)
		assert.Equal(t, result.User.ID(), claims.UserID)
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		m.users.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr("failed to create user", &pgconn.PgError{Code: "23505", ConstraintName: "uq_users_email"}))

		_, err := commands.NewUserCommands(m.uow, jwtService, fixedClock()).Register(ctx, req)

		require.Error(t, err)
		assert.True(t, errs.Is(err, commands.ErrUserAlreadyRegistered))
		assert.True(t, errs.Is(err, errs.ErrInvalidInput))
	})
}

func TestAuthCommands_Login(t *testing.T) {
	ctx := context.Background()
	jwtService := jwt.NewService("test-secret", time.Hour)
	hash, err := password.HashPassword("password123")
	require.NoError(t, err)

	testCases := []struct {
		name      string
		req       reqdto.LoginRequest
		setup     func(store *queriesmock.MockUserReadStore)
		expectErr bool
	}{
		{
			name: "success: valid credentials",
			req:  builder.NewAuthBuilder().BuildDTO(),
			setup: func(store *queriesmock.MockUserReadStore) {
				store.EXPECT().FindByEmail(gomock.Any(), "test@example.com").Return(builder.NewUserBuilder().BuildView(), hash, nil)
			},
		},
		{
			name: "error: unknown email",
			req:  builder.NewAuthBuilder().BuildDTO(),
			setup: func(store *queriesmock.MockUserReadStore) {
				store.EXPECT().FindByEmail(gomock.Any(), "test@example.com").
					Return(nil, "", infra.WrapRepoErr("user not found", nil, infra.KindNotFound))
			},
			expectErr: true,
		},
		{
			name: "error: wrong password",
			req:  builder.NewAuthBuilder().WithPassword("wrong-password").BuildDTO(),
			setup: func(store *queriesmock.MockUserReadStore) {
				store.EXPECT().FindByEmail(gomock.Any(), "test@example.com").Return(builder.NewUserBuilder().BuildView(), hash, nil)
			},
			expectErr: true,
		},
		{
			name:      "error: malformed email",
			req:       builder.NewAuthBuilder().WithEmail("not-an-email").BuildDTO(),
			setup:     func(*queriesmock.MockUserReadStore) {},
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := queriesmock.NewMockUserReadStore(ctrl)
			tc.setup(store)

			result, err := commands.NewAuthCommands(store, jwtService).Login(ctx, tc.req)

			if tc.expectErr {
				require.Error(t, err)
				assert.True(t, errs.Is(err, auth.ErrInvalidCredentials))
				assert.Equal(t, "Invalid email or password.", err.Error())
				return
			}
			require.NoError(t, err)
			claims, err := jwtService.ValidateToken(result.Token)
			require.NoError(t, err)
			assert.Equal(t, result.User.ID, claims.UserID)
		})
	}
}
