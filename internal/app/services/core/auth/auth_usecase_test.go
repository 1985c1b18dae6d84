package auth

import (
	"context"
	"testing"

	"atenda-service/internal/app/config"
	"atenda-service/internal/app/drivers/database"
	"atenda-service/internal/app/services/core/users"
	"atenda-service/internal/app/services/shared/sessions"
	"atenda-service/internal/pkg/constvars"
	"atenda-service/internal/pkg/dto/requests"
	"atenda-service/internal/pkg/exceptions"
	"atenda-service/internal/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthTestFixture() (AuthUsecase, users.UserRepository, sessions.SessionRepository) {
	store := database.NewStore()
	userRepository := users.NewUserMemoryRepository(store.Users)
	sessionRepository := sessions.NewMemorySessionRepository()
	internalConfig := &config.InternalConfig{
		App: config.App{LoginSessionExpiredTimeInHours: 12},
		JWT: config.JWT{Secret: "test-secret", ExpTimeInHour: 12},
	}
	return NewAuthUsecase(userRepository, sessionRepository, internalConfig), userRepository, sessionRepository
}

func registerRequest() *requests.RegisterUser {
	return &requests.RegisterUser{
		Username:   "drsofia",
		Email:      "sofia@clinic.com",
		Password:   "Consulta#2024",
		Name:       "Sofia Almeida",
		Profession: "Psychologist",
	}
}

func TestAuthUsecase_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("Successful Registration Starts A Session", func(t *testing.T) {
		usecase, userRepository, _ := newAuthTestFixture()

		response, err := usecase.Register(ctx, registerRequest())

		require.NoError(t, err)
		assert.NotEmpty(t, response.Token, "registration should return a usable bearer token")
		assert.Equal(t, 1, response.User.ID)
		assert.Equal(t, constvars.RoleDefaultPractitioner, response.User.Role)

		stored, exists := userRepository.FindByEmail(ctx, "sofia@clinic.com")
		require.True(t, exists)
		assert.NotEqual(t, "Consulta#2024", stored.Password, "password must be stored hashed")
	})

	t.Run("Duplicate Email Is Rejected Case Insensitively", func(t *testing.T) {
		usecase, _, _ := newAuthTestFixture()

		_, err := usecase.Register(ctx, registerRequest())
		require.NoError(t, err)

		duplicate := registerRequest()
		duplicate.Username = "drsofia2"
		duplicate.Email = "SOFIA@clinic.com"
		_, err = usecase.Register(ctx, duplicate)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		assert.Equal(t, constvars.ErrClientEmailAlreadyExists, customErr.ClientMessage)
	})

	t.Run("Duplicate Username Is Rejected Case Insensitively", func(t *testing.T) {
		usecase, _, _ := newAuthTestFixture()

		_, err := usecase.Register(ctx, registerRequest())
		require.NoError(t, err)

		duplicate := registerRequest()
		duplicate.Username = "DrSofia"
		duplicate.Email = "other@clinic.com"
		_, err = usecase.Register(ctx, duplicate)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		assert.Equal(t, constvars.ErrClientUsernameAlreadyExists, customErr.ClientMessage)
	})
}

func TestAuthUsecase_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("Valid Credentials", func(t *testing.T) {
		usecase, _, _ := newAuthTestFixture()
		_, err := usecase.Register(ctx, registerRequest())
		require.NoError(t, err)

		response, err := usecase.Login(ctx, &requests.LoginUser{
			Email:    "sofia@clinic.com",
			Password: "Consulta#2024",
		})

		require.NoError(t, err)
		assert.NotEmpty(t, response.Token)
		assert.Equal(t, "drsofia", response.User.Username)
	})

	t.Run("Unknown Email And Wrong Password Fail Identically", func(t *testing.T) {
		usecase, _, _ := newAuthTestFixture()
		_, err := usecase.Register(ctx, registerRequest())
		require.NoError(t, err)

		_, unknownErr := usecase.Login(ctx, &requests.LoginUser{
			Email:    "nobody@clinic.com",
			Password: "Consulta#2024",
		})
		_, wrongErr := usecase.Login(ctx, &requests.LoginUser{
			Email:    "sofia@clinic.com",
			Password: "wrong-password",
		})

		var unknownCustom, wrongCustom *exceptions.CustomError
		require.ErrorAs(t, unknownErr, &unknownCustom)
		require.ErrorAs(t, wrongErr, &wrongCustom)
		assert.Equal(t, constvars.StatusUnauthorized, unknownCustom.StatusCode)
		assert.Equal(t, unknownCustom.StatusCode, wrongCustom.StatusCode)
		assert.Equal(t, unknownCustom.ClientMessage, wrongCustom.ClientMessage,
			"responses must not reveal whether the email exists")
	})
}

func TestAuthUsecase_Logout(t *testing.T) {
	ctx := context.Background()

	t.Run("Invalidates The Session", func(t *testing.T) {
		usecase, _, sessionRepository := newAuthTestFixture()
		_, err := usecase.Register(ctx, registerRequest())
		require.NoError(t, err)

		response, err := usecase.Login(ctx, &requests.LoginUser{
			Email:    "sofia@clinic.com",
			Password: "Consulta#2024",
		})
		require.NoError(t, err)

		sessionID := sessionIDFromToken(t, response.Token)
		_, ok := sessionRepository.Get(ctx, sessionID)
		require.True(t, ok)

		err = usecase.Logout(ctx, sessionID)

		require.NoError(t, err)
		_, ok = sessionRepository.Get(ctx, sessionID)
		assert.False(t, ok, "the server-side session must be gone after logout")
	})
}

func sessionIDFromToken(t *testing.T, token string) string {
	t.Helper()
	sessionID, err := utils.ParseSessionJWT(token, "test-secret")
	require.NoError(t, err)
	return sessionID
}
