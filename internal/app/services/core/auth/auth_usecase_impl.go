package auth

import (
	"context"
	"time"

	"atenda-service/internal/app/config"
	"atenda-service/internal/app/models"
	"atenda-service/internal/app/services/core/users"
	"atenda-service/internal/app/services/shared/sessions"
	"atenda-service/internal/pkg/constvars"
	"atenda-service/internal/pkg/dto/requests"
	"atenda-service/internal/pkg/dto/responses"
	"atenda-service/internal/pkg/exceptions"
	"atenda-service/internal/pkg/utils"
)

type authUsecase struct {
	UserRepository    users.UserRepository
	SessionRepository sessions.SessionRepository
	InternalConfig    *config.InternalConfig
}

func NewAuthUsecase(
	userRepository users.UserRepository,
	sessionRepository sessions.SessionRepository,
	internalConfig *config.InternalConfig,
) AuthUsecase {
	return &authUsecase{
		UserRepository:    userRepository,
		SessionRepository: sessionRepository,
		InternalConfig:    internalConfig,
	}
}

func (uc *authUsecase) Register(ctx context.Context, request *requests.RegisterUser) (*responses.Auth, error) {
	// Check if email already exists
	if _, exists := uc.UserRepository.FindByEmail(ctx, request.Email); exists {
		return nil, exceptions.ErrEmailAlreadyExist(nil)
	}

	// Check if username already exists
	if _, exists := uc.UserRepository.FindByUsername(ctx, request.Username); exists {
		return nil, exceptions.ErrUsernameAlreadyExist(nil)
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	user := uc.UserRepository.Create(ctx, models.User{
		Username:   request.Username,
		Email:      request.Email,
		Password:   hashedPassword,
		Name:       request.Name,
		Profession: request.Profession,
		Role:       constvars.RoleDefaultPractitioner,
		CreatedAt:  time.Now(),
	})

	// Registration immediately authenticates the new practitioner.
	token, err := uc.startSession(ctx, &user)
	if err != nil {
		return nil, err
	}

	return &responses.Auth{Token: token, User: &user}, nil
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.LoginUser) (*responses.Auth, error) {
	// Unknown email and wrong password fail identically so the endpoint
	// cannot be used to enumerate accounts.
	user, exists := uc.UserRepository.FindByEmail(ctx, request.Email)
	if !exists {
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}

	if !utils.CheckPasswordHash(request.Password, user.Password) {
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}

	token, err := uc.startSession(ctx, &user)
	if err != nil {
		return nil, err
	}

	return &responses.Auth{Token: token, User: &user}, nil
}

func (uc *authUsecase) Logout(ctx context.Context, sessionID string) error {
	return uc.SessionRepository.Delete(ctx, sessionID)
}

func (uc *authUsecase) startSession(ctx context.Context, user *models.User) (string, error) {
	sessionID := utils.GenerateSessionID()
	expiration := time.Duration(uc.InternalConfig.App.LoginSessionExpiredTimeInHours) * time.Hour

	session := &models.Session{
		SessionID: sessionID,
		UserID:    user.ID,
		Username:  user.Username,
		ExpiresAt: time.Now().Add(expiration),
	}

	err := uc.SessionRepository.Set(ctx, sessionID, session, expiration)
	if err != nil {
		return "", exceptions.ErrStoreSession(err)
	}

	return utils.GenerateSessionJWT(sessionID, uc.InternalConfig.JWT.Secret, uc.InternalConfig.JWT.ExpTimeInHour)
}
