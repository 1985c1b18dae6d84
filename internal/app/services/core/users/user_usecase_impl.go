package users

import (
	"context"

	"atenda-service/internal/app/models"
	"atenda-service/internal/pkg/exceptions"
)

type userUsecase struct {
	UserRepository UserRepository
}

func NewUserUsecase(userRepository UserRepository) UserUsecase {
	return &userUsecase{
		UserRepository: userRepository,
	}
}

func (uc *userUsecase) GetProfileBySession(ctx context.Context, session *models.Session) (*models.User, error) {
	user, ok := uc.UserRepository.FindByID(ctx, session.UserID)
	if !ok {
		return nil, exceptions.ErrInvalidSession(nil)
	}
	return &user, nil
}
