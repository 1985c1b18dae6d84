package users

import (
	"context"

	"atenda-service/internal/app/models"
)

type UserRepository interface {
	Create(ctx context.Context, user models.User) models.User
	FindByID(ctx context.Context, id int) (models.User, bool)
	FindByEmail(ctx context.Context, email string) (models.User, bool)
	FindByUsername(ctx context.Context, username string) (models.User, bool)
}

type UserUsecase interface {
	GetProfileBySession(ctx context.Context, session *models.Session) (*models.User, error)
}
