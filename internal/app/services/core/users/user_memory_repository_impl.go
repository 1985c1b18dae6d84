package users

import (
	"context"
	"strings"

	"atenda-service/internal/app/drivers/database"
	"atenda-service/internal/app/models"
)

type userMemoryRepository struct {
	collection *database.Collection[models.User]
}

func NewUserMemoryRepository(collection *database.Collection[models.User]) UserRepository {
	return &userMemoryRepository{collection: collection}
}

func (r *userMemoryRepository) Create(ctx context.Context, user models.User) models.User {
	return r.collection.Insert(func(id int) models.User {
		user.ID = id
		return user
	})
}

func (r *userMemoryRepository) FindByID(ctx context.Context, id int) (models.User, bool) {
	return r.collection.Get(id)
}

// Email and username lookups fold case so duplicate identities cannot be
// created by re-registering "DrSofia" after "drsofia".
func (r *userMemoryRepository) FindByEmail(ctx context.Context, email string) (models.User, bool) {
	return r.findFirst(func(user models.User) bool {
		return strings.EqualFold(user.Email, email)
	})
}

func (r *userMemoryRepository) FindByUsername(ctx context.Context, username string) (models.User, bool) {
	return r.findFirst(func(user models.User) bool {
		return strings.EqualFold(user.Username, username)
	})
}

func (r *userMemoryRepository) findFirst(match func(models.User) bool) (models.User, bool) {
	found := r.collection.Where(match)
	if len(found) == 0 {
		return models.User{}, false
	}
	return found[0], true
}
