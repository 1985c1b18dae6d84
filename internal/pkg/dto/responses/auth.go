package responses

import "atenda-service/internal/app/models"

type Auth struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}
