package auth

import (
	"context"

	"atenda-service/internal/pkg/dto/requests"
	"atenda-service/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	Register(ctx context.Context, request *requests.RegisterUser) (*responses.Auth, error)
	Login(ctx context.Context, request *requests.LoginUser) (*responses.Auth, error)
	Logout(ctx context.Context, sessionID string) error
}
