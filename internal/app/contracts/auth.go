package contracts

import (
	"context"
	"podium-service/internal/app/models"
	"podium-service/internal/pkg/dto/requests"
	"podium-service/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	Login(ctx context.Context, request *requests.StaffLogin) (*responses.StaffLogin, error)
	Logout(ctx context.Context, sessionID string) error
	WhoAmI(ctx context.Context, username string) (*responses.WhoAmI, error)
	ResolveSession(ctx context.Context, token string) (*models.Session, error)
}
