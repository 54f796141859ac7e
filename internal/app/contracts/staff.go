package contracts

import (
	"context"
	"podium-service/internal/app/models"
	"podium-service/internal/pkg/dto/requests"
	"podium-service/internal/pkg/dto/responses"
)

type StaffRepository interface {
	FindAll(ctx context.Context) ([]models.StaffUser, error)
	FindByUsername(ctx context.Context, username string) (*models.StaffUser, error)
	CountActiveAdmins(ctx context.Context) (int64, error)
	Create(ctx context.Context, staff *models.StaffUser) error
	Update(ctx context.Context, username string, staff *models.StaffUser) error
	Delete(ctx context.Context, username string) error
}

type StaffUsecase interface {
	ListStaff(ctx context.Context) ([]responses.Staff, error)
	CreateStaff(ctx context.Context, request *requests.CreateStaff) (*responses.Staff, error)
	UpdateStaff(ctx context.Context, username string, request *requests.UpdateStaff) (*responses.Staff, error)
	DeleteStaff(ctx context.Context, username string) error
	EnsureBootstrapAdmin(ctx context.Context, username, password, name string) (bool, error)
}
