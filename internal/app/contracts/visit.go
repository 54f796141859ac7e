package contracts

import (
	"context"
	"podium-service/internal/app/models"
	"podium-service/internal/pkg/dto/requests"
	"podium-service/internal/pkg/dto/responses"
)

type VisitRepository interface {
	GetOrCreate(ctx context.Context, visitID string) (*models.Visit, error)
	FindByID(ctx context.Context, visitID string) (*models.Visit, error)
	Save(ctx context.Context, visit *models.Visit) error
	List(ctx context.Context) ([]models.Visit, error)
}

type VisitUsecase interface {
	CreateVisit(ctx context.Context, request *requests.CreateVisit) (*responses.VisitSummary, error)
	GetOrCreateVisit(ctx context.Context, visitID, bodyRegion string) (*models.Visit, error)
	ListVisits(ctx context.Context) ([]responses.VisitSummary, error)
	GetVisit(ctx context.Context, visitID string) (*responses.VisitDetail, error)
	SetBodyRegion(ctx context.Context, visitID string, request *requests.UpdateBodyRegion) (*responses.VisitSummary, error)
}
