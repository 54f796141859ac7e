package contracts

import (
	"context"
	"podium-service/internal/app/models"
	"podium-service/internal/pkg/dto/responses"
)

type ReportUsecase interface {
	GenerateReport(ctx context.Context, visitID string) (*responses.Report, error)
	GetReport(ctx context.Context, visitID string) (*responses.Report, error)
	BuildAndDeliver(ctx context.Context, visit *models.Visit) *models.Report
}
