package contracts

import (
	"context"
	"podium-service/internal/app/models"
	"podium-service/internal/pkg/dto/responses"
)

type DiagnosisProvider interface {
	Name() string
	Diagnose(ctx context.Context, bodyRegion string, intake models.Answers) ([]models.DdxCandidate, error)
}

type DiagnosisUsecase interface {
	RequestDiagnosis(ctx context.Context, visitID string) (*responses.Diagnosis, error)
	DiagnoseVisit(ctx context.Context, visit *models.Visit) *models.Diagnosis
}
