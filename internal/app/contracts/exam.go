package contracts

import (
	"context"
	"podium-service/internal/pkg/dto/requests"
	"podium-service/internal/pkg/dto/responses"
)

type ExamUsecase interface {
	GetExamView(ctx context.Context, visitID string) (*responses.ExamView, error)
	SaveAssessment(ctx context.Context, visitID string, request *requests.SaveAssessment) (*responses.SavedAssessment, error)
	StepMeasurement(ctx context.Context, visitID string, request *requests.StepMeasurement) (*responses.SavedAssessment, error)
	ToggleTestResult(ctx context.Context, visitID string, request *requests.ToggleTestResult) (*responses.SavedAssessment, error)
}
