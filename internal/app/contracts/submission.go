package contracts

import (
	"context"
	"podium-service/internal/app/models"
	"podium-service/internal/pkg/dto/responses"
)

type SubmissionUsecase interface {
	Run(ctx context.Context, visitID string, payload models.SubmissionPayload) (*responses.SubmissionStatus, error)
	RetryStep(ctx context.Context, visitID, step string) (*responses.SubmissionStatus, error)
	GetSubmission(ctx context.Context, visitID string) (*responses.SubmissionStatus, error)
}
