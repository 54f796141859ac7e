package contracts

import (
	"context"
	"podium-service/internal/app/models"
	"podium-service/internal/pkg/dto/requests"
	"podium-service/internal/pkg/dto/responses"
)

type IntakeUsecase interface {
	GetIntake(ctx context.Context, visitID string) (*responses.IntakeView, error)
	SetAnswer(ctx context.Context, visitID, fieldID string, request *requests.SetIntakeAnswer) (*responses.IntakeView, error)
	ToggleOption(ctx context.Context, visitID, fieldID string, request *requests.ToggleIntakeOption) (*responses.IntakeView, error)
	GoNext(ctx context.Context, visitID string) (*responses.IntakeView, error)
	GoPrev(ctx context.Context, visitID string) (*responses.IntakeView, error)
	UpdateConsent(ctx context.Context, visitID string, request *requests.UpdateIntakeConsent) (*responses.IntakeView, error)
	Submit(ctx context.Context, visitID string) (*responses.IntakeSubmitted, error)
	Close()
}

type IntakeDraftStore interface {
	Load(ctx context.Context, visitID string) (*models.IntakeDraft, error)
	Save(ctx context.Context, visitID string, draft *models.IntakeDraft) error
	Delete(ctx context.Context, visitID string) error
}
