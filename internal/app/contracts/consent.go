package contracts

import (
	"context"
	"podium-service/internal/app/models"
)

type ConsentUsecase interface {
	RecordConsent(ctx context.Context, visit *models.Visit, email, signatureDataURL, privacyText string) (*models.Consent, error)
	PrivacyText() string
}
