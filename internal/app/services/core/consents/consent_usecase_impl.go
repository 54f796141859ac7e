package consents

import (
	"context"
	"encoding/base64"
	"fmt"
	"podium-service/internal/app/contracts"
	"podium-service/internal/app/models"
	"podium-service/internal/pkg/constvars"
	"podium-service/internal/pkg/exceptions"
	"podium-service/internal/pkg/utils"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

const pngDataURLPrefix = "data:image/png;base64,"

type consentUsecase struct {
	Storage     contracts.Storage
	BucketName  string
	privacyText string
	Log         *zap.Logger
}

var (
	consentUsecaseInstance contracts.ConsentUsecase
	onceConsentUsecase     sync.Once
)

func NewConsentUsecase(storage contracts.Storage, bucketName, privacyText string, logger *zap.Logger) contracts.ConsentUsecase {
	onceConsentUsecase.Do(func() {
		consentUsecaseInstance = newConsentUsecase(storage, bucketName, privacyText, logger)
	})
	return consentUsecaseInstance
}

func newConsentUsecase(storage contracts.Storage, bucketName, privacyText string, logger *zap.Logger) *consentUsecase {
	return &consentUsecase{
		Storage:     storage,
		BucketName:  bucketName,
		privacyText: privacyText,
		Log:         logger,
	}
}

func (uc *consentUsecase) PrivacyText() string {
	return uc.privacyText
}

// RecordConsent uploads the signature and stores the consent on the visit.
// The caller persists the visit.
func (uc *consentUsecase) RecordConsent(ctx context.Context, visit *models.Visit, email, signatureDataURL, privacyText string) (*models.Consent, error) {
	requestID := utils.GetRequestID(ctx)
	email = strings.TrimSpace(email)
	if visit == nil || visit.ID == "" || email == "" || signatureDataURL == "" {
		return nil, exceptions.ErrConsentIncomplete(nil)
	}
	uc.Log.Info("consentUsecase.RecordConsent called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingVisitIDKey, visit.ID),
	)

	image, err := DecodePNGDataURL(signatureDataURL)
	if err != nil {
		return nil, exceptions.ErrSignatureDecode(err)
	}

	objectName := fmt.Sprintf(constvars.MinioSignatureObjectFormat, visit.ID)
	objectName, err = uc.Storage.UploadPNG(ctx, image, uc.BucketName, objectName)
	if err != nil {
		uc.Log.Error("consentUsecase.RecordConsent error uploading signature",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingVisitIDKey, visit.ID),
			zap.Error(err),
		)
		return nil, err
	}

	if privacyText == "" {
		privacyText = uc.privacyText
	}
	consent := &models.Consent{
		Email:           email,
		SignatureObject: objectName,
		Text:            privacyText,
		Timestamp:       time.Now().UTC(),
	}
	visit.Consent = consent
	visit.Patient.Email = email

	uc.Log.Info("consentUsecase.RecordConsent succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingVisitIDKey, visit.ID),
	)
	return consent, nil
}

func DecodePNGDataURL(dataURL string) ([]byte, error) {
	if !strings.HasPrefix(dataURL, pngDataURLPrefix) {
		return nil, fmt.Errorf("signature is not a PNG data URL")
	}
	image, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(dataURL, pngDataURLPrefix))
	if err != nil {
		return nil, err
	}
	if len(image) == 0 {
		return nil, fmt.Errorf("signature image is empty")
	}
	return image, nil
}
