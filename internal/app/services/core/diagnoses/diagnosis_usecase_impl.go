package diagnoses

import (
	"context"
	"podium-service/internal/app/contracts"
	"podium-service/internal/app/models"
	"podium-service/internal/pkg/constvars"
	"podium-service/internal/pkg/dto/responses"
	"podium-service/internal/pkg/exceptions"
	"podium-service/internal/pkg/utils"
	"sync"
	"time"

	"go.uber.org/zap"
)

type diagnosisUsecase struct {
	VisitRepository contracts.VisitRepository
	Provider        contracts.DiagnosisProvider
	Fallback        contracts.DiagnosisProvider
	Log             *zap.Logger
}

var (
	diagnosisUsecaseInstance contracts.DiagnosisUsecase
	onceDiagnosisUsecase     sync.Once
)

func NewDiagnosisUsecase(
	visitRepository contracts.VisitRepository,
	provider contracts.DiagnosisProvider,
	logger *zap.Logger,
) contracts.DiagnosisUsecase {
	onceDiagnosisUsecase.Do(func() {
		diagnosisUsecaseInstance = newDiagnosisUsecase(visitRepository, provider, logger)
	})
	return diagnosisUsecaseInstance
}

func newDiagnosisUsecase(
	visitRepository contracts.VisitRepository,
	provider contracts.DiagnosisProvider,
	logger *zap.Logger,
) *diagnosisUsecase {
	fallback := NewHeuristicProvider()
	if provider == nil {
		provider = fallback
	}
	return &diagnosisUsecase{
		VisitRepository: visitRepository,
		Provider:        provider,
		Fallback:        fallback,
		Log:             logger,
	}
}

func (uc *diagnosisUsecase) RequestDiagnosis(ctx context.Context, visitID string) (*responses.Diagnosis, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("diagnosisUsecase.RequestDiagnosis called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingVisitIDKey, visitID),
	)

	visit, err := uc.VisitRepository.FindByID(ctx, visitID)
	if err != nil {
		uc.Log.Error("diagnosisUsecase.RequestDiagnosis error fetching visit",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingVisitIDKey, visitID),
			zap.Error(err),
		)
		return nil, err
	}
	if visit == nil {
		return nil, exceptions.ErrVisitNotFound(nil, visitID)
	}

	visit.Diagnosis = uc.DiagnoseVisit(ctx, visit)
	if err := uc.VisitRepository.Save(ctx, visit); err != nil {
		uc.Log.Error("diagnosisUsecase.RequestDiagnosis error saving visit",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingVisitIDKey, visitID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("diagnosisUsecase.RequestDiagnosis succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingVisitIDKey, visitID),
		zap.String(constvars.LoggingProviderKey, visit.Diagnosis.Provider),
	)
	return &responses.Diagnosis{
		VisitID:    visit.ID,
		Provider:   visit.Diagnosis.Provider,
		Candidates: visit.Diagnosis.Candidates,
	}, nil
}

// DiagnoseVisit never fails: provider errors fall back to the heuristic.
func (uc *diagnosisUsecase) DiagnoseVisit(ctx context.Context, visit *models.Visit) *models.Diagnosis {
	requestID := utils.GetRequestID(ctx)

	answers := models.Answers{}
	if visit.Intake != nil {
		answers = visit.Intake.Answers
	}

	provider := uc.Provider
	candidates, err := provider.Diagnose(ctx, visit.BodyRegion, answers)
	if err != nil || len(candidates) == 0 {
		uc.Log.Warn("diagnosisUsecase.DiagnoseVisit provider failed, using fallback",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingVisitIDKey, visit.ID),
			zap.String(constvars.LoggingProviderKey, provider.Name()),
			zap.Error(err),
		)
		utils.LogBusinessEvent(uc.Log, constvars.BusinessEventDiagnosisFallback, requestID,
			zap.String(constvars.LoggingVisitIDKey, visit.ID),
			zap.String(constvars.LoggingProviderKey, provider.Name()),
		)
		provider = uc.Fallback
		candidates, _ = provider.Diagnose(ctx, visit.BodyRegion, answers)
	}

	return &models.Diagnosis{
		Candidates: candidates,
		Provider:   provider.Name(),
		CreatedAt:  time.Now().UTC(),
	}
}
