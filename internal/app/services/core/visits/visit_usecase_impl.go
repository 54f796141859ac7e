package visits

import (
	"context"
	"podium-service/internal/app/contracts"
	"podium-service/internal/app/models"
	"podium-service/internal/pkg/constvars"
	"podium-service/internal/pkg/dto/requests"
	"podium-service/internal/pkg/dto/responses"
	"podium-service/internal/pkg/exceptions"
	"podium-service/internal/pkg/utils"
	"strings"
	"sync"

	"go.uber.org/zap"
)

type visitUsecase struct {
	VisitRepository contracts.VisitRepository
	Log             *zap.Logger
}

var (
	visitUsecaseInstance contracts.VisitUsecase
	onceVisitUsecase     sync.Once
)

func NewVisitUsecase(visitRepository contracts.VisitRepository, logger *zap.Logger) contracts.VisitUsecase {
	onceVisitUsecase.Do(func() {
		visitUsecaseInstance = newVisitUsecase(visitRepository, logger)
	})
	return visitUsecaseInstance
}

func newVisitUsecase(visitRepository contracts.VisitRepository, logger *zap.Logger) *visitUsecase {
	return &visitUsecase{
		VisitRepository: visitRepository,
		Log:             logger,
	}
}

func (uc *visitUsecase) CreateVisit(ctx context.Context, request *requests.CreateVisit) (*responses.VisitSummary, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("visitUsecase.CreateVisit called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	visit, err := uc.GetOrCreateVisit(ctx, utils.GenerateVisitID(), request.BodyRegion)
	if err != nil {
		return nil, err
	}

	summary := ToSummary(visit, utils.GetStaffRole(ctx))
	uc.Log.Info("visitUsecase.CreateVisit succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingVisitIDKey, visit.ID),
	)
	return &summary, nil
}

// GetOrCreateVisit fills an empty body region when one is given.
func (uc *visitUsecase) GetOrCreateVisit(ctx context.Context, visitID, bodyRegion string) (*models.Visit, error) {
	requestID := utils.GetRequestID(ctx)

	visit, err := uc.VisitRepository.GetOrCreate(ctx, visitID)
	if err != nil {
		uc.Log.Error("visitUsecase.GetOrCreateVisit error loading visit",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingVisitIDKey, visitID),
			zap.Error(err),
		)
		return nil, err
	}

	bodyRegion = strings.TrimSpace(bodyRegion)
	if bodyRegion != "" && visit.BodyRegion == "" {
		visit.BodyRegion = bodyRegion
		if err := uc.VisitRepository.Save(ctx, visit); err != nil {
			uc.Log.Error("visitUsecase.GetOrCreateVisit error saving body region",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingVisitIDKey, visitID),
				zap.Error(err),
			)
			return nil, err
		}
	}
	return visit, nil
}

func (uc *visitUsecase) ListVisits(ctx context.Context) ([]responses.VisitSummary, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("visitUsecase.ListVisits called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	visits, err := uc.VisitRepository.List(ctx)
	if err != nil {
		uc.Log.Error("visitUsecase.ListVisits error fetching visits",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	role := utils.GetStaffRole(ctx)
	response := make([]responses.VisitSummary, len(visits))
	for i := range visits {
		response[i] = ToSummary(&visits[i], role)
	}

	uc.Log.Info("visitUsecase.ListVisits succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(response)),
	)
	return response, nil
}

func (uc *visitUsecase) GetVisit(ctx context.Context, visitID string) (*responses.VisitDetail, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("visitUsecase.GetVisit called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingVisitIDKey, visitID),
	)

	visit, err := uc.findVisit(ctx, visitID)
	if err != nil {
		return nil, err
	}

	detail := ToDetail(visit, utils.GetStaffRole(ctx))
	uc.Log.Info("visitUsecase.GetVisit succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingVisitIDKey, visitID),
	)
	return &detail, nil
}

func (uc *visitUsecase) SetBodyRegion(ctx context.Context, visitID string, request *requests.UpdateBodyRegion) (*responses.VisitSummary, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("visitUsecase.SetBodyRegion called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingVisitIDKey, visitID),
		zap.String(constvars.LoggingBodyRegionKey, request.BodyRegion),
	)

	visit, err := uc.findVisit(ctx, visitID)
	if err != nil {
		return nil, err
	}

	visit.BodyRegion = strings.TrimSpace(request.BodyRegion)
	if err := uc.VisitRepository.Save(ctx, visit); err != nil {
		uc.Log.Error("visitUsecase.SetBodyRegion error saving visit",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingVisitIDKey, visitID),
			zap.Error(err),
		)
		return nil, err
	}

	summary := ToSummary(visit, utils.GetStaffRole(ctx))
	return &summary, nil
}

func (uc *visitUsecase) findVisit(ctx context.Context, visitID string) (*models.Visit, error) {
	visit, err := uc.VisitRepository.FindByID(ctx, visitID)
	if err != nil {
		uc.Log.Error("visitUsecase.findVisit error fetching visit",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingVisitIDKey, visitID),
			zap.Error(err),
		)
		return nil, err
	}
	if visit == nil {
		return nil, exceptions.ErrVisitNotFound(nil, visitID)
	}
	return visit, nil
}
