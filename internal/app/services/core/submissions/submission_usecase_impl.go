package submissions

import (
	"context"
	"fmt"
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

const submissionLockTTL = 2 * time.Minute

type submissionUsecase struct {
	VisitRepository  contracts.VisitRepository
	Locker           contracts.LockerService
	DiagnosisUsecase contracts.DiagnosisUsecase
	ConsentUsecase   contracts.ConsentUsecase
	ReportUsecase    contracts.ReportUsecase
	Log              *zap.Logger
}

var (
	submissionUsecaseInstance contracts.SubmissionUsecase
	onceSubmissionUsecase     sync.Once
)

func NewSubmissionUsecase(
	visitRepository contracts.VisitRepository,
	locker contracts.LockerService,
	diagnosisUsecase contracts.DiagnosisUsecase,
	consentUsecase contracts.ConsentUsecase,
	reportUsecase contracts.ReportUsecase,
	logger *zap.Logger,
) contracts.SubmissionUsecase {
	onceSubmissionUsecase.Do(func() {
		submissionUsecaseInstance = newSubmissionUsecase(visitRepository, locker, diagnosisUsecase, consentUsecase, reportUsecase, logger)
	})
	return submissionUsecaseInstance
}

func newSubmissionUsecase(
	visitRepository contracts.VisitRepository,
	locker contracts.LockerService,
	diagnosisUsecase contracts.DiagnosisUsecase,
	consentUsecase contracts.ConsentUsecase,
	reportUsecase contracts.ReportUsecase,
	logger *zap.Logger,
) *submissionUsecase {
	return &submissionUsecase{
		VisitRepository:  visitRepository,
		Locker:           locker,
		DiagnosisUsecase: diagnosisUsecase,
		ConsentUsecase:   consentUsecase,
		ReportUsecase:    reportUsecase,
		Log:              logger,
	}
}

// Run executes every step that has not succeeded yet, in order, and stops
// at the first failure. Step failures are reported in the status, only
// infrastructure errors are returned.
func (uc *submissionUsecase) Run(ctx context.Context, visitID string, payload models.SubmissionPayload) (*responses.SubmissionStatus, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("submissionUsecase.Run called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingVisitIDKey, visitID),
	)

	release, err := uc.lock(ctx, visitID)
	if err != nil {
		return nil, err
	}
	defer release()

	visit, err := uc.loadVisit(ctx, visitID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if visit.Submission == nil {
		visit.Submission = models.NewSubmission(payload, now)
	} else if step := visit.Submission.Step(models.SubmissionStepPersistIntake); step != nil && step.Status != models.SubmissionStatusSucceeded {
		visit.Submission.Payload = payload
	}
	if err := uc.VisitRepository.Save(ctx, visit); err != nil {
		uc.Log.Error("submissionUsecase.Run error saving submission",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingVisitIDKey, visitID),
			zap.Error(err),
		)
		return nil, err
	}

	for _, name := range models.SubmissionStepOrder {
		step := visit.Submission.Step(name)
		if step == nil || step.Status == models.SubmissionStatusSucceeded {
			continue
		}
		succeeded, err := uc.execute(ctx, visit, name)
		if err != nil {
			return nil, err
		}
		if !succeeded {
			break
		}
	}

	uc.Log.Info("submissionUsecase.Run finished",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingVisitIDKey, visitID),
		zap.Bool(constvars.LoggingSuccessKey, visit.Submission.Completed()),
	)
	return toStatus(visit), nil
}

func (uc *submissionUsecase) RetryStep(ctx context.Context, visitID, stepName string) (*responses.SubmissionStatus, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("submissionUsecase.RetryStep called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingVisitIDKey, visitID),
		zap.String(constvars.LoggingSubmissionStepKey, stepName),
	)

	if uc.stepFor(stepName) == nil {
		return nil, exceptions.ErrSubmissionStepUnknown(nil, stepName)
	}

	release, err := uc.lock(ctx, visitID)
	if err != nil {
		return nil, err
	}
	defer release()

	visit, err := uc.loadVisit(ctx, visitID)
	if err != nil {
		return nil, err
	}
	if visit.Submission == nil {
		return nil, exceptions.ErrSubmissionStepBlocked(nil, stepName)
	}

	for _, step := range visit.Submission.Steps {
		if step.Name == stepName {
			break
		}
		if step.Status != models.SubmissionStatusSucceeded {
			return nil, exceptions.ErrSubmissionStepBlocked(nil, stepName)
		}
	}

	if visit.Submission.Step(stepName).Status == models.SubmissionStatusSucceeded {
		return toStatus(visit), nil
	}

	if _, err := uc.execute(ctx, visit, stepName); err != nil {
		return nil, err
	}
	return toStatus(visit), nil
}

func (uc *submissionUsecase) GetSubmission(ctx context.Context, visitID string) (*responses.SubmissionStatus, error) {
	uc.Log.Info("submissionUsecase.GetSubmission called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingVisitIDKey, visitID),
	)

	visit, err := uc.loadVisit(ctx, visitID)
	if err != nil {
		return nil, err
	}
	return toStatus(visit), nil
}

// execute runs a single step and persists its outcome. The boolean reports
// whether the step succeeded.
func (uc *submissionUsecase) execute(ctx context.Context, visit *models.Visit, name string) (bool, error) {
	requestID := utils.GetRequestID(ctx)
	step := visit.Submission.Step(name)

	stepErr := utils.LogOperation(uc.Log, "submission."+name, requestID, func() error {
		return uc.stepFor(name)(ctx, visit, &visit.Submission.Payload)
	})

	now := time.Now().UTC()
	step.Attempts++
	step.UpdatedAt = now
	if stepErr != nil {
		step.Status = models.SubmissionStatusFailed
		step.LastError = stepErr.Error()
		uc.Log.Warn("submissionUsecase.execute step failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingVisitIDKey, visit.ID),
			zap.String(constvars.LoggingSubmissionStepKey, name),
			zap.Int("attempts", step.Attempts),
			zap.Error(stepErr),
		)
	} else {
		step.Status = models.SubmissionStatusSucceeded
		step.LastError = ""
		if visit.Submission.Completed() && visit.Submission.CompletedAt == nil {
			visit.Submission.CompletedAt = &now
		}
	}

	if err := uc.VisitRepository.Save(ctx, visit); err != nil {
		uc.Log.Error("submissionUsecase.execute error saving step outcome",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingVisitIDKey, visit.ID),
			zap.String(constvars.LoggingSubmissionStepKey, name),
			zap.Error(err),
		)
		return false, err
	}
	return stepErr == nil, nil
}

func (uc *submissionUsecase) lock(ctx context.Context, visitID string) (func(), error) {
	key := fmt.Sprintf(constvars.RedisKeySubmissionLockFormat, visitID)
	acquired, lockValue, err := uc.Locker.TryLock(ctx, key, submissionLockTTL)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, exceptions.ErrSubmissionInProgress(nil, visitID)
	}

	return func() {
		if err := uc.Locker.Unlock(context.Background(), key, lockValue); err != nil {
			uc.Log.Warn("submissionUsecase.lock error releasing lock",
				zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
				zap.String(constvars.LoggingRedisKey, key),
				zap.Error(err),
			)
		}
	}, nil
}

func (uc *submissionUsecase) loadVisit(ctx context.Context, visitID string) (*models.Visit, error) {
	visit, err := uc.VisitRepository.FindByID(ctx, visitID)
	if err != nil {
		uc.Log.Error("submissionUsecase.loadVisit error fetching visit",
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

func toStatus(visit *models.Visit) *responses.SubmissionStatus {
	status := &responses.SubmissionStatus{VisitID: visit.ID}
	if visit.Submission == nil {
		status.Steps = make([]models.SubmissionStep, 0, len(models.SubmissionStepOrder))
		for _, name := range models.SubmissionStepOrder {
			status.Steps = append(status.Steps, models.SubmissionStep{Name: name, Status: models.SubmissionStatusPending})
		}
		return status
	}

	status.Steps = append([]models.SubmissionStep{}, visit.Submission.Steps...)
	status.Completed = visit.Submission.Completed()
	status.StartedAt = visit.Submission.StartedAt
	status.CompletedAt = visit.Submission.CompletedAt
	return status
}
