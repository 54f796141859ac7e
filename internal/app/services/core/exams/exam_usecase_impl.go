package exams

import (
	"context"
	"fmt"
	"podium-service/internal/app/contracts"
	"podium-service/internal/app/models"
	"podium-service/internal/app/services/core/blueprints"
	"podium-service/internal/app/services/core/visits"
	"podium-service/internal/pkg/constvars"
	"podium-service/internal/pkg/dto/requests"
	"podium-service/internal/pkg/dto/responses"
	"podium-service/internal/pkg/exceptions"
	"podium-service/internal/pkg/utils"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

const (
	groupActiveROM    = "active_rom"
	groupStrength     = "strength"
	groupDynamicTests = "dynamic_tests"
	groupOrthoTests   = "ortho_tests"
	groupNeuroTests   = "neuro_tests"
)

type examUsecase struct {
	VisitRepository contracts.VisitRepository
	Log             *zap.Logger
}

var (
	examUsecaseInstance contracts.ExamUsecase
	onceExamUsecase     sync.Once
)

func NewExamUsecase(visitRepository contracts.VisitRepository, logger *zap.Logger) contracts.ExamUsecase {
	onceExamUsecase.Do(func() {
		examUsecaseInstance = newExamUsecase(visitRepository, logger)
	})
	return examUsecaseInstance
}

func newExamUsecase(visitRepository contracts.VisitRepository, logger *zap.Logger) *examUsecase {
	return &examUsecase{
		VisitRepository: visitRepository,
		Log:             logger,
	}
}

// GetExamView recomputes the blueprint on every call, it is never stored.
func (uc *examUsecase) GetExamView(ctx context.Context, visitID string) (*responses.ExamView, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("examUsecase.GetExamView called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingVisitIDKey, visitID),
	)

	visit, err := uc.findVisit(ctx, visitID)
	if err != nil {
		return nil, err
	}

	ddx := append([]models.DdxCandidate{}, visit.DdxCandidates()...)
	resolved := blueprints.BuildResolved(visit.BodyRegion, ddx)

	view := &responses.ExamView{
		Visit:             visits.ToSummary(visit, utils.GetStaffRole(ctx)),
		Ddx:               ddx,
		Blueprint:         resolved.Blueprint,
		Scales:            resolved.Scales,
		TestResultOptions: TestResultOptions(),
		Assessment:        visit.Assessment,
		Asymmetries:       map[string]responses.Asymmetry{},
	}
	if visit.Assessment != nil {
		view.Asymmetries = assessmentAsymmetries(visit.Assessment)
	}

	uc.Log.Info("examUsecase.GetExamView succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingVisitIDKey, visitID),
		zap.Strings(constvars.LoggingTagsKey, resolved.Tags),
	)
	return view, nil
}

func (uc *examUsecase) SaveAssessment(ctx context.Context, visitID string, request *requests.SaveAssessment) (*responses.SavedAssessment, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("examUsecase.SaveAssessment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingVisitIDKey, visitID),
	)

	assessment, err := buildAssessment(request)
	if err != nil {
		return nil, err
	}
	assessment.UpdatedBy = utils.GetStaffUsername(ctx)
	assessment.UpdatedAt = time.Now().UTC()

	visit, err := uc.findVisit(ctx, visitID)
	if err != nil {
		return nil, err
	}
	visit.Assessment = assessment
	if err := uc.VisitRepository.Save(ctx, visit); err != nil {
		uc.Log.Error("examUsecase.SaveAssessment error saving visit",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingVisitIDKey, visitID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("examUsecase.SaveAssessment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingVisitIDKey, visitID),
	)
	return &responses.SavedAssessment{
		VisitID:     visitID,
		Assessment:  *assessment,
		Asymmetries: assessmentAsymmetries(assessment),
	}, nil
}

// StepMeasurement moves a single ROM, strength or dynamic value by delta and
// keeps the rest of the stored assessment.
func (uc *examUsecase) StepMeasurement(ctx context.Context, visitID string, request *requests.StepMeasurement) (*responses.SavedAssessment, error) {
	uc.Log.Info("examUsecase.StepMeasurement called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingVisitIDKey, visitID),
		zap.String("group", request.Group),
		zap.String("key", request.Key),
	)

	return uc.updateAssessment(ctx, visitID, "examUsecase.StepMeasurement", func(assessment *models.Assessment) error {
		switch request.Group {
		case groupActiveROM:
			assessment.ActiveROM = StepMeasurement(assessment.ActiveROM, request.Key, request.Delta)
		case groupStrength:
			assessment.Strength = StepMeasurement(assessment.Strength, request.Key, request.Delta)
		case groupDynamicTests:
			assessment.DynamicTests = StepMeasurement(assessment.DynamicTests, request.Key, request.Delta)
		default:
			return exceptions.ErrAssessmentInvalid(fmt.Errorf("unknown group %q", request.Group), "group")
		}
		return nil
	})
}

// ToggleTestResult selects a result for one ortho or neuro test. Selecting
// the stored result again clears it.
func (uc *examUsecase) ToggleTestResult(ctx context.Context, visitID string, request *requests.ToggleTestResult) (*responses.SavedAssessment, error) {
	uc.Log.Info("examUsecase.ToggleTestResult called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingVisitIDKey, visitID),
		zap.String("group", request.Group),
		zap.String("key", request.Key),
	)

	if !isTestResult(request.Result) {
		return nil, exceptions.ErrAssessmentInvalid(fmt.Errorf("unknown result %q", request.Result), request.Group+"."+request.Key)
	}

	return uc.updateAssessment(ctx, visitID, "examUsecase.ToggleTestResult", func(assessment *models.Assessment) error {
		switch request.Group {
		case groupOrthoTests:
			assessment.OrthoTests = ToggleTestResult(assessment.OrthoTests, request.Key, request.Result)
		case groupNeuroTests:
			assessment.NeuroTests = ToggleTestResult(assessment.NeuroTests, request.Key, request.Result)
		default:
			return exceptions.ErrAssessmentInvalid(fmt.Errorf("unknown group %q", request.Group), "group")
		}
		return nil
	})
}

// updateAssessment applies fn to a copy of the stored assessment, or to an
// empty one, and persists the result.
func (uc *examUsecase) updateAssessment(ctx context.Context, visitID, operation string, fn func(assessment *models.Assessment) error) (*responses.SavedAssessment, error) {
	requestID := utils.GetRequestID(ctx)

	visit, err := uc.findVisit(ctx, visitID)
	if err != nil {
		return nil, err
	}

	assessment := &models.Assessment{}
	if visit.Assessment != nil {
		stored := *visit.Assessment
		assessment = &stored
	}
	if err := fn(assessment); err != nil {
		return nil, err
	}
	assessment.UpdatedBy = utils.GetStaffUsername(ctx)
	assessment.UpdatedAt = time.Now().UTC()

	visit.Assessment = assessment
	if err := uc.VisitRepository.Save(ctx, visit); err != nil {
		uc.Log.Error(operation+" error saving visit",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingVisitIDKey, visitID),
			zap.Error(err),
		)
		return nil, err
	}

	return &responses.SavedAssessment{
		VisitID:     visitID,
		Assessment:  *assessment,
		Asymmetries: assessmentAsymmetries(assessment),
	}, nil
}

func (uc *examUsecase) findVisit(ctx context.Context, visitID string) (*models.Visit, error) {
	visit, err := uc.VisitRepository.FindByID(ctx, visitID)
	if err != nil {
		uc.Log.Error("examUsecase.findVisit error fetching visit",
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

func buildAssessment(request *requests.SaveAssessment) (*models.Assessment, error) {
	orthoTests, err := testResults(groupOrthoTests, request.OrthoTests)
	if err != nil {
		return nil, err
	}
	neuroTests, err := testResults(groupNeuroTests, request.NeuroTests)
	if err != nil {
		return nil, err
	}

	scores := make(map[string]float64, len(request.Scores))
	for scaleID, score := range request.Scores {
		if !blueprints.IsKnownScale(scaleID) {
			return nil, exceptions.ErrAssessmentInvalid(fmt.Errorf("unknown scale %q", scaleID), "scores."+scaleID)
		}
		scores[scaleID] = score
	}

	return &models.Assessment{
		ActiveROM:      measurements(request.ActiveROM),
		Strength:       measurements(request.Strength),
		OrthoTests:     orthoTests,
		NeuroTests:     neuroTests,
		DynamicTests:   measurements(request.DynamicTests),
		Scores:         scores,
		ClinicianNotes: strings.TrimSpace(request.ClinicianNotes),
		Hypothesis:     strings.TrimSpace(request.Hypothesis),
	}, nil
}

func measurements(values map[string]float64) map[string]float64 {
	clamped := make(map[string]float64, len(values))
	for key, value := range values {
		clamped[key] = clampMeasurement(value)
	}
	return clamped
}

func testResults(field string, input map[string]requests.TestResult) (map[string]models.TestResult, error) {
	results := make(map[string]models.TestResult, len(input))
	for key, entry := range input {
		if entry.Result != "" && !isTestResult(entry.Result) {
			return nil, exceptions.ErrAssessmentInvalid(fmt.Errorf("unknown result %q", entry.Result), field+"."+key)
		}
		result := models.TestResult{Result: entry.Result}
		if entry.Pain != nil {
			pain := clampPain(*entry.Pain)
			result.Pain = &pain
		}
		if result.Result == "" && result.Pain == nil {
			continue
		}
		results[key] = result
	}
	return results, nil
}

func assessmentAsymmetries(assessment *models.Assessment) map[string]responses.Asymmetry {
	asymmetries := make(map[string]responses.Asymmetry)
	Asymmetries(groupActiveROM, assessment.ActiveROM, asymmetries)
	Asymmetries(groupStrength, assessment.Strength, asymmetries)
	return asymmetries
}
