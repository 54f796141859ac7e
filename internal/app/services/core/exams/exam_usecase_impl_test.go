package exams

import (
	"context"
	"errors"
	"podium-service/internal/app/models"
	"podium-service/internal/app/services/core/visits"
	"podium-service/internal/pkg/constvars"
	"podium-service/internal/pkg/dto/requests"
	"podium-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func fisioContext() context.Context {
	ctx := context.WithValue(context.Background(), constvars.CONTEXT_STAFF_ROLE_KEY, constvars.StaffRoleFisio)
	return context.WithValue(ctx, constvars.CONTEXT_STAFF_USERNAME_KEY, "laura")
}

func seededUsecase(t *testing.T) *examUsecase {
	t.Helper()
	repo := visits.NewVisitMemoryRepository()
	visit := &models.Visit{
		ID:         "v1",
		BodyRegion: "Hombro derecho",
		Patient:    models.Patient{FirstName: "Ana", Email: "ana@example.com"},
		Diagnosis: &models.Diagnosis{Candidates: []models.DdxCandidate{
			{Label: "Tendinopatía del supraespinoso", Probability: 55},
		}},
	}
	require.NoError(t, repo.Save(context.Background(), visit))
	return newExamUsecase(repo, zap.NewNop())
}

func intPtr(v int) *int {
	return &v
}

func TestExamUsecase_GetExamView(t *testing.T) {
	uc := seededUsecase(t)

	view, err := uc.GetExamView(fisioContext(), "v1")
	require.NoError(t, err)
	assert.Empty(t, view.Visit.PatientEmail)
	assert.Equal(t, []string{"Positivo", "Negativo", "No concluyente", "No realizado"}, view.TestResultOptions)
	assert.Len(t, view.Blueprint.RomRows, 4)
	assert.ElementsMatch(t, []string{"SPADI", "DASH"}, view.Blueprint.RecommendedScaleIDs)
	assert.Len(t, view.Scales, 2)
	assert.Nil(t, view.Assessment)
	assert.NotNil(t, view.Asymmetries)

	_, err = uc.GetExamView(fisioContext(), "missing")
	assert.Error(t, err)
}

func TestExamUsecase_SaveAssessment(t *testing.T) {
	uc := seededUsecase(t)

	saved, err := uc.SaveAssessment(fisioContext(), "v1", &requests.SaveAssessment{
		ActiveROM: map[string]float64{"flex_L": 170, "flex_R": 136, "abd_L": 2000},
		Strength:  map[string]float64{"er_L": 5, "er_R": 5},
		OrthoTests: map[string]requests.TestResult{
			"jobe":    {Result: "Positivo", Pain: intPtr(14)},
			"hawkins": {Pain: intPtr(-2)},
			"empty":   {},
		},
		Scores:         map[string]float64{"SPADI": 42},
		ClinicianNotes: "  dolor al elevar  ",
	})
	require.NoError(t, err)

	assessment := saved.Assessment
	assert.Equal(t, "laura", assessment.UpdatedBy)
	assert.Equal(t, 999.0, assessment.ActiveROM["abd_L"])
	assert.Equal(t, 10, *assessment.OrthoTests["jobe"].Pain)
	assert.Equal(t, 0, *assessment.OrthoTests["hawkins"].Pain)
	assert.NotContains(t, assessment.OrthoTests, "empty")
	assert.Equal(t, "dolor al elevar", assessment.ClinicianNotes)
	assert.Equal(t, 20, saved.Asymmetries["active_rom.flex"].Percent)
	assert.Equal(t, SideLeft, saved.Asymmetries["active_rom.flex"].Greater)
	assert.Equal(t, SideEqual, saved.Asymmetries["strength.er"].Greater)

	view, err := uc.GetExamView(fisioContext(), "v1")
	require.NoError(t, err)
	require.NotNil(t, view.Assessment)
	assert.Equal(t, 42.0, view.Assessment.Scores["SPADI"])
	assert.Contains(t, view.Asymmetries, "active_rom.flex")
}

func TestExamUsecase_SaveAssessmentRejects(t *testing.T) {
	uc := seededUsecase(t)

	tests := []struct {
		name    string
		request *requests.SaveAssessment
	}{
		{"unknown scale", &requests.SaveAssessment{Scores: map[string]float64{"WOMAC": 10}}},
		{"unknown ortho result", &requests.SaveAssessment{OrthoTests: map[string]requests.TestResult{"jobe": {Result: "Quizá"}}}},
		{"unknown neuro result", &requests.SaveAssessment{NeuroTests: map[string]requests.TestResult{"spurling": {Result: "positive"}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.SaveAssessment(fisioContext(), "v1", tt.request)
			var customErr *exceptions.CustomError
			require.True(t, errors.As(err, &customErr))
			assert.Equal(t, constvars.StatusUnprocessableEntity, customErr.StatusCode)
		})
	}
}

func TestExamUsecase_StepMeasurement(t *testing.T) {
	uc := seededUsecase(t)
	ctx := fisioContext()

	_, err := uc.SaveAssessment(ctx, "v1", &requests.SaveAssessment{
		ActiveROM:      map[string]float64{"flex_L": 170},
		ClinicianNotes: "dolor al elevar",
	})
	require.NoError(t, err)

	saved, err := uc.StepMeasurement(ctx, "v1", &requests.StepMeasurement{Group: "active_rom", Key: "flex_R", Delta: 5})
	require.NoError(t, err)
	assert.Equal(t, 5.0, saved.Assessment.ActiveROM["flex_R"])
	assert.Equal(t, 170.0, saved.Assessment.ActiveROM["flex_L"])
	assert.Equal(t, "dolor al elevar", saved.Assessment.ClinicianNotes)
	assert.Contains(t, saved.Asymmetries, "active_rom.flex")

	saved, err = uc.StepMeasurement(ctx, "v1", &requests.StepMeasurement{Group: "strength", Key: "er_L", Delta: -998})
	require.NoError(t, err)
	saved, err = uc.StepMeasurement(ctx, "v1", &requests.StepMeasurement{Group: "strength", Key: "er_L", Delta: -5})
	require.NoError(t, err)
	assert.Equal(t, -999.0, saved.Assessment.Strength["er_L"])

	view, err := uc.GetExamView(ctx, "v1")
	require.NoError(t, err)
	require.NotNil(t, view.Assessment)
	assert.Equal(t, 5.0, view.Assessment.ActiveROM["flex_R"])
	assert.Equal(t, "laura", view.Assessment.UpdatedBy)

	t.Run("unknown group", func(t *testing.T) {
		_, err := uc.StepMeasurement(ctx, "v1", &requests.StepMeasurement{Group: "scores", Key: "SPADI", Delta: 1})
		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusUnprocessableEntity, customErr.StatusCode)
	})

	t.Run("missing visit", func(t *testing.T) {
		_, err := uc.StepMeasurement(ctx, "missing", &requests.StepMeasurement{Group: "active_rom", Key: "flex_L", Delta: 1})
		assert.Error(t, err)
	})
}

func TestExamUsecase_ToggleTestResult(t *testing.T) {
	uc := seededUsecase(t)
	ctx := fisioContext()

	saved, err := uc.ToggleTestResult(ctx, "v1", &requests.ToggleTestResult{Group: "ortho_tests", Key: "jobe", Result: ResultPositive})
	require.NoError(t, err)
	assert.Equal(t, ResultPositive, saved.Assessment.OrthoTests["jobe"].Result)

	saved, err = uc.ToggleTestResult(ctx, "v1", &requests.ToggleTestResult{Group: "neuro_tests", Key: "spurling", Result: ResultNegative})
	require.NoError(t, err)
	assert.Equal(t, ResultNegative, saved.Assessment.NeuroTests["spurling"].Result)
	assert.Contains(t, saved.Assessment.OrthoTests, "jobe")

	saved, err = uc.ToggleTestResult(ctx, "v1", &requests.ToggleTestResult{Group: "ortho_tests", Key: "jobe", Result: ResultPositive})
	require.NoError(t, err)
	assert.NotContains(t, saved.Assessment.OrthoTests, "jobe")

	t.Run("unknown result", func(t *testing.T) {
		_, err := uc.ToggleTestResult(ctx, "v1", &requests.ToggleTestResult{Group: "ortho_tests", Key: "jobe", Result: "Quizá"})
		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusUnprocessableEntity, customErr.StatusCode)
	})
}
