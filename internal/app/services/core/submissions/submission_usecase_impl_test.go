package submissions

import (
	"context"
	"errors"
	"podium-service/internal/app/models"
	"podium-service/internal/app/services/core/visits"
	"podium-service/internal/pkg/constvars"
	"podium-service/internal/pkg/dto/responses"
	"podium-service/internal/pkg/exceptions"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeLocker struct {
	mu   sync.Mutex
	held map[string]bool
}

func (l *fakeLocker) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.held[key] {
		return false, "", nil
	}
	l.held[key] = true
	return true, "owner", nil
}

func (l *fakeLocker) Unlock(ctx context.Context, key, lockValue string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.held, key)
	return nil
}

type fakeDiagnosisUsecase struct{}

func (fakeDiagnosisUsecase) RequestDiagnosis(ctx context.Context, visitID string) (*responses.Diagnosis, error) {
	return nil, nil
}

func (fakeDiagnosisUsecase) DiagnoseVisit(ctx context.Context, visit *models.Visit) *models.Diagnosis {
	return &models.Diagnosis{
		Provider:   "heuristic",
		Candidates: []models.DdxCandidate{{Label: "Tendinopatía del supraespinoso", Probability: 55}},
	}
}

type mockConsentUsecase struct {
	mock.Mock
}

func (m *mockConsentUsecase) RecordConsent(ctx context.Context, visit *models.Visit, email, signatureDataURL, privacyText string) (*models.Consent, error) {
	args := m.Called(ctx, visit, email, signatureDataURL, privacyText)
	if err := args.Error(1); err != nil {
		return nil, err
	}
	consent := args.Get(0).(*models.Consent)
	visit.Consent = consent
	visit.Patient.Email = email
	return consent, nil
}

func (m *mockConsentUsecase) PrivacyText() string {
	return "privacy"
}

type fakeReportUsecase struct {
	calls int
}

func (f *fakeReportUsecase) GenerateReport(ctx context.Context, visitID string) (*responses.Report, error) {
	return nil, nil
}

func (f *fakeReportUsecase) GetReport(ctx context.Context, visitID string) (*responses.Report, error) {
	return nil, nil
}

func (f *fakeReportUsecase) BuildAndDeliver(ctx context.Context, visit *models.Visit) *models.Report {
	f.calls++
	return &models.Report{PatientBrief: "Hola " + visit.Patient.FirstName, Delivery: models.ReportDelivery{Status: models.ReportDeliveryFailed}}
}

type sagaFixture struct {
	uc      *submissionUsecase
	repo    *visits.VisitMemoryRepository
	locker  *fakeLocker
	consent *mockConsentUsecase
	reports *fakeReportUsecase
}

func newSagaFixture(t *testing.T) *sagaFixture {
	t.Helper()
	repo := visits.NewVisitMemoryRepository().(*visits.VisitMemoryRepository)
	_, err := repo.GetOrCreate(context.Background(), "v1")
	require.NoError(t, err)

	f := &sagaFixture{
		repo:    repo,
		locker:  &fakeLocker{held: map[string]bool{}},
		consent: &mockConsentUsecase{},
		reports: &fakeReportUsecase{},
	}
	f.uc = newSubmissionUsecase(repo, f.locker, fakeDiagnosisUsecase{}, f.consent, f.reports, zap.NewNop())
	return f
}

func samplePayload() models.SubmissionPayload {
	return models.SubmissionPayload{
		Answers: models.Answers{
			"q1_nombre": "Ana María García",
			"q18_donde": "Hombro derecho",
			"email":     "ana@example.com",
		},
		Flags:            []string{"RADIATING_PAIN"},
		Email:            "ana@example.com",
		SignatureDataURL: "data:image/png;base64,iVBORw0KGgo=",
		PrivacyText:      "privacy",
	}
}

func stepStatuses(status *responses.SubmissionStatus) map[string]string {
	result := make(map[string]string, len(status.Steps))
	for _, step := range status.Steps {
		result[step.Name] = step.Status
	}
	return result
}

func TestSubmissionUsecase_RunAllSteps(t *testing.T) {
	f := newSagaFixture(t)
	f.consent.On("RecordConsent", mock.Anything, mock.Anything, "ana@example.com", mock.Anything, "privacy").
		Return(&models.Consent{Email: "ana@example.com", SignatureObject: "signatures/v1.png"}, nil).Once()

	status, err := f.uc.Run(context.Background(), "v1", samplePayload())
	require.NoError(t, err)
	assert.True(t, status.Completed)
	assert.NotNil(t, status.CompletedAt)
	for _, step := range status.Steps {
		assert.Equal(t, models.SubmissionStatusSucceeded, step.Status, step.Name)
		assert.Equal(t, 1, step.Attempts, step.Name)
	}

	visit, err := f.repo.FindByID(context.Background(), "v1")
	require.NoError(t, err)
	assert.Equal(t, "Ana", visit.Patient.FirstName)
	assert.Equal(t, "María García", visit.Patient.LastName)
	assert.Equal(t, "ana@example.com", visit.Patient.Email)
	assert.Equal(t, "Hombro derecho", visit.BodyRegion)
	assert.Equal(t, []string{"RADIATING_PAIN"}, visit.Intake.Flags)
	assert.Equal(t, "heuristic", visit.Diagnosis.Provider)
	assert.Equal(t, "signatures/v1.png", visit.Consent.SignatureObject)
	assert.Empty(t, visit.Submission.Payload.SignatureDataURL)
	assert.Equal(t, models.ReportDeliveryFailed, visit.Report.Delivery.Status)
	f.consent.AssertExpectations(t)
}

func TestSubmissionUsecase_StopsAtFirstFailure(t *testing.T) {
	f := newSagaFixture(t)
	f.consent.On("RecordConsent", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("minio down")).Once()

	status, err := f.uc.Run(context.Background(), "v1", samplePayload())
	require.NoError(t, err)
	assert.False(t, status.Completed)
	assert.Equal(t, map[string]string{
		models.SubmissionStepPersistIntake:    models.SubmissionStatusSucceeded,
		models.SubmissionStepRequestDiagnosis: models.SubmissionStatusSucceeded,
		models.SubmissionStepPersistConsent:   models.SubmissionStatusFailed,
		models.SubmissionStepSendReport:       models.SubmissionStatusPending,
	}, stepStatuses(status))
	assert.Equal(t, 0, f.reports.calls)

	t.Run("later step is blocked", func(t *testing.T) {
		_, err := f.uc.RetryStep(context.Background(), "v1", models.SubmissionStepSendReport)
		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
	})

	t.Run("retry re-runs only the failed step", func(t *testing.T) {
		f.consent.On("RecordConsent", mock.Anything, mock.Anything, mock.Anything, "data:image/png;base64,iVBORw0KGgo=", mock.Anything).
			Return(&models.Consent{SignatureObject: "signatures/v1.png"}, nil).Once()

		status, err := f.uc.RetryStep(context.Background(), "v1", models.SubmissionStepPersistConsent)
		require.NoError(t, err)
		statuses := stepStatuses(status)
		assert.Equal(t, models.SubmissionStatusSucceeded, statuses[models.SubmissionStepPersistConsent])
		assert.Equal(t, models.SubmissionStatusPending, statuses[models.SubmissionStepSendReport])
		assert.Equal(t, 2, status.Steps[2].Attempts)
		assert.Empty(t, status.Steps[2].LastError)
	})

	t.Run("retry of a succeeded step is a no-op", func(t *testing.T) {
		before, err := f.uc.GetSubmission(context.Background(), "v1")
		require.NoError(t, err)

		after, err := f.uc.RetryStep(context.Background(), "v1", models.SubmissionStepPersistIntake)
		require.NoError(t, err)
		assert.Equal(t, before.Steps[0].Attempts, after.Steps[0].Attempts)
	})

	t.Run("send report completes the saga", func(t *testing.T) {
		status, err := f.uc.RetryStep(context.Background(), "v1", models.SubmissionStepSendReport)
		require.NoError(t, err)
		assert.True(t, status.Completed)
		assert.Equal(t, 1, f.reports.calls)
	})
	f.consent.AssertExpectations(t)
}

func TestSubmissionUsecase_Errors(t *testing.T) {
	f := newSagaFixture(t)

	t.Run("unknown step", func(t *testing.T) {
		_, err := f.uc.RetryStep(context.Background(), "v1", "bogus")
		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	})

	t.Run("retry before any run is blocked", func(t *testing.T) {
		_, err := f.uc.RetryStep(context.Background(), "v1", models.SubmissionStepPersistIntake)
		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
	})

	t.Run("unknown visit", func(t *testing.T) {
		_, err := f.uc.GetSubmission(context.Background(), "missing")
		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})

	t.Run("held lock rejects concurrent run", func(t *testing.T) {
		f.locker.held["submission:lock:v1"] = true
		defer delete(f.locker.held, "submission:lock:v1")

		_, err := f.uc.Run(context.Background(), "v1", samplePayload())
		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
	})

	t.Run("status before submission lists pending steps", func(t *testing.T) {
		status, err := f.uc.GetSubmission(context.Background(), "v1")
		require.NoError(t, err)
		require.Len(t, status.Steps, 4)
		assert.False(t, status.Completed)
		for _, step := range status.Steps {
			assert.Equal(t, models.SubmissionStatusPending, step.Status)
		}
	})
}

func TestSplitName(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantFirst string
		wantLast  string
	}{
		{"empty", "   ", "", ""},
		{"single word", "Ana", "Ana", ""},
		{"compound surname", "  Ana   García López ", "Ana", "García López"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, last := splitName(tt.input)
			assert.Equal(t, tt.wantFirst, first)
			assert.Equal(t, tt.wantLast, last)
		})
	}
}
