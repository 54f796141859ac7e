package reports

import (
	"context"
	"errors"
	"podium-service/internal/app/contracts"
	"podium-service/internal/app/models"
	"podium-service/internal/app/services/core/visits"
	"podium-service/internal/pkg/constvars"
	"podium-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordingQueue struct {
	contracts.MailQueueService
	enqueued []*contracts.MailMessage
	err      error
}

func (q *recordingQueue) Enqueue(ctx context.Context, msg *contracts.MailMessage) error {
	if q.err != nil {
		return q.err
	}
	q.enqueued = append(q.enqueued, msg)
	return nil
}

func submittedVisit() *models.Visit {
	return &models.Visit{
		ID:         "v1",
		BodyRegion: "Hombro derecho",
		Patient:    models.Patient{FirstName: "Ana", LastName: "García", Email: "ana@example.com"},
		Intake:     &models.IntakeRecord{Answers: models.Answers{}, Flags: []string{"RED_FLAG", "RADIATING_PAIN"}},
		Diagnosis: &models.Diagnosis{Candidates: []models.DdxCandidate{
			{Label: "Tendinopatía del supraespinoso", Probability: 55},
			{Label: "Síndrome subacromial (impingement)", Probability: 30},
		}},
	}
}

func TestSummaryMarkdown(t *testing.T) {
	t.Run("full visit", func(t *testing.T) {
		expected := "# Anamnesis recibida\n" +
			"- Zona: Hombro derecho\n" +
			"- Flags: RED_FLAG, RADIATING_PAIN\n" +
			"- DDx (solo personal): Tendinopatía del supraespinoso 55%, Síndrome subacromial (impingement) 30%"
		assert.Equal(t, expected, SummaryMarkdown(submittedVisit()))
	})

	t.Run("empty visit uses placeholders", func(t *testing.T) {
		expected := "# Anamnesis recibida\n- Zona: -\n- Flags: —\n- DDx (solo personal): "
		assert.Equal(t, expected, SummaryMarkdown(&models.Visit{}))
	})
}

func TestPatientBrief(t *testing.T) {
	brief := PatientBrief(submittedVisit())
	assert.Equal(t, "Hola Ana,\nHemos recibido tu formulario y tu fisioterapeuta ya está revisándolo.\n"+
		"En tu cita, continuaréis con la valoración en camilla y te explicaremos el plan.\nUn saludo, equipo Podium.", brief)
	assert.NotContains(t, brief, "supraespinoso")
}

func TestReportUsecase_BuildAndDeliver(t *testing.T) {
	t.Run("queues mail for patient", func(t *testing.T) {
		queue := &recordingQueue{}
		uc := newReportUsecase(nil, queue, "Podium", "hola@podium.test", zap.NewNop())

		report := uc.BuildAndDeliver(context.Background(), submittedVisit())
		assert.Equal(t, []int{1, 2, 3, 4, 5}, report.PlanPhases)
		assert.Equal(t, models.ReportDeliveryQueued, report.Delivery.Status)
		assert.Equal(t, "ana@example.com", report.Delivery.Recipient)

		require.Len(t, queue.enqueued, 1)
		email := queue.enqueued[0].Email
		assert.Equal(t, "Hemos recibido tu anamnesis – Podium", email.Subject)
		assert.Equal(t, []string{"ana@example.com"}, email.To)
		assert.Equal(t, "hola@podium.test", email.From)
		assert.Equal(t, report.PatientBrief, email.TextBody)
		assert.NotEmpty(t, queue.enqueued[0].ID)
	})

	t.Run("queue failure is recorded, not returned", func(t *testing.T) {
		queue := &recordingQueue{err: errors.New("channel closed")}
		uc := newReportUsecase(nil, queue, "Podium", "", zap.NewNop())

		report := uc.BuildAndDeliver(context.Background(), submittedVisit())
		assert.Equal(t, models.ReportDeliveryFailed, report.Delivery.Status)
		assert.Contains(t, report.Delivery.Error, "channel closed")
	})

	t.Run("no email skips delivery", func(t *testing.T) {
		queue := &recordingQueue{}
		uc := newReportUsecase(nil, queue, "Podium", "", zap.NewNop())
		visit := submittedVisit()
		visit.Patient.Email = ""

		report := uc.BuildAndDeliver(context.Background(), visit)
		assert.Equal(t, models.ReportDeliverySkipped, report.Delivery.Status)
		assert.Empty(t, queue.enqueued)
	})
}

func TestReportUsecase_GenerateAndGet(t *testing.T) {
	repo := visits.NewVisitMemoryRepository()
	require.NoError(t, repo.Save(context.Background(), submittedVisit()))
	uc := newReportUsecase(repo, &recordingQueue{}, "Podium", "", zap.NewNop())

	fisioCtx := context.WithValue(context.Background(), constvars.CONTEXT_STAFF_ROLE_KEY, constvars.StaffRoleFisio)
	adminCtx := context.WithValue(context.Background(), constvars.CONTEXT_STAFF_ROLE_KEY, constvars.StaffRoleAdmin)

	_, err := uc.GetReport(adminCtx, "v1")
	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)

	generated, err := uc.GenerateReport(fisioCtx, "v1")
	require.NoError(t, err)
	assert.Empty(t, generated.Delivery.Recipient)
	assert.Contains(t, generated.SummaryMarkdown, "Hombro derecho")

	stored, err := uc.GetReport(adminCtx, "v1")
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", stored.Delivery.Recipient)

	_, err = uc.GenerateReport(adminCtx, "missing")
	assert.Error(t, err)
}
