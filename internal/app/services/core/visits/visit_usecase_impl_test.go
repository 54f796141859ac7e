package visits

import (
	"context"
	"errors"
	"podium-service/internal/app/models"
	"podium-service/internal/pkg/constvars"
	"podium-service/internal/pkg/dto/requests"
	"podium-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func staffContext(role string) context.Context {
	ctx := context.WithValue(context.Background(), constvars.CONTEXT_REQUEST_ID_KEY, "req-1")
	return context.WithValue(ctx, constvars.CONTEXT_STAFF_ROLE_KEY, role)
}

func seedSubmittedVisit(t *testing.T, repo *VisitMemoryRepository, visitID string) {
	t.Helper()
	visit, err := repo.GetOrCreate(context.Background(), visitID)
	require.NoError(t, err)

	visit.Patient = models.Patient{FirstName: "Ana", LastName: "García López", Email: "ana@example.com"}
	visit.Intake = &models.IntakeRecord{
		Answers:     models.Answers{"email": "ana@example.com", "q1_nombre": "Ana García López", "q13_agravantes": []string{"Correr"}},
		Flags:       []string{"RED_FLAG"},
		SubmittedAt: time.Now().UTC(),
	}
	visit.Consent = &models.Consent{Email: "ana@example.com", SignatureObject: "signatures/" + visitID + ".png"}
	visit.Report = &models.Report{Delivery: models.ReportDelivery{Status: models.ReportDeliveryQueued, Recipient: "ana@example.com"}}
	require.NoError(t, repo.Save(context.Background(), visit))
}

func TestVisitUsecase_GetOrCreateVisit(t *testing.T) {
	repo := NewVisitMemoryRepository().(*VisitMemoryRepository)
	uc := newVisitUsecase(repo, zap.NewNop())
	ctx := context.Background()

	t.Run("sets region on first access", func(t *testing.T) {
		visit, err := uc.GetOrCreateVisit(ctx, "v1", " Hombro derecho ")
		require.NoError(t, err)
		assert.Equal(t, "Hombro derecho", visit.BodyRegion)
	})

	t.Run("keeps an existing region", func(t *testing.T) {
		visit, err := uc.GetOrCreateVisit(ctx, "v1", "Rodilla")
		require.NoError(t, err)
		assert.Equal(t, "Hombro derecho", visit.BodyRegion)
	})

	t.Run("empty region leaves visit untouched", func(t *testing.T) {
		visit, err := uc.GetOrCreateVisit(ctx, "v2", "")
		require.NoError(t, err)
		assert.Empty(t, visit.BodyRegion)
		assert.False(t, visit.CreatedAt.IsZero())
	})
}

func TestVisitUsecase_ListVisitsNewestFirst(t *testing.T) {
	repo := NewVisitMemoryRepository().(*VisitMemoryRepository)
	uc := newVisitUsecase(repo, zap.NewNop())

	_, err := repo.GetOrCreate(context.Background(), "old")
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)
	_, err = repo.GetOrCreate(context.Background(), "new")
	require.NoError(t, err)

	list, err := uc.ListVisits(staffContext(constvars.StaffRoleFisio))
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "new", list[0].ID)
	assert.Equal(t, "old", list[1].ID)
}

func TestVisitUsecase_Redaction(t *testing.T) {
	repo := NewVisitMemoryRepository().(*VisitMemoryRepository)
	uc := newVisitUsecase(repo, zap.NewNop())
	seedSubmittedVisit(t, repo, "v1")

	t.Run("admin sees contact data", func(t *testing.T) {
		detail, err := uc.GetVisit(staffContext(constvars.StaffRoleAdmin), "v1")
		require.NoError(t, err)
		assert.Equal(t, "ana@example.com", detail.PatientEmail)
		assert.Equal(t, "ana@example.com", detail.Answers["email"])
		assert.Equal(t, "ana@example.com", detail.Consent.Email)
		assert.Equal(t, "ana@example.com", detail.Report.Delivery.Recipient)
	})

	t.Run("clinical staff does not", func(t *testing.T) {
		detail, err := uc.GetVisit(staffContext(constvars.StaffRoleFisio), "v1")
		require.NoError(t, err)
		assert.Empty(t, detail.PatientEmail)
		assert.NotContains(t, detail.Answers, "email")
		assert.Empty(t, detail.Consent.Email)
		assert.Empty(t, detail.Report.Delivery.Recipient)
		assert.Equal(t, "Ana García López", detail.PatientName)
		assert.Equal(t, []string{"Correr"}, detail.Answers.Strings("q13_agravantes"))
		assert.Equal(t, []string{"RED_FLAG"}, detail.Flags)
	})

	t.Run("redaction does not leak into storage", func(t *testing.T) {
		stored, err := repo.FindByID(context.Background(), "v1")
		require.NoError(t, err)
		assert.Equal(t, "ana@example.com", stored.Consent.Email)
		assert.Equal(t, "ana@example.com", stored.Intake.Answers.String("email"))
	})
}

func TestVisitUsecase_GetVisitNotFound(t *testing.T) {
	uc := newVisitUsecase(NewVisitMemoryRepository(), zap.NewNop())

	_, err := uc.GetVisit(staffContext(constvars.StaffRoleAdmin), "missing")
	require.Error(t, err)

	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
}

func TestVisitUsecase_CreateAndSetBodyRegion(t *testing.T) {
	uc := newVisitUsecase(NewVisitMemoryRepository(), zap.NewNop())
	ctx := staffContext(constvars.StaffRoleAux)

	created, err := uc.CreateVisit(ctx, &requests.CreateVisit{BodyRegion: "Cadera"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Cadera", created.BodyRegion)
	assert.False(t, created.IntakeSubmitted)
	assert.NotNil(t, created.Flags)

	updated, err := uc.SetBodyRegion(ctx, created.ID, &requests.UpdateBodyRegion{BodyRegion: "Rodilla izquierda"})
	require.NoError(t, err)
	assert.Equal(t, "Rodilla izquierda", updated.BodyRegion)

	_, err = uc.SetBodyRegion(ctx, "missing", &requests.UpdateBodyRegion{BodyRegion: "Rodilla"})
	assert.Error(t, err)
}

func TestVisitMemoryRepository_IsolatesCallers(t *testing.T) {
	repo := NewVisitMemoryRepository()
	ctx := context.Background()

	visit, err := repo.GetOrCreate(ctx, "v1")
	require.NoError(t, err)
	visit.BodyRegion = "Hombro"

	again, err := repo.FindByID(ctx, "v1")
	require.NoError(t, err)
	assert.Empty(t, again.BodyRegion)

	missing, err := repo.FindByID(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
