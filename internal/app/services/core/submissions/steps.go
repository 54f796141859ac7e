package submissions

import (
	"context"
	"podium-service/internal/app/models"
	"strings"
	"time"
)

const (
	answerFullName   = "q1_nombre"
	answerPainRegion = "q18_donde"
)

type stepFunc func(ctx context.Context, visit *models.Visit, payload *models.SubmissionPayload) error

func (uc *submissionUsecase) stepFor(name string) stepFunc {
	switch name {
	case models.SubmissionStepPersistIntake:
		return uc.persistIntake
	case models.SubmissionStepRequestDiagnosis:
		return uc.requestDiagnosis
	case models.SubmissionStepPersistConsent:
		return uc.persistConsent
	case models.SubmissionStepSendReport:
		return uc.sendReport
	}
	return nil
}

// splitName keeps the first word as first name and the rest as last name.
func splitName(fullName string) (string, string) {
	parts := strings.Fields(fullName)
	if len(parts) == 0 {
		return "", ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}

func (uc *submissionUsecase) persistIntake(ctx context.Context, visit *models.Visit, payload *models.SubmissionPayload) error {
	flags := append([]string{}, payload.Flags...)
	visit.Intake = &models.IntakeRecord{
		Answers:     payload.Answers.Clone(),
		Flags:       flags,
		SubmittedAt: time.Now().UTC(),
	}

	firstName, lastName := splitName(payload.Answers.String(answerFullName))
	visit.Patient.FirstName = firstName
	visit.Patient.LastName = lastName
	visit.Patient.Email = strings.TrimSpace(payload.Email)

	if visit.BodyRegion == "" {
		visit.BodyRegion = strings.TrimSpace(payload.Answers.String(answerPainRegion))
	}
	return nil
}

func (uc *submissionUsecase) requestDiagnosis(ctx context.Context, visit *models.Visit, payload *models.SubmissionPayload) error {
	visit.Diagnosis = uc.DiagnosisUsecase.DiagnoseVisit(ctx, visit)
	return nil
}

func (uc *submissionUsecase) persistConsent(ctx context.Context, visit *models.Visit, payload *models.SubmissionPayload) error {
	_, err := uc.ConsentUsecase.RecordConsent(ctx, visit, payload.Email, payload.SignatureDataURL, payload.PrivacyText)
	if err != nil {
		return err
	}
	payload.SignatureDataURL = ""
	return nil
}

func (uc *submissionUsecase) sendReport(ctx context.Context, visit *models.Visit, payload *models.SubmissionPayload) error {
	visit.Report = uc.ReportUsecase.BuildAndDeliver(ctx, visit)
	return nil
}
