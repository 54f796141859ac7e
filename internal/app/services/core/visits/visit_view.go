package visits

import (
	"podium-service/internal/app/models"
	"podium-service/internal/app/services/core/intake"
	"podium-service/internal/pkg/constvars"
	"podium-service/internal/pkg/dto/responses"
	"strings"
)

// CanSeePII reports whether a staff role may read patient contact data.
func CanSeePII(role string) bool {
	return role == constvars.StaffRoleAdmin
}

func ToSummary(visit *models.Visit, role string) responses.VisitSummary {
	summary := responses.VisitSummary{
		ID:          visit.ID,
		CreatedAt:   visit.CreatedAt,
		BodyRegion:  visit.BodyRegion,
		PatientName: strings.TrimSpace(visit.Patient.FirstName + " " + visit.Patient.LastName),
		Flags:       []string{},
		HasReport:   visit.Report != nil,
	}
	if CanSeePII(role) {
		summary.PatientEmail = visit.Patient.Email
	}
	if visit.Intake != nil {
		summary.IntakeSubmitted = true
		summary.Flags = append(summary.Flags, visit.Intake.Flags...)
	}
	if visit.Submission != nil {
		summary.SubmissionComplete = visit.Submission.Completed()
	}
	return summary
}

// ToDetail copies every nested record so redaction never touches the
// caller's visit.
func ToDetail(visit *models.Visit, role string) responses.VisitDetail {
	detail := responses.VisitDetail{
		VisitSummary: ToSummary(visit, role),
		Answers:      models.Answers{},
		Diagnosis:    visit.Diagnosis,
		Assessment:   visit.Assessment,
		Submission:   visit.Submission,
	}
	piiAllowed := CanSeePII(role)

	if visit.Intake != nil {
		detail.Answers = visit.Intake.Answers.Clone()
		if !piiAllowed {
			delete(detail.Answers, intake.EmailFieldID)
		}
	}
	if visit.Consent != nil {
		consent := *visit.Consent
		if !piiAllowed {
			consent.Email = ""
		}
		detail.Consent = &consent
	}
	if visit.Report != nil {
		report := *visit.Report
		if !piiAllowed {
			report.Delivery.Recipient = ""
		}
		detail.Report = &report
	}
	return detail
}
