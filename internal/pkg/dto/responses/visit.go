package responses

import (
	"podium-service/internal/app/models"
	"time"
)

type VisitSummary struct {
	ID                 string    `json:"id"`
	CreatedAt          time.Time `json:"created_at"`
	BodyRegion         string    `json:"body_region"`
	PatientName        string    `json:"patient_name"`
	PatientEmail       string    `json:"patient_email,omitempty"`
	Flags              []string  `json:"flags"`
	IntakeSubmitted    bool      `json:"intake_submitted"`
	HasReport          bool      `json:"has_report"`
	SubmissionComplete bool      `json:"submission_complete"`
}

type VisitDetail struct {
	VisitSummary
	Answers    models.Answers     `json:"answers,omitempty"`
	Consent    *models.Consent    `json:"consent,omitempty"`
	Diagnosis  *models.Diagnosis  `json:"diagnosis,omitempty"`
	Assessment *models.Assessment `json:"assessment,omitempty"`
	Report     *models.Report     `json:"report,omitempty"`
	Submission *models.Submission `json:"submission,omitempty"`
}
