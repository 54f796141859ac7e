package responses

import (
	"podium-service/internal/app/models"
	"time"
)

type Report struct {
	VisitID         string                `json:"visit_id"`
	SummaryMarkdown string                `json:"summary_markdown"`
	PatientBrief    string                `json:"patient_brief"`
	PlanPhases      []int                 `json:"plan_phases"`
	Delivery        models.ReportDelivery `json:"delivery"`
	CreatedAt       time.Time             `json:"created_at"`
}

type Diagnosis struct {
	VisitID    string                `json:"visit_id"`
	Provider   string                `json:"provider"`
	Candidates []models.DdxCandidate `json:"candidates"`
}
