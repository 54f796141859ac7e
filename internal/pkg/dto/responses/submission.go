package responses

import (
	"podium-service/internal/app/models"
	"time"
)

type SubmissionStatus struct {
	VisitID     string                  `json:"visit_id"`
	Steps       []models.SubmissionStep `json:"steps"`
	Completed   bool                    `json:"completed"`
	StartedAt   time.Time               `json:"started_at"`
	CompletedAt *time.Time              `json:"completed_at,omitempty"`
}
