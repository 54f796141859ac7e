package models

import "time"

const (
	ReportDeliveryQueued  = "queued"
	ReportDeliveryFailed  = "failed"
	ReportDeliverySkipped = "skipped"
)

type ReportDelivery struct {
	Status    string    `bson:"status" json:"status"`
	Recipient string    `bson:"recipient,omitempty" json:"recipient,omitempty"`
	Error     string    `bson:"error,omitempty" json:"error,omitempty"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updated_at"`
}

type Report struct {
	SummaryMarkdown string         `bson:"summaryMD" json:"summary_markdown"`
	PatientBrief    string         `bson:"patientBrief" json:"patient_brief"`
	PlanPhases      []int          `bson:"planPhases" json:"plan_phases"`
	Delivery        ReportDelivery `bson:"delivery" json:"delivery"`
	CreatedAt       time.Time      `bson:"createdAt" json:"created_at"`
}
