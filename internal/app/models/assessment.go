package models

import "time"

type TestResult struct {
	Result string `bson:"result,omitempty" json:"result,omitempty"`
	Pain   *int   `bson:"pain,omitempty" json:"pain,omitempty"`
}

type Assessment struct {
	ActiveROM      map[string]float64    `bson:"activeROM" json:"active_rom"`
	Strength       map[string]float64    `bson:"strength" json:"strength"`
	OrthoTests     map[string]TestResult `bson:"orthoTests" json:"ortho_tests"`
	NeuroTests     map[string]TestResult `bson:"neuro" json:"neuro_tests"`
	DynamicTests   map[string]float64    `bson:"dynamicTests" json:"dynamic_tests"`
	Scores         map[string]float64    `bson:"scores" json:"scores"`
	ClinicianNotes string                `bson:"clinicianNotes" json:"clinician_notes"`
	Hypothesis     string                `bson:"hypothesis" json:"hypothesis"`
	UpdatedBy      string                `bson:"updatedBy" json:"updated_by"`
	UpdatedAt      time.Time             `bson:"updatedAt" json:"updated_at"`
}
