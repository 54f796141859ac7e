package models

import "time"

type Patient struct {
	FirstName string `bson:"firstName" json:"first_name"`
	LastName  string `bson:"lastName" json:"last_name"`
	Email     string `bson:"email,omitempty" json:"email,omitempty"`
}

type Visit struct {
	ID         string        `bson:"_id" json:"id"`
	CreatedAt  time.Time     `bson:"createdAt" json:"created_at"`
	UpdatedAt  time.Time     `bson:"updatedAt" json:"updated_at"`
	Patient    Patient       `bson:"patient" json:"patient"`
	BodyRegion string        `bson:"bodyRegion" json:"body_region"`
	Intake     *IntakeRecord `bson:"intake,omitempty" json:"intake,omitempty"`
	Consent    *Consent      `bson:"consent,omitempty" json:"consent,omitempty"`
	Diagnosis  *Diagnosis    `bson:"diagnosis,omitempty" json:"diagnosis,omitempty"`
	Assessment *Assessment   `bson:"assessment,omitempty" json:"assessment,omitempty"`
	Report     *Report       `bson:"report,omitempty" json:"report,omitempty"`
	Submission *Submission   `bson:"submission,omitempty" json:"submission,omitempty"`
}

func NewVisit(id string, now time.Time) *Visit {
	return &Visit{ID: id, CreatedAt: now, UpdatedAt: now}
}

func (v *Visit) DdxCandidates() []DdxCandidate {
	if v.Diagnosis == nil {
		return nil
	}
	return v.Diagnosis.Candidates
}
