package models

import "time"

type DdxCandidate struct {
	Label       string  `bson:"label" json:"label"`
	Probability float64 `bson:"probability" json:"probability"`
	Rationale   string  `bson:"rationale,omitempty" json:"rationale,omitempty"`
}

type Diagnosis struct {
	Candidates []DdxCandidate `bson:"candidates" json:"candidates"`
	Provider   string         `bson:"provider" json:"provider"`
	CreatedAt  time.Time      `bson:"createdAt" json:"created_at"`
}
