package models

import "time"

type Consent struct {
	Email           string    `bson:"email" json:"email"`
	SignatureObject string    `bson:"signatureObject" json:"signature_object"`
	Text            string    `bson:"text" json:"text"`
	Timestamp       time.Time `bson:"timestamp" json:"timestamp"`
}
