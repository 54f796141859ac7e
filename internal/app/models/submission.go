package models

import "time"

const (
	SubmissionStepPersistIntake    = "persist_intake"
	SubmissionStepRequestDiagnosis = "request_diagnosis"
	SubmissionStepPersistConsent   = "persist_consent"
	SubmissionStepSendReport       = "send_report"
)

const (
	SubmissionStatusPending   = "pending"
	SubmissionStatusSucceeded = "succeeded"
	SubmissionStatusFailed    = "failed"
)

var SubmissionStepOrder = []string{
	SubmissionStepPersistIntake,
	SubmissionStepRequestDiagnosis,
	SubmissionStepPersistConsent,
	SubmissionStepSendReport,
}

type SubmissionStep struct {
	Name      string    `bson:"name" json:"name"`
	Status    string    `bson:"status" json:"status"`
	Attempts  int       `bson:"attempts" json:"attempts"`
	LastError string    `bson:"lastError,omitempty" json:"last_error,omitempty"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updated_at"`
}

// SubmissionPayload keeps what later steps need so a single step can be retried.
type SubmissionPayload struct {
	Answers          Answers  `bson:"answers" json:"-"`
	Flags            []string `bson:"flags" json:"-"`
	Email            string   `bson:"email" json:"-"`
	SignatureDataURL string   `bson:"signatureDataUrl" json:"-"`
	PrivacyText      string   `bson:"privacyText" json:"-"`
}

type Submission struct {
	Steps       []SubmissionStep  `bson:"steps" json:"steps"`
	Payload     SubmissionPayload `bson:"payload" json:"-"`
	StartedAt   time.Time         `bson:"startedAt" json:"started_at"`
	CompletedAt *time.Time        `bson:"completedAt,omitempty" json:"completed_at,omitempty"`
}

func NewSubmission(payload SubmissionPayload, now time.Time) *Submission {
	steps := make([]SubmissionStep, 0, len(SubmissionStepOrder))
	for _, name := range SubmissionStepOrder {
		steps = append(steps, SubmissionStep{Name: name, Status: SubmissionStatusPending, UpdatedAt: now})
	}
	return &Submission{Steps: steps, Payload: payload, StartedAt: now}
}

func (s *Submission) Step(name string) *SubmissionStep {
	for i := range s.Steps {
		if s.Steps[i].Name == name {
			return &s.Steps[i]
		}
	}
	return nil
}

func (s *Submission) Completed() bool {
	for _, step := range s.Steps {
		if step.Status != SubmissionStatusSucceeded {
			return false
		}
	}
	return len(s.Steps) > 0
}
