package responses

type IntakeField struct {
	ID          string   `json:"id"`
	Label       string   `json:"label"`
	Type        string   `json:"type"`
	Options     []string `json:"options,omitempty"`
	Min         *float64 `json:"min,omitempty"`
	Max         *float64 `json:"max,omitempty"`
	Step        *float64 `json:"step,omitempty"`
	Required    bool     `json:"required"`
	Placeholder string   `json:"placeholder,omitempty"`
}

type IntakeSection struct {
	ID      string        `json:"id"`
	Title   string        `json:"title"`
	Visible bool          `json:"visible"`
	Fields  []IntakeField `json:"fields"`
}

type IntakeView struct {
	VisitID         string                 `json:"visit_id"`
	Step            int                    `json:"step"`
	TotalSteps      int                    `json:"total_steps"`
	Percent         int                    `json:"percent"`
	Phase           string                 `json:"phase"`
	PepTalk         string                 `json:"pep_talk"`
	Section         *IntakeSection         `json:"section,omitempty"`
	Answers         map[string]interface{} `json:"answers"`
	ConsentAccepted bool                   `json:"consent_accepted"`
	HasSignature    bool                   `json:"has_signature"`
	PrivacyText     string                 `json:"privacy_text,omitempty"`
	Submitted       bool                   `json:"submitted"`
}

type IntakeSubmitted struct {
	VisitID    string           `json:"visit_id"`
	Flags      []string         `json:"flags"`
	Submission SubmissionStatus `json:"submission"`
}
