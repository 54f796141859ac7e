package intake

import (
	"math"
	"podium-service/internal/app/models"
	"podium-service/internal/pkg/exceptions"
)

type Phase string

const (
	PhaseEditing    Phase = "editing"
	PhaseConsenting Phase = "consenting"
	PhaseSubmitting Phase = "submitting"
	PhaseSubmitted  Phase = "submitted"
)

// Flow is the per-visit questionnaire state machine. Steps 0..N-1 render a
// section and step N is the consent step. Flow is not safe for concurrent
// use, callers serialize access.
type Flow struct {
	visitID         string
	sections        []Section
	fields          map[string]Field
	fieldStep       map[string]int
	answers         models.Answers
	step            int
	consentAccepted bool
	signature       string
	submitting      bool
}

func NewFlow(visitID string, sections []Section) *Flow {
	flow := &Flow{
		visitID:   visitID,
		sections:  sections,
		fields:    make(map[string]Field),
		fieldStep: make(map[string]int),
		answers:   make(models.Answers),
	}
	for index, section := range sections {
		for _, field := range section.Fields {
			flow.fields[field.ID] = field
			flow.fieldStep[field.ID] = index
		}
	}
	return flow
}

// RestoreFlow rebuilds a flow from an autosaved draft. The step is clamped
// to [0, N].
func RestoreFlow(visitID string, sections []Section, draft *models.IntakeDraft) *Flow {
	flow := NewFlow(visitID, sections)
	if draft == nil {
		return flow
	}
	if draft.Answers != nil {
		flow.answers = draft.Answers.Clone()
	}
	flow.consentAccepted = draft.ConsentAccepted
	flow.signature = draft.Signature
	flow.step = flow.clamp(draft.CurrentStep)
	return flow
}

func (f *Flow) VisitID() string {
	return f.visitID
}

// Steps returns N, the index of the consent step.
func (f *Flow) Steps() int {
	return len(f.sections)
}

func (f *Flow) CurrentStep() int {
	return f.step
}

func (f *Flow) clamp(step int) int {
	if step < 0 {
		return 0
	}
	if step > f.Steps() {
		return f.Steps()
	}
	return step
}

func (f *Flow) Field(fieldID string) (Field, bool) {
	field, ok := f.fields[fieldID]
	return field, ok
}

func (f *Flow) SetAnswer(fieldID string, raw interface{}) error {
	if f.submitting {
		return exceptions.ErrIntakeAlreadySubmitted(nil, f.visitID)
	}
	field, ok := f.fields[fieldID]
	if !ok {
		return exceptions.ErrIntakeFieldUnknown(nil, fieldID)
	}
	value, err := CoerceAnswer(field, raw)
	if err != nil {
		return exceptions.ErrIntakeAnswerInvalid(err, fieldID)
	}
	f.answers[fieldID] = value
	return nil
}

func (f *Flow) ToggleOption(fieldID, option string) error {
	if f.submitting {
		return exceptions.ErrIntakeAlreadySubmitted(nil, f.visitID)
	}
	field, ok := f.fields[fieldID]
	if !ok {
		return exceptions.ErrIntakeFieldUnknown(nil, fieldID)
	}
	if field.Type != FieldMulti || !field.hasOption(option) {
		return exceptions.ErrIntakeAnswerInvalid(errUnknownOption, fieldID)
	}
	f.answers[fieldID] = toggle(f.answers.Strings(fieldID), option)
	return nil
}

// GoNext has no validation gate, only submission is validated.
func (f *Flow) GoNext() {
	if f.submitting {
		return
	}
	f.step = f.clamp(f.step + 1)
}

func (f *Flow) GoPrev() {
	if f.submitting {
		return
	}
	f.step = f.clamp(f.step - 1)
}

func (f *Flow) SetConsent(accepted bool, signature string) {
	if f.submitting {
		return
	}
	f.consentAccepted = accepted
	f.signature = signature
}

// Progress is round(100 * step / N) clamped to [0, 100].
func (f *Flow) Progress() int {
	total := math.Max(1, float64(f.Steps()))
	percent := int(math.Round(float64(f.step) / total * 100))
	if percent < 0 {
		return 0
	}
	if percent > 100 {
		return 100
	}
	return percent
}

func (f *Flow) Phase() Phase {
	switch {
	case f.submitting:
		return PhaseSubmitting
	case f.step >= f.Steps():
		return PhaseConsenting
	default:
		return PhaseEditing
	}
}

// VisibleFields returns the fields of a section whose predicates hold for
// the current answers. The consent step has none.
func (f *Flow) VisibleFields(step int) []Field {
	fields := make([]Field, 0)
	if step < 0 || step >= f.Steps() {
		return fields
	}
	for _, field := range f.sections[step].Fields {
		if field.Visible(f.answers) {
			fields = append(fields, field)
		}
	}
	return fields
}

// SectionVisible is false when every field of the section is hidden. The
// step still counts towards N.
func (f *Flow) SectionVisible(step int) bool {
	return len(f.VisibleFields(step)) > 0
}

func (f *Flow) PepTalk() string {
	if f.step >= f.Steps() {
		return ConsentPepTalk
	}
	return f.sections[f.step].PepTalk
}

// Answers returns a snapshot, later mutations do not affect it.
func (f *Flow) Answers() models.Answers {
	return f.answers.Clone()
}

func (f *Flow) ConsentAccepted() bool {
	return f.consentAccepted
}

func (f *Flow) Signature() string {
	return f.signature
}

// ValidateSubmission checks the submission gate. On failure it moves the
// flow to the offending step and returns that step with the error.
func (f *Flow) ValidateSubmission() (int, error) {
	if !f.answers.Has(EmailFieldID) {
		f.step = f.fieldStep[EmailFieldID]
		return f.step, exceptions.ErrIntakeEmailMissing(nil)
	}
	if !f.consentAccepted || f.signature == "" {
		f.step = f.Steps()
		return f.step, exceptions.ErrIntakeConsentMissing(nil)
	}
	return f.step, nil
}

func (f *Flow) BeginSubmit() {
	f.submitting = true
}

// EndSubmit leaves the submitting phase, used when the submission could
// not start so the patient can keep editing.
func (f *Flow) EndSubmit() {
	f.submitting = false
}

func (f *Flow) Draft() *models.IntakeDraft {
	return &models.IntakeDraft{
		Answers:         f.answers.Clone(),
		ConsentAccepted: f.consentAccepted,
		Signature:       f.signature,
		CurrentStep:     f.step,
	}
}
