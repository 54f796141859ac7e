package intake

import "podium-service/internal/app/models"

type FieldType string

const (
	FieldText     FieldType = "text"
	FieldTextarea FieldType = "textarea"
	FieldNumber   FieldType = "number"
	FieldDate     FieldType = "date"
	FieldSelect   FieldType = "select"
	FieldMulti    FieldType = "multi"
	FieldYesNo    FieldType = "yesno"
	FieldScale    FieldType = "scale"
)

const (
	AnswerYes = "Sí"
	AnswerNo  = "No"
)

type Field struct {
	ID          string
	Label       string
	Type        FieldType
	Options     []string
	Min         *float64
	Max         *float64
	Step        *float64
	Required    bool
	Placeholder string
	ShowIf      Condition
}

// Visible reports whether the field renders for the given answers.
func (f Field) Visible(answers models.Answers) bool {
	return f.ShowIf == nil || f.ShowIf.Evaluate(answers)
}

func (f Field) hasOption(option string) bool {
	for _, candidate := range f.Options {
		if candidate == option {
			return true
		}
	}
	return false
}

type Section struct {
	ID      string
	Title   string
	PepTalk string
	Fields  []Field
}

// Condition is a visibility predicate over the shared answer map. Absent
// answers make a condition false, never an error.
type Condition interface {
	Evaluate(answers models.Answers) bool
}

type answerEquals struct {
	fieldID string
	value   string
}

func (c answerEquals) Evaluate(answers models.Answers) bool {
	return answers.Has(c.fieldID) && answers.String(c.fieldID) == c.value
}

type answerContains struct {
	fieldID string
	option  string
}

func (c answerContains) Evaluate(answers models.Answers) bool {
	for _, item := range answers.Strings(c.fieldID) {
		if item == c.option {
			return true
		}
	}
	return false
}

type allOf []Condition

func (c allOf) Evaluate(answers models.Answers) bool {
	for _, condition := range c {
		if !condition.Evaluate(answers) {
			return false
		}
	}
	return true
}

type anyOf []Condition

func (c anyOf) Evaluate(answers models.Answers) bool {
	for _, condition := range c {
		if condition.Evaluate(answers) {
			return true
		}
	}
	return false
}

type not struct {
	condition Condition
}

func (c not) Evaluate(answers models.Answers) bool {
	return !c.condition.Evaluate(answers)
}

func AnswerEquals(fieldID, value string) Condition {
	return answerEquals{fieldID: fieldID, value: value}
}

func AnswerContains(fieldID, option string) Condition {
	return answerContains{fieldID: fieldID, option: option}
}

func All(conditions ...Condition) Condition {
	return allOf(conditions)
}

func Any(conditions ...Condition) Condition {
	return anyOf(conditions)
}

func Not(condition Condition) Condition {
	return not{condition: condition}
}

func float(v float64) *float64 {
	return &v
}
