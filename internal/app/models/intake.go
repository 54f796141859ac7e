package models

import (
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Answers maps a question id to a string, a number, a list of strings or "".
type Answers map[string]interface{}

type IntakeRecord struct {
	Answers     Answers   `bson:"answers" json:"answers"`
	Flags       []string  `bson:"flags" json:"_flags"`
	SubmittedAt time.Time `bson:"submittedAt" json:"submitted_at"`
}

type IntakeDraft struct {
	Answers         Answers `json:"values"`
	ConsentAccepted bool    `json:"accepted"`
	Signature       string  `json:"signature"`
	CurrentStep     int     `json:"step"`
}

func (a Answers) Has(id string) bool {
	value, ok := a[id]
	if !ok || value == nil {
		return false
	}
	if s, isString := value.(string); isString {
		return s != ""
	}
	return true
}

func (a Answers) String(id string) string {
	switch value := a[id].(type) {
	case string:
		return value
	case nil:
		return ""
	default:
		if number, ok := a.Number(id); ok {
			return strconv.FormatFloat(number, 'f', -1, 64)
		}
		return ""
	}
}

// Number reports false for absent, empty or non numeric answers.
func (a Answers) Number(id string) (float64, bool) {
	switch value := a[id].(type) {
	case float64:
		return value, true
	case float32:
		return float64(value), true
	case int:
		return float64(value), true
	case int32:
		return float64(value), true
	case int64:
		return float64(value), true
	case string:
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			return 0, false
		}
		number, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return 0, false
		}
		return number, true
	}
	return 0, false
}

// NumberOrZero treats a missing answer as 0.
func (a Answers) NumberOrZero(id string) float64 {
	number, _ := a.Number(id)
	return number
}

func (a Answers) Strings(id string) []string {
	var items []interface{}
	switch value := a[id].(type) {
	case []string:
		return append([]string(nil), value...)
	case []interface{}:
		items = value
	case primitive.A:
		items = value
	default:
		return nil
	}

	result := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			result = append(result, s)
		}
	}
	return result
}

func (a Answers) Clone() Answers {
	clone := make(Answers, len(a))
	for key, value := range a {
		if list, ok := value.([]string); ok {
			clone[key] = append([]string(nil), list...)
			continue
		}
		clone[key] = value
	}
	return clone
}
