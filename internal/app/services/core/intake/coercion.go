package intake

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	errNotANumber     = errors.New("value is not a finite number")
	errUnknownOption  = errors.New("value is not one of the field options")
	errUnexpectedType = errors.New("value type does not fit the field")
)

// CoerceAnswer converts a raw JSON value into the stored representation
// for the field type. Empty input clears the answer with "".
func CoerceAnswer(field Field, raw interface{}) (interface{}, error) {
	switch field.Type {
	case FieldNumber:
		return coerceNumber(raw)
	case FieldScale:
		return coerceScale(field, raw)
	case FieldYesNo:
		text, err := coerceString(raw)
		if err != nil || text == "" {
			return "", err
		}
		if text != AnswerYes && text != AnswerNo {
			return nil, fmt.Errorf("%w: %q", errUnknownOption, text)
		}
		return text, nil
	case FieldSelect:
		text, err := coerceString(raw)
		if err != nil || text == "" {
			return "", err
		}
		if !field.hasOption(text) {
			return nil, fmt.Errorf("%w: %q", errUnknownOption, text)
		}
		return text, nil
	case FieldMulti:
		return coerceMulti(field, raw)
	default:
		return coerceString(raw)
	}
}

func coerceString(raw interface{}) (string, error) {
	switch value := raw.(type) {
	case nil:
		return "", nil
	case string:
		return value, nil
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(value), nil
	}
	return "", errUnexpectedType
}

func coerceNumber(raw interface{}) (interface{}, error) {
	var number float64
	switch value := raw.(type) {
	case nil:
		return "", nil
	case float64:
		number = value
	case int:
		number = float64(value)
	case string:
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			return "", nil
		}
		parsed, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return nil, errNotANumber
		}
		number = parsed
	default:
		return nil, errUnexpectedType
	}
	if math.IsNaN(number) || math.IsInf(number, 0) {
		return nil, errNotANumber
	}
	return number, nil
}

func coerceScale(field Field, raw interface{}) (interface{}, error) {
	value, err := coerceNumber(raw)
	if err != nil {
		return nil, err
	}
	number, ok := value.(float64)
	if !ok {
		return "", nil
	}

	min, max := 0.0, 10.0
	if field.Min != nil {
		min = *field.Min
	}
	if field.Max != nil {
		max = *field.Max
	}
	return math.Max(min, math.Min(max, math.Round(number))), nil
}

func coerceMulti(field Field, raw interface{}) (interface{}, error) {
	var items []string
	switch value := raw.(type) {
	case nil:
		return []string{}, nil
	case []string:
		items = value
	case []interface{}:
		for _, item := range value {
			text, ok := item.(string)
			if !ok {
				return nil, errUnexpectedType
			}
			items = append(items, text)
		}
	default:
		return nil, errUnexpectedType
	}

	result := make([]string, 0, len(items))
	seen := make(map[string]bool, len(items))
	for _, item := range items {
		if !field.hasOption(item) {
			return nil, fmt.Errorf("%w: %q", errUnknownOption, item)
		}
		if seen[item] {
			continue
		}
		seen[item] = true
		result = append(result, item)
	}
	return result, nil
}

// toggle adds the option when absent and removes it when present, keeping
// the order of the remaining options.
func toggle(current []string, option string) []string {
	result := make([]string, 0, len(current)+1)
	found := false
	for _, item := range current {
		if item == option {
			found = true
			continue
		}
		result = append(result, item)
	}
	if !found {
		result = append(result, option)
	}
	return result
}
