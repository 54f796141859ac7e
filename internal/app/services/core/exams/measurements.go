package exams

import (
	"math"
	"podium-service/internal/app/models"
	"podium-service/internal/pkg/dto/responses"
	"sort"
	"strings"
)

const (
	SideLeft  = "L"
	SideRight = "R"
	SideEqual = "="

	measurementMin = -999
	measurementMax = 999
	painMin        = 0
	painMax        = 10
)

const (
	ResultPositive     = "Positivo"
	ResultNegative     = "Negativo"
	ResultInconclusive = "No concluyente"
	ResultNotPerformed = "No realizado"
)

var testResultOptions = []string{ResultPositive, ResultNegative, ResultInconclusive, ResultNotPerformed}

func TestResultOptions() []string {
	return append([]string{}, testResultOptions...)
}

func isTestResult(value string) bool {
	for _, option := range testResultOptions {
		if option == value {
			return true
		}
	}
	return false
}

func MeasurementKey(rowKey, side string) string {
	return rowKey + "_" + side
}

func clampMeasurement(value float64) float64 {
	return math.Max(measurementMin, math.Min(measurementMax, value))
}

func clampPain(pain int) int {
	if pain < painMin {
		return painMin
	}
	if pain > painMax {
		return painMax
	}
	return pain
}

// StepMeasurement returns a copy of values with key moved by delta. An
// unmeasured side starts from 0.
func StepMeasurement(values map[string]float64, key string, delta float64) map[string]float64 {
	next := make(map[string]float64, len(values)+1)
	for k, v := range values {
		next[k] = v
	}
	next[key] = clampMeasurement(values[key] + delta)
	return next
}

// Asymmetry compares both sides of a row. ok is false while either side is
// unmeasured.
func Asymmetry(values map[string]float64, rowKey string) (asymmetry responses.Asymmetry, ok bool) {
	left, hasLeft := values[MeasurementKey(rowKey, SideLeft)]
	right, hasRight := values[MeasurementKey(rowKey, SideRight)]
	if !hasLeft || !hasRight {
		return responses.Asymmetry{}, false
	}

	greater := SideEqual
	switch {
	case left > right:
		greater = SideLeft
	case right > left:
		greater = SideRight
	}

	high := math.Max(left, right)
	low := math.Min(left, right)
	percent := 0
	if high != 0 {
		percent = int(math.Round((high - low) / math.Abs(high) * 100))
	}
	return responses.Asymmetry{Percent: percent, Greater: greater}, true
}

// Asymmetries computes every bilateral row found in values, keyed by
// prefix and row key.
func Asymmetries(prefix string, values map[string]float64, into map[string]responses.Asymmetry) {
	rows := make(map[string]struct{})
	for key := range values {
		for _, side := range []string{SideLeft, SideRight} {
			if rowKey, found := strings.CutSuffix(key, "_"+side); found {
				rows[rowKey] = struct{}{}
			}
		}
	}

	rowKeys := make([]string, 0, len(rows))
	for rowKey := range rows {
		rowKeys = append(rowKeys, rowKey)
	}
	sort.Strings(rowKeys)

	for _, rowKey := range rowKeys {
		if asymmetry, ok := Asymmetry(values, rowKey); ok {
			into[prefix+"."+rowKey] = asymmetry
		}
	}
}

// ToggleTestResult returns a copy of results where selecting the current
// value again clears it.
func ToggleTestResult(results map[string]models.TestResult, key, value string) map[string]models.TestResult {
	next := make(map[string]models.TestResult, len(results)+1)
	for k, v := range results {
		next[k] = v
	}

	current := next[key]
	if current.Result == value {
		current.Result = ""
	} else {
		current.Result = value
	}

	if current.Result == "" && current.Pain == nil {
		delete(next, key)
		return next
	}
	next[key] = current
	return next
}
