package exams

import (
	"podium-service/internal/app/models"
	"podium-service/internal/pkg/dto/responses"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStepMeasurement(t *testing.T) {
	original := map[string]float64{"flex_L": 120}

	t.Run("moves existing value", func(t *testing.T) {
		next := StepMeasurement(original, "flex_L", 5)
		assert.Equal(t, 125.0, next["flex_L"])
		assert.Equal(t, 120.0, original["flex_L"])
	})

	t.Run("unmeasured starts from zero", func(t *testing.T) {
		next := StepMeasurement(original, "flex_R", -5)
		assert.Equal(t, -5.0, next["flex_R"])
		assert.NotContains(t, original, "flex_R")
	})

	t.Run("clamps to range", func(t *testing.T) {
		assert.Equal(t, 999.0, StepMeasurement(map[string]float64{"x_L": 998}, "x_L", 10)["x_L"])
		assert.Equal(t, -999.0, StepMeasurement(map[string]float64{"x_L": -998}, "x_L", -10)["x_L"])
	})
}

func TestAsymmetry(t *testing.T) {
	tests := []struct {
		name   string
		values map[string]float64
		want   responses.Asymmetry
		wantOK bool
	}{
		{"missing right", map[string]float64{"flex_L": 150}, responses.Asymmetry{}, false},
		{"both zero", map[string]float64{"flex_L": 0, "flex_R": 0}, responses.Asymmetry{Percent: 0, Greater: SideEqual}, true},
		{"left greater", map[string]float64{"flex_L": 160, "flex_R": 120}, responses.Asymmetry{Percent: 25, Greater: SideLeft}, true},
		{"right greater rounds", map[string]float64{"flex_L": 100, "flex_R": 150}, responses.Asymmetry{Percent: 33, Greater: SideRight}, true},
		{"equal", map[string]float64{"flex_L": 90, "flex_R": 90}, responses.Asymmetry{Percent: 0, Greater: SideEqual}, true},
		{"negative values", map[string]float64{"flex_L": -5, "flex_R": -10}, responses.Asymmetry{Percent: 100, Greater: SideLeft}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Asymmetry(tt.values, "flex")
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAsymmetries(t *testing.T) {
	into := map[string]responses.Asymmetry{}
	Asymmetries("strength", map[string]float64{"er_L": 4, "er_R": 5, "ir_L": 5, "kneel": 3}, into)

	assert.Equal(t, map[string]responses.Asymmetry{
		"strength.er": {Percent: 20, Greater: SideRight},
	}, into)
}

func TestToggleTestResult(t *testing.T) {
	pain := 6

	t.Run("selects a value", func(t *testing.T) {
		next := ToggleTestResult(nil, "jobe", ResultPositive)
		assert.Equal(t, ResultPositive, next["jobe"].Result)
	})

	t.Run("same value clears and drops empty entry", func(t *testing.T) {
		next := ToggleTestResult(map[string]models.TestResult{"jobe": {Result: ResultPositive}}, "jobe", ResultPositive)
		assert.NotContains(t, next, "jobe")
	})

	t.Run("clearing keeps pain", func(t *testing.T) {
		current := map[string]models.TestResult{"jobe": {Result: ResultPositive, Pain: &pain}}
		next := ToggleTestResult(current, "jobe", ResultPositive)
		assert.Empty(t, next["jobe"].Result)
		assert.Equal(t, 6, *next["jobe"].Pain)
		assert.Equal(t, ResultPositive, current["jobe"].Result)
	})

	t.Run("switches value", func(t *testing.T) {
		next := ToggleTestResult(map[string]models.TestResult{"jobe": {Result: ResultPositive}}, "jobe", ResultNegative)
		assert.Equal(t, ResultNegative, next["jobe"].Result)
	})
}
