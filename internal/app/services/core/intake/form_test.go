package intake

import (
	"podium-service/internal/app/models"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConditions(t *testing.T) {
	answers := models.Answers{
		"q9_deporte": AnswerYes,
		"q8_trabajo": []string{optionDeskWork},
	}

	tests := []struct {
		name      string
		condition Condition
		want      bool
	}{
		{"equals", AnswerEquals("q9_deporte", AnswerYes), true},
		{"equals absent", AnswerEquals("q11_fumas", AnswerNo), false},
		{"contains", AnswerContains("q8_trabajo", optionDeskWork), true},
		{"contains absent", AnswerContains("q99", optionDeskWork), false},
		{"all", All(ifYes("q9_deporte"), AnswerContains("q8_trabajo", optionDeskWork)), true},
		{"all with one false", All(ifYes("q9_deporte"), ifYes("q11_fumas")), false},
		{"all empty", All(), true},
		{"any", Any(ifYes("q11_fumas"), ifYes("q9_deporte")), true},
		{"any empty", Any(), false},
		{"not", Not(ifYes("q9_deporte")), false},
		{"not absent", Not(ifYes("q11_fumas")), true},
		{"nested", Any(Not(ifYes("q9_deporte")), All(ifYes("q9_deporte"), Not(ifYes("q11_fumas")))), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.condition.Evaluate(answers))
		})
	}

	t.Run("field without a condition is visible", func(t *testing.T) {
		assert.True(t, textField("q1", "Nombre").Visible(nil))
		assert.False(t, textField("q1", "Nombre").when(Not(ifYes("q9_deporte"))).Visible(answers))
	})
}
