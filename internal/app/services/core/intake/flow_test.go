package intake

import (
	"errors"
	"podium-service/internal/app/models"
	"podium-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlowNavigation(t *testing.T) {
	flow := NewFlow("v1", DefaultSections())
	n := flow.Steps()
	require.Equal(t, 7, n)

	t.Run("GoPrev at step 0 is a no-op", func(t *testing.T) {
		flow.GoPrev()
		assert.Equal(t, 0, flow.CurrentStep())
		assert.Equal(t, 0, flow.Progress())
		assert.Equal(t, PhaseEditing, flow.Phase())
	})

	t.Run("GoNext stops at the consent step", func(t *testing.T) {
		for i := 0; i < n+3; i++ {
			flow.GoNext()
		}
		assert.Equal(t, n, flow.CurrentStep())
		assert.Equal(t, 100, flow.Progress())
		assert.Equal(t, PhaseConsenting, flow.Phase())
		assert.Equal(t, ConsentPepTalk, flow.PepTalk())
		assert.Empty(t, flow.VisibleFields(n))
	})

	t.Run("Progress rounds", func(t *testing.T) {
		flow.GoPrev()
		flow.GoPrev()
		assert.Equal(t, 5, flow.CurrentStep())
		assert.Equal(t, 71, flow.Progress())
	})
}

func TestRestoreFlowClampsStep(t *testing.T) {
	flow := RestoreFlow("v1", DefaultSections(), &models.IntakeDraft{
		Answers:         models.Answers{"q1_nombre": "Ana"},
		ConsentAccepted: true,
		Signature:       "data:image/png;base64,AAA",
		CurrentStep:     42,
	})

	assert.Equal(t, flow.Steps(), flow.CurrentStep())
	assert.Equal(t, "Ana", flow.Answers().String("q1_nombre"))
	assert.True(t, flow.ConsentAccepted())

	negative := RestoreFlow("v1", DefaultSections(), &models.IntakeDraft{CurrentStep: -3})
	assert.Equal(t, 0, negative.CurrentStep())
}

func TestFlowFieldVisibility(t *testing.T) {
	flow := NewFlow("v1", DefaultSections())
	visibleIDs := func() []string {
		ids := make([]string, 0)
		for _, field := range flow.VisibleFields(0) {
			ids = append(ids, field.ID)
		}
		return ids
	}

	assert.NotContains(t, visibleIDs(), "q9a_cuales")
	assert.NotContains(t, visibleIDs(), "q8a_peso_frecuencia")

	require.NoError(t, flow.SetAnswer("q9_deporte", AnswerYes))
	assert.Contains(t, visibleIDs(), "q9a_cuales")
	assert.Contains(t, visibleIDs(), "q9b_frecuencia")

	require.NoError(t, flow.ToggleOption("q8_trabajo", optionLiftsWeight))
	assert.Contains(t, visibleIDs(), "q8a_peso_frecuencia")
	assert.NotContains(t, visibleIDs(), "q8b_ergonomia")

	require.NoError(t, flow.ToggleOption("q8_trabajo", optionLiftsWeight))
	assert.NotContains(t, visibleIDs(), "q8a_peso_frecuencia")
	assert.True(t, flow.SectionVisible(0))
}

func TestSectionVisibleWhenAllFieldsHidden(t *testing.T) {
	sections := []Section{
		{ID: "a", Fields: []Field{yesNoField("parent", "Parent")}},
		{ID: "b", Fields: []Field{textField("child", "Child").when(ifYes("parent"))}},
	}
	flow := NewFlow("v1", sections)

	assert.False(t, flow.SectionVisible(1))
	assert.Equal(t, 2, flow.Steps(), "hidden sections still count")

	require.NoError(t, flow.SetAnswer("parent", AnswerYes))
	assert.True(t, flow.SectionVisible(1))
}

func TestFlowSetAnswerErrors(t *testing.T) {
	flow := NewFlow("v1", DefaultSections())

	err := flow.SetAnswer("does_not_exist", "x")
	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, 400, customErr.StatusCode)

	err = flow.SetAnswer("q9_deporte", "Quizás")
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, 422, customErr.StatusCode)
	assert.False(t, flow.Answers().Has("q9_deporte"))

	assert.Error(t, flow.ToggleOption("q9_deporte", AnswerYes), "toggle only applies to multi fields")
}

func TestValidateSubmission(t *testing.T) {
	t.Run("Missing email jumps to the email step", func(t *testing.T) {
		flow := NewFlow("v1", DefaultSections())
		flow.GoNext()
		flow.GoNext()
		flow.SetConsent(true, "data:image/png;base64,AAA")

		step, err := flow.ValidateSubmission()
		assert.Error(t, err)
		assert.Equal(t, 0, step)
		assert.Equal(t, 0, flow.CurrentStep())
	})

	t.Run("Missing signature jumps to the consent step", func(t *testing.T) {
		flow := NewFlow("v1", DefaultSections())
		require.NoError(t, flow.SetAnswer(EmailFieldID, "ana@example.com"))
		require.NoError(t, flow.SetAnswer("q1_nombre", "Ana"))
		flow.SetConsent(true, "")

		step, err := flow.ValidateSubmission()
		assert.Error(t, err)
		assert.Equal(t, flow.Steps(), step)
		assert.Equal(t, "Ana", flow.Answers().String("q1_nombre"), "answers are kept")
	})

	t.Run("Consent not accepted fails even with signature", func(t *testing.T) {
		flow := NewFlow("v1", DefaultSections())
		require.NoError(t, flow.SetAnswer(EmailFieldID, "ana@example.com"))
		flow.SetConsent(false, "data:image/png;base64,AAA")

		_, err := flow.ValidateSubmission()
		assert.Error(t, err)
	})

	t.Run("Complete submission passes", func(t *testing.T) {
		flow := NewFlow("v1", DefaultSections())
		require.NoError(t, flow.SetAnswer(EmailFieldID, "ana@example.com"))
		flow.SetConsent(true, "data:image/png;base64,AAA")

		_, err := flow.ValidateSubmission()
		assert.NoError(t, err)
	})
}

func TestFlowSubmittingSuspendsInteraction(t *testing.T) {
	flow := NewFlow("v1", DefaultSections())
	flow.BeginSubmit()

	assert.Equal(t, PhaseSubmitting, flow.Phase())
	assert.Error(t, flow.SetAnswer("q1_nombre", "Ana"))
	flow.GoNext()
	assert.Equal(t, 0, flow.CurrentStep())

	flow.EndSubmit()
	assert.NoError(t, flow.SetAnswer("q1_nombre", "Ana"))
}

func TestAnswersSnapshotIsImmutable(t *testing.T) {
	flow := NewFlow("v1", DefaultSections())
	require.NoError(t, flow.ToggleOption("q20_tipo", "Punzante"))

	snapshot := flow.Answers()
	require.NoError(t, flow.ToggleOption("q20_tipo", "Sordo"))

	assert.Equal(t, []string{"Punzante"}, snapshot.Strings("q20_tipo"))
	assert.Equal(t, []string{"Punzante", "Sordo"}, flow.Answers().Strings("q20_tipo"))
}
