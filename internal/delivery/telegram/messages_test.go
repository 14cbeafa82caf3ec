package telegram

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/category-quiz-bot/internal/domain/entities"
	"github.com/aliskhannn/category-quiz-bot/internal/service"
)

func TestCallbackDataRoundTrip(t *testing.T) {
	data := decodeCallback(buildAnswerCallback(3, "true"))
	assert.Equal(t, actionAnswer, data.Action)
	assert.Equal(t, []string{"3", "true"}, data.Params)

	data = decodeCallback(buildResetConfirmCallback("geo"))
	assert.Equal(t, actionReset, data.Action)
	assert.Equal(t, []string{resetConfirm, "geo"}, data.Params)

	data = decodeCallback(buildCategoriesCallback())
	assert.Equal(t, actionCategories, data.Action)
	assert.Empty(t, data.Params)
}

func TestFormatQuestion(t *testing.T) {
	picker, err := entities.NewPickerQuiz("Boiling point?", 100, 0, 200, 10, false)
	require.NoError(t, err)

	text := formatQuestion(&service.Turn{CategoryName: "Science", Position: 1, Total: 4, Quiz: picker})
	assert.Contains(t, text, "Science · 2 of 4")
	assert.Contains(t, text, "*Boiling point?*")
	assert.Contains(t, text, "from 0 to 200 in steps of 10")

	fill, err := entities.NewFillBlankQuiz("Largest ocean?", "Pacific", "The", "Ocean", false)
	require.NoError(t, err)

	text = formatQuestion(&service.Turn{CategoryName: "Geography", Total: 1, Quiz: fill})
	assert.Contains(t, text, "The \\_\\_\\_ Ocean")
}

func TestBuildAnswerKeyboard(t *testing.T) {
	pickOne, err := entities.NewPickOneQuiz("Capital?", []string{"Bonn", "Berlin"}, []string{"Berlin"}, false)
	require.NoError(t, err)

	kb := buildAnswerKeyboard(&service.Turn{Position: 2, Quiz: pickOne})
	require.NotNil(t, kb)
	require.Len(t, kb.InlineKeyboard, 2)
	assert.Equal(t, "Berlin", kb.InlineKeyboard[1][0].Text)
	require.NotNil(t, kb.InlineKeyboard[1][0].CallbackData)
	assert.Equal(t, "answer:2:2", *kb.InlineKeyboard[1][0].CallbackData)

	alpha, err := entities.NewAlphaPickerQuiz("First letter?", "G", false)
	require.NoError(t, err)
	assert.Nil(t, buildAnswerKeyboard(&service.Turn{Quiz: alpha}))
}

func TestBuildProgressBar(t *testing.T) {
	assert.Equal(t, "[█████░░░░░]", buildProgressBar(1, 2, 10))
	assert.Equal(t, "[░░░░]", buildProgressBar(0, 0, 4))
	assert.Equal(t, "[████]", buildProgressBar(5, 4, 4))
}

func TestFormatAnswerFeedback(t *testing.T) {
	assert.Contains(t, formatAnswerFeedback(&service.Result{Correct: true}), "Correct")
	assert.Contains(t, formatAnswerFeedback(&service.Result{CorrectAnswer: "Berlin"}), "*Berlin*")
}
