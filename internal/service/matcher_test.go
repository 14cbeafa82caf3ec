package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/category-quiz-bot/internal/domain/entities"
)

func must[Q entities.Quiz](q Q, err error) Q {
	if err != nil {
		panic(err)
	}
	return q
}

func TestAnswerMatcher(t *testing.T) {
	m := NewAnswerMatcher(NewAnswerValidator())

	trueFalse := must(entities.NewTrueFalseQuiz("The sky is blue.", true, false))
	pickOne := must(entities.NewPickOneQuiz("Capital of Germany?", []string{"Bonn", "Berlin", "1990"}, []string{"Berlin"}, false))
	pickYear := must(entities.NewPickOneQuiz("Reunification?", []string{"Bonn", "1990"}, []string{"1990"}, false))
	pickDigit := must(entities.NewPickOneQuiz("Sides of a triangle?", []string{"2", "3", "4"}, []string{"3"}, false))
	multiDigit := must(entities.NewMultiSelectQuiz("Odd numbers?", []string{"1", "2", "3"}, []string{"1", "3"}, false))
	multi := must(entities.NewMultiSelectQuiz("Primes?", []string{"Two", "Three", "Four", "Five"}, []string{"Two", "Three", "Five"}, false))
	fill := must(entities.NewFillBlankQuiz("Largest ocean?", "Pacific", "The", "Ocean", false))
	two := must(entities.NewFillTwoBlanksQuiz("Name the twins.", []string{"Castor", "Pollux"}, false))
	picker := must(entities.NewPickerQuiz("Boiling point?", 100, 0, 200, 10, false))
	alpha := must(entities.NewAlphaPickerQuiz("First letter of Go?", "G", false))

	tests := []struct {
		name  string
		quiz  entities.Quiz
		input string
		want  bool
	}{
		{"true false word", trueFalse, "True", true},
		{"true false yes", trueFalse, "yes", true},
		{"true false wrong", trueFalse, "no", false},
		{"pick one by number", pickOne, "2", true},
		{"pick one by text", pickOne, "berlin", true},
		{"pick one wrong", pickOne, "Bonn", false},
		{"pick one numeric label", pickYear, "1990", true},
		{"pick one digit label by text", pickDigit, "3", true},
		{"pick one digit label wrong", pickDigit, "4", false},
		{"pick one digit label by position", pickDigit, "1", false},
		{"multi select digit labels", multiDigit, "3, 1", true},
		{"multi select digit labels wrong", multiDigit, "1, 2", false},
		{"multi select any order", multi, "five, two, three", true},
		{"multi select by number", multi, "1,2,4", true},
		{"multi select missing", multi, "Two, Three", false},
		{"fill blank exact", fill, "Pacific", true},
		{"fill blank typo", fill, "Pacfic", true},
		{"fill blank wrong", fill, "Atlantic", false},
		{"two blanks", two, "castor, pollux", true},
		{"two blanks newline", two, "Castor\nPollux", true},
		{"two blanks swapped", two, "Pollux, Castor", false},
		{"picker", picker, "100", true},
		{"picker wrong", picker, "90", false},
		{"alpha", alpha, "g", true},
		{"alpha wrong", alpha, "h", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := m.Match(tt.quiz, tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAnswerMatcherInvalidInput(t *testing.T) {
	m := NewAnswerMatcher(NewAnswerValidator())

	trueFalse := must(entities.NewTrueFalseQuiz("The sky is blue.", true, false))
	pickOne := must(entities.NewPickOneQuiz("Capital?", []string{"Bonn", "Berlin"}, []string{"Berlin"}, false))
	two := must(entities.NewFillTwoBlanksQuiz("Twins?", []string{"Castor", "Pollux"}, false))
	picker := must(entities.NewPickerQuiz("Boiling point?", 100, 0, 200, 10, false))

	tests := []struct {
		name  string
		quiz  entities.Quiz
		input string
	}{
		{"empty", trueFalse, "   "},
		{"not a bool", trueFalse, "maybe"},
		{"option out of range", pickOne, "3"},
		{"unknown option", pickOne, "Munich"},
		{"one blank", two, "Castor"},
		{"not a number", picker, "hundred"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := m.Match(tt.quiz, tt.input)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestAnswerMatcherPickerOutOfRange(t *testing.T) {
	m := NewAnswerMatcher(NewAnswerValidator())
	picker := must(entities.NewPickerQuiz("Boiling point?", 100, 0, 200, 10, false))

	got, err := m.Match(picker, "500")
	require.NoError(t, err)
	assert.False(t, got)
}

func TestAnswerMatcherWithoutAnswer(t *testing.T) {
	m := NewAnswerMatcher(NewAnswerValidator())
	q := must(entities.NewUnansweredTrueFalseQuiz("The sky is blue.", false))

	_, err := m.Match(q, "true")
	assert.ErrorIs(t, err, entities.ErrIllegalState)
}
