package service

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/aliskhannn/category-quiz-bot/internal/domain/entities"
)

// ErrInvalidInput is returned when free text cannot be read as an answer
// for the quiz variant. The quiz stays unsolved.
var ErrInvalidInput = errors.New("answer cannot be parsed")

// InputError explains what input the variant expects.
type InputError struct {
	Type entities.QuizType
	Hint string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s answer cannot be parsed: %s", e.Type, e.Hint)
}

func (e *InputError) Is(target error) bool {
	return target == ErrInvalidInput
}

// AnswerMatcher turns free text into a variant's answer type and checks it.
type AnswerMatcher struct {
	validator *AnswerValidator
}

// NewAnswerMatcher creates a new AnswerMatcher.
func NewAnswerMatcher(validator *AnswerValidator) *AnswerMatcher {
	return &AnswerMatcher{validator: validator}
}

// Match reports whether input answers q correctly.
func (m *AnswerMatcher) Match(q entities.Quiz, input string) (bool, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return false, &InputError{Type: q.Type(), Hint: "answer is empty"}
	}

	switch q := q.(type) {
	case *entities.TrueFalseQuiz:
		b, ok := parseBool(input)
		if !ok {
			return false, &InputError{Type: q.Type(), Hint: "reply true or false"}
		}
		return q.IsAnswerCorrect(b)

	case *entities.PickOneQuiz:
		label, ok := m.resolveOption(q.Options(), input)
		if !ok {
			return false, &InputError{Type: q.Type(), Hint: "reply with an option number or its text"}
		}
		return q.IsAnswerCorrect([]string{label})

	case *entities.MultiSelectQuiz:
		parts := splitList(input)
		labels := make([]string, 0, len(parts))
		for _, p := range parts {
			label, ok := m.resolveOption(q.Options(), p)
			if !ok {
				return false, &InputError{Type: q.Type(), Hint: fmt.Sprintf("%q is not an option", p)}
			}
			labels = append(labels, label)
		}
		return q.IsAnswerCorrect(q.Ordered(labels))

	case *entities.FillBlankQuiz:
		if ok, err := q.IsAnswerCorrect(input); err != nil || ok {
			return ok, err
		}
		return m.validator.Validate(input, q.Answer()), nil

	case *entities.FillTwoBlanksQuiz:
		parts := splitList(input)
		if len(parts) != 2 {
			return false, &InputError{Type: q.Type(), Hint: "reply with two words separated by a comma"}
		}
		if ok, err := q.IsAnswerCorrect(parts); err != nil || ok {
			return ok, err
		}
		want := q.Answer()
		return m.validator.Validate(parts[0], want[0]) && m.validator.Validate(parts[1], want[1]), nil

	case *entities.PickerQuiz:
		n, err := strconv.Atoi(input)
		if err != nil {
			return false, &InputError{Type: q.Type(), Hint: fmt.Sprintf("reply with a number from %d to %d", q.Min(), q.Max())}
		}
		return q.IsAnswerCorrect(n)

	case *entities.AlphaPickerQuiz:
		if ok, err := q.IsAnswerCorrect(input); err != nil || ok {
			return ok, err
		}
		return m.validator.Equal(input, q.Answer()), nil

	default:
		return false, fmt.Errorf("no text matcher for %s quiz", q.Type())
	}
}

// resolveOption accepts the option text or a 1-based option number.
// Option text is tried first, so a numeric label matches as text.
func (m *AnswerMatcher) resolveOption(options []string, input string) (string, bool) {
	input = strings.TrimSpace(input)
	for _, o := range options {
		if m.validator.Equal(o, input) {
			return o, true
		}
	}
	if n, err := strconv.Atoi(input); err == nil && n >= 1 && n <= len(options) {
		return options[n-1], true
	}
	return "", false
}

func parseBool(s string) (bool, bool) {
	switch strings.ToLower(s) {
	case "true", "t", "yes", "y", "1":
		return true, true
	case "false", "f", "no", "n", "0":
		return false, true
	}
	return false, false
}

func splitList(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == '\n' || r == ';' })
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}
