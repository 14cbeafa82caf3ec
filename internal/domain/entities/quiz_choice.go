package entities

import (
	"slices"
	"strings"
)

// choices holds the option list shared by the choice variants.
type choices struct {
	options []string
}

// Options returns the labels offered to the player.
func (c *choices) Options() []string {
	return slices.Clone(c.options)
}

func (c *choices) checkAnswer(t QuizType, labels []string) error {
	if err := checkLabels(t, labels); err != nil {
		return err
	}
	for _, l := range labels {
		if !slices.Contains(c.options, l) {
			return invalid(t, "answer", "label "+l+" is not an option")
		}
	}
	return nil
}

func newChoices(t QuizType, options []string) (choices, error) {
	if len(options) < 2 {
		return choices{}, invalid(t, "options", "needs at least two entries")
	}
	seen := make(map[string]struct{}, len(options))
	for _, o := range options {
		if strings.TrimSpace(o) == "" {
			return choices{}, invalid(t, "options", "contains an empty entry")
		}
		if _, ok := seen[o]; ok {
			return choices{}, invalid(t, "options", "contains duplicate "+o)
		}
		seen[o] = struct{}{}
	}
	return choices{options: slices.Clone(options)}, nil
}

// PickOneQuiz asks for exactly one of the options.
type PickOneQuiz struct {
	Record[[]string]
	choices
}

// NewPickOneQuiz creates a single choice quiz. answer holds exactly one label.
func NewPickOneQuiz(question string, options, answer []string, solved bool) (*PickOneQuiz, error) {
	q, err := NewUnansweredPickOneQuiz(question, options, solved)
	if err != nil {
		return nil, err
	}
	if err := q.RestoreAnswer(answer); err != nil {
		return nil, err
	}
	return q, nil
}

// NewUnansweredPickOneQuiz creates a single choice quiz without its answer.
func NewUnansweredPickOneQuiz(question string, options []string, solved bool) (*PickOneQuiz, error) {
	if err := checkQuestion(TypePickOne, question); err != nil {
		return nil, err
	}
	c, err := newChoices(TypePickOne, options)
	if err != nil {
		return nil, err
	}
	q := &PickOneQuiz{Record: newRecord(TypePickOne, question, listAnswer), choices: c}
	q.solved = solved
	return q, nil
}

// RestoreAnswer validates and sets the correct label.
func (q *PickOneQuiz) RestoreAnswer(answer []string) error {
	if len(answer) > 1 {
		return invalid(TypePickOne, "answer", "must hold exactly one label")
	}
	if err := q.checkAnswer(TypePickOne, answer); err != nil {
		return err
	}
	q.setAnswer(slices.Clone(answer))
	return nil
}

// Answer returns a copy of the correct label.
func (q *PickOneQuiz) Answer() []string {
	return slices.Clone(q.answer)
}

func (q *PickOneQuiz) StringAnswer() string {
	return strings.Join(q.answer, ", ")
}

// MultiSelectQuiz asks for every correct option.
type MultiSelectQuiz struct {
	Record[[]string]
	choices
}

// NewMultiSelectQuiz creates a multiple choice quiz. answer lists the correct
// labels in option order.
func NewMultiSelectQuiz(question string, options, answer []string, solved bool) (*MultiSelectQuiz, error) {
	q, err := NewUnansweredMultiSelectQuiz(question, options, solved)
	if err != nil {
		return nil, err
	}
	if err := q.RestoreAnswer(answer); err != nil {
		return nil, err
	}
	return q, nil
}

// NewUnansweredMultiSelectQuiz creates a multiple choice quiz without its answer.
func NewUnansweredMultiSelectQuiz(question string, options []string, solved bool) (*MultiSelectQuiz, error) {
	if err := checkQuestion(TypeMultiSelect, question); err != nil {
		return nil, err
	}
	c, err := newChoices(TypeMultiSelect, options)
	if err != nil {
		return nil, err
	}
	q := &MultiSelectQuiz{Record: newRecord(TypeMultiSelect, question, listAnswer), choices: c}
	q.solved = solved
	return q, nil
}

// RestoreAnswer validates and sets the correct labels. Labels are stored in
// option order so that equal selections compare equal.
func (q *MultiSelectQuiz) RestoreAnswer(answer []string) error {
	if err := q.checkAnswer(TypeMultiSelect, answer); err != nil {
		return err
	}
	q.setAnswer(q.Ordered(answer))
	return nil
}

// Ordered returns the given labels sorted by their position in the options,
// dropping duplicates.
func (q *MultiSelectQuiz) Ordered(labels []string) []string {
	out := make([]string, 0, len(labels))
	for _, o := range q.options {
		if slices.Contains(labels, o) {
			out = append(out, o)
		}
	}
	return out
}

// Answer returns a copy of the correct labels in option order.
func (q *MultiSelectQuiz) Answer() []string {
	return slices.Clone(q.answer)
}

func (q *MultiSelectQuiz) StringAnswer() string {
	return strings.Join(q.answer, ", ")
}

func (q *PickOneQuiz) base() *Record[[]string] {
	if q == nil {
		return nil
	}
	return &q.Record
}

func (q *MultiSelectQuiz) base() *Record[[]string] {
	if q == nil {
		return nil
	}
	return &q.Record
}
