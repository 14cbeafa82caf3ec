package entities

import (
	"slices"
	"strconv"
	"strings"
)

// FillBlankQuiz asks for the word missing between Start and End.
type FillBlankQuiz struct {
	Record[string]
	start string
	end   string
}

// NewFillBlankQuiz creates a fill in the blank quiz.
func NewFillBlankQuiz(question, answer, start, end string, solved bool) (*FillBlankQuiz, error) {
	q, err := NewUnansweredFillBlankQuiz(question, start, end, solved)
	if err != nil {
		return nil, err
	}
	if err := q.RestoreAnswer(answer); err != nil {
		return nil, err
	}
	return q, nil
}

// NewUnansweredFillBlankQuiz creates a fill in the blank quiz without its answer.
func NewUnansweredFillBlankQuiz(question, start, end string, solved bool) (*FillBlankQuiz, error) {
	if err := checkQuestion(TypeFillBlank, question); err != nil {
		return nil, err
	}
	q := &FillBlankQuiz{Record: newRecord(TypeFillBlank, question, stringAnswer), start: start, end: end}
	q.solved = solved
	return q, nil
}

// RestoreAnswer validates and sets the missing word.
func (q *FillBlankQuiz) RestoreAnswer(answer string) error {
	if strings.TrimSpace(answer) == "" {
		return invalid(TypeFillBlank, "answer", "is required")
	}
	q.setAnswer(answer)
	return nil
}

// Start returns the text shown before the blank.
func (q *FillBlankQuiz) Start() string { return q.start }

// End returns the text shown after the blank.
func (q *FillBlankQuiz) End() string { return q.end }

func (q *FillBlankQuiz) StringAnswer() string {
	return q.answer
}

// FillTwoBlanksQuiz asks for two missing words.
type FillTwoBlanksQuiz struct {
	Record[[]string]
}

// NewFillTwoBlanksQuiz creates a quiz with two blanks.
func NewFillTwoBlanksQuiz(question string, answer []string, solved bool) (*FillTwoBlanksQuiz, error) {
	q, err := NewUnansweredFillTwoBlanksQuiz(question, solved)
	if err != nil {
		return nil, err
	}
	if err := q.RestoreAnswer(answer); err != nil {
		return nil, err
	}
	return q, nil
}

// NewUnansweredFillTwoBlanksQuiz creates a two blank quiz without its answer.
func NewUnansweredFillTwoBlanksQuiz(question string, solved bool) (*FillTwoBlanksQuiz, error) {
	if err := checkQuestion(TypeFillTwoBlanks, question); err != nil {
		return nil, err
	}
	q := &FillTwoBlanksQuiz{Record: newRecord(TypeFillTwoBlanks, question, listAnswer)}
	q.solved = solved
	return q, nil
}

// RestoreAnswer validates and sets both missing words.
func (q *FillTwoBlanksQuiz) RestoreAnswer(answer []string) error {
	if err := checkLabels(TypeFillTwoBlanks, answer); err != nil {
		return err
	}
	if len(answer) != 2 {
		return invalid(TypeFillTwoBlanks, "answer", "must hold exactly two entries")
	}
	q.setAnswer(slices.Clone(answer))
	return nil
}

// Answer returns a copy of both words.
func (q *FillTwoBlanksQuiz) Answer() []string {
	return slices.Clone(q.answer)
}

func (q *FillTwoBlanksQuiz) StringAnswer() string {
	return strings.Join(q.answer, "\n")
}

// AlphaPickerQuiz asks for a word picked letter by letter.
type AlphaPickerQuiz struct {
	Record[string]
}

// NewAlphaPickerQuiz creates an alpha picker quiz.
func NewAlphaPickerQuiz(question, answer string, solved bool) (*AlphaPickerQuiz, error) {
	q, err := NewUnansweredAlphaPickerQuiz(question, solved)
	if err != nil {
		return nil, err
	}
	if err := q.RestoreAnswer(answer); err != nil {
		return nil, err
	}
	return q, nil
}

// NewUnansweredAlphaPickerQuiz creates an alpha picker quiz without its answer.
func NewUnansweredAlphaPickerQuiz(question string, solved bool) (*AlphaPickerQuiz, error) {
	if err := checkQuestion(TypeAlphaPicker, question); err != nil {
		return nil, err
	}
	q := &AlphaPickerQuiz{Record: newRecord(TypeAlphaPicker, question, stringAnswer)}
	q.solved = solved
	return q, nil
}

// RestoreAnswer validates and sets the word.
func (q *AlphaPickerQuiz) RestoreAnswer(answer string) error {
	if strings.TrimSpace(answer) == "" {
		return invalid(TypeAlphaPicker, "answer", "is required")
	}
	q.setAnswer(answer)
	return nil
}

func (q *AlphaPickerQuiz) StringAnswer() string {
	return q.answer
}

// PickerQuiz asks for a number in [Min, Max] reachable in Step increments.
type PickerQuiz struct {
	Record[int]
	min  int
	max  int
	step int
}

// NewPickerQuiz creates a number picker quiz. A zero step means 1.
func NewPickerQuiz(question string, answer, min, max, step int, solved bool) (*PickerQuiz, error) {
	q, err := NewUnansweredPickerQuiz(question, min, max, step, solved)
	if err != nil {
		return nil, err
	}
	if err := q.RestoreAnswer(answer); err != nil {
		return nil, err
	}
	return q, nil
}

// NewUnansweredPickerQuiz creates a number picker quiz without its answer.
func NewUnansweredPickerQuiz(question string, min, max, step int, solved bool) (*PickerQuiz, error) {
	if err := checkQuestion(TypePicker, question); err != nil {
		return nil, err
	}
	if min > max {
		return nil, invalid(TypePicker, "min", "is greater than max")
	}
	if step < 0 {
		return nil, invalid(TypePicker, "step", "is negative")
	}
	if step == 0 {
		step = 1
	}
	q := &PickerQuiz{Record: newRecord(TypePicker, question, intAnswer), min: min, max: max, step: step}
	q.solved = solved
	return q, nil
}

// RestoreAnswer validates and sets the number.
func (q *PickerQuiz) RestoreAnswer(answer int) error {
	if answer < q.min || answer > q.max {
		return invalid(TypePicker, "answer", "is out of range")
	}
	q.setAnswer(answer)
	return nil
}

func (q *PickerQuiz) Min() int  { return q.min }
func (q *PickerQuiz) Max() int  { return q.max }
func (q *PickerQuiz) Step() int { return q.step }

func (q *PickerQuiz) StringAnswer() string {
	if !q.answered {
		return ""
	}
	return strconv.Itoa(q.answer)
}

func (q *FillBlankQuiz) base() *Record[string] {
	if q == nil {
		return nil
	}
	return &q.Record
}

func (q *FillTwoBlanksQuiz) base() *Record[[]string] {
	if q == nil {
		return nil
	}
	return &q.Record
}

func (q *AlphaPickerQuiz) base() *Record[string] {
	if q == nil {
		return nil
	}
	return &q.Record
}

func (q *PickerQuiz) base() *Record[int] {
	if q == nil {
		return nil
	}
	return &q.Record
}
