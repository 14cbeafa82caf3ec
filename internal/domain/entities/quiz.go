package entities

import (
	"encoding/binary"
	"fmt"

	"github.com/zeebo/xxh3"
)

// QuizType is the stable tag that identifies a quiz variant.
type QuizType string

const (
	TypeTrueFalse     QuizType = "true_false"
	TypePickOne       QuizType = "pick_one"
	TypeMultiSelect   QuizType = "multi_select"
	TypeFillBlank     QuizType = "fill_blank"
	TypeFillTwoBlanks QuizType = "fill_two_blanks"
	TypePicker        QuizType = "picker"
	TypeAlphaPicker   QuizType = "alpha_picker"
)

// Quiz is implemented by every quiz variant.
type Quiz interface {
	Type() QuizType
	Question() string
	// StringAnswer renders the stored answer for humans.
	StringAnswer() string
	HasAnswer() bool
	Solved() bool
	SetSolved(solved bool)
	Equal(other Quiz) bool
	Hash() uint64
}

// answerOps describes value semantics of an answer type.
type answerOps[A any] struct {
	equal func(a, b A) bool
	bytes func(a A) []byte
}

// Record holds the state shared by all quiz variants. Variants embed it and
// supply their own tag and answer rendering.
type Record[A any] struct {
	question string
	answer   A
	answered bool
	quizType QuizType
	solved   bool
	ops      answerOps[A]
}

func newRecord[A any](t QuizType, question string, ops answerOps[A]) Record[A] {
	return Record[A]{question: question, quizType: t, ops: ops}
}

// Type returns the variant tag.
func (r *Record[A]) Type() QuizType {
	return r.quizType
}

// Question returns the prompt.
func (r *Record[A]) Question() string {
	return r.question
}

// Answer returns the stored answer. The zero value is returned when the
// record was restored without one; check HasAnswer first.
func (r *Record[A]) Answer() A {
	return r.answer
}

// HasAnswer reports whether the record holds a correct answer.
func (r *Record[A]) HasAnswer() bool {
	return r.answered
}

func (r *Record[A]) setAnswer(answer A) {
	r.answer = answer
	r.answered = true
}

// IsAnswerCorrect compares candidate with the stored answer by value.
func (r *Record[A]) IsAnswerCorrect(candidate A) (bool, error) {
	if !r.answered {
		return false, &IllegalStateError{Op: "check answer", Reason: fmt.Sprintf("%s quiz %q has no answer", r.quizType, r.question)}
	}
	return r.ops.equal(r.answer, candidate), nil
}

// Solved reports whether the quiz has been played. It says nothing about
// whether the given answer was correct.
func (r *Record[A]) Solved() bool {
	return r.solved
}

// SetSolved sets the solved flag.
func (r *Record[A]) SetSolved(solved bool) {
	r.solved = solved
}

// recordHolder is implemented by each variant. base returns nil for a nil
// variant pointer.
type recordHolder[A any] interface {
	base() *Record[A]
}

// Equal reports whether other has the same tag, question, answer and solved flag.
func (r *Record[A]) Equal(other Quiz) bool {
	if other == nil {
		return false
	}
	h, ok := other.(recordHolder[A])
	if !ok {
		return false
	}
	o := h.base()
	if o == nil {
		return false
	}
	if r == o {
		return true
	}
	if r.solved != o.solved || r.quizType != o.quizType || r.question != o.question {
		return false
	}
	if r.answered != o.answered {
		return false
	}
	return !r.answered || r.ops.equal(r.answer, o.answer)
}

// Hash returns a hash consistent with Equal.
func (r *Record[A]) Hash() uint64 {
	h := xxh3.New()
	writeField(h, []byte(r.quizType))
	writeField(h, []byte(r.question))
	if r.answered {
		writeField(h, r.ops.bytes(r.answer))
	}
	if r.solved {
		_, _ = h.Write([]byte{1})
	} else {
		_, _ = h.Write([]byte{0})
	}
	return h.Sum64()
}

// writeField writes a length-prefixed chunk so adjacent fields cannot collide.
func writeField(h *xxh3.Hasher, b []byte) {
	var n [binary.MaxVarintLen64]byte
	_, _ = h.Write(n[:binary.PutUvarint(n[:], uint64(len(b)))])
	_, _ = h.Write(b)
}

// String returns a short description used in logs.
func (r *Record[A]) String() string {
	return fmt.Sprintf("%s: %q", r.quizType, r.question)
}
