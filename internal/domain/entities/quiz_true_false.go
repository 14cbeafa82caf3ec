package entities

// TrueFalseQuiz asks the player to judge a statement.
type TrueFalseQuiz struct {
	Record[bool]
}

// NewTrueFalseQuiz creates a true/false quiz.
func NewTrueFalseQuiz(question string, answer, solved bool) (*TrueFalseQuiz, error) {
	q, err := NewUnansweredTrueFalseQuiz(question, solved)
	if err != nil {
		return nil, err
	}
	q.RestoreAnswer(answer)
	return q, nil
}

// NewUnansweredTrueFalseQuiz creates a true/false quiz whose answer is
// supplied later with RestoreAnswer.
func NewUnansweredTrueFalseQuiz(question string, solved bool) (*TrueFalseQuiz, error) {
	if err := checkQuestion(TypeTrueFalse, question); err != nil {
		return nil, err
	}
	q := &TrueFalseQuiz{Record: newRecord(TypeTrueFalse, question, boolAnswer)}
	q.solved = solved
	return q, nil
}

// RestoreAnswer sets the correct answer.
func (q *TrueFalseQuiz) RestoreAnswer(answer bool) {
	q.setAnswer(answer)
}

func (q *TrueFalseQuiz) StringAnswer() string {
	if !q.answered {
		return ""
	}
	if q.answer {
		return "True"
	}
	return "False"
}

func (q *TrueFalseQuiz) base() *Record[bool] {
	if q == nil {
		return nil
	}
	return &q.Record
}
