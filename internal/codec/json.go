package codec

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/aliskhannn/category-quiz-bot/internal/domain/entities"
)

// JSONRecord is the text form of a quiz. The first four fields are common to
// every variant; the rest are variant extras.
type JSONRecord struct {
	Question string          `json:"question"`
	Answer   json.RawMessage `json:"answer,omitempty"`
	Type     string          `json:"type"`
	Solved   bool            `json:"solved"`
	Options  []string        `json:"options,omitempty"`
	Start    string          `json:"start,omitempty"`
	End      string          `json:"end,omitempty"`
	Min      *int            `json:"min,omitempty"`
	Max      *int            `json:"max,omitempty"`
	Step     *int            `json:"step,omitempty"`
}

// Marshal encodes q in its JSON form.
func (r *Registry) Marshal(q entities.Quiz) ([]byte, error) {
	rec, err := r.encodeRecord(q)
	if err != nil {
		return nil, err
	}
	return json.Marshal(rec)
}

// MarshalList encodes quizzes as a JSON array.
func (r *Registry) MarshalList(quizzes []entities.Quiz) ([]byte, error) {
	recs := make([]*JSONRecord, 0, len(quizzes))
	for i, q := range quizzes {
		rec, err := r.encodeRecord(q)
		if err != nil {
			return nil, fmt.Errorf("quiz %d: %w", i, err)
		}
		recs = append(recs, rec)
	}
	return json.Marshal(recs)
}

func (r *Registry) encodeRecord(q entities.Quiz) (*JSONRecord, error) {
	v, err := r.Lookup(q.Type())
	if err != nil {
		return nil, err
	}
	if !q.HasAnswer() {
		return nil, &entities.IllegalStateError{Op: "marshal quiz", Reason: fmt.Sprintf("%s quiz %q has no answer", q.Type(), q.Question())}
	}
	rec := &JSONRecord{
		Question: q.Question(),
		Type:     string(q.Type()),
		Solved:   q.Solved(),
	}
	if err := v.encodeJSON(q, rec); err != nil {
		return nil, fmt.Errorf("encode %s answer: %w", q.Type(), err)
	}
	return rec, nil
}

// Unmarshal decodes a single quiz from its JSON form.
func (r *Registry) Unmarshal(data []byte) (entities.Quiz, error) {
	var rec JSONRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("parse quiz json: %w", err)
	}
	return r.decodeRecord(&rec)
}

// UnmarshalList decodes a JSON array of quizzes.
func (r *Registry) UnmarshalList(data []byte) ([]entities.Quiz, error) {
	var recs []JSONRecord
	if err := json.Unmarshal(data, &recs); err != nil {
		return nil, fmt.Errorf("parse quiz list json: %w", err)
	}
	quizzes := make([]entities.Quiz, 0, len(recs))
	for i := range recs {
		q, err := r.decodeRecord(&recs[i])
		if err != nil {
			return nil, fmt.Errorf("quiz %d: %w", i, err)
		}
		quizzes = append(quizzes, q)
	}
	return quizzes, nil
}

func (r *Registry) decodeRecord(rec *JSONRecord) (entities.Quiz, error) {
	v, err := r.Lookup(entities.QuizType(rec.Type))
	if err != nil {
		return nil, err
	}
	if isAbsent(rec.Answer) {
		return nil, &entities.InvalidRecordError{Type: v.Type, Field: "answer", Reason: "is required"}
	}
	return v.decodeJSON(rec)
}

func isAbsent(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// decodeAnswer unmarshals the raw answer into the variant's answer type.
func decodeAnswer[A any](t entities.QuizType, raw json.RawMessage) (A, error) {
	var a A
	if err := json.Unmarshal(raw, &a); err != nil {
		return a, &entities.InvalidRecordError{Type: t, Field: "answer", Reason: fmt.Sprintf("has wrong shape: %v", err)}
	}
	return a, nil
}

func encodeAnswer[A any](rec *JSONRecord, a A) error {
	raw, err := json.Marshal(a)
	if err != nil {
		return err
	}
	rec.Answer = raw
	return nil
}
