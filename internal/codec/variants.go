package codec

import (
	"fmt"

	"github.com/aliskhannn/category-quiz-bot/internal/domain/entities"
)

// Ordinals are part of the native form; never renumber an existing variant.
const (
	OrdinalTrueFalse     = 0
	OrdinalPickOne       = 1
	OrdinalMultiSelect   = 2
	OrdinalFillBlank     = 3
	OrdinalFillTwoBlanks = 4
	OrdinalPicker        = 5
	OrdinalAlphaPicker   = 6
)

// Routines is the typed set of wire routines a variant supplies.
type Routines[Q entities.Quiz] struct {
	EncodeJSON  func(q Q, rec *JSONRecord) error
	DecodeJSON  func(rec *JSONRecord) (Q, error)
	WriteNative func(q Q, w *NativeWriter)
	ReadNative  func(question string, solved bool, r *NativeReader) (Q, error)
}

// NewVariant adapts typed routines to a registry entry.
func NewVariant[Q entities.Quiz](t entities.QuizType, ordinal int, fns Routines[Q]) Variant {
	cast := func(q entities.Quiz) (Q, error) {
		typed, ok := q.(Q)
		if !ok {
			var zero Q
			return zero, fmt.Errorf("%s variant cannot encode %T", t, q)
		}
		return typed, nil
	}
	return Variant{
		Type:    t,
		Ordinal: ordinal,
		encodeJSON: func(q entities.Quiz, rec *JSONRecord) error {
			typed, err := cast(q)
			if err != nil {
				return err
			}
			return fns.EncodeJSON(typed, rec)
		},
		decodeJSON: func(rec *JSONRecord) (entities.Quiz, error) {
			q, err := fns.DecodeJSON(rec)
			if err != nil {
				return nil, err
			}
			return q, nil
		},
		writeNative: func(q entities.Quiz, w *NativeWriter) error {
			typed, err := cast(q)
			if err != nil {
				return err
			}
			fns.WriteNative(typed, w)
			return nil
		},
		readNative: func(h nativeHeader, r *NativeReader) (entities.Quiz, error) {
			q, err := fns.ReadNative(h.question, h.solved, r)
			if err != nil {
				return nil, err
			}
			return q, nil
		},
	}
}

// BuiltinVariants returns the variants every registry starts from. Extend
// the set by passing additional variants to NewRegistry.
func BuiltinVariants() []Variant {
	return []Variant{
		NewVariant(entities.TypeTrueFalse, OrdinalTrueFalse, trueFalseRoutines),
		NewVariant(entities.TypePickOne, OrdinalPickOne, pickOneRoutines),
		NewVariant(entities.TypeMultiSelect, OrdinalMultiSelect, multiSelectRoutines),
		NewVariant(entities.TypeFillBlank, OrdinalFillBlank, fillBlankRoutines),
		NewVariant(entities.TypeFillTwoBlanks, OrdinalFillTwoBlanks, fillTwoBlanksRoutines),
		NewVariant(entities.TypePicker, OrdinalPicker, pickerRoutines),
		NewVariant(entities.TypeAlphaPicker, OrdinalAlphaPicker, alphaPickerRoutines),
	}
}

var trueFalseRoutines = Routines[*entities.TrueFalseQuiz]{
	EncodeJSON: func(q *entities.TrueFalseQuiz, rec *JSONRecord) error {
		return encodeAnswer(rec, q.Answer())
	},
	DecodeJSON: func(rec *JSONRecord) (*entities.TrueFalseQuiz, error) {
		a, err := decodeAnswer[bool](entities.TypeTrueFalse, rec.Answer)
		if err != nil {
			return nil, err
		}
		return entities.NewTrueFalseQuiz(rec.Question, a, rec.Solved)
	},
	WriteNative: func(q *entities.TrueFalseQuiz, w *NativeWriter) {
		if q.HasAnswer() {
			w.WriteBool(q.Answer())
		}
	},
	ReadNative: func(question string, solved bool, r *NativeReader) (*entities.TrueFalseQuiz, error) {
		q, err := entities.NewUnansweredTrueFalseQuiz(question, solved)
		if err != nil {
			return nil, err
		}
		if r.More() {
			a, err := r.ReadBool()
			if err != nil {
				return nil, err
			}
			q.RestoreAnswer(a)
		}
		return q, nil
	},
}

var pickOneRoutines = Routines[*entities.PickOneQuiz]{
	EncodeJSON: func(q *entities.PickOneQuiz, rec *JSONRecord) error {
		rec.Options = q.Options()
		return encodeAnswer(rec, q.Answer())
	},
	DecodeJSON: func(rec *JSONRecord) (*entities.PickOneQuiz, error) {
		a, err := decodeAnswer[[]string](entities.TypePickOne, rec.Answer)
		if err != nil {
			return nil, err
		}
		return entities.NewPickOneQuiz(rec.Question, rec.Options, a, rec.Solved)
	},
	WriteNative: func(q *entities.PickOneQuiz, w *NativeWriter) {
		w.WriteStrings(q.Options())
		if q.HasAnswer() {
			w.WriteStrings(q.Answer())
		}
	},
	ReadNative: func(question string, solved bool, r *NativeReader) (*entities.PickOneQuiz, error) {
		options, err := r.ReadStrings()
		if err != nil {
			return nil, err
		}
		q, err := entities.NewUnansweredPickOneQuiz(question, options, solved)
		if err != nil {
			return nil, err
		}
		if r.More() {
			a, err := r.ReadStrings()
			if err != nil {
				return nil, err
			}
			if err := q.RestoreAnswer(a); err != nil {
				return nil, err
			}
		}
		return q, nil
	},
}

var multiSelectRoutines = Routines[*entities.MultiSelectQuiz]{
	EncodeJSON: func(q *entities.MultiSelectQuiz, rec *JSONRecord) error {
		rec.Options = q.Options()
		return encodeAnswer(rec, q.Answer())
	},
	DecodeJSON: func(rec *JSONRecord) (*entities.MultiSelectQuiz, error) {
		a, err := decodeAnswer[[]string](entities.TypeMultiSelect, rec.Answer)
		if err != nil {
			return nil, err
		}
		return entities.NewMultiSelectQuiz(rec.Question, rec.Options, a, rec.Solved)
	},
	WriteNative: func(q *entities.MultiSelectQuiz, w *NativeWriter) {
		w.WriteStrings(q.Options())
		if q.HasAnswer() {
			w.WriteStrings(q.Answer())
		}
	},
	ReadNative: func(question string, solved bool, r *NativeReader) (*entities.MultiSelectQuiz, error) {
		options, err := r.ReadStrings()
		if err != nil {
			return nil, err
		}
		q, err := entities.NewUnansweredMultiSelectQuiz(question, options, solved)
		if err != nil {
			return nil, err
		}
		if r.More() {
			a, err := r.ReadStrings()
			if err != nil {
				return nil, err
			}
			if err := q.RestoreAnswer(a); err != nil {
				return nil, err
			}
		}
		return q, nil
	},
}

var fillBlankRoutines = Routines[*entities.FillBlankQuiz]{
	EncodeJSON: func(q *entities.FillBlankQuiz, rec *JSONRecord) error {
		rec.Start = q.Start()
		rec.End = q.End()
		return encodeAnswer(rec, q.Answer())
	},
	DecodeJSON: func(rec *JSONRecord) (*entities.FillBlankQuiz, error) {
		a, err := decodeAnswer[string](entities.TypeFillBlank, rec.Answer)
		if err != nil {
			return nil, err
		}
		return entities.NewFillBlankQuiz(rec.Question, a, rec.Start, rec.End, rec.Solved)
	},
	WriteNative: func(q *entities.FillBlankQuiz, w *NativeWriter) {
		w.WriteString(q.Start())
		w.WriteString(q.End())
		if q.HasAnswer() {
			w.WriteString(q.Answer())
		}
	},
	ReadNative: func(question string, solved bool, r *NativeReader) (*entities.FillBlankQuiz, error) {
		var start, end string
		if r.More() {
			var err error
			if start, err = r.ReadString(); err != nil {
				return nil, err
			}
			if end, err = r.ReadString(); err != nil {
				return nil, err
			}
		}
		q, err := entities.NewUnansweredFillBlankQuiz(question, start, end, solved)
		if err != nil {
			return nil, err
		}
		if r.More() {
			a, err := r.ReadString()
			if err != nil {
				return nil, err
			}
			if err := q.RestoreAnswer(a); err != nil {
				return nil, err
			}
		}
		return q, nil
	},
}

var fillTwoBlanksRoutines = Routines[*entities.FillTwoBlanksQuiz]{
	EncodeJSON: func(q *entities.FillTwoBlanksQuiz, rec *JSONRecord) error {
		return encodeAnswer(rec, q.Answer())
	},
	DecodeJSON: func(rec *JSONRecord) (*entities.FillTwoBlanksQuiz, error) {
		a, err := decodeAnswer[[]string](entities.TypeFillTwoBlanks, rec.Answer)
		if err != nil {
			return nil, err
		}
		return entities.NewFillTwoBlanksQuiz(rec.Question, a, rec.Solved)
	},
	WriteNative: func(q *entities.FillTwoBlanksQuiz, w *NativeWriter) {
		if q.HasAnswer() {
			w.WriteStrings(q.Answer())
		}
	},
	ReadNative: func(question string, solved bool, r *NativeReader) (*entities.FillTwoBlanksQuiz, error) {
		q, err := entities.NewUnansweredFillTwoBlanksQuiz(question, solved)
		if err != nil {
			return nil, err
		}
		if r.More() {
			a, err := r.ReadStrings()
			if err != nil {
				return nil, err
			}
			if err := q.RestoreAnswer(a); err != nil {
				return nil, err
			}
		}
		return q, nil
	},
}

var pickerRoutines = Routines[*entities.PickerQuiz]{
	EncodeJSON: func(q *entities.PickerQuiz, rec *JSONRecord) error {
		lo, hi, step := q.Min(), q.Max(), q.Step()
		rec.Min, rec.Max, rec.Step = &lo, &hi, &step
		return encodeAnswer(rec, q.Answer())
	},
	DecodeJSON: func(rec *JSONRecord) (*entities.PickerQuiz, error) {
		if rec.Min == nil || rec.Max == nil {
			return nil, &entities.InvalidRecordError{Type: entities.TypePicker, Field: "min/max", Reason: "is required"}
		}
		a, err := decodeAnswer[int](entities.TypePicker, rec.Answer)
		if err != nil {
			return nil, err
		}
		step := 0
		if rec.Step != nil {
			step = *rec.Step
		}
		return entities.NewPickerQuiz(rec.Question, a, *rec.Min, *rec.Max, step, rec.Solved)
	},
	WriteNative: func(q *entities.PickerQuiz, w *NativeWriter) {
		w.WriteInt(int64(q.Min()))
		w.WriteInt(int64(q.Max()))
		w.WriteInt(int64(q.Step()))
		if q.HasAnswer() {
			w.WriteInt(int64(q.Answer()))
		}
	},
	ReadNative: func(question string, solved bool, r *NativeReader) (*entities.PickerQuiz, error) {
		var bounds [3]int64
		for i := range bounds {
			v, err := r.ReadInt()
			if err != nil {
				return nil, err
			}
			bounds[i] = v
		}
		q, err := entities.NewUnansweredPickerQuiz(question, int(bounds[0]), int(bounds[1]), int(bounds[2]), solved)
		if err != nil {
			return nil, err
		}
		if r.More() {
			a, err := r.ReadInt()
			if err != nil {
				return nil, err
			}
			if err := q.RestoreAnswer(int(a)); err != nil {
				return nil, err
			}
		}
		return q, nil
	},
}

var alphaPickerRoutines = Routines[*entities.AlphaPickerQuiz]{
	EncodeJSON: func(q *entities.AlphaPickerQuiz, rec *JSONRecord) error {
		return encodeAnswer(rec, q.Answer())
	},
	DecodeJSON: func(rec *JSONRecord) (*entities.AlphaPickerQuiz, error) {
		a, err := decodeAnswer[string](entities.TypeAlphaPicker, rec.Answer)
		if err != nil {
			return nil, err
		}
		return entities.NewAlphaPickerQuiz(rec.Question, a, rec.Solved)
	},
	WriteNative: func(q *entities.AlphaPickerQuiz, w *NativeWriter) {
		if q.HasAnswer() {
			w.WriteString(q.Answer())
		}
	},
	ReadNative: func(question string, solved bool, r *NativeReader) (*entities.AlphaPickerQuiz, error) {
		q, err := entities.NewUnansweredAlphaPickerQuiz(question, solved)
		if err != nil {
			return nil, err
		}
		if r.More() {
			a, err := r.ReadString()
			if err != nil {
				return nil, err
			}
			if err := q.RestoreAnswer(a); err != nil {
				return nil, err
			}
		}
		return q, nil
	},
}
