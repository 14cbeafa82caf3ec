package codec

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/category-quiz-bot/internal/domain/entities"
)

func sampleQuizzes(t *testing.T) []entities.Quiz {
	t.Helper()
	must := func(q entities.Quiz, err error) entities.Quiz {
		t.Helper()
		require.NoError(t, err)
		return q
	}
	return []entities.Quiz{
		must(entities.NewTrueFalseQuiz("The sky is blue.", true, false)),
		must(entities.NewPickOneQuiz("Capital of Germany?", []string{"Berlin", "Bonn", "Hamburg"}, []string{"Berlin"}, true)),
		must(entities.NewMultiSelectQuiz("Primes?", []string{"2", "3", "4"}, []string{"2", "3"}, false)),
		must(entities.NewFillBlankQuiz("Greeting", "world", "Hello, ", "!", false)),
		must(entities.NewFillTwoBlanksQuiz("Pair", []string{"salt", "pepper"}, true)),
		must(entities.NewPickerQuiz("Moon landing year?", 1969, 1900, 2000, 1, false)),
		must(entities.NewPickerQuiz("Below zero?", -40, -100, 0, 5, false)),
		must(entities.NewAlphaPickerQuiz("Gopher language?", "Go", false)),
	}
}

func TestJSONExample(t *testing.T) {
	q, err := entities.NewTrueFalseQuiz("The sky is blue.", true, false)
	require.NoError(t, err)

	data, err := Default().Marshal(q)
	require.NoError(t, err)
	assert.JSONEq(t, `{"question":"The sky is blue.","answer":true,"type":"true_false","solved":false}`, string(data))
	assert.Equal(t, `{"question":"The sky is blue.","answer":true,"type":"true_false","solved":false}`, string(data))

	restored, err := Default().Unmarshal(data)
	require.NoError(t, err)
	assert.True(t, restored.Equal(q))
	assert.Equal(t, q.Hash(), restored.Hash())
}

func TestJSONRoundTrip(t *testing.T) {
	for _, q := range sampleQuizzes(t) {
		t.Run(string(q.Type()), func(t *testing.T) {
			data, err := Default().Marshal(q)
			require.NoError(t, err)

			restored, err := Default().Unmarshal(data)
			require.NoError(t, err)
			assert.True(t, restored.Equal(q), "restored %s from %s", restored, data)
			assert.True(t, q.Equal(restored))
			assert.Equal(t, q.StringAnswer(), restored.StringAnswer())
		})
	}
}

func TestJSONListRoundTrip(t *testing.T) {
	quizzes := sampleQuizzes(t)
	data, err := Default().MarshalList(quizzes)
	require.NoError(t, err)

	restored, err := Default().UnmarshalList(data)
	require.NoError(t, err)
	require.Len(t, restored, len(quizzes))
	for i := range quizzes {
		assert.True(t, quizzes[i].Equal(restored[i]))
	}
}

func TestJSONKeepsVariantExtras(t *testing.T) {
	data := []byte(`{"question":"Year?","answer":1969,"type":"picker","solved":false,"min":1900,"max":2000,"step":1}`)
	q, err := Default().Unmarshal(data)
	require.NoError(t, err)

	picker, ok := q.(*entities.PickerQuiz)
	require.True(t, ok)
	assert.Equal(t, 1900, picker.Min())
	assert.Equal(t, 2000, picker.Max())

	pick, err := Default().Unmarshal([]byte(`{"question":"Capital?","answer":["Berlin"],"type":"pick_one","solved":false,"options":["Berlin","Paris"]}`))
	require.NoError(t, err)
	assert.Equal(t, "Berlin", pick.StringAnswer())
}

func TestJSONUnknownVariant(t *testing.T) {
	q, err := Default().Unmarshal([]byte(`{"question":"Capital?","answer":["Berlin"],"type":"pick_seventeen","solved":false}`))
	assert.Nil(t, q)
	require.Error(t, err)
	assert.ErrorIs(t, err, entities.ErrUnknownVariant)

	var unknown *entities.UnknownVariantError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "pick_seventeen", unknown.Tag)
}

func TestJSONInvalidRecords(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"missing answer", `{"question":"Q","type":"true_false","solved":false}`},
		{"null answer", `{"question":"Q","answer":null,"type":"true_false","solved":false}`},
		{"wrong answer shape", `{"question":"Q","answer":"yes","type":"true_false","solved":false}`},
		{"missing question", `{"answer":true,"type":"true_false","solved":false}`},
		{"picker without bounds", `{"question":"Q","answer":3,"type":"picker","solved":false}`},
		{"pick one without options", `{"question":"Q","answer":["a"],"type":"pick_one","solved":false}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := Default().Unmarshal([]byte(tt.data))
			assert.Nil(t, q)
			assert.ErrorIs(t, err, entities.ErrInvalidRecord)
		})
	}
}

func TestMarshalWithoutAnswer(t *testing.T) {
	q, err := entities.NewUnansweredAlphaPickerQuiz("Word?", false)
	require.NoError(t, err)

	_, err = Default().Marshal(q)
	assert.ErrorIs(t, err, entities.ErrIllegalState)
}

func TestNativeRoundTrip(t *testing.T) {
	for _, q := range sampleQuizzes(t) {
		t.Run(string(q.Type()), func(t *testing.T) {
			data, err := Default().MarshalNative(q)
			require.NoError(t, err)

			restored, err := Default().UnmarshalNative(data)
			require.NoError(t, err)
			assert.Equal(t, q.Type(), restored.Type())
			assert.Equal(t, q.Question(), restored.Question())
			assert.Equal(t, q.Solved(), restored.Solved())
			assert.True(t, restored.Equal(q))
		})
	}
}

func TestNativeHeaderOnly(t *testing.T) {
	w := newNativeWriter()
	w.WriteInt(OrdinalTrueFalse)
	w.WriteString("The sky is blue.")
	w.WriteBool(true)

	q, err := Default().UnmarshalNative(w.Bytes())
	require.NoError(t, err)
	assert.Equal(t, "The sky is blue.", q.Question())
	assert.True(t, q.Solved())
	assert.False(t, q.HasAnswer())

	tf, ok := q.(*entities.TrueFalseQuiz)
	require.True(t, ok)
	_, err = tf.IsAnswerCorrect(true)
	assert.ErrorIs(t, err, entities.ErrIllegalState)
}

func TestNativeHeaderOnlyChoiceNeedsOptions(t *testing.T) {
	w := newNativeWriter()
	w.WriteInt(OrdinalPickOne)
	w.WriteString("Capital?")
	w.WriteBool(false)

	_, err := Default().UnmarshalNative(w.Bytes())
	assert.ErrorIs(t, err, ErrMalformedNative)
}

func TestNativeUnknownOrdinal(t *testing.T) {
	w := newNativeWriter()
	w.WriteInt(17)
	w.WriteString("Capital?")
	w.WriteBool(false)

	q, err := Default().UnmarshalNative(w.Bytes())
	assert.Nil(t, q)
	assert.ErrorIs(t, err, entities.ErrUnknownVariant)

	var unknown *entities.UnknownVariantError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, 17, unknown.Ordinal)
}

func TestNativeMalformed(t *testing.T) {
	q, err := entities.NewTrueFalseQuiz("Q", true, false)
	require.NoError(t, err)
	data, err := Default().MarshalNative(q)
	require.NoError(t, err)

	_, err = Default().UnmarshalNative(data[:len(data)-1])
	assert.ErrorIs(t, err, ErrMalformedNative)

	_, err = Default().UnmarshalNative(append(append([]byte{}, data...), data...))
	assert.ErrorIs(t, err, ErrMalformedNative)

	_, err = Default().UnmarshalNative(nil)
	assert.ErrorIs(t, err, ErrMalformedNative)

	// question and solved swapped
	w := newNativeWriter()
	w.WriteInt(OrdinalTrueFalse)
	w.WriteBool(false)
	w.WriteString("Q")
	_, err = Default().UnmarshalNative(w.Bytes())
	assert.ErrorIs(t, err, ErrMalformedNative)
}

func TestRegistry(t *testing.T) {
	assert.Equal(t, []entities.QuizType{
		entities.TypeTrueFalse,
		entities.TypePickOne,
		entities.TypeMultiSelect,
		entities.TypeFillBlank,
		entities.TypeFillTwoBlanks,
		entities.TypePicker,
		entities.TypeAlphaPicker,
	}, Default().Types())

	v, err := Default().Lookup(entities.TypePicker)
	require.NoError(t, err)
	assert.Equal(t, OrdinalPicker, v.Ordinal)

	_, err = NewRegistry(append(BuiltinVariants(), NewVariant(entities.TypePicker, 99, pickerRoutines))...)
	assert.Error(t, err)

	_, err = NewRegistry(append(BuiltinVariants(), NewVariant("picker_v2", OrdinalPicker, pickerRoutines))...)
	assert.Error(t, err)
}

func TestBuiltinOrdinalsArePinned(t *testing.T) {
	want := map[entities.QuizType]int{
		entities.TypeTrueFalse:     0,
		entities.TypePickOne:       1,
		entities.TypeMultiSelect:   2,
		entities.TypeFillBlank:     3,
		entities.TypeFillTwoBlanks: 4,
		entities.TypePicker:        5,
		entities.TypeAlphaPicker:   6,
	}
	for typ, ordinal := range want {
		v, err := Default().Lookup(typ)
		require.NoError(t, err)
		assert.Equal(t, ordinal, v.Ordinal, typ)
	}
}

func TestRegistryWithoutVariant(t *testing.T) {
	r, err := NewRegistry(NewVariant(entities.TypeTrueFalse, OrdinalTrueFalse, trueFalseRoutines))
	require.NoError(t, err)

	q, err := entities.NewAlphaPickerQuiz("Word?", "Go", false)
	require.NoError(t, err)
	data, err := Default().MarshalNative(q)
	require.NoError(t, err)

	_, err = r.UnmarshalNative(data)
	assert.ErrorIs(t, err, entities.ErrUnknownVariant)

	_, err = r.Marshal(q)
	assert.ErrorIs(t, err, entities.ErrUnknownVariant)
}
