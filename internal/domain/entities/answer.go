package entities

import (
	"slices"
	"strconv"
	"strings"
)

var (
	boolAnswer = answerOps[bool]{
		equal: func(a, b bool) bool { return a == b },
		bytes: func(a bool) []byte { return []byte(strconv.FormatBool(a)) },
	}
	intAnswer = answerOps[int]{
		equal: func(a, b int) bool { return a == b },
		bytes: func(a int) []byte { return []byte(strconv.Itoa(a)) },
	}
	stringAnswer = answerOps[string]{
		equal: func(a, b string) bool { return a == b },
		bytes: func(a string) []byte { return []byte(a) },
	}
	// Lists compare in order; nil and empty are the same list.
	listAnswer = answerOps[[]string]{
		equal: slices.Equal[[]string],
		bytes: func(a []string) []byte {
			var b strings.Builder
			for _, s := range a {
				b.WriteString(strconv.Itoa(len(s)))
				b.WriteByte(':')
				b.WriteString(s)
			}
			return []byte(b.String())
		},
	}
)

func checkQuestion(t QuizType, question string) error {
	if strings.TrimSpace(question) == "" {
		return invalid(t, "question", "is required")
	}
	return nil
}

func checkLabels(t QuizType, labels []string) error {
	if len(labels) == 0 {
		return invalid(t, "answer", "is required")
	}
	for _, l := range labels {
		if strings.TrimSpace(l) == "" {
			return invalid(t, "answer", "contains an empty entry")
		}
	}
	return nil
}
