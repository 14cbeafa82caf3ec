package service

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// AnswerValidator validates typed answers with fuzzy matching support.
type AnswerValidator struct {
	threshold float64 // Similarity threshold (0.0 - 1.0)
}

// NewAnswerValidator creates a new AnswerValidator.
func NewAnswerValidator() *AnswerValidator {
	return &AnswerValidator{
		threshold: 0.8, // 80% similarity required
	}
}

// Validate checks if the user's answer matches the correct answer.
func (v *AnswerValidator) Validate(userAnswer, correctAnswer string) bool {
	user := v.normalize(userAnswer)
	correct := v.normalize(correctAnswer)

	if user == correct {
		return true
	}

	// Short answers must match exactly; one typo in "Go" is a different word.
	if len([]rune(correct)) < 4 {
		return false
	}

	return v.similarity(user, correct) >= v.threshold
}

// Equal reports whether two answers are the same after normalization.
func (v *AnswerValidator) Equal(a, b string) bool {
	return v.normalize(a) == v.normalize(b)
}

// normalize folds case, strips diacritics and collapses whitespace.
func (v *AnswerValidator) normalize(s string) string {
	// A Caser holds state, so one is built per call.
	s = cases.Fold().String(strings.TrimSpace(s))
	s = stripMarks(s)
	return strings.Join(strings.Fields(s), " ")
}

// similarity calculates the similarity between two strings using Levenshtein distance.
func (v *AnswerValidator) similarity(s1, s2 string) float64 {
	distance := levenshteinDistance(s1, s2)
	maxLen := max(len([]rune(s1)), len([]rune(s2)))

	if maxLen == 0 {
		return 1.0
	}

	return 1.0 - float64(distance)/float64(maxLen)
}

// stripMarks removes combining marks, so "Zürich" matches "Zurich".
func stripMarks(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// levenshteinDistance calculates the Levenshtein distance between two strings.
func levenshteinDistance(s1, s2 string) int {
	r1 := []rune(s1)
	r2 := []rune(s2)

	rows := len(r1) + 1
	cols := len(r2) + 1

	// Use two rows instead of full matrix for space optimization
	prev := make([]int, cols)
	curr := make([]int, cols)

	for j := 0; j < cols; j++ {
		prev[j] = j
	}

	for i := 1; i < rows; i++ {
		curr[0] = i

		for j := 1; j < cols; j++ {
			cost := 1
			if r1[i-1] == r2[j-1] {
				cost = 0
			}

			curr[j] = min(
				curr[j-1]+1,    // Insertion
				prev[j]+1,      // Deletion
				prev[j-1]+cost, // Substitution
			)
		}

		prev, curr = curr, prev
	}

	return prev[cols-1]
}
