package entities

import "time"

// Attempt records a player's answer to one quiz of a category.
// It tracks the answer details, correctness, and timestamp.
type Attempt struct {
	ID            int64     // unique attempt ID
	UserID        int64     // user ID who answered
	CategoryID    string    // category the quiz belongs to
	Position      int       // position of the quiz within the category
	QuizType      QuizType  // variant of the quiz
	UserAnswer    string    // raw answer as typed by the user
	CorrectAnswer string    // human readable correct answer
	IsCorrect     bool      // whether the answer was correct
	AnsweredAt    time.Time // timestamp when the answer was submitted
}

// NewAttempt creates an attempt for the quiz at position in a category.
func NewAttempt(userID int64, categoryID string, position int, q Quiz) *Attempt {
	return &Attempt{
		UserID:        userID,
		CategoryID:    categoryID,
		Position:      position,
		QuizType:      q.Type(),
		CorrectAnswer: q.StringAnswer(),
		AnsweredAt:    time.Now(),
	}
}

// CategoryProgress is what a user has played in one category.
type CategoryProgress struct {
	UserID     int64
	CategoryID string
	Solved     map[int]bool // position -> answered correctly
}

// NewCategoryProgress creates empty progress.
func NewCategoryProgress(userID int64, categoryID string) *CategoryProgress {
	return &CategoryProgress{UserID: userID, CategoryID: categoryID, Solved: make(map[int]bool)}
}

// Score returns the number of correctly answered quizzes.
func (p *CategoryProgress) Score() int {
	n := 0
	for _, correct := range p.Solved {
		if correct {
			n++
		}
	}
	return n
}

// Apply marks every recorded position of c as solved. Positions outside the
// category are ignored.
func (p *CategoryProgress) Apply(c *Category) {
	for pos := range p.Solved {
		if pos >= 0 && pos < len(c.Quizzes) {
			c.Quizzes[pos].SetSolved(true)
		}
	}
}
