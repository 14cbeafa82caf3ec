package entities

import "fmt"

// Theme names the visual theme of a category.
type Theme string

const (
	ThemeTopeka Theme = "topeka"
	ThemeBlue   Theme = "blue"
	ThemeGreen  Theme = "green"
	ThemePurple Theme = "purple"
	ThemeRed    Theme = "red"
	ThemeYellow Theme = "yellow"
)

// ParseTheme validates a theme name.
func ParseTheme(s string) (Theme, error) {
	switch t := Theme(s); t {
	case ThemeTopeka, ThemeBlue, ThemeGreen, ThemePurple, ThemeRed, ThemeYellow:
		return t, nil
	default:
		return "", fmt.Errorf("unknown theme %q", s)
	}
}

// Category groups quizzes under a display name and theme.
type Category struct {
	ID      string // stable identifier used in callbacks and storage
	Name    string // display name
	Theme   Theme  // visual theme identifier
	Quizzes []Quiz // quizzes in play order
}

// FirstUnsolved returns the position of the first quiz not yet solved.
func (c *Category) FirstUnsolved() (int, bool) {
	return c.NextUnsolved(0)
}

// NextUnsolved returns the first unsolved position at or after from,
// wrapping around to the start.
func (c *Category) NextUnsolved(from int) (int, bool) {
	n := len(c.Quizzes)
	for i := 0; i < n; i++ {
		pos := (from + i) % n
		if !c.Quizzes[pos].Solved() {
			return pos, true
		}
	}
	return 0, false
}

// Solved reports whether every quiz of the category has been played.
func (c *Category) Solved() bool {
	_, ok := c.FirstUnsolved()
	return !ok
}

// SolvedCount returns how many quizzes have been played.
func (c *Category) SolvedCount() int {
	n := 0
	for _, q := range c.Quizzes {
		if q.Solved() {
			n++
		}
	}
	return n
}
