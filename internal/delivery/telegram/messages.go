// messages.go contains message templates and formatting functions for Telegram.

package telegram

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/category-quiz-bot/internal/domain/entities"
	"github.com/aliskhannn/category-quiz-bot/internal/service"
)

// Error messages.
const (
	msgUsePlay            = "Use: /play <category>. See /categories for the list."
	msgUseReset           = "Use: /reset <category>."
	msgCategoryNotFound   = "No such category. See /categories for the list."
	msgNoActiveSession    = "Nothing to answer yet. Pick a category with /categories."
	msgStaleButton        = "This question was already answered."
	msgResetCancelled     = "Progress kept."
	msgNoCategories       = "The catalog is empty."
	msgInternalError      = "Something went wrong. Please try again later."
	msgUnknownCommand     = "Unknown command. Available commands:\n\n/categories — list categories\n/play <category> — play a category\n/current — repeat the current question\n/reset <category> — start a category over\n/help — help"
	msgCategoryIsComplete = "You have played every quiz of this category."
)

// md escapes plain text for MarkdownV2.
func md(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdownV2, s)
}

func bold(s string) string {
	return "*" + md(s) + "*"
}

func italic(s string) string {
	return "_" + md(s) + "_"
}

// newMessage creates a message with MarkdownV2 parse mode.
func newMessage(chatID int64, text string) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdownV2
	return msg
}

// newPlainMessage creates a plain message without MarkdownV2 parse mode.
func newPlainMessage(chatID int64, text string) tgbotapi.MessageConfig {
	return tgbotapi.NewMessage(chatID, text)
}

// newEdit creates an edit with MarkdownV2 parse mode.
func newEdit(chatID int64, msgID int, text string) tgbotapi.EditMessageTextConfig {
	edit := tgbotapi.NewEditMessageText(chatID, msgID, text)
	edit.ParseMode = tgbotapi.ModeMarkdownV2
	return edit
}

func welcomeMessage() string {
	var sb strings.Builder

	sb.WriteString(bold("Category Quiz Bot"))
	sb.WriteString("\n\n")
	sb.WriteString(md("Pick a category and answer its quizzes one by one. " +
		"Your progress is kept, so you can come back to a category any time."))
	sb.WriteString("\n\n")
	sb.WriteString(md("Choose a category below or send /help."))

	return sb.String()
}

func helpMessage() string {
	lines := []string{
		bold("Commands"),
		"",
		md("/categories — list categories"),
		md("/play <category> — play a category"),
		md("/current — repeat the current question"),
		md("/reset <category> — start a category over"),
		"",
		md("Answer a question with the buttons below it or by typing. " +
			"For several answers separate them with commas."),
	}
	return strings.Join(lines, "\n")
}

// themeEmoji maps a category theme to a marker shown in lists.
func themeEmoji(t entities.Theme) string {
	switch t {
	case entities.ThemeBlue:
		return "🔵"
	case entities.ThemeGreen:
		return "🟢"
	case entities.ThemePurple:
		return "🟣"
	case entities.ThemeRed:
		return "🔴"
	case entities.ThemeYellow:
		return "🟡"
	default:
		return "⚪"
	}
}

func formatCategories(categories []*entities.Category) string {
	var sb strings.Builder
	sb.WriteString(bold("📚 Categories"))
	sb.WriteString("\n\n")
	for _, c := range categories {
		sb.WriteString(md(fmt.Sprintf("%s %s (%d) — /play %s", themeEmoji(c.Theme), c.Name, len(c.Quizzes), c.ID)))
		sb.WriteString("\n")
	}
	return sb.String()
}

// formatQuestion renders a turn with the instructions of its variant.
func formatQuestion(turn *service.Turn) string {
	var sb strings.Builder

	sb.WriteString(md(fmt.Sprintf("%s · %d of %d", turn.CategoryName, turn.Position+1, turn.Total)))
	sb.WriteString("\n\n")
	sb.WriteString(bold(turn.Quiz.Question()))
	sb.WriteString("\n\n")

	switch q := turn.Quiz.(type) {
	case *entities.TrueFalseQuiz:
		sb.WriteString(italic("True or false?"))

	case *entities.PickOneQuiz:
		writeOptions(&sb, q.Options())
		sb.WriteString("\n")
		sb.WriteString(italic("Pick one option."))

	case *entities.MultiSelectQuiz:
		writeOptions(&sb, q.Options())
		sb.WriteString("\n")
		sb.WriteString(italic("Send the numbers of every correct option, separated by commas."))

	case *entities.FillBlankQuiz:
		sb.WriteString(md(strings.TrimSpace(q.Start() + " ___ " + q.End())))
		sb.WriteString("\n\n")
		sb.WriteString(italic("Type the missing word."))

	case *entities.FillTwoBlanksQuiz:
		sb.WriteString(italic("Type both answers separated by a comma."))

	case *entities.PickerQuiz:
		hint := fmt.Sprintf("Send a number from %d to %d", q.Min(), q.Max())
		if q.Step() > 1 {
			hint += fmt.Sprintf(" in steps of %d", q.Step())
		}
		sb.WriteString(italic(hint + "."))

	case *entities.AlphaPickerQuiz:
		sb.WriteString(italic("Type your answer."))
	}

	return sb.String()
}

func writeOptions(sb *strings.Builder, options []string) {
	for i, o := range options {
		sb.WriteString(md(fmt.Sprintf("%d. %s", i+1, o)))
		sb.WriteString("\n")
	}
}

// formatAnswerFeedback formats feedback for a quiz answer (MarkdownV2 safe).
func formatAnswerFeedback(res *service.Result) string {
	if res.Correct {
		return md("✅ Correct!")
	}
	return fmt.Sprintf(
		"%s\n\n%s %s",
		md("❌ Wrong"),
		md("Correct answer:"),
		bold(res.CorrectAnswer),
	)
}

// formatCategoryResult formats the summary shown when a category is done.
func formatCategoryResult(res *service.Result) string {
	percentage := 0.0
	if res.Total > 0 {
		percentage = float64(res.Score) / float64(res.Total) * 100
	}

	emoji, message := "📚", "Keep practising!"
	switch {
	case percentage >= 90:
		emoji, message = "🌟", "Excellent result!"
	case percentage >= 70:
		emoji, message = "👍", "Good result!"
	case percentage >= 50:
		emoji, message = "💪", "Not bad, keep going!"
	}

	return fmt.Sprintf(
		"%s %s\n\n%s %s\n%s\n\n%s",
		md(emoji),
		md("Category complete!"),
		md("Score:"),
		bold(fmt.Sprintf("%d/%d (%.0f%%)", res.Score, res.Total, percentage)),
		md(buildProgressBar(res.Score, res.Total, 10)),
		md(message),
	)
}

// buildProgressBar creates an ASCII progress bar.
func buildProgressBar(current, total, length int) string {
	if total == 0 {
		return "[" + strings.Repeat("░", length) + "]"
	}

	filled := int(float64(current) / float64(total) * float64(length))
	if filled > length {
		filled = length
	}

	empty := length - filled
	bar := strings.Repeat("█", filled) + strings.Repeat("░", empty)
	return fmt.Sprintf("[%s]", bar)
}

func formatResetPrompt(categoryID string) string {
	return md(fmt.Sprintf("Start %q over? Your answers in this category will be forgotten.", categoryID))
}
