package telegram

import (
	"fmt"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/category-quiz-bot/internal/domain/entities"
	"github.com/aliskhannn/category-quiz-bot/internal/service"
)

// buildCategoriesKeyboard builds one button per category.
func buildCategoriesKeyboard(categories []*entities.Category) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(categories))
	for _, c := range categories {
		label := fmt.Sprintf("%s %s", themeEmoji(c.Theme), c.Name)
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, buildCategoryCallback(c.ID)),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// buildAnswerKeyboard builds answer buttons for the variants that have a
// closed set of answers. It returns nil for typed answers.
func buildAnswerKeyboard(turn *service.Turn) *tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton

	switch q := turn.Quiz.(type) {
	case *entities.TrueFalseQuiz:
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ True", buildAnswerCallback(turn.Position, "true")),
			tgbotapi.NewInlineKeyboardButtonData("❌ False", buildAnswerCallback(turn.Position, "false")),
		))

	case *entities.PickOneQuiz:
		for i, option := range q.Options() {
			rows = append(rows, tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData(option, buildAnswerCallback(turn.Position, strconv.Itoa(i+1))),
			))
		}

	default:
		return nil
	}

	kb := tgbotapi.NewInlineKeyboardMarkup(rows...)
	return &kb
}

// buildCategoryDoneKeyboard builds keyboard for the category result screen.
func buildCategoryDoneKeyboard(categoryID string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📚 Other categories", buildCategoriesCallback()),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔄 Play again", buildResetConfirmCallback(categoryID)),
		),
	)
}

// buildResetKeyboard builds the confirmation keyboard for /reset.
func buildResetKeyboard(categoryID string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔄 Start over", buildResetConfirmCallback(categoryID)),
			tgbotapi.NewInlineKeyboardButtonData("« Cancel", buildResetCancelCallback()),
		),
	)
}
