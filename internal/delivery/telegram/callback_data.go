package telegram

import (
	"strconv"
	"strings"
)

// Callback action constants.
const (
	actionCategories = "categories"
	actionCategory   = "category"
	actionAnswer     = "answer"
	actionReset      = "reset"
)

const (
	resetConfirm = "confirm"
	resetCancel  = "cancel"
)

// callbackData represents structured callback data.
type callbackData struct {
	Action string
	Params []string
	Raw    string
}

// encode creates callback string.
func (cd callbackData) encode() string {
	if len(cd.Params) == 0 {
		return cd.Action
	}
	return cd.Action + ":" + strings.Join(cd.Params, ":")
}

// decodeCallback parses callback data string.
func decodeCallback(data string) callbackData {
	parts := strings.Split(data, ":")
	if len(parts) == 0 {
		return callbackData{Raw: data}
	}

	return callbackData{
		Action: parts[0],
		Params: parts[1:],
		Raw:    data,
	}
}

func buildCategoriesCallback() string {
	return actionCategories
}

// buildCategoryCallback builds callback data for playing a category.
func buildCategoryCallback(categoryID string) string {
	return callbackData{
		Action: actionCategory,
		Params: []string{categoryID},
	}.encode()
}

// buildAnswerCallback builds callback data for a button answer. position
// guards against buttons of a quiz that was already answered.
func buildAnswerCallback(position int, value string) string {
	return callbackData{
		Action: actionAnswer,
		Params: []string{strconv.Itoa(position), value},
	}.encode()
}

func buildResetConfirmCallback(categoryID string) string {
	return callbackData{Action: actionReset, Params: []string{resetConfirm, categoryID}}.encode()
}

func buildResetCancelCallback() string {
	return callbackData{Action: actionReset, Params: []string{resetCancel}}.encode()
}
