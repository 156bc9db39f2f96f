package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
)

const optionsPerRow = 2

type optionMark int

const (
	markNone optionMark = iota
	markWrong
	markCorrect
)

// optionView is one option button as it should be rendered.
type optionView struct {
	Label string
	Mark  optionMark
}

func (o optionView) text() string {
	switch o.Mark {
	case markWrong:
		return "❌ " + o.Label
	case markCorrect:
		return "✅ " + o.Label
	default:
		return o.Label
	}
}

// buildRoundKeyboard builds the option buttons of a round, two per row.
// A solved round gets an extra "Next country" row.
func buildRoundKeyboard(roundID uuid.UUID, options []optionView, solved bool) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton

	var row []tgbotapi.InlineKeyboardButton
	for i, opt := range options {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(opt.text(), buildPickCallback(roundID, i)))
		if len(row) == optionsPerRow {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}

	if solved {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(btnNextCountry, buildNextCallback(roundID)),
		))
	}

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// emptyKeyboard removes all buttons from a message.
func emptyKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.InlineKeyboardMarkup{
		InlineKeyboard: [][]tgbotapi.InlineKeyboardButton{},
	}
}
