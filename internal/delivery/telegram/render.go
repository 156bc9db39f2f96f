package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/flag-quiz-bot/internal/domain/entities"
)

// renderRound builds the caption and keyboard for the session's round.
func (h *Handler) renderRound(session *entities.QuizSession) (string, tgbotapi.InlineKeyboardMarkup, error) {
	round := session.Round

	options := make([]optionView, 0, len(round.Options))
	for _, code := range round.Options {
		name, err := h.countries.Name(code)
		if err != nil {
			return "", tgbotapi.InlineKeyboardMarkup{}, err
		}

		view := optionView{Label: name}
		switch {
		case round.IsWrong(code):
			view.Mark = markWrong
		case round.Solved && code == round.Target:
			view.Mark = markCorrect
		}
		options = append(options, view)
	}

	targetName, err := h.countries.Name(round.Target)
	if err != nil {
		return "", tgbotapi.InlineKeyboardMarkup{}, err
	}

	return buildRoundCaption(session, targetName), buildRoundKeyboard(round.ID, options, round.Solved), nil
}
