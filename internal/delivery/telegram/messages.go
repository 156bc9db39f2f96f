// messages.go contains message templates and formatting functions for Telegram.

package telegram

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/flag-quiz-bot/internal/domain/entities"
)

// Error and notice messages.
const (
	msgInternalError  = "Something went wrong. Please try again later."
	msgNoSession      = "No quiz yet. Send /play to get your first flag."
	msgUnknownCommand = "Unknown command.\n\n" + msgCommands
)

// Callback toasts.
const (
	toastCorrect      = "✅ Correct!"
	toastWrong        = "❌ Not this one"
	toastAlreadyWrong = "You already tried that one."
	toastSolved       = "Already solved. Press \"Next country\"."
	toastStale        = "This round is over. Send /play for a new flag."
	toastNotSolved    = "Find the right country first."
	toastNoSession    = "No active quiz. Send /play to start."
	toastBadOption    = "Unknown option."
	toastError        = "Something went wrong."
)

const btnNextCountry = "Next country ▶️"

const msgCommands = "/play - show a new flag\n/score - show your score\n/history - your last flags\n/help - how to play"

const (
	historySize  = 10
	msgNoHistory = "No solved flags yet. Send /play to start."
)

const msgWelcome = "<b>Flag Quiz</b>\n\n" +
	"I show a flag and four countries. Pick the one the flag belongs to.\n" +
	"Every flag you get right on the first try adds a point. " +
	"A wrong pick resets your score to zero.\n\n" + msgCommands

const msgHelp = "<b>How to play</b>\n\n" +
	"Tap the country you think the flag belongs to. " +
	"Wrong picks are marked with ❌ and reset your score; " +
	"keep going until you find the right one, then press \"" + btnNextCountry + "\".\n\n" + msgCommands

// esc escapes plain text for HTML parse mode.
func esc(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeHTML, s)
}

// formatScore renders the score line for the policy in use.
func formatScore(score entities.Score, policy entities.ScoringPolicy) string {
	if policy.TracksBest() {
		return fmt.Sprintf("Score: %d · Best: %d", score.Current, score.Best)
	}
	return fmt.Sprintf("Streak: %d", score.Current)
}

// buildRoundCaption renders the caption under the flag for the session's round.
func buildRoundCaption(session *entities.QuizSession, targetName string) string {
	var sb strings.Builder

	switch session.Round.State() {
	case entities.RoundGuessing:
		sb.WriteString("<b>Which country does this flag belong to?</b>")
		if n := len(session.Round.WrongSelections); n > 0 {
			sb.WriteString(fmt.Sprintf("\nWrong picks: %d", n))
		}

	case entities.RoundSolvedScored:
		sb.WriteString("<b>Correct!</b>\n")
		sb.WriteString("You chose: " + esc(targetName))

	case entities.RoundSolvedUnscored:
		sb.WriteString("<b>Correct!</b>\n")
		sb.WriteString("The answer was: " + esc(targetName) + "\n")
		sb.WriteString("No point this round.")
	}

	sb.WriteString("\n\n")
	sb.WriteString(formatScore(session.Score, session.Policy))

	if session.Round.Solved && session.Round.Scored && session.Score.IsNewBest(session.Policy) {
		sb.WriteString(fmt.Sprintf("\n🏆 New high score! %d", session.Score.Best))
	}

	return sb.String()
}

// historyLine is one solved round in the /history reply.
type historyLine struct {
	Country      string
	WrongGuesses int
	Scored       bool
}

// buildHistoryMessage renders the /history reply, newest round first.
func buildHistoryMessage(lines []historyLine) string {
	if len(lines) == 0 {
		return msgNoHistory
	}

	var sb strings.Builder
	sb.WriteString("<b>Your last flags</b>\n")
	for i, l := range lines {
		sb.WriteString(fmt.Sprintf("\n%d. %s ", i+1, esc(l.Country)))
		if l.Scored {
			sb.WriteString("✅")
			continue
		}
		sb.WriteString(fmt.Sprintf("❌ x%d", l.WrongGuesses))
	}
	return sb.String()
}

// flagEmoji builds the emoji flag of a two-letter code from regional indicator
// symbols. Other codes get a white flag.
func flagEmoji(code entities.CountryCode) string {
	c := strings.ToUpper(string(code))
	if len(c) != 2 || c[0] < 'A' || c[0] > 'Z' || c[1] < 'A' || c[1] > 'Z' {
		return "🏳️"
	}

	const regionalA = 0x1F1E6
	return string([]rune{regionalA + rune(c[0]-'A'), regionalA + rune(c[1]-'A')})
}

// buildFlagText renders a round as text for chats where the flag image is missing.
func buildFlagText(code entities.CountryCode, caption string) string {
	return flagEmoji(code) + "\n\n" + caption
}

// buildScoreMessage renders the /score reply.
func buildScoreMessage(score entities.Score, policy entities.ScoringPolicy) string {
	return "<b>Your score</b>\n\n" + formatScore(score, policy)
}
