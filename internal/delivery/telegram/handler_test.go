package telegram

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/aliskhannn/flag-quiz-bot/internal/domain/entities"
	"github.com/aliskhannn/flag-quiz-bot/internal/service"
	"github.com/aliskhannn/flag-quiz-bot/internal/storage"
)

// MockSender mocks the Telegram bot API client.
type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	args := m.Called(c)
	if msg, ok := args.Get(0).(tgbotapi.Message); ok {
		return msg, args.Error(1)
	}
	return tgbotapi.Message{}, args.Error(1)
}

func (m *MockSender) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	args := m.Called(c)
	return &tgbotapi.APIResponse{Ok: true}, args.Error(0)
}

const testChatID int64 = 42

type handlerFixture struct {
	handler *Handler
	sender  *MockSender
	quiz    *service.QuizService
}

func mustTable(t *testing.T) *entities.CountryTable {
	t.Helper()

	table, err := entities.NewCountryTable(map[string]string{
		"DE": "Germany",
		"FR": "France",
		"IT": "Italy",
		"ES": "Spain",
		"PL": "Poland",
	})
	require.NoError(t, err)
	return table
}

func newHandlerFixture(t *testing.T) handlerFixture {
	t.Helper()

	table := mustTable(t)

	gen, err := service.NewRoundGenerator(table, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	quiz := service.NewQuizService(gen, storage.NewSessionStorage(), storage.NewRoundLog(0), nil, entities.ScoringBest, zap.NewNop())
	sender := new(MockSender)

	h := NewHandler(
		sender,
		zap.NewNop(),
		quiz,
		service.NewCountryService(table, "flags"),
		service.NewPlayerService(storage.NewPlayerRegistry()),
	)

	return handlerFixture{handler: h, sender: sender, quiz: quiz}
}

func commandUpdate(command string) tgbotapi.Update {
	return tgbotapi.Update{
		Message: &tgbotapi.Message{
			Text: command,
			Chat: &tgbotapi.Chat{ID: testChatID},
			From: &tgbotapi.User{ID: 7, UserName: "tester"},
			Entities: []tgbotapi.MessageEntity{
				{Type: "bot_command", Offset: 0, Length: len(command)},
			},
		},
	}
}

func callbackUpdate(data string, messageID int) tgbotapi.Update {
	return tgbotapi.Update{
		CallbackQuery: &tgbotapi.CallbackQuery{
			ID:   "cb",
			From: &tgbotapi.User{ID: 7},
			Message: &tgbotapi.Message{
				MessageID: messageID,
				Chat:      &tgbotapi.Chat{ID: testChatID},
			},
			Data: data,
		},
	}
}

func isPhoto(p tgbotapi.PhotoConfig) bool { return p.ChatID == testChatID }

func answered(text string) interface{} {
	return mock.MatchedBy(func(c tgbotapi.CallbackConfig) bool { return c.Text == text })
}

func optionIndex(r entities.Round, correct bool) int {
	for i, c := range r.Options {
		if (c == r.Target) == correct {
			return i
		}
	}
	return -1
}

func (f handlerFixture) play(t *testing.T) *entities.QuizSession {
	t.Helper()

	f.sender.On("Send", mock.MatchedBy(isPhoto)).Return(tgbotapi.Message{MessageID: 100}, nil).Once()
	f.handler.handleUpdate(context.Background(), commandUpdate("/play"))

	session, err := f.quiz.Get(context.Background(), testChatID)
	require.NoError(t, err)
	return session
}

func TestHandlePlay_SendsFlag(t *testing.T) {
	f := newHandlerFixture(t)

	session := f.play(t)

	assert.Equal(t, 100, session.MessageID)
	f.sender.AssertExpectations(t)

	call := f.sender.Calls[0]
	photo := call.Arguments.Get(0).(tgbotapi.PhotoConfig)
	assert.Equal(t, tgbotapi.FilePath("flags/"+session.Round.Target.FlagFile()), photo.File)
	kb := photo.ReplyMarkup.(tgbotapi.InlineKeyboardMarkup)
	assert.Len(t, kb.InlineKeyboard, 2)
}

func TestHandlePlay_FlagTextFallback(t *testing.T) {
	f := newHandlerFixture(t)
	ctx := context.Background()

	f.sender.On("Send", mock.MatchedBy(isPhoto)).Return(nil, errors.New("file not found")).Once()
	f.sender.On("Send", mock.MatchedBy(func(m tgbotapi.MessageConfig) bool {
		kb, ok := m.ReplyMarkup.(tgbotapi.InlineKeyboardMarkup)
		return ok && len(kb.InlineKeyboard) == 2
	})).Return(tgbotapi.Message{MessageID: 200}, nil).Once()

	f.handler.handleUpdate(ctx, commandUpdate("/play"))
	f.sender.AssertExpectations(t)

	session, err := f.quiz.Get(ctx, testChatID)
	require.NoError(t, err)
	assert.Equal(t, 200, session.MessageID)

	text := f.sender.Calls[1].Arguments.Get(0).(tgbotapi.MessageConfig).Text
	assert.True(t, strings.HasPrefix(text, flagEmoji(session.Round.Target)))

	// Picks on the text message edit its text instead of a caption.
	round := session.Round
	f.sender.On("Send", mock.MatchedBy(func(e tgbotapi.EditMessageTextConfig) bool {
		return e.MessageID == 200 && e.ReplyMarkup != nil && strings.Contains(e.Text, "Correct!")
	})).Return(tgbotapi.Message{}, nil).Once()
	f.sender.On("Request", answered(toastCorrect)).Return(nil).Once()

	update := callbackUpdate(buildPickCallback(round.ID, optionIndex(round, true)), 200)
	update.CallbackQuery.Message.Text = text
	f.handler.handleUpdate(ctx, update)

	f.sender.AssertExpectations(t)

	session, err = f.quiz.Get(ctx, testChatID)
	require.NoError(t, err)
	assert.True(t, session.Round.Solved)
}

func TestHandlePlay_FlagAndTextFailure(t *testing.T) {
	f := newHandlerFixture(t)

	f.sender.On("Send", mock.MatchedBy(isPhoto)).Return(nil, errors.New("file not found")).Once()
	f.sender.On("Send", mock.MatchedBy(func(m tgbotapi.MessageConfig) bool {
		return m.ReplyMarkup != nil
	})).Return(nil, errors.New("chat not found")).Once()
	f.sender.On("Send", mock.MatchedBy(func(m tgbotapi.MessageConfig) bool {
		return m.Text == msgInternalError
	})).Return(tgbotapi.Message{}, nil).Once()

	f.handler.handleUpdate(context.Background(), commandUpdate("/play"))

	f.sender.AssertExpectations(t)
}

func TestHandlePick_WrongThenCorrect(t *testing.T) {
	f := newHandlerFixture(t)
	ctx := context.Background()
	session := f.play(t)
	round := session.Round

	edit := mock.MatchedBy(func(e tgbotapi.EditMessageCaptionConfig) bool { return e.MessageID == 100 })

	f.sender.On("Send", edit).Return(tgbotapi.Message{}, nil).Twice()
	f.sender.On("Request", answered(toastWrong)).Return(nil).Once()
	f.sender.On("Request", answered(toastAlreadyWrong)).Return(nil).Once()
	f.sender.On("Request", answered(toastCorrect)).Return(nil).Once()

	wrong := buildPickCallback(round.ID, optionIndex(round, false))
	f.handler.handleUpdate(ctx, callbackUpdate(wrong, 100))
	f.handler.handleUpdate(ctx, callbackUpdate(wrong, 100))
	f.handler.handleUpdate(ctx, callbackUpdate(buildPickCallback(round.ID, optionIndex(round, true)), 100))

	f.sender.AssertExpectations(t)

	score, _, err := f.quiz.Score(ctx, testChatID)
	require.NoError(t, err)
	assert.Equal(t, 0, score.Current)
}

func TestHandlePick_Errors(t *testing.T) {
	f := newHandlerFixture(t)
	ctx := context.Background()

	f.sender.On("Request", answered(toastNoSession)).Return(nil).Once()
	f.handler.handleUpdate(ctx, callbackUpdate(buildPickCallback(uuid.New(), 0), 1))

	session := f.play(t)

	f.sender.On("Request", answered(toastStale)).Return(nil).Once()
	f.handler.handleUpdate(ctx, callbackUpdate(buildPickCallback(uuid.New(), 0), 100))

	f.sender.On("Request", answered(toastBadOption)).Return(nil).Twice()
	f.handler.handleUpdate(ctx, callbackUpdate(buildPickCallback(session.Round.ID, 9), 100))
	f.handler.handleUpdate(ctx, callbackUpdate("pick:garbage", 100))

	f.sender.On("Request", answered(toastNotSolved)).Return(nil).Once()
	f.handler.handleUpdate(ctx, callbackUpdate(buildNextCallback(session.Round.ID), 100))

	f.sender.AssertExpectations(t)
}

func TestHandleNext_SendsNewFlag(t *testing.T) {
	f := newHandlerFixture(t)
	ctx := context.Background()
	session := f.play(t)
	round := session.Round

	f.sender.On("Send", mock.MatchedBy(func(tgbotapi.EditMessageCaptionConfig) bool { return true })).
		Return(tgbotapi.Message{}, nil).Once()
	f.sender.On("Request", answered(toastCorrect)).Return(nil).Once()
	f.handler.handleUpdate(ctx, callbackUpdate(buildPickCallback(round.ID, optionIndex(round, true)), 100))

	f.sender.On("Request", answered("")).Return(nil).Once()
	f.sender.On("Send", mock.MatchedBy(func(e tgbotapi.EditMessageReplyMarkupConfig) bool {
		return e.MessageID == 100 && len(e.ReplyMarkup.InlineKeyboard) == 0
	})).Return(tgbotapi.Message{}, nil).Once()
	f.sender.On("Send", mock.MatchedBy(isPhoto)).Return(tgbotapi.Message{MessageID: 101}, nil).Once()
	f.handler.handleUpdate(ctx, callbackUpdate(buildNextCallback(round.ID), 100))

	f.sender.AssertExpectations(t)

	next, err := f.quiz.Get(ctx, testChatID)
	require.NoError(t, err)
	assert.NotEqual(t, round.ID, next.Round.ID)
	assert.Equal(t, 101, next.MessageID)
	assert.Equal(t, entities.Score{Current: 1, Best: 1}, next.Score)
}

func TestHandleScore(t *testing.T) {
	f := newHandlerFixture(t)
	ctx := context.Background()

	f.sender.On("Send", mock.MatchedBy(func(m tgbotapi.MessageConfig) bool {
		return m.Text == msgNoSession
	})).Return(tgbotapi.Message{}, nil).Once()
	f.handler.handleUpdate(ctx, commandUpdate("/score"))

	f.play(t)

	f.sender.On("Send", mock.MatchedBy(func(m tgbotapi.MessageConfig) bool {
		return m.Text == buildScoreMessage(entities.Score{}, entities.ScoringBest)
	})).Return(tgbotapi.Message{}, nil).Once()
	f.handler.handleUpdate(ctx, commandUpdate("/score"))

	f.sender.AssertExpectations(t)
}

func TestHandleUnknownCommand(t *testing.T) {
	f := newHandlerFixture(t)

	f.sender.On("Send", mock.MatchedBy(func(m tgbotapi.MessageConfig) bool {
		return m.Text == msgUnknownCommand
	})).Return(tgbotapi.Message{}, nil).Once()
	f.handler.handleUpdate(context.Background(), commandUpdate("/foo"))

	f.sender.AssertExpectations(t)
}

func TestRun_StopsOnClosedChannel(t *testing.T) {
	f := newHandlerFixture(t)

	updates := make(chan tgbotapi.Update)
	close(updates)

	assert.NoError(t, f.handler.Run(context.Background(), updates))
}

func TestRun_StopsOnCancel(t *testing.T) {
	f := newHandlerFixture(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, f.handler.Run(ctx, make(chan tgbotapi.Update)), context.Canceled)
}

func TestWithErrorHandlingRecoversPanic(t *testing.T) {
	f := newHandlerFixture(t)

	f.sender.On("Send", mock.MatchedBy(func(m tgbotapi.MessageConfig) bool {
		return m.Text == msgInternalError
	})).Return(tgbotapi.Message{}, nil).Once()

	fn := f.handler.withErrorHandling("boom", func(context.Context, int64) error {
		panic("unexpected")
	})

	assert.NotPanics(t, func() {
		assert.NoError(t, fn(context.Background(), testChatID))
	})
	f.sender.AssertExpectations(t)
}

func TestHandleHistory(t *testing.T) {
	f := newHandlerFixture(t)
	ctx := context.Background()

	f.sender.On("Send", mock.MatchedBy(func(m tgbotapi.MessageConfig) bool {
		return m.Text == msgNoHistory
	})).Return(tgbotapi.Message{}, nil).Once()
	f.handler.handleUpdate(ctx, commandUpdate("/history"))

	session := f.play(t)
	round := session.Round

	f.sender.On("Send", mock.MatchedBy(func(tgbotapi.EditMessageCaptionConfig) bool { return true })).
		Return(tgbotapi.Message{}, nil).Once()
	f.sender.On("Request", answered(toastCorrect)).Return(nil).Once()
	f.handler.handleUpdate(ctx, callbackUpdate(buildPickCallback(round.ID, optionIndex(round, true)), 100))

	name, err := service.NewCountryService(mustTable(t), "flags").Name(round.Target)
	require.NoError(t, err)

	f.sender.On("Send", mock.MatchedBy(func(m tgbotapi.MessageConfig) bool {
		return m.Text == buildHistoryMessage([]historyLine{{Country: name, Scored: true}})
	})).Return(tgbotapi.Message{}, nil).Once()
	f.handler.handleUpdate(ctx, commandUpdate("/history"))

	f.sender.AssertExpectations(t)
}
