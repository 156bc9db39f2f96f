package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/aliskhannn/flag-quiz-bot/internal/domain/entities"
)

// SelectOutcome describes the result of a pick.
type SelectOutcome struct {
	Session *entities.QuizSession // session after the pick
	Chosen  entities.CountryCode  // code that was picked
	Correct bool                  // the pick was the target
	Changed bool                  // the pick changed the round or score
}

// QuizService drives quiz sessions: starting rounds, handling picks and advancing.
type QuizService struct {
	rounds   RoundSource
	sessions SessionStorage
	recorder RoundRecorder
	metrics  QuizMetrics
	policy   entities.ScoringPolicy
	logger   *zap.Logger
}

func NewQuizService(
	rounds RoundSource,
	sessions SessionStorage,
	recorder RoundRecorder,
	metrics QuizMetrics,
	policy entities.ScoringPolicy,
	logger *zap.Logger,
) *QuizService {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &QuizService{
		rounds:   rounds,
		sessions: sessions,
		recorder: recorder,
		metrics:  metrics,
		policy:   policy,
		logger:   logger,
	}
}

// Start begins a new round for the chat. An existing session keeps its score.
func (s *QuizService) Start(_ context.Context, chatID int64) (*entities.QuizSession, error) {
	round := s.rounds.Generate()

	session, ok := s.sessions.Get(chatID)
	if !ok {
		session = entities.NewQuizSession(chatID, round, s.policy)
		s.metrics.SessionStarted()
		s.logger.Debug("quiz session created", zap.Int64("chat_id", chatID))
	} else {
		session.Round = round
		session.MessageID = 0
		session.UpdatedAt = time.Now()
	}

	s.sessions.Save(session)
	s.metrics.RoundStarted()

	return session, nil
}

// Get returns the chat's session.
func (s *QuizService) Get(_ context.Context, chatID int64) (*entities.QuizSession, error) {
	session, ok := s.sessions.Get(chatID)
	if !ok {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// Score returns the chat's running score and the session policy.
func (s *QuizService) Score(ctx context.Context, chatID int64) (entities.Score, entities.ScoringPolicy, error) {
	session, err := s.Get(ctx, chatID)
	if err != nil {
		return entities.Score{}, s.policy, err
	}
	return session.Score, session.Policy, nil
}

// AttachMessage remembers the flag message that shows the given round.
func (s *QuizService) AttachMessage(ctx context.Context, chatID int64, roundID uuid.UUID, messageID int) error {
	session, err := s.active(ctx, chatID, roundID)
	if err != nil {
		return err
	}

	session.MessageID = messageID
	s.sessions.Save(session)

	return nil
}

// Select applies the pick at optionIndex to the chat's current round.
func (s *QuizService) Select(
	ctx context.Context,
	chatID, userID int64,
	roundID uuid.UUID,
	optionIndex int,
) (*SelectOutcome, error) {
	session, err := s.active(ctx, chatID, roundID)
	if err != nil {
		return nil, err
	}

	if optionIndex < 0 || optionIndex >= entities.OptionsPerRound {
		return nil, fmt.Errorf("%w: index %d", ErrInvalidOption, optionIndex)
	}
	chosen := session.Round.Options[optionIndex]

	round, score, err := Select(session.Round, session.Score, session.Policy, chosen)
	if err != nil {
		return nil, err
	}

	outcome := &SelectOutcome{
		Chosen:  chosen,
		Correct: chosen == round.Target,
		Changed: len(round.WrongSelections) != len(session.Round.WrongSelections) ||
			round.Solved != session.Round.Solved ||
			score != session.Score,
	}

	session.Round = round
	session.Score = score
	session.UpdatedAt = time.Now()
	s.sessions.Save(session)

	if outcome.Changed {
		s.metrics.OptionSelected(outcome.Correct)
	}

	if round.Solved {
		s.metrics.RoundSolved(round.Scored, len(round.WrongSelections))
		s.record(ctx, entities.NewRoundResult(chatID, userID, round, score))
	}

	outcome.Session = session
	return outcome, nil
}

// Advance moves a solved round on to a new one. The score carries over.
func (s *QuizService) Advance(ctx context.Context, chatID int64, roundID uuid.UUID) (*entities.QuizSession, error) {
	session, err := s.active(ctx, chatID, roundID)
	if err != nil {
		return nil, err
	}

	round, err := Advance(session.Round, s.rounds)
	if err != nil {
		return nil, err
	}

	session.Round = round
	session.MessageID = 0
	session.UpdatedAt = time.Now()
	s.sessions.Save(session)
	s.metrics.RoundStarted()

	return session, nil
}

// History returns up to limit of the chat's latest solved rounds, newest first.
func (s *QuizService) History(ctx context.Context, chatID int64, limit int) ([]entities.RoundResult, error) {
	if s.recorder == nil {
		return nil, nil
	}

	results, err := s.recorder.Recent(ctx, chatID, limit)
	if err != nil {
		return nil, fmt.Errorf("recent rounds: %w", err)
	}
	return results, nil
}

// active loads the session and checks that roundID is its current round.
func (s *QuizService) active(ctx context.Context, chatID int64, roundID uuid.UUID) (*entities.QuizSession, error) {
	session, err := s.Get(ctx, chatID)
	if err != nil {
		return nil, err
	}

	if session.Round.ID != roundID {
		return nil, ErrStaleRound
	}

	return session, nil
}

func (s *QuizService) record(ctx context.Context, result *entities.RoundResult) {
	if s.recorder == nil {
		return
	}

	if err := s.recorder.RecordRound(ctx, result); err != nil {
		s.logger.Warn("failed to record round",
			zap.Int64("chat_id", result.ChatID),
			zap.String("round_id", result.RoundID),
			zap.Error(err),
		)
	}
}
