package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/aliskhannn/category-quiz-bot/internal/codec"
	"github.com/aliskhannn/category-quiz-bot/internal/domain/entities"
	"github.com/aliskhannn/category-quiz-bot/internal/storage"
)

var (
	ErrCategoryComplete = errors.New("every quiz of the category is solved")
	ErrNoActiveSession  = errors.New("no category in play")
)

type CategoryRepository interface {
	GetByID(ctx context.Context, id string) (*entities.Category, error)
	GetAll(ctx context.Context) ([]*entities.Category, error)
}

type ProgressRepository interface {
	Get(ctx context.Context, userID int64, categoryID string) (*entities.CategoryProgress, error)
	Reset(ctx context.Context, userID int64, categoryID string) error
}

type AttemptRecorder interface {
	Record(ctx context.Context, a *entities.Attempt) error
}

type SessionStore interface {
	Store(userID int64, session storage.Session)
	Get(userID int64) (storage.Session, bool)
	Delete(userID int64)
}

// Turn is the quiz a player has to answer next.
type Turn struct {
	CategoryID   string
	CategoryName string
	Position     int // zero-based position in the category
	Total        int
	Quiz         entities.Quiz
}

// Result is the outcome of an answer.
type Result struct {
	CategoryID    string
	Correct       bool
	CorrectAnswer string // human readable correct answer
	Score         int    // correct answers in the category so far
	Total         int
	Next          *Turn // nil once the category is complete
}

// QuizService drives a player through the quizzes of a category.
type QuizService struct {
	categories CategoryRepository
	progress   ProgressRepository
	recorder   AttemptRecorder
	sessions   SessionStore
	registry   *codec.Registry
	matcher    *AnswerMatcher
}

func NewQuizService(
	categories CategoryRepository,
	progress ProgressRepository,
	recorder AttemptRecorder,
	sessions SessionStore,
	registry *codec.Registry,
	matcher *AnswerMatcher,
) *QuizService {
	return &QuizService{
		categories: categories,
		progress:   progress,
		recorder:   recorder,
		sessions:   sessions,
		registry:   registry,
		matcher:    matcher,
	}
}

// Categories lists the catalog.
func (s *QuizService) Categories(ctx context.Context) ([]*entities.Category, error) {
	return s.categories.GetAll(ctx)
}

// Start opens a category for the user and returns the first unsolved quiz.
func (s *QuizService) Start(ctx context.Context, userID int64, categoryID string) (*Turn, error) {
	category, err := s.categories.GetByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	progress, err := s.progress.Get(ctx, userID, categoryID)
	if err != nil {
		return nil, fmt.Errorf("get progress: %w", err)
	}
	progress.Apply(category)

	pos, ok := category.FirstUnsolved()
	if !ok {
		return nil, ErrCategoryComplete
	}

	session := storage.Session{
		CategoryID:   category.ID,
		CategoryName: category.Name,
		Position:     pos,
		Quizzes:      make([][]byte, 0, len(category.Quizzes)),
	}
	for i, q := range category.Quizzes {
		data, err := s.registry.MarshalNative(q)
		if err != nil {
			return nil, fmt.Errorf("snapshot quiz %d: %w", i, err)
		}
		session.Quizzes = append(session.Quizzes, data)
	}
	s.sessions.Store(userID, session)

	return newTurn(session, category.Quizzes[pos]), nil
}

// Current returns the quiz the user is on.
func (s *QuizService) Current(_ context.Context, userID int64) (*Turn, error) {
	session, ok := s.sessions.Get(userID)
	if !ok {
		return nil, ErrNoActiveSession
	}
	q, err := s.registry.UnmarshalNative(session.Quizzes[session.Position])
	if err != nil {
		return nil, fmt.Errorf("restore quiz: %w", err)
	}
	return newTurn(session, q), nil
}

// Answer checks input against the current quiz, marks it solved, records the
// attempt and moves to the next unsolved quiz.
func (s *QuizService) Answer(ctx context.Context, userID int64, input string) (*Result, error) {
	session, ok := s.sessions.Get(userID)
	if !ok {
		return nil, ErrNoActiveSession
	}

	quizzes := make([]entities.Quiz, len(session.Quizzes))
	for i, data := range session.Quizzes {
		q, err := s.registry.UnmarshalNative(data)
		if err != nil {
			return nil, fmt.Errorf("restore quiz %d: %w", i, err)
		}
		quizzes[i] = q
	}
	current := quizzes[session.Position]

	correct, err := s.matcher.Match(current, input)
	if err != nil {
		return nil, err
	}

	attempt := entities.NewAttempt(userID, session.CategoryID, session.Position, current)
	attempt.UserAnswer = input
	attempt.IsCorrect = correct
	if err := s.recorder.Record(ctx, attempt); err != nil {
		return nil, fmt.Errorf("record attempt: %w", err)
	}

	current.SetSolved(true)
	data, err := s.registry.MarshalNative(current)
	if err != nil {
		return nil, fmt.Errorf("snapshot quiz: %w", err)
	}
	session.Quizzes[session.Position] = data

	progress, err := s.progress.Get(ctx, userID, session.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("get progress: %w", err)
	}

	result := &Result{
		CategoryID:    session.CategoryID,
		Correct:       correct,
		CorrectAnswer: current.StringAnswer(),
		Score:         progress.Score(),
		Total:         len(quizzes),
	}

	category := &entities.Category{ID: session.CategoryID, Name: session.CategoryName, Quizzes: quizzes}
	next, ok := category.NextUnsolved(session.Position + 1)
	if !ok {
		s.sessions.Delete(userID)
		return result, nil
	}

	session.Position = next
	s.sessions.Store(userID, session)
	result.Next = newTurn(session, quizzes[next])

	return result, nil
}

// Reset forgets the user's progress in a category so it can be replayed.
func (s *QuizService) Reset(ctx context.Context, userID int64, categoryID string) error {
	if err := s.progress.Reset(ctx, userID, categoryID); err != nil {
		return err
	}
	if session, ok := s.sessions.Get(userID); ok && session.CategoryID == categoryID {
		s.sessions.Delete(userID)
	}
	return nil
}

func newTurn(session storage.Session, q entities.Quiz) *Turn {
	return &Turn{
		CategoryID:   session.CategoryID,
		CategoryName: session.CategoryName,
		Position:     session.Position,
		Total:        len(session.Quizzes),
		Quiz:         q,
	}
}
