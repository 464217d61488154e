package fitnessmcp

import (
	"context"
	"time"

	"github.com/bfit-app/bfit-backend/internal/fitness"
)

// SessionsStore provides workout session access (for dependency injection and testing).
type SessionsStore interface {
	Add(ctx context.Context, session fitness.WorkoutSession) (*fitness.WorkoutSession, error)
	List(ctx context.Context, params fitness.ListParams) ([]fitness.WorkoutSession, int, error)
	ListAll(ctx context.Context, params fitness.SessionParams) ([]fitness.WorkoutSession, error)
}

// contextService provides fitness context data (sessions, streak, report, trends, suggestions).
// Used by Handler for testability.
type contextService interface {
	ListSessions(ctx context.Context, page, size int) ([]fitness.WorkoutSession, int, error)
	TrainingStreak(ctx context.Context, today time.Time) (int, error)
	WeeklyReport(ctx context.Context, referenceDate time.Time) (*fitness.WeeklyReport, error)
	ExerciseTrends(ctx context.Context) ([]fitness.ExerciseTrend, error)
	SuggestNextLoad(ctx context.Context, exerciseName, muscleGroup string) (*fitness.LoadSuggestion, error)
	AddSession(ctx context.Context, session fitness.WorkoutSession) (*fitness.WorkoutSession, error)
}

// ContextService holds dependencies and implements the fitness context business logic.
type ContextService struct {
	sessions SessionsStore
}

// NewContextService builds a ContextService with the given sessions store.
func NewContextService(sessions SessionsStore) *ContextService {
	return &ContextService{
		sessions: sessions,
	}
}

// ListSessions returns one page of workout sessions plus the total count.
func (s *ContextService) ListSessions(ctx context.Context, page, size int) ([]fitness.WorkoutSession, int, error) {
	return s.sessions.List(ctx, fitness.ListParams{
		Page: page,
		Size: size,
	})
}

// TrainingStreak returns the number of consecutive training days ending today.
func (s *ContextService) TrainingStreak(ctx context.Context, today time.Time) (int, error) {
	history, err := s.sessions.ListAll(ctx, fitness.SessionParams{})
	if err != nil {
		return 0, err
	}
	return fitness.TrainingStreak(history, today), nil
}

// WeeklyReport returns the weekly summary (volume, top lift, cardio) for the
// week ending at the given reference date.
func (s *ContextService) WeeklyReport(ctx context.Context, referenceDate time.Time) (*fitness.WeeklyReport, error) {
	history, err := s.sessions.ListAll(ctx, fitness.SessionParams{})
	if err != nil {
		return nil, err
	}
	report := fitness.BuildWeeklyReport(history, referenceDate)
	return &report, nil
}

// ExerciseTrends returns per-exercise progression trends over the whole history.
func (s *ContextService) ExerciseTrends(ctx context.Context) ([]fitness.ExerciseTrend, error) {
	history, err := s.sessions.ListAll(ctx, fitness.SessionParams{})
	if err != nil {
		return nil, err
	}
	return fitness.ExerciseTrends(history), nil
}

// SuggestNextLoad returns the recommended weight and reps for the next set of
// the given exercise, or nil when there is no usable history.
func (s *ContextService) SuggestNextLoad(ctx context.Context, exerciseName, muscleGroup string) (*fitness.LoadSuggestion, error) {
	history, err := s.sessions.ListAll(ctx, fitness.SessionParams{})
	if err != nil {
		return nil, err
	}
	return fitness.SuggestNextLoad(exerciseName, muscleGroup, history), nil
}

// AddSession sanitizes and stores a new workout session.
func (s *ContextService) AddSession(ctx context.Context, session fitness.WorkoutSession) (*fitness.WorkoutSession, error) {
	session.Sanitize()
	if session.Date.IsZero() {
		session.Date = time.Now()
	}
	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now()
	}
	return s.sessions.Add(ctx, session)
}
