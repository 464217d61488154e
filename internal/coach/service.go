package coach

import (
	"context"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/bfit-app/bfit-backend/internal/fitness"
	"github.com/bfit-app/bfit-backend/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=coach_test

const (
	threadTitleMaxLen = 40
	previewMaxLen     = 120
)

type aiClient interface {
	GetCoachResponse(ctx context.Context, userMessage, workoutContext string) string
}

type threadsRepo interface {
	AddThread(ctx context.Context, title string) (*Thread, error)
	GetThread(ctx context.Context, id int) (*Thread, error)
	Threads(ctx context.Context) ([]Thread, error)
	Messages(ctx context.Context, threadID int) ([]Message, error)
	AddMessages(ctx context.Context, threadID int, messages []Message, preview string) error
	RenameThread(ctx context.Context, id int, title string) error
	DeleteThread(ctx context.Context, id int) error
}

type workoutHistory interface {
	ListAll(ctx context.Context, params fitness.SessionParams) ([]fitness.WorkoutSession, error)
}

// SendResult is what a single coach exchange produces: the (possibly
// just created) thread and the model's reply.
type SendResult struct {
	ThreadID int    `json:"threadId"`
	Title    string `json:"title"`
	Preview  string `json:"preview"`
	Reply    string `json:"reply"`
}

type Service struct {
	repo    threadsRepo
	ai      aiClient
	history workoutHistory
}

func NewService(repo threadsRepo, ai aiClient, history workoutHistory) *Service {
	return &Service{
		repo:    repo,
		ai:      ai,
		history: history,
	}
}

// workoutContext summarizes the most recent session so the model can
// ground its advice in what the user actually trained.
func (s *Service) workoutContext(ctx context.Context) string {
	history, err := s.history.ListAll(ctx, fitness.SessionParams{})
	if err != nil {
		log.Errorf("coach, failed to load workout history for context: %s", err)
		return "User has no recent workout history."
	}
	if len(history) == 0 {
		return "User has no recent workout history."
	}

	last := history[0]
	names := make([]string, 0, len(last.Exercises))
	for _, ex := range last.Exercises {
		names = append(names, ex.Name)
	}
	return fmt.Sprintf(
		"Last workout was %s on %s. Focus: %s.",
		last.Name, last.Date.Format("1/2/2006"), strings.Join(names, ", "),
	)
}

// SendMessage runs one coach exchange: creates the thread when needed,
// asks the model, stores both messages and refreshes the thread
// metadata (title from the first user message, preview from the reply).
func (s *Service) SendMessage(ctx context.Context, threadID int, message string) (_ *SendResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "coach.sendmessage")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var thread *Thread
	if threadID == 0 {
		thread, err = s.repo.AddThread(ctx, defaultThreadTitle)
		if err != nil {
			return nil, fmt.Errorf("add thread: %w", err)
		}
	} else {
		thread, err = s.repo.GetThread(ctx, threadID)
		if err != nil {
			return nil, err
		}
	}

	reply := s.ai.GetCoachResponse(ctx, message, s.workoutContext(ctx))
	preview := truncate(reply, previewMaxLen)

	messages := []Message{
		{Role: RoleUser, Text: message},
		{Role: RoleModel, Text: reply},
	}
	if err := s.repo.AddMessages(ctx, thread.ID, messages, preview); err != nil {
		return nil, fmt.Errorf("add messages: %w", err)
	}

	title := thread.Title
	if thread.Title == defaultThreadTitle {
		if newTitle := truncate(message, threadTitleMaxLen); newTitle != "" {
			if err := s.repo.RenameThread(ctx, thread.ID, newTitle); err != nil {
				log.Errorf("coach, failed to rename thread %d: %s", thread.ID, err)
			} else {
				title = newTitle
			}
		}
	}

	return &SendResult{
		ThreadID: thread.ID,
		Title:    title,
		Preview:  preview,
		Reply:    reply,
	}, nil
}

func (s *Service) Threads(ctx context.Context) ([]Thread, error) {
	return s.repo.Threads(ctx)
}

// ThreadMessages verifies the thread exists before loading its
// messages, so an unknown id maps to ErrThreadNotFound instead of an
// empty list.
func (s *Service) ThreadMessages(ctx context.Context, threadID int) ([]Message, error) {
	if _, err := s.repo.GetThread(ctx, threadID); err != nil {
		return nil, err
	}
	return s.repo.Messages(ctx, threadID)
}

func (s *Service) RenameThread(ctx context.Context, threadID int, title string) error {
	return s.repo.RenameThread(ctx, threadID, title)
}

func (s *Service) DeleteThread(ctx context.Context, threadID int) error {
	return s.repo.DeleteThread(ctx, threadID)
}

// Insights derives the dashboard nudges from the workout history.
func (s *Service) Insights(ctx context.Context) ([]string, error) {
	history, err := s.history.ListAll(ctx, fitness.SessionParams{})
	if err != nil {
		return nil, err
	}
	insights := fitness.ProactiveInsights(history)
	if insights == nil {
		insights = make([]string, 0)
	}
	return insights, nil
}

func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen])
}
