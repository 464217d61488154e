// Package fitnessmcp exposes the workout history and analytics as MCP tools,
// so an AI assistant can read training data and log sessions directly.
package fitnessmcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/bfit-app/bfit-backend/internal/fitness"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Handler handles MCP tool requests and responses: parses input, calls the service, formats MCP result.
type Handler struct {
	service contextService
}

// NewHandler builds a handler with the given service.
func NewHandler(service contextService) *Handler {
	return &Handler{
		service: service,
	}
}

func errResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}
}

func jsonResult(v any) (*mcp.CallToolResult, any, error) {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errResult("Error encoding response: " + err.Error()), nil, nil
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(raw)}},
	}, nil, nil
}

// parseDateOrNow accepts an optional YYYY-MM-DD date, empty means now.
func parseDateOrNow(value string) (time.Time, error) {
	if value == "" {
		return time.Now(), nil
	}
	return time.Parse("2006-01-02", value)
}

// ListWorkoutSessionsInput is the input for list_workout_sessions.
type ListWorkoutSessionsInput struct {
	Page int `json:"page,omitempty" jsonschema:"Page number, starting at 1 (default 1)"`
	Size int `json:"size,omitempty" jsonschema:"Page size (default 20)"`
}

// ListWorkoutSessionsTool returns the MCP tool handler for list_workout_sessions.
func (h *Handler) ListWorkoutSessionsTool() func(context.Context, *mcp.CallToolRequest, ListWorkoutSessionsInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in ListWorkoutSessionsInput) (*mcp.CallToolResult, any, error) {
		page, size := in.Page, in.Size
		if page < 1 {
			page = 1
		}
		if size < 1 {
			size = 20
		}
		sessions, total, err := h.service.ListSessions(ctx, page, size)
		if err != nil {
			return errResult("Error listing workout sessions: " + err.Error()), nil, nil
		}
		return jsonResult(struct {
			Sessions []fitness.WorkoutSession `json:"sessions"`
			Total    int                      `json:"total"`
		}{Sessions: sessions, Total: total})
	}
}

// GetTrainingStreakTool returns the MCP tool handler for get_training_streak.
func (h *Handler) GetTrainingStreakTool() func(context.Context, *mcp.CallToolRequest, any) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ any) (*mcp.CallToolResult, any, error) {
		streak, err := h.service.TrainingStreak(ctx, time.Now())
		if err != nil {
			return errResult("Error computing training streak: " + err.Error()), nil, nil
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{
				Text: fmt.Sprintf("Current training streak: %d day(s)", streak),
			}},
		}, nil, nil
	}
}

// WeeklyReportInput is the input for get_weekly_report.
type WeeklyReportInput struct {
	Date string `json:"date,omitempty" jsonschema:"Reference date (YYYY-MM-DD), defaults to today"`
}

// GetWeeklyReportTool returns the MCP tool handler for get_weekly_report.
func (h *Handler) GetWeeklyReportTool() func(context.Context, *mcp.CallToolRequest, WeeklyReportInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in WeeklyReportInput) (*mcp.CallToolResult, any, error) {
		referenceDate, err := parseDateOrNow(in.Date)
		if err != nil {
			return errResult("Invalid date: use YYYY-MM-DD"), nil, nil
		}
		report, err := h.service.WeeklyReport(ctx, referenceDate)
		if err != nil {
			return errResult("Error building weekly report: " + err.Error()), nil, nil
		}
		return jsonResult(report)
	}
}

// GetExerciseTrendsTool returns the MCP tool handler for get_exercise_trends.
func (h *Handler) GetExerciseTrendsTool() func(context.Context, *mcp.CallToolRequest, any) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ any) (*mcp.CallToolResult, any, error) {
		trends, err := h.service.ExerciseTrends(ctx)
		if err != nil {
			return errResult("Error computing exercise trends: " + err.Error()), nil, nil
		}
		return jsonResult(trends)
	}
}

// SuggestNextLoadInput is the input for suggest_next_load.
type SuggestNextLoadInput struct {
	Exercise    string `json:"exercise" jsonschema:"Exercise name (e.g. Barbell Bench Press)"`
	MuscleGroup string `json:"muscle_group,omitempty" jsonschema:"Muscle group of the exercise (e.g. Chest)"`
}

// SuggestNextLoadTool returns the MCP tool handler for suggest_next_load.
func (h *Handler) SuggestNextLoadTool() func(context.Context, *mcp.CallToolRequest, SuggestNextLoadInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in SuggestNextLoadInput) (*mcp.CallToolResult, any, error) {
		if in.Exercise == "" {
			return errResult("Missing exercise name"), nil, nil
		}
		suggestion, err := h.service.SuggestNextLoad(ctx, in.Exercise, in.MuscleGroup)
		if err != nil {
			return errResult("Error suggesting next load: " + err.Error()), nil, nil
		}
		if suggestion == nil {
			return &mcp.CallToolResult{
				Content: []mcp.Content{&mcp.TextContent{
					Text: "No suggestion available: no usable strength history for " + in.Exercise,
				}},
			}, nil, nil
		}
		return jsonResult(suggestion)
	}
}

// AddSetInput is one set within add_workout_session input.
type AddSetInput struct {
	Reps            *int     `json:"reps,omitempty" jsonschema:"Reps done in the set"`
	Weight          *float64 `json:"weight,omitempty" jsonschema:"Weight used (lbs)"`
	Distance        *float64 `json:"distance,omitempty" jsonschema:"Distance covered (cardio)"`
	DurationMinutes *float64 `json:"duration_minutes,omitempty" jsonschema:"Duration in minutes (cardio)"`
}

// AddExerciseInput is one exercise within add_workout_session input.
type AddExerciseInput struct {
	Name        string        `json:"name" jsonschema:"Exercise name (e.g. Barbell Bench Press)"`
	MuscleGroup string        `json:"muscle_group,omitempty" jsonschema:"Muscle group (e.g. Chest)"`
	Sets        []AddSetInput `json:"sets" jsonschema:"Sets done for this exercise"`
}

// AddWorkoutSessionInput is the input for add_workout_session.
type AddWorkoutSessionInput struct {
	Name            string             `json:"name,omitempty" jsonschema:"Workout name (e.g. Push Day)"`
	Date            string             `json:"date,omitempty" jsonschema:"Workout date (YYYY-MM-DD), defaults to today"`
	DurationMinutes int                `json:"duration_minutes,omitempty" jsonschema:"Workout duration in minutes"`
	Exercises       []AddExerciseInput `json:"exercises" jsonschema:"Exercises done in the workout"`
}

// AddWorkoutSessionTool returns the MCP tool handler for add_workout_session.
func (h *Handler) AddWorkoutSessionTool() func(context.Context, *mcp.CallToolRequest, AddWorkoutSessionInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in AddWorkoutSessionInput) (*mcp.CallToolResult, any, error) {
		if len(in.Exercises) == 0 {
			return errResult("Missing exercises: a workout session needs at least one exercise"), nil, nil
		}
		date, err := parseDateOrNow(in.Date)
		if err != nil {
			return errResult("Invalid date: use YYYY-MM-DD"), nil, nil
		}

		session := fitness.WorkoutSession{
			Name:            in.Name,
			Date:            date,
			DurationMinutes: in.DurationMinutes,
		}
		for i, ex := range in.Exercises {
			exerciseLog := fitness.ExerciseLog{
				ID:          fmt.Sprintf("mcp-%d-%d", date.Unix(), i),
				Name:        ex.Name,
				MuscleGroup: ex.MuscleGroup,
			}
			for j, set := range ex.Sets {
				exerciseLog.Sets = append(exerciseLog.Sets, fitness.Set{
					ID:              fmt.Sprintf("mcp-%d-%d-set%d", date.Unix(), i, j+1),
					Reps:            set.Reps,
					Weight:          set.Weight,
					Distance:        set.Distance,
					DurationMinutes: set.DurationMinutes,
					Completed:       true,
				})
			}
			session.Exercises = append(session.Exercises, exerciseLog)
		}

		added, err := h.service.AddSession(ctx, session)
		if err != nil {
			return errResult("Error adding workout session: " + err.Error()), nil, nil
		}
		return jsonResult(added)
	}
}
