package fitnessmcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewServer builds an MCP server with fitness tools: sessions, streak,
// weekly report, trends, load suggestions, session logging.
// Used by the main backend when mounting MCP at /mcp (internal/server).
func NewServer(sessions SessionsStore) *mcp.Server {
	svc := NewContextService(sessions)
	h := NewHandler(svc)
	s := mcp.NewServer(&mcp.Implementation{
		Name:    "bfit-context",
		Version: "1.0.0",
	}, nil)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "list_workout_sessions",
		Description: "Returns one page of logged workout sessions (name, date, duration, exercises with sets) plus the total count. Args: page (default 1), size (default 20). Use when you need to see what was trained recently.",
	}, h.ListWorkoutSessionsTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_training_streak",
		Description: "Returns the current training streak: the number of consecutive days (ending today) with at least one logged workout. Use when asked about consistency.",
	}, h.GetTrainingStreakTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_weekly_report",
		Description: "Returns the weekly training summary: total volume, workout count, average duration, top lift by volume, cardio summary. Optional arg: date (YYYY-MM-DD) to pick the week, defaults to today. Use for a week-in-review.",
	}, h.GetWeeklyReportTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_exercise_trends",
		Description: "Returns per-exercise progression trends (estimated 1RM points over time, classified as progressing, maintaining or regressing). Use when analyzing long-term strength development.",
	}, h.GetExerciseTrendsTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "suggest_next_load",
		Description: "Returns the recommended weight and reps for the next set of an exercise, based on the last logged performance and double progression. Args: exercise (name, required), muscle_group (optional). Use when asked what to lift next.",
	}, h.SuggestNextLoadTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "add_workout_session",
		Description: "Logs a new workout session. Args: name, date (YYYY-MM-DD, defaults to today), duration_minutes, exercises (each with name, muscle_group and sets of reps/weight or distance/duration_minutes). Use when asked to record a workout.",
	}, h.AddWorkoutSessionTool())

	return s
}
