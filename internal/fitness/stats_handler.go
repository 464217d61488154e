package fitness

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/bfit-app/bfit-backend/internal/telemetry/tracing"
	"github.com/bfit-app/bfit-backend/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=stats_handler_mocks_test.go -package=fitness_test

type historyRepo interface {
	ListAll(ctx context.Context, params SessionParams) ([]WorkoutSession, error)
}

type StreakResponse struct {
	Streak int `json:"streak"`
}

type WeeklyStatsResponse struct {
	Groups   []GroupVolume `json:"groups"`
	ThisWeek float64       `json:"thisWeek"`
	LastWeek float64       `json:"lastWeek"`
}

type TrendsResponse struct {
	Trends []ExerciseTrend `json:"trends"`
}

type AlertsResponse struct {
	Alerts []string `json:"alerts"`
}

type SuggestionResponse struct {
	Exercise   string          `json:"exercise"`
	Suggestion *LoadSuggestion `json:"suggestion"`
}

// StatsHandler serves the analytics endpoints. All of them load the
// workout history and run the analyzers on it, there is no derived
// state in the database.
type StatsHandler struct {
	repo historyRepo
}

func NewStatsHandler(repo historyRepo) *StatsHandler {
	return &StatsHandler{
		repo: repo,
	}
}

// referenceDate returns the instant the window calculations are
// anchored to, an explicit <date> query param or now.
func referenceDate(r *http.Request) time.Time {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		return time.Now()
	}
	if date, err := time.Parse(time.RFC3339, dateStr); err == nil {
		return date
	}
	if date, err := time.Parse(time.DateOnly, dateStr); err == nil {
		return date
	}
	log.Tracef("stats, invalid <date> param [%s], falling back to now", dateStr)
	return time.Now()
}

func (handler *StatsHandler) history(ctx context.Context, w http.ResponseWriter) ([]WorkoutSession, bool) {
	history, err := handler.repo.ListAll(ctx, SessionParams{})
	if err != nil {
		log.Errorf("stats, list workout sessions error: %s", err)
		http.Error(w, "failed to get workout sessions", http.StatusInternalServerError)
		return nil, false
	}
	return history, true
}

func (handler *StatsHandler) writeJSON(w http.ResponseWriter, resp interface{}) {
	respJson, err := json.Marshal(resp)
	if err != nil {
		log.Errorf("stats, marshal response error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

func (handler *StatsHandler) HandleStreak(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.fitness.stats.streak")
	defer span.End()

	history, ok := handler.history(ctx, w)
	if !ok {
		return
	}

	handler.writeJSON(w, StreakResponse{
		Streak: TrainingStreak(history, referenceDate(r)),
	})
}

func (handler *StatsHandler) HandleWeekly(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.fitness.stats.weekly")
	defer span.End()

	history, ok := handler.history(ctx, w)
	if !ok {
		return
	}

	refDate := referenceDate(r)
	thisWeek, lastWeek := WeeklyVolumeTotals(history, refDate)
	handler.writeJSON(w, WeeklyStatsResponse{
		Groups:   WeeklyMuscleGroupVolume(history, refDate),
		ThisWeek: thisWeek,
		LastWeek: lastWeek,
	})
}

func (handler *StatsHandler) HandleTrends(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.fitness.stats.trends")
	defer span.End()

	history, ok := handler.history(ctx, w)
	if !ok {
		return
	}

	trends := ExerciseTrends(history)
	if trends == nil {
		trends = make([]ExerciseTrend, 0)
	}
	handler.writeJSON(w, TrendsResponse{Trends: trends})
}

func (handler *StatsHandler) HandleAlerts(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.fitness.stats.alerts")
	defer span.End()

	history, ok := handler.history(ctx, w)
	if !ok {
		return
	}

	alerts := TrainingAlerts(history, referenceDate(r))
	if alerts == nil {
		alerts = make([]string, 0)
	}
	handler.writeJSON(w, AlertsResponse{Alerts: alerts})
}

func (handler *StatsHandler) HandleReport(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.fitness.stats.report")
	defer span.End()

	history, ok := handler.history(ctx, w)
	if !ok {
		return
	}

	handler.writeJSON(w, BuildWeeklyReport(history, referenceDate(r)))
}

func (handler *StatsHandler) HandleSuggest(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.fitness.stats.suggest")
	defer span.End()

	exercise := r.URL.Query().Get("exercise")
	if exercise == "" {
		http.Error(w, "error, exercise empty", http.StatusBadRequest)
		return
	}
	group := r.URL.Query().Get("group")

	history, ok := handler.history(ctx, w)
	if !ok {
		return
	}

	handler.writeJSON(w, SuggestionResponse{
		Exercise:   exercise,
		Suggestion: SuggestNextLoad(exercise, group, history),
	})
}
