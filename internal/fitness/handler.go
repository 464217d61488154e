package fitness

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/bfit-app/bfit-backend/internal/telemetry/metrics"
	"github.com/bfit-app/bfit-backend/internal/telemetry/tracing"
	"github.com/bfit-app/bfit-backend/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=fitness_test

type sessionsRepo interface {
	Add(ctx context.Context, session WorkoutSession) (*WorkoutSession, error)
	Get(ctx context.Context, id int) (*WorkoutSession, error)
	List(ctx context.Context, params ListParams) (_ []WorkoutSession, total int, err error)
	ListAll(ctx context.Context, params SessionParams) ([]WorkoutSession, error)
	Update(ctx context.Context, session *WorkoutSession) error
	Delete(ctx context.Context, id int) error
	SessionsCount(ctx context.Context, params SessionParams) (int, error)
}

// celebrationNotifier pushes PR and milestone messages to the user,
// best effort: delivery failures never fail the save.
type celebrationNotifier interface {
	Notify(ctx context.Context, title, body string) error
}

type DeleteSessionResponse struct {
	DeletedID int `json:"deletedId"`
}

type UpdateSessionResponse struct {
	UpdatedID    int      `json:"updatedId"`
	Celebrations []string `json:"celebrations"`
}

type AddSessionResponse struct {
	WorkoutSession
	Celebrations []string `json:"celebrations"`
}

type ListResponse struct {
	Sessions []WorkoutSession `json:"sessions"`
	Total    int              `json:"total"`
}

type Handler struct {
	repo           sessionsRepo
	notifier       celebrationNotifier
	metricsManager *metrics.Manager
}

func NewHandler(
	repo sessionsRepo,
	notifier celebrationNotifier,
	metricsManager *metrics.Manager,
) *Handler {
	return &Handler{
		repo:           repo,
		notifier:       notifier,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.fitness.new")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var session WorkoutSession
	if err := json.NewDecoder(r.Body).Decode(&session); err != nil {
		log.Tracef("new workout session, unmarshal json params: %s", err)
		http.Error(w, "add workout session failed", http.StatusBadRequest)
		return
	}

	session.Sanitize()
	if session.Date.IsZero() {
		session.Date = time.Now()
	}
	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now()
	}

	priorHistory, err := handler.repo.ListAll(ctx, SessionParams{})
	if err != nil {
		log.Errorf("failed to list workout history before save: %s", err)
		http.Error(w, "error, failed to add workout session", http.StatusInternalServerError)
		return
	}

	addedSession, err := handler.repo.Add(ctx, session)
	if err != nil {
		log.Errorf("failed to add workout session [%s]: %s", session.Name, err)
		http.Error(w, "error, failed to add workout session", http.StatusInternalServerError)
		return
	}

	handler.metricsManager.CounterWorkoutSessions.Inc()

	celebrations := handler.celebrate(ctx, *addedSession, priorHistory, len(priorHistory)+1)

	addSessionResponse := AddSessionResponse{
		WorkoutSession: *addedSession,
		Celebrations:   celebrations,
	}

	addedSessionJson, err := json.Marshal(addSessionResponse)
	if err != nil {
		log.Errorf("failed to marshal new workout session: %s", err)
		http.Error(w, "error, failed to add workout session", http.StatusInternalServerError)
		return
	}

	log.Debugf("new workout session added: %d [%s]", addedSession.ID, addedSession.Name)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addedSessionJson, http.StatusCreated)
}

// celebrate collects PR and milestone messages for a just-saved
// session and pushes each of them as a notification. Returns the
// messages so the client can show them too.
func (handler *Handler) celebrate(
	ctx context.Context,
	saved WorkoutSession,
	priorHistory []WorkoutSession,
	totalSessions int,
) []string {
	celebrations := DetectPRs(saved, priorHistory)
	if len(celebrations) > 0 {
		handler.metricsManager.CounterPersonalRecords.Add(float64(len(celebrations)))
	}
	if msg, ok := DetectMilestone(totalSessions); ok {
		celebrations = append(celebrations, msg)
	}

	for _, msg := range celebrations {
		if err := handler.notifier.Notify(ctx, "BFit", msg); err != nil {
			// notifications are advisory, never block the save
			log.Errorf("failed to send celebration notification: %s", err)
		}
	}

	if celebrations == nil {
		celebrations = make([]string, 0)
	}
	return celebrations
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.fitness.get")
	defer span.End()

	vars := mux.Vars(r)
	idStr := vars["id"]
	if idStr == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	session, err := handler.repo.Get(ctx, id)
	if err != nil {
		log.Errorf("failed to get workout session %d: %s", id, err)
		http.Error(w, "workout session not found", http.StatusBadRequest)
		return
	}

	sessionJson, err := json.Marshal(session)
	if err != nil {
		log.Errorf("failed to marshal workout session: %s", err)
		http.Error(w, "failed to marshal workout session", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, sessionJson, http.StatusOK)
}

func (handler *Handler) HandleListAll(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.fitness.listall")
	defer span.End()

	sessions, err := handler.repo.ListAll(ctx, SessionParams{})
	if err != nil {
		log.Errorf("list workout sessions error: %s", err)
		http.Error(w, "failed to get workout sessions", http.StatusInternalServerError)
		return
	}

	sessionsJson, err := json.Marshal(sessions)
	if err != nil {
		log.Errorf("marshal workout sessions error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, sessionsJson, http.StatusOK)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.fitness.list")
	defer span.End()

	vars := mux.Vars(r)
	pageStr := vars["page"]
	page, err := strconv.Atoi(pageStr)
	if err != nil {
		log.Tracef("handle list sessions page, from <page> param: %s", err)
		http.Error(w, "parse form error, parameter <page>", http.StatusBadRequest)
		return
	}
	sizeStr := vars["size"]
	size, err := strconv.Atoi(sizeStr)
	if err != nil {
		log.Tracef("handle list sessions page, from <size> param: %s", err)
		http.Error(w, "parse form error, parameter <size>", http.StatusBadRequest)
		return
	}

	if page < 1 {
		http.Error(w, "invalid page (has to be non-zero value)", http.StatusBadRequest)
		return
	}
	if size < 1 {
		http.Error(w, "invalid size (has to be non-zero value)", http.StatusBadRequest)
		return
	}

	sessions, total, err := handler.repo.List(ctx, ListParams{
		Page: page,
		Size: size,
	})
	if err != nil {
		log.Errorf("list workout sessions error: %s", err)
		http.Error(w, "failed to get workout sessions", http.StatusInternalServerError)
		return
	}

	listResponse := ListResponse{
		Sessions: sessions,
		Total:    total,
	}

	listResponseJson, err := json.Marshal(listResponse)
	if err != nil {
		log.Errorf("marshal workout sessions error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, listResponseJson, http.StatusOK)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.fitness.update")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var session WorkoutSession
	if err := json.NewDecoder(r.Body).Decode(&session); err != nil {
		log.Errorf("update workout session, unmarshal json params: %s", err)
		http.Error(w, "update workout session failed", http.StatusBadRequest)
		return
	}
	if session.ID <= 0 {
		http.Error(w, "error, session id empty", http.StatusBadRequest)
		return
	}

	session.Sanitize()

	currentSession, err := handler.repo.Get(ctx, session.ID)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			log.Debugf("workout session %d not found", session.ID)
			http.Error(w, "workout session not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get workout session %d: %s", session.ID, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if session.Date.IsZero() {
		session.Date = currentSession.Date
	}

	// the prior history still holds the old version of this session,
	// so a PR is detected only when the edit raises the all-time best
	priorHistory, err := handler.repo.ListAll(ctx, SessionParams{})
	if err != nil {
		log.Errorf("failed to list workout history before update: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	if err := handler.repo.Update(ctx, &session); err != nil {
		log.Errorf("failed to update workout session %d: %s", session.ID, err)
		http.Error(w, "error, failed to update workout session", http.StatusInternalServerError)
		return
	}

	celebrations := handler.celebrate(ctx, session, priorHistory, len(priorHistory))

	updateRespJson, err := json.Marshal(UpdateSessionResponse{
		UpdatedID:    session.ID,
		Celebrations: celebrations,
	})
	if err != nil {
		log.Errorf("failed to marshal update response: %s", err)
		http.Error(w, "failed to marshal update response", http.StatusInternalServerError)
		return
	}

	log.Debugf("workout session updated: %d [%s]", session.ID, session.Name)
	pkg.WriteJSONResponseOK(w, string(updateRespJson))
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.fitness.delete")
	defer span.End()

	vars := mux.Vars(r)
	idStr := vars["id"]
	if idStr == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	if err := handler.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			log.Debugf("workout session %d not found", id)
			http.Error(w, "workout session not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to delete workout session %d: %s", id, err)
		http.Error(w, "workout session not deleted", http.StatusInternalServerError)
		return
	}

	deleteRespJson, err := json.Marshal(DeleteSessionResponse{
		DeletedID: id,
	})
	if err != nil {
		log.Errorf("failed to marshal delete response: %s", err)
		http.Error(w, "failed to marshal delete response", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, string(deleteRespJson))
}
