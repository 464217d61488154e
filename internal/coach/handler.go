package coach

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/bfit-app/bfit-backend/internal/telemetry/metrics"
	"github.com/bfit-app/bfit-backend/internal/telemetry/tracing"
	"github.com/bfit-app/bfit-backend/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=coach_test

type coachService interface {
	SendMessage(ctx context.Context, threadID int, message string) (*SendResult, error)
	Threads(ctx context.Context) ([]Thread, error)
	ThreadMessages(ctx context.Context, threadID int) ([]Message, error)
	RenameThread(ctx context.Context, threadID int, title string) error
	DeleteThread(ctx context.Context, threadID int) error
	Insights(ctx context.Context) ([]string, error)
}

type SendMessageRequest struct {
	ThreadID int    `json:"threadId"`
	Message  string `json:"message"`
}

type ThreadsResponse struct {
	Threads []Thread `json:"threads"`
}

type MessagesResponse struct {
	Messages []Message `json:"messages"`
}

type InsightsResponse struct {
	Insights []string `json:"insights"`
}

type DeleteThreadResponse struct {
	DeletedID int `json:"deletedId"`
}

type RenameThreadResponse struct {
	UpdatedID int    `json:"updatedId"`
	Title     string `json:"title"`
}

type Handler struct {
	service        coachService
	metricsManager *metrics.Manager
}

func NewHandler(service coachService, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		service:        service,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) HandleSendMessage(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.coach.send")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var sendReq SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&sendReq); err != nil {
		log.Tracef("coach send message, unmarshal json params: %s", err)
		http.Error(w, "send message failed", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(sendReq.Message) == "" {
		http.Error(w, "error, message empty", http.StatusBadRequest)
		return
	}

	result, err := handler.service.SendMessage(ctx, sendReq.ThreadID, sendReq.Message)
	if err != nil {
		if errors.Is(err, ErrThreadNotFound) {
			http.Error(w, "chat thread not found", http.StatusNotFound)
			return
		}
		log.Errorf("coach send message: %s", err)
		http.Error(w, "error, failed to send message", http.StatusInternalServerError)
		return
	}

	handler.metricsManager.CounterCoachMessages.Inc()

	resultJson, err := json.Marshal(result)
	if err != nil {
		log.Errorf("coach, marshal send result: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	log.Debugf("coach reply sent, thread %d", result.ThreadID)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, resultJson, http.StatusCreated)
}

func (handler *Handler) HandleThreads(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.coach.threads")
	defer span.End()

	threads, err := handler.service.Threads(ctx)
	if err != nil {
		log.Errorf("coach list threads: %s", err)
		http.Error(w, "failed to get chat threads", http.StatusInternalServerError)
		return
	}

	handler.writeJSON(w, ThreadsResponse{Threads: threads})
}

func (handler *Handler) HandleThreadMessages(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.coach.messages")
	defer span.End()

	id, ok := threadID(w, r)
	if !ok {
		return
	}

	messages, err := handler.service.ThreadMessages(ctx, id)
	if err != nil {
		if errors.Is(err, ErrThreadNotFound) {
			http.Error(w, "chat thread not found", http.StatusNotFound)
			return
		}
		log.Errorf("coach get thread %d messages: %s", id, err)
		http.Error(w, "failed to get chat messages", http.StatusInternalServerError)
		return
	}

	handler.writeJSON(w, MessagesResponse{Messages: messages})
}

func (handler *Handler) HandleRenameThread(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.coach.rename")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	id, ok := threadID(w, r)
	if !ok {
		return
	}

	var renameReq struct {
		Title string `json:"title"`
	}
	if err := json.NewDecoder(r.Body).Decode(&renameReq); err != nil {
		http.Error(w, "rename thread failed", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(renameReq.Title) == "" {
		http.Error(w, "error, title empty", http.StatusBadRequest)
		return
	}

	title := truncate(renameReq.Title, threadTitleMaxLen)
	if err := handler.service.RenameThread(ctx, id, title); err != nil {
		if errors.Is(err, ErrThreadNotFound) {
			http.Error(w, "chat thread not found", http.StatusNotFound)
			return
		}
		log.Errorf("coach rename thread %d: %s", id, err)
		http.Error(w, "error, failed to rename thread", http.StatusInternalServerError)
		return
	}

	handler.writeJSON(w, RenameThreadResponse{UpdatedID: id, Title: title})
}

func (handler *Handler) HandleDeleteThread(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.coach.delete")
	defer span.End()

	id, ok := threadID(w, r)
	if !ok {
		return
	}

	if err := handler.service.DeleteThread(ctx, id); err != nil {
		if errors.Is(err, ErrThreadNotFound) {
			http.Error(w, "chat thread not found", http.StatusNotFound)
			return
		}
		log.Errorf("coach delete thread %d: %s", id, err)
		http.Error(w, "error, failed to delete thread", http.StatusInternalServerError)
		return
	}

	handler.writeJSON(w, DeleteThreadResponse{DeletedID: id})
}

func (handler *Handler) HandleInsights(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.coach.insights")
	defer span.End()

	insights, err := handler.service.Insights(ctx)
	if err != nil {
		log.Errorf("coach insights: %s", err)
		http.Error(w, "failed to get insights", http.StatusInternalServerError)
		return
	}

	handler.writeJSON(w, InsightsResponse{Insights: insights})
}

func threadID(w http.ResponseWriter, r *http.Request) (int, bool) {
	vars := mux.Vars(r)
	idStr := vars["id"]
	if idStr == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return 0, false
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func (handler *Handler) writeJSON(w http.ResponseWriter, resp interface{}) {
	respJson, err := json.Marshal(resp)
	if err != nil {
		log.Errorf("coach, marshal response error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}
