package notifications

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/bfit-app/bfit-backend/internal/telemetry/tracing"
	"github.com/bfit-app/bfit-backend/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=notifications_test

type settingsPrefs interface {
	ReminderTime(ctx context.Context) (string, error)
	SetReminderTime(ctx context.Context, value string) error
}

type ReminderSettingsResponse struct {
	ReminderTime string `json:"reminderTime"`
}

type Handler struct {
	prefs settingsPrefs
}

func NewHandler(prefs settingsPrefs) *Handler {
	return &Handler{
		prefs: prefs,
	}
}

func (handler *Handler) HandleGetReminder(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.settings.reminder.get")
	defer span.End()

	reminderTime, err := handler.prefs.ReminderTime(ctx)
	if err != nil {
		log.Errorf("get reminder time: %s", err)
		http.Error(w, "failed to get reminder time", http.StatusInternalServerError)
		return
	}

	handler.writeJSON(w, ReminderSettingsResponse{ReminderTime: reminderTime})
}

func (handler *Handler) HandleSetReminder(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.settings.reminder.set")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var setReq ReminderSettingsResponse
	if err := json.NewDecoder(r.Body).Decode(&setReq); err != nil {
		http.Error(w, "set reminder time failed", http.StatusBadRequest)
		return
	}

	if err := handler.prefs.SetReminderTime(ctx, setReq.ReminderTime); err != nil {
		if errors.Is(err, ErrInvalidReminderTime) {
			http.Error(w, "error, invalid reminder time", http.StatusBadRequest)
			return
		}
		log.Errorf("set reminder time: %s", err)
		http.Error(w, "failed to set reminder time", http.StatusInternalServerError)
		return
	}

	log.Debugf("reminder time set to %s", setReq.ReminderTime)
	handler.writeJSON(w, ReminderSettingsResponse{ReminderTime: setReq.ReminderTime})
}

func (handler *Handler) writeJSON(w http.ResponseWriter, resp interface{}) {
	respJson, err := json.Marshal(resp)
	if err != nil {
		log.Errorf("settings, marshal response error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}
