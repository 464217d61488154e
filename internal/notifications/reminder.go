package notifications

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"

	"github.com/bfit-app/bfit-backend/internal/fitness"
)

//go:generate mockgen -source=$GOFILE -destination=reminder_mocks_test.go -package=notifications

const (
	reminderTitle = "Time to train"
	reminderBody  = "Log your workout for today."

	remindedKeyPrefix = "bfit::reminded::"
	remindedKeyExpire = 24 * time.Hour
)

type pushNotifier interface {
	Notify(ctx context.Context, title, body string) error
}

type reminderPrefs interface {
	ReminderTime(ctx context.Context) (string, error)
}

type sessionCounter interface {
	SessionsCount(ctx context.Context, params fitness.SessionParams) (int, error)
}

// Reminder fires the daily training nudge: once per day, after the
// configured time, and only when no session was logged that day. The
// fired-today marker lives in redis so restarts don't re-notify.
type Reminder struct {
	prefs       reminderPrefs
	notifier    pushNotifier
	sessions    sessionCounter
	redisClient *redis.Client
	now         func() time.Time
}

func NewReminder(
	prefs reminderPrefs,
	notifier pushNotifier,
	sessions sessionCounter,
	redisClient *redis.Client,
) *Reminder {
	return &Reminder{
		prefs:       prefs,
		notifier:    notifier,
		sessions:    sessions,
		redisClient: redisClient,
		now:         time.Now,
	}
}

// Run checks the reminder every minute until the context is done.
func (rem *Reminder) Run(ctx context.Context) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			log.Debugln("reminder loop stopping ...")
			return
		case <-ticker.C:
			if err := rem.Check(ctx); err != nil {
				log.Errorf("reminder check: %s", err)
			}
		}
	}
}

// Check runs a single reminder evaluation.
func (rem *Reminder) Check(ctx context.Context) error {
	now := rem.now()

	reminderTime, err := rem.prefs.ReminderTime(ctx)
	if err != nil {
		return fmt.Errorf("get reminder time: %w", err)
	}
	hour, minute, err := ParseReminderTime(reminderTime)
	if err != nil {
		return err
	}

	nowMinutes := now.Hour()*60 + now.Minute()
	targetMinutes := hour*60 + minute
	if nowMinutes < targetMinutes {
		return nil
	}

	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	count, err := rem.sessions.SessionsCount(ctx, fitness.SessionParams{From: &startOfDay})
	if err != nil {
		return fmt.Errorf("today's sessions count: %w", err)
	}
	if count > 0 {
		return nil
	}

	// SetNX marks today as reminded; a false result means another
	// check (or instance) already fired it
	remindedKey := remindedKeyPrefix + now.Format(time.DateOnly)
	set, err := rem.redisClient.SetNX(ctx, remindedKey, 1, remindedKeyExpire).Result()
	if err != nil {
		return fmt.Errorf("set reminded marker: %w", err)
	}
	if !set {
		return nil
	}

	if err := rem.notifier.Notify(ctx, reminderTitle, reminderBody); err != nil {
		return fmt.Errorf("send reminder: %w", err)
	}

	log.Debugf("daily training reminder sent at %s", now.Format("15:04"))
	return nil
}
