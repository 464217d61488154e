package notifications

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/bfit-app/bfit-backend/internal/telemetry/tracing"
)

const (
	reminderTimeKey     = "bfit::reminder-time"
	DefaultReminderTime = "18:00"
)

var ErrInvalidReminderTime = errors.New("invalid reminder time, expected HH:MM")

// Prefs keeps the daily reminder time (HH:MM, 24h clock) in redis.
type Prefs struct {
	redisClient *redis.Client
}

func NewPrefs(redisClient *redis.Client) *Prefs {
	return &Prefs{
		redisClient: redisClient,
	}
}

// ParseReminderTime validates a HH:MM string and returns its clock
// components.
func ParseReminderTime(value string) (hour, minute int, err error) {
	parsed, err := time.Parse("15:04", value)
	if err != nil {
		return 0, 0, ErrInvalidReminderTime
	}
	return parsed.Hour(), parsed.Minute(), nil
}

// ReminderTime returns the stored preference, or the default when
// nothing was set yet.
func (p *Prefs) ReminderTime(ctx context.Context) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "notifications.prefs.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	cmd := p.redisClient.Get(ctx, reminderTimeKey)
	reminderTime, err := cmd.Result()
	if errors.Is(err, redis.Nil) {
		err = nil
		return DefaultReminderTime, nil
	}
	if err != nil {
		return "", fmt.Errorf("get reminder time: %w", err)
	}

	if _, _, err = ParseReminderTime(reminderTime); err != nil {
		// a corrupt value falls back to the default
		return DefaultReminderTime, nil
	}
	return reminderTime, nil
}

func (p *Prefs) SetReminderTime(ctx context.Context, value string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "notifications.prefs.set")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if _, _, err = ParseReminderTime(value); err != nil {
		return err
	}

	if err = p.redisClient.Set(ctx, reminderTimeKey, value, 0).Err(); err != nil {
		return fmt.Errorf("set reminder time: %w", err)
	}
	return nil
}
