package coach

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/bfit-app/bfit-backend/internal/telemetry/tracing"
)

var ErrThreadNotFound = errors.New("chat thread not found")

const defaultThreadTitle = "New Chat"

// Thread is one coach conversation. Threads are listed most recently
// touched first; the preview is the start of the latest model reply.
type Thread struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Preview   string    `json:"preview"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Message struct {
	ID        int       `json:"id"`
	ThreadID  int       `json:"threadId"`
	Role      string    `json:"role"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

const (
	RoleUser  = "user"
	RoleModel = "model"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) AddThread(ctx context.Context, title string) (_ *Thread, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.coach.addthread")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if title == "" {
		title = defaultThreadTitle
	}

	now := time.Now()
	thread := &Thread{
		Title:     title,
		CreatedAt: now,
		UpdatedAt: now,
	}
	err = r.db.QueryRow(ctx, `
		INSERT INTO coach_thread (title, preview, created_at, updated_at)
		VALUES ($1, '', $2, $2)
		RETURNING id
	`, title, now).Scan(&thread.ID)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("thread.id", thread.ID))
	return thread, nil
}

func (r *Repo) GetThread(ctx context.Context, id int) (_ *Thread, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.coach.getthread")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	thread := &Thread{}
	err = r.db.QueryRow(ctx, `
		SELECT id, title, preview, created_at, updated_at
		FROM coach_thread
		WHERE id = $1
	`, id).Scan(&thread.ID, &thread.Title, &thread.Preview, &thread.CreatedAt, &thread.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrThreadNotFound
	}
	if err != nil {
		return nil, err
	}
	return thread, nil
}

// Threads returns all conversations, most recently updated first.
func (r *Repo) Threads(ctx context.Context) (_ []Thread, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.coach.threads")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `
		SELECT id, title, preview, created_at, updated_at
		FROM coach_thread
		ORDER BY updated_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	threads := make([]Thread, 0)
	for rows.Next() {
		var thread Thread
		if err := rows.Scan(&thread.ID, &thread.Title, &thread.Preview, &thread.CreatedAt, &thread.UpdatedAt); err != nil {
			return nil, err
		}
		threads = append(threads, thread)
	}
	return threads, nil
}

// Messages returns a thread's messages in conversation order.
func (r *Repo) Messages(ctx context.Context, threadID int) (_ []Message, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.coach.messages")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("thread.id", threadID))

	rows, err := r.db.Query(ctx, `
		SELECT id, thread_id, role, content, created_at
		FROM coach_message
		WHERE thread_id = $1
		ORDER BY created_at ASC
	`, threadID)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	messages := make([]Message, 0)
	for rows.Next() {
		var msg Message
		if err := rows.Scan(&msg.ID, &msg.ThreadID, &msg.Role, &msg.Text, &msg.CreatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}
	return messages, nil
}

// AddMessages appends messages to a thread and refreshes the thread's
// preview and updated_at in the same transaction.
func (r *Repo) AddMessages(ctx context.Context, threadID int, messages []Message, preview string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.coach.addmessages")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("thread.id", threadID))
	span.SetAttributes(attribute.Int("messages", len(messages)))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				err = fmt.Errorf("failed to rollback transaction: %w: %w", rollbackErr, err)
			}
		} else {
			err = tx.Commit(ctx)
		}
	}()

	for i := range messages {
		messages[i].ThreadID = threadID
		if messages[i].CreatedAt.IsZero() {
			messages[i].CreatedAt = time.Now()
		}
		err = tx.QueryRow(ctx, `
			INSERT INTO coach_message (thread_id, role, content, created_at)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`, threadID, messages[i].Role, messages[i].Text, messages[i].CreatedAt).Scan(&messages[i].ID)
		if err != nil {
			return err
		}
	}

	if preview == "" && len(messages) > 0 {
		preview = messages[len(messages)-1].Text
	}

	tag, err := tx.Exec(ctx, `
		UPDATE coach_thread SET preview = $1, updated_at = $2 WHERE id = $3
	`, preview, time.Now(), threadID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		err = ErrThreadNotFound
		return err
	}

	return nil
}

func (r *Repo) RenameThread(ctx context.Context, id int, title string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.coach.renamethread")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(ctx, `
		UPDATE coach_thread SET title = $1, updated_at = $2 WHERE id = $3
	`, title, time.Now(), id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrThreadNotFound
	}
	return nil
}

// DeleteThread removes a thread together with its messages.
func (r *Repo) DeleteThread(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.coach.deletethread")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				err = fmt.Errorf("failed to rollback transaction: %w: %w", rollbackErr, err)
			}
		} else {
			err = tx.Commit(ctx)
		}
	}()

	if _, err = tx.Exec(ctx, `DELETE FROM coach_message WHERE thread_id = $1`, id); err != nil {
		return err
	}

	tag, err := tx.Exec(ctx, `DELETE FROM coach_thread WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		err = ErrThreadNotFound
		return err
	}

	return nil
}
