package fitness

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/bfit-app/bfit-backend/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrSessionNotFound = errors.New("workout session not found")

type SessionParams struct {
	From *time.Time
	To   *time.Time
}

type ListParams struct {
	SessionParams
	Page int
	Size int
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, session WorkoutSession) (_ *WorkoutSession, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.fitness.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	exercisesJson, err := json.Marshal(session.Exercises)
	if err != nil {
		return nil, fmt.Errorf("marshal exercises: %w", err)
	}

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO workout_session
				(name, date, duration_minutes, exercises, created_at)
				VALUES ($1, $2, $3, $4, $5)
			RETURNING id;`,
		session.Name, session.Date, session.DurationMinutes, exercisesJson, session.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if !rows.Next() {
		return nil, errors.New("unexpected error [no rows next]")
	}

	var id int
	if err := rows.Scan(&id); err != nil {
		return nil, fmt.Errorf("rows scan: %w", err)
	}

	span.SetAttributes(attribute.Int("session.id", id))

	session.ID = id
	return &session, nil
}

func (r *Repo) Update(ctx context.Context, session *WorkoutSession) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.fitness.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", session.ID))

	exercisesJson, err := json.Marshal(session.Exercises)
	if err != nil {
		return fmt.Errorf("marshal exercises: %w", err)
	}

	tag, err := r.db.Exec(
		ctx,
		`UPDATE workout_session SET name = $1, date = $2, duration_minutes = $3, exercises = $4 WHERE id = $5;`,
		session.Name, session.Date, session.DurationMinutes, exercisesJson, session.ID,
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrSessionNotFound
	}

	return nil
}

func (r *Repo) Delete(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.fitness.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM workout_session WHERE id = $1`,
		id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrSessionNotFound
	}
	return nil
}

func (r *Repo) Get(ctx context.Context, id int) (_ *WorkoutSession, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.fitness.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				id, name, date, duration_minutes, exercises, created_at
			FROM workout_session
			WHERE id = $1;`,
		id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	sessions, err := r.rows2sessions(rows)
	if err != nil {
		return nil, err
	}

	if len(sessions) != 1 {
		return nil, ErrSessionNotFound
	}

	return &sessions[0], nil
}

// ListAll returns the full workout history, most recent session first.
// The analytics layer works on this full list.
func (r *Repo) ListAll(ctx context.Context, params SessionParams) (_ []WorkoutSession, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.fitness.listall")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	if params.From != nil {
		span.SetAttributes(attribute.String("from", params.From.String()))
	}
	if params.To != nil {
		span.SetAttributes(attribute.String("to", params.To.String()))
	}

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				id, name, date, duration_minutes, exercises, created_at
			FROM workout_session
				WHERE ($1::timestamp IS NULL OR date >= $1)
				AND ($2::timestamp IS NULL OR date <= $2)
			ORDER BY date DESC;`,
		params.From, params.To,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	sessions, err := r.rows2sessions(rows)
	if err != nil {
		return nil, fmt.Errorf("rows2sessions: %w", err)
	}
	return sessions, nil
}

// List is like ListAll, but returns the specific PAGE of the history,
// i.e. is used for pagination.
func (r *Repo) List(ctx context.Context, params ListParams) (_ []WorkoutSession, total int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.fitness.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("page", params.Page))
	span.SetAttributes(attribute.Int("size", params.Size))

	if params.Page < 1 {
		return nil, -1, errors.New("page must be greater than 0")
	}
	if params.Size < 1 {
		return nil, -1, errors.New("size must be greater than 0")
	}

	limit := params.Size
	offset := (params.Page - 1) * params.Size
	countAll, err := r.SessionsCount(ctx, params.SessionParams)
	if err != nil {
		return nil, -1, err
	}

	if countAll <= limit {
		limit = countAll
		offset = 0
	}

	if countAll-offset < limit {
		offset = countAll - limit
	}

	span.SetAttributes(attribute.Int("count_all", countAll))
	span.SetAttributes(attribute.Int("limit", limit))
	span.SetAttributes(attribute.Int("offset", offset))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				id, name, date, duration_minutes, exercises, created_at
			FROM workout_session
				WHERE ($1::timestamp IS NULL OR date >= $1)
				AND ($2::timestamp IS NULL OR date <= $2)
			ORDER BY date DESC
			LIMIT $3
			OFFSET $4;`,
		params.From, params.To,
		limit, offset,
	)
	if err != nil {
		return nil, -1, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, -1, err
	}

	sessions, err := r.rows2sessions(rows)
	if err != nil {
		return nil, -1, err
	}
	return sessions, countAll, nil
}

func (r *Repo) SessionsCount(ctx context.Context, params SessionParams) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.fitness.count")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `
		SELECT COUNT(*) FROM workout_session
			WHERE ($1::timestamp IS NULL OR date >= $1)
			AND ($2::timestamp IS NULL OR date <= $2);
	`,
		params.From, params.To,
	)
	if err != nil {
		return -1, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return -1, err
	}

	if rows.Next() {
		var count int
		if err := rows.Scan(&count); err == nil {
			return count, nil
		}
	}

	return -1, errors.New("unexpected error, failed to get sessions count")
}

func (r *Repo) rows2sessions(rows pgx.Rows) ([]WorkoutSession, error) {
	var sessions []WorkoutSession
	for rows.Next() {
		var id int
		var name string
		var date time.Time
		var durationMinutes int
		var exercisesBytes []byte
		var createdAt time.Time
		if err := rows.Scan(&id, &name, &date, &durationMinutes, &exercisesBytes, &createdAt); err != nil {
			return nil, err
		}

		session := WorkoutSession{
			ID:              id,
			Name:            name,
			Date:            date,
			DurationMinutes: durationMinutes,
			CreatedAt:       createdAt,
		}

		if len(exercisesBytes) > 0 {
			if err := json.Unmarshal(exercisesBytes, &session.Exercises); err != nil {
				return nil, fmt.Errorf("unmarshal exercises for session %d: %w", id, err)
			}
		}
		if session.Exercises == nil {
			session.Exercises = make([]ExerciseLog, 0)
		}

		sessions = append(sessions, session)
	}

	if sessions == nil {
		sessions = make([]WorkoutSession, 0)
	}

	return sessions, nil
}
