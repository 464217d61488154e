package db

import (
	"context"
	"fmt"
	"time"

	"github.com/exaring/otelpgx"
	"github.com/jackc/pgx/v5/pgxpool"
)

const connectTimeout = 5 * time.Second

type PoolParams struct {
	Host           string
	Port           string
	DBName         string
	TracingEnabled bool
}

// connString builds the DSN; the service connects as the postgres user,
// auth is host-based and credentials never come from config.
func (p PoolParams) connString() string {
	return fmt.Sprintf("postgres://postgres@%s:%s/%s", p.Host, p.Port, p.DBName)
}

func NewPool(ctx context.Context, params PoolParams) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(params.connString())
	if err != nil {
		return nil, fmt.Errorf("parse db config: %w", err)
	}
	poolConfig.ConnConfig.ConnectTimeout = connectTimeout

	if params.TracingEnabled {
		poolConfig.ConnConfig.Tracer = otelpgx.NewTracer()
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	return pool, nil
}
