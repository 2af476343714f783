package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Executor invokes the hosted database's exec_sql RPC function with a SQL
// text blob. The function applies the statements server-side and returns a
// status row.
type Executor struct {
	pool *pgxpool.Pool
}

func NewExecutor(pool *pgxpool.Pool) *Executor {
	return &Executor{pool: pool}
}

func (e *Executor) ExecSQL(ctx context.Context, sql string) (string, error) {
	var status string
	err := e.pool.QueryRow(ctx, "SELECT exec_sql($1)", sql).Scan(&status)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("exec_sql rpc: %w", err)
	}
	return status, nil
}
