package port

import "context"

// SQLExecutor invokes the database's exec_sql RPC with a SQL text blob and
// returns the status row it reports.
type SQLExecutor interface {
	ExecSQL(ctx context.Context, sql string) (string, error)
}
