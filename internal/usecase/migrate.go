package usecase

import (
	"context"
	"fmt"

	"github.com/H-Ngomijana/ERM/internal/domain/port"
	"github.com/H-Ngomijana/ERM/internal/infra/postgres"
	"go.uber.org/zap"
)

// RLSMigration applies the row-level-security policy batch through the
// database's exec_sql RPC. One invocation, one status row; any failure
// aborts the run.
type RLSMigration struct {
	exec   port.SQLExecutor
	logger *zap.Logger
}

func NewRLSMigration(exec port.SQLExecutor, logger *zap.Logger) *RLSMigration {
	return &RLSMigration{exec: exec, logger: logger}
}

func (m *RLSMigration) Run(ctx context.Context) (string, error) {
	m.logger.Info("applying RLS fix policies")

	status, err := m.exec.ExecSQL(ctx, postgres.FixRLSSQL)
	if err != nil {
		return "", fmt.Errorf("apply rls policies: %w", err)
	}

	m.logger.Info("RLS policies updated", zap.String("status", status))
	return status, nil
}
