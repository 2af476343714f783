package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockExecutor struct {
	calls  int
	gotSQL string
	status string
	err    error
}

func (m *mockExecutor) ExecSQL(_ context.Context, sql string) (string, error) {
	m.calls++
	m.gotSQL = sql
	return m.status, m.err
}

func TestRLSMigrationSuccess(t *testing.T) {
	exec := &mockExecutor{status: "RLS policies updated successfully!"}
	m := NewRLSMigration(exec, zap.NewNop())

	status, err := m.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "RLS policies updated successfully!", status)
	assert.Equal(t, 1, exec.calls)

	// the batch covers both tables and re-enables enforcement
	assert.Contains(t, exec.gotSQL, `ON public.clients`)
	assert.Contains(t, exec.gotSQL, `ON public.vehicles`)
	assert.Contains(t, exec.gotSQL, "ENABLE ROW LEVEL SECURITY")
	assert.Contains(t, exec.gotSQL, `"clients_authenticated_all"`)
	assert.Contains(t, exec.gotSQL, `"vehicles_authenticated_all"`)
}

func TestRLSMigrationFailureAbortsAfterSingleCall(t *testing.T) {
	exec := &mockExecutor{err: errors.New("permission denied for function exec_sql")}
	m := NewRLSMigration(exec, zap.NewNop())

	_, err := m.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "apply rls policies")
	assert.Equal(t, 1, exec.calls, "no further operation after a failed RPC")
}
