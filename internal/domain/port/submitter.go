package port

import (
	"context"

	"github.com/H-Ngomijana/ERM/internal/domain/entity"
)

// EntrySubmitter forwards a vehicle entry to the ERM API. One call per
// accepted detection, best effort: the caller logs failures and drops the
// payload, no retry.
type EntrySubmitter interface {
	SubmitEntry(ctx context.Context, entry entity.VehicleEntry) (*entity.EntryResult, error)
}
