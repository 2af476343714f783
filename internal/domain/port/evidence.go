package port

import (
	"context"

	"github.com/H-Ngomijana/ERM/internal/domain/entity"
)

// EvidenceStore persists the snapshot frame backing a detection and returns
// a reference (local path or object URL) for the submission payload.
type EvidenceStore interface {
	SaveSnapshot(ctx context.Context, det entity.Detection, cameraID string, frame Frame) (string, error)
}
