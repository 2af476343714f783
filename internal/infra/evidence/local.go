package evidence

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/H-Ngomijana/ERM/internal/domain/entity"
	"github.com/H-Ngomijana/ERM/internal/domain/port"
)

// LocalStore writes snapshot frames under a fixed directory, created on
// first use. Filenames encode camera id, plate and capture time; collisions
// within the same nanosecond are not handled.
type LocalStore struct {
	dir string
}

func NewLocalStore(dir string) *LocalStore {
	return &LocalStore{dir: dir}
}

func (s *LocalStore) SaveSnapshot(_ context.Context, det entity.Detection, cameraID string, frame port.Frame) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create snapshot dir: %w", err)
	}

	path := filepath.Join(s.dir, SnapshotName(det, cameraID))
	if err := os.WriteFile(path, frame, 0o644); err != nil {
		return "", fmt.Errorf("write snapshot: %w", err)
	}
	return path, nil
}

// SnapshotName builds the evidence filename shared by the local and object
// store backends.
func SnapshotName(det entity.Detection, cameraID string) string {
	return fmt.Sprintf("%s_%s_%d.jpg", cameraID, det.Plate, det.ObservedAt.UnixNano())
}
