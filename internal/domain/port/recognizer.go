package port

import (
	"context"

	"github.com/H-Ngomijana/ERM/internal/domain/entity"
)

// Recognizer extracts plate detections from a single frame. Implementations
// return an explicit error on engine failure; the caller decides whether
// that is loggable-and-continue or fatal.
type Recognizer interface {
	Recognize(ctx context.Context, frame Frame) ([]entity.Detection, error)
}
