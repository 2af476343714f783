package port

import (
	"context"

	"github.com/H-Ngomijana/ERM/internal/domain/entity"
)

// DetectionPublisher mirrors accepted detections to the site broker.
// Publishing is fire-and-forget from the capture loop's point of view.
type DetectionPublisher interface {
	PublishDetection(ctx context.Context, event entity.DetectionEvent) error
}
