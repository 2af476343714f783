package entity

import (
	"time"

	"github.com/google/uuid"
)

// DetectionEvent is the message mirrored to the site broker for each
// accepted detection. Downstream consumers (dashboards, gate controllers)
// subscribe to these without touching the ERM API.
type DetectionEvent struct {
	DetectionID uuid.UUID `json:"detection_id"`
	CameraID    string    `json:"camera_id"`
	Plate       string    `json:"plate"`
	Confidence  float64   `json:"confidence"`
	ObservedAt  time.Time `json:"observed_at"`
	SnapshotRef string    `json:"snapshot_ref,omitempty"`
}
