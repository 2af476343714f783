package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Detection is a single plate read produced by a Recognizer for one frame.
// Immutable once created.
type Detection struct {
	ID         uuid.UUID
	Plate      string // normalized upper-case
	Confidence float64
	ObservedAt time.Time
}

func NewDetection(plate string, confidence float64, observedAt time.Time) Detection {
	return Detection{
		ID:         uuid.New(),
		Plate:      NormalizePlate(plate),
		Confidence: confidence,
		ObservedAt: observedAt.UTC(),
	}
}

// NormalizePlate upper-cases a raw plate read and strips surrounding whitespace.
func NormalizePlate(plate string) string {
	return strings.ToUpper(strings.TrimSpace(plate))
}

// VehicleEntry is the payload POSTed to the ERM vehicle-entry endpoint.
type VehicleEntry struct {
	PlateNumber string    `json:"plate_number"`
	Confidence  float64   `json:"confidence"`
	Timestamp   time.Time `json:"timestamp"`
	CameraID    string    `json:"camera_id"`
	ImageURL    string    `json:"image_url"`
}

// Alert is a watchlist hit returned by the ERM API on a successful entry.
type Alert struct {
	ID      string `json:"id"`
	Type    string `json:"type"`
	Message string `json:"message,omitempty"`
}

// EntryResult is the decoded 200 response from the vehicle-entry endpoint.
type EntryResult struct {
	Alerts []Alert `json:"alerts,omitempty"`
}
