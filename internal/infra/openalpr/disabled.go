package openalpr

import (
	"context"

	"github.com/H-Ngomijana/ERM/internal/domain/entity"
	"github.com/H-Ngomijana/ERM/internal/domain/port"
)

// Disabled is the recognizer used when the alpr binary is not installed.
// It never detects anything; the loop keeps running so the camera stream
// and metrics stay observable.
type Disabled struct{}

func NewDisabled() *Disabled {
	return &Disabled{}
}

func (*Disabled) Recognize(_ context.Context, _ port.Frame) ([]entity.Detection, error) {
	return nil, nil
}
