package openalpr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"time"

	"github.com/H-Ngomijana/ERM/internal/domain/entity"
	"github.com/H-Ngomijana/ERM/internal/domain/port"
	"go.uber.org/zap"
)

// Response is the JSON document the alpr binary prints in -j mode.
type Response struct {
	Version        float32  `json:"version"`
	DataType       string   `json:"data_type"`
	EpochTime      float64  `json:"epoch_time"`
	ProcessingTime float64  `json:"processing_time_ms"`
	Results        []Result `json:"results"`
}

type Result struct {
	Plate      string      `json:"plate"`
	Confidence float64     `json:"confidence"`
	Region     string      `json:"region"`
	Candidates []Candidate `json:"candidates"`
}

type Candidate struct {
	Plate      string  `json:"plate"`
	Confidence float64 `json:"confidence"`
}

// Recognizer shells out to the OpenALPR binary for each frame. The frame is
// fed on stdin and the JSON result parsed from stdout.
type Recognizer struct {
	binary     string
	country    string
	configFile string
	runtimeDir string
	logger     *zap.Logger
	now        func() time.Time
}

type Options struct {
	Country    string
	ConfigFile string
	RuntimeDir string
}

// New locates the alpr binary on PATH. Callers fall back to the Disabled
// recognizer when it is absent; availability is checked once at startup and
// not revisited.
func New(opts Options, logger *zap.Logger) (*Recognizer, error) {
	binary, err := exec.LookPath("alpr")
	if err != nil {
		return nil, fmt.Errorf("locate alpr binary: %w", err)
	}
	return &Recognizer{
		binary:     binary,
		country:    opts.Country,
		configFile: opts.ConfigFile,
		runtimeDir: opts.RuntimeDir,
		logger:     logger,
		now:        time.Now,
	}, nil
}

func (r *Recognizer) Recognize(ctx context.Context, frame port.Frame) ([]entity.Detection, error) {
	cmd := exec.CommandContext(ctx, r.binary,
		"-c", r.country,
		"--config", r.configFile,
		"-n", "1",
		"-j",
		"-",
	)
	cmd.Stdin = bytes.NewReader(frame)

	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("run alpr: %w", err)
	}

	var resp Response
	if err := json.Unmarshal(out, &resp); err != nil {
		return nil, fmt.Errorf("parse alpr output: %w", err)
	}

	r.logger.Debug("alpr processed frame",
		zap.Float64("processing_ms", resp.ProcessingTime),
		zap.Int("results", len(resp.Results)),
	)

	return r.detections(resp), nil
}

func (r *Recognizer) detections(resp Response) []entity.Detection {
	observedAt := r.now()

	var dets []entity.Detection
	for _, res := range resp.Results {
		plate, confidence := res.Plate, res.Confidence
		if len(res.Candidates) > 0 {
			plate, confidence = res.Candidates[0].Plate, res.Candidates[0].Confidence
		}
		if plate == "" {
			continue
		}
		dets = append(dets, entity.NewDetection(plate, confidence, observedAt))
	}
	return dets
}
