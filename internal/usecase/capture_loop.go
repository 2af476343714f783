package usecase

import (
	"context"
	"time"

	"github.com/H-Ngomijana/ERM/internal/domain/entity"
	"github.com/H-Ngomijana/ERM/internal/domain/port"
	"github.com/H-Ngomijana/ERM/internal/infra/metrics"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// CaptureLoop drives the edge pipeline: read a frame, recognize every Nth
// one, deduplicate, submit. Strictly sequential; the one Deduplicator
// instance is only ever touched from Run's goroutine. A failed read closes
// and reopens the source and the loop carries on; there is no bound on
// reconnect attempts.
type CaptureLoop struct {
	source     port.FrameSource
	recognizer port.Recognizer
	dedupe     *entity.Deduplicator
	evidence   port.EvidenceStore
	submitter  port.EntrySubmitter
	publisher  port.DetectionPublisher
	logger     *zap.Logger
	cfg        CaptureLoopConfig
}

type CaptureLoopConfig struct {
	CameraID            string
	FrameInterval       int
	ConfidenceThreshold float64
}

func NewCaptureLoop(
	source port.FrameSource,
	recognizer port.Recognizer,
	dedupe *entity.Deduplicator,
	evidence port.EvidenceStore,
	submitter port.EntrySubmitter,
	publisher port.DetectionPublisher,
	logger *zap.Logger,
	cfg CaptureLoopConfig,
) *CaptureLoop {
	if cfg.FrameInterval <= 0 {
		cfg.FrameInterval = 10
	}
	return &CaptureLoop{
		source:     source,
		recognizer: recognizer,
		dedupe:     dedupe,
		evidence:   evidence,
		submitter:  submitter,
		publisher:  publisher,
		logger:     logger.With(zap.String("camera_id", cfg.CameraID)),
		cfg:        cfg,
	}
}

// Run blocks until ctx is cancelled. The only exit paths are cancellation
// and a failed initial open.
func (l *CaptureLoop) Run(ctx context.Context) error {
	if err := l.source.Open(ctx); err != nil {
		return err
	}
	defer l.source.Close()

	l.logger.Info("capture loop started", zap.Int("frame_interval", l.cfg.FrameInterval))

	frameCount := 0
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		frame, err := l.source.ReadFrame(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			l.logger.Warn("lost connection to camera, reconnecting", zap.Error(err))
			metrics.SourceReconnectsTotal.Inc()
			_ = l.source.Close()
			if err := l.source.Open(ctx); err != nil {
				l.logger.Error("reconnect failed", zap.Error(err))
			}
			continue
		}

		metrics.FramesReadTotal.Inc()
		frameCount++

		// Only every Nth frame goes to the recognizer to bound CPU usage.
		if frameCount%l.cfg.FrameInterval != 0 {
			continue
		}

		l.processFrame(ctx, frame)
	}
}

func (l *CaptureLoop) processFrame(ctx context.Context, frame port.Frame) {
	metrics.FramesRecognizedTotal.Inc()

	detections, err := l.recognizer.Recognize(ctx, frame)
	if err != nil {
		// recognition failures are non-fatal: skip the frame
		metrics.RecognizerErrorsTotal.Inc()
		l.logger.Warn("recognition failed, skipping frame", zap.Error(err))
		return
	}

	for _, det := range detections {
		if det.Confidence < l.cfg.ConfidenceThreshold {
			l.logger.Debug("detection below confidence threshold",
				zap.String("plate", det.Plate),
				zap.Float64("confidence", det.Confidence),
			)
			continue
		}
		metrics.DetectionsTotal.Inc()

		if !l.dedupe.ShouldSubmit(det.Plate, det.ObservedAt) {
			metrics.DuplicatesSuppressedTotal.Inc()
			l.logger.Debug("duplicate plate suppressed", zap.String("plate", det.Plate))
			continue
		}

		l.submit(ctx, det, frame)
	}
}

func (l *CaptureLoop) submit(ctx context.Context, det entity.Detection, frame port.Frame) {
	tracer := otel.Tracer("usecase")
	ctx, span := tracer.Start(ctx, "CaptureLoop.submit")
	defer span.End()
	span.SetAttributes(
		attribute.String("plate", det.Plate),
		attribute.String("camera_id", l.cfg.CameraID),
	)

	timer := time.Now()
	log := l.logger.With(zap.String("plate", det.Plate), zap.Float64("confidence", det.Confidence))

	ref, err := l.evidence.SaveSnapshot(ctx, det, l.cfg.CameraID, frame)
	if err != nil {
		// the entry is still worth forwarding without its snapshot
		log.Error("failed to save evidence snapshot", zap.Error(err))
		ref = ""
	}

	entry := entity.VehicleEntry{
		PlateNumber: det.Plate,
		Confidence:  det.Confidence,
		Timestamp:   det.ObservedAt,
		CameraID:    l.cfg.CameraID,
		ImageURL:    ref,
	}

	result, err := l.submitter.SubmitEntry(ctx, entry)
	if err != nil {
		// best effort: log, drop the payload, keep the loop alive
		metrics.SubmissionsTotal.WithLabelValues("error").Inc()
		log.Error("failed to submit vehicle entry", zap.Error(err))
		return
	}

	metrics.SubmissionsTotal.WithLabelValues("ok").Inc()
	metrics.SubmissionDuration.Observe(time.Since(timer).Seconds())

	log.Info("plate submitted", zap.Int("alerts", len(result.Alerts)))

	if l.publisher != nil {
		event := entity.DetectionEvent{
			DetectionID: det.ID,
			CameraID:    l.cfg.CameraID,
			Plate:       det.Plate,
			Confidence:  det.Confidence,
			ObservedAt:  det.ObservedAt,
			SnapshotRef: ref,
		}
		if err := l.publisher.PublishDetection(ctx, event); err != nil {
			log.Warn("failed to mirror detection to broker", zap.Error(err))
		}
	}
}
